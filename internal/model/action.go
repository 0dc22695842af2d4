package model

// Action is a human-friendly label for what the algo did in a step.
// Keep these values stable; they are intended for CSV output.
type Action string

const (
	ActionOpen   Action = "OPEN"
	ActionPush   Action = "PUSH"
	ActionHold   Action = "HOLD"
	ActionRevert Action = "REVERT"
)

// ActionFromTransition derives the step label from two adjacent snapshots.
// The first snapshot of a run has no predecessor and is OPEN; a fractional
// timestamp marks the post-fill revert; any quote change in between is a
// push and an unchanged book is a hold.
func ActionFromTransition(prev *OrderBookSnapshot, cur OrderBookSnapshot) Action {
	switch {
	case prev == nil:
		return ActionOpen
	case cur.Time != float64(int(cur.Time)):
		return ActionRevert
	case cur.BestBid != prev.BestBid || cur.BestAsk != prev.BestAsk:
		return ActionPush
	default:
		return ActionHold
	}
}

// Phase is the terminal outcome of a run. The loop itself is the running
// state; a run always ends in exactly one of these.
type Phase string

const (
	PhaseFilled    Phase = "FILLED"
	PhaseExhausted Phase = "EXHAUSTED"
)
