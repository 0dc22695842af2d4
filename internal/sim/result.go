package sim

import "option-sim/internal/model"

// Result is everything a run produced. Snapshots are append-only and
// time-ordered; Trade is nil when the step budget ran out without a fill.
type Result struct {
	Snapshots []model.OrderBookSnapshot
	Trade     *model.TradeRecord
	FinalBid  float64
	FinalAsk  float64
	Order     model.HumanOrder
	Phase     model.Phase
}

// Filled reports whether the human order executed during the run.
func (r *Result) Filled() bool {
	return r.Phase == model.PhaseFilled
}

// LedgerRow is one row of per-snapshot output.
// This is the primary artifact for "what happened" in a run.
type LedgerRow struct {
	Index int `json:"index"`

	Time     float64  `json:"time"`
	BestBid  float64  `json:"best_bid"`
	BestAsk  float64  `json:"best_ask"`
	MidPrice float64  `json:"mid_price"`
	HumanBid *float64 `json:"human_bid,omitempty"`

	Action model.Action `json:"action"`
}

// Ledger derives the labelled row sequence from the raw snapshots.
func (r *Result) Ledger() []LedgerRow {
	rows := make([]LedgerRow, 0, len(r.Snapshots))
	var prev *model.OrderBookSnapshot
	for i, snap := range r.Snapshots {
		rows = append(rows, LedgerRow{
			Index:    i,
			Time:     snap.Time,
			BestBid:  snap.BestBid,
			BestAsk:  snap.BestAsk,
			MidPrice: snap.MidPrice,
			HumanBid: snap.HumanBid,
			Action:   model.ActionFromTransition(prev, snap),
		})
		prev = &r.Snapshots[i]
	}
	return rows
}

// Summary is the derived report the presentation layer shows after a run.
type Summary struct {
	FairValue       float64  `json:"fair_value"`
	TargetPrice     float64  `json:"target_price"`
	HumanLimitPrice float64  `json:"human_limit_price"`
	Filled          bool     `json:"filled"`
	FillPrice       *float64 `json:"fill_price,omitempty"`
	PNL             *float64 `json:"pnl,omitempty"`
}

// BuildSummary computes the post-run report. PNL is the human's mark against
// the reverted mid: (initialBid+initialAsk)/2 minus the fill price. Both
// FillPrice and PNL are absent when no trade occurred.
func BuildSummary(in model.SimulationInputs, res *Result) Summary {
	s := Summary{
		FairValue:       in.FairValue,
		TargetPrice:     in.TargetPrice(),
		HumanLimitPrice: in.HumanLimitPrice,
		Filled:          res.Filled(),
	}
	if res.Trade != nil {
		fill := res.Trade.Price
		revertMid := (in.InitialBid + in.InitialAsk) / 2
		pnl := revertMid - fill
		s.FillPrice = &fill
		s.PNL = &pnl
	}
	return s
}
