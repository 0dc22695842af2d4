package sim

import (
	"option-sim/internal/model"
)

// MaxSteps is the fixed step budget after the opening snapshot.
const MaxSteps = 15

// Run executes one simulation pass. It is a pure function of the inputs:
// no I/O, no shared state, safe to call concurrently. Inputs are not
// validated here; out-of-domain values just produce the arithmetic they
// imply (e.g. a zero push step never advances prices).
func Run(in model.SimulationInputs) *Result {
	bestBid := in.InitialBid
	bestAsk := in.InitialAsk
	order := model.NewHumanOrder(in.HumanLimitPrice)
	target := in.TargetPrice()

	snapshots := make([]model.OrderBookSnapshot, 0, MaxSteps+2)
	snapshots = append(snapshots, model.NewSnapshot(0, bestBid, bestAsk, order))

	var trade *model.TradeRecord
	clock := 0.0
	running := true

	for step := 1; step <= MaxSteps && running; step++ {
		clock++

		if order.IsOpen() && order.Price > bestBid {
			// The algo steps in front of the human and drags the ask along.
			// Note the bid is recomputed from the human's price each time,
			// while the ask compounds.
			bestBid = order.Price + in.PushStep
			bestAsk += in.PushStep
			snapshots = append(snapshots, model.NewSnapshot(clock, bestBid, bestAsk, order))

			if mid := (bestBid + bestAsk) / 2; mid >= target {
				trade = &model.TradeRecord{
					Time:   clock,
					Buyer:  model.BuyerHuman,
					Seller: model.SellerAlgo,
					Price:  target,
					Size:   order.Size,
				}
				order.Fill()

				// Revert: quotes snap back to the original inputs, not to
				// whatever preceded the triggering push.
				bestBid = in.InitialBid
				bestAsk = in.InitialAsk
				snapshots = append(snapshots, model.NewSnapshot(clock+0.1, bestBid, bestAsk, order))
				running = false
			}
		} else {
			snapshots = append(snapshots, model.NewSnapshot(clock, bestBid, bestAsk, order))
		}
	}

	phase := model.PhaseExhausted
	if trade != nil {
		phase = model.PhaseFilled
	}

	return &Result{
		Snapshots: snapshots,
		Trade:     trade,
		FinalBid:  bestBid,
		FinalAsk:  bestAsk,
		Order:     order,
		Phase:     phase,
	}
}
