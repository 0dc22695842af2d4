package analysis

import (
	"sort"

	"option-sim/internal/model"
	"option-sim/internal/sim"
)

// SweepRow is one grid cell of a parameter sweep: the base scenario re-run
// with one (multiplier, push step) combination.
type SweepRow struct {
	TargetMultiplier float64 `json:"target_multiplier"`
	PushStep         float64 `json:"push_step"`
	TargetPrice      float64 `json:"target_price"`

	Filled    bool    `json:"filled"`
	FillStep  int     `json:"fill_step,omitempty"`
	FillPrice float64 `json:"fill_price,omitempty"`

	// HumanPNL is the human's mark against the reverted mid.
	// AlgoEdge is how far above fair value the algo sold.
	HumanPNL float64 `json:"human_pnl,omitempty"`
	AlgoEdge float64 `json:"algo_edge,omitempty"`
}

// Sweep re-runs the engine for every multiplier/push-step combination and
// ranks the outcomes by algo edge, filled cells first. The base scenario's
// other four inputs are untouched.
func Sweep(base model.SimulationInputs, multipliers, pushSteps []float64) []SweepRow {
	out := make([]SweepRow, 0, len(multipliers)*len(pushSteps))
	for _, mult := range multipliers {
		for _, step := range pushSteps {
			in := base
			in.TargetMultiplier = mult
			in.PushStep = step

			res := sim.Run(in)
			row := SweepRow{
				TargetMultiplier: mult,
				PushStep:         step,
				TargetPrice:      in.TargetPrice(),
				Filled:           res.Filled(),
			}
			if res.Trade != nil {
				row.FillStep = int(res.Trade.Time)
				row.FillPrice = res.Trade.Price
				row.HumanPNL = (in.InitialBid+in.InitialAsk)/2 - res.Trade.Price
				row.AlgoEdge = res.Trade.Price - in.FairValue
			}
			out = append(out, row)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Filled != out[j].Filled {
			return out[i].Filled
		}
		return out[i].AlgoEdge > out[j].AlgoEdge
	})
	return out
}
