package analysis

import (
	"option-sim/internal/model"
	"option-sim/internal/sim"
)

// Reference line labels. Keep these values stable; the front end keys its
// line styles off them.
const (
	RefFairValue = "fair_value"
	RefFillPrice = "fill_price"
)

// RefLine is a horizontal marker for the price chart.
type RefLine struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSeries is the bid/ask/mid line chart payload, parallel slices indexed
// by snapshot.
type ChartSeries struct {
	Times    []float64 `json:"times"`
	BestBid  []float64 `json:"best_bid"`
	BestAsk  []float64 `json:"best_ask"`
	MidPrice []float64 `json:"mid_price"`

	RefLines []RefLine `json:"ref_lines"`
}

// BuildChartSeries derives the chart payload from a finished run. The fair
// value line is always present; the fill price line only when a trade
// occurred.
func BuildChartSeries(in model.SimulationInputs, res *sim.Result) ChartSeries {
	n := len(res.Snapshots)
	cs := ChartSeries{
		Times:    make([]float64, 0, n),
		BestBid:  make([]float64, 0, n),
		BestAsk:  make([]float64, 0, n),
		MidPrice: make([]float64, 0, n),
	}
	for _, snap := range res.Snapshots {
		cs.Times = append(cs.Times, snap.Time)
		cs.BestBid = append(cs.BestBid, snap.BestBid)
		cs.BestAsk = append(cs.BestAsk, snap.BestAsk)
		cs.MidPrice = append(cs.MidPrice, snap.MidPrice)
	}

	cs.RefLines = append(cs.RefLines, RefLine{Label: RefFairValue, Value: in.FairValue})
	if res.Trade != nil {
		cs.RefLines = append(cs.RefLines, RefLine{Label: RefFillPrice, Value: res.Trade.Price})
	}
	return cs
}
