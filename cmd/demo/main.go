package main

import (
	"flag"
	"fmt"

	"option-sim/internal/config"
	"option-sim/internal/model"
	"option-sim/internal/sim"
)

// Demo:
// - Run the default scenario (or one from --config)
// - Print each snapshot as the algo reacts to the human's order
// - Show the resulting trade and summary, to show how the pieces fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	in := model.Defaults()
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		in = cfg.Scenario.ToInputs()
	}

	fmt.Printf("Fair value %.2f, book %.2f/%.2f, human bids %.2f, push step %.2f, target %.2fx\n\n",
		in.FairValue, in.InitialBid, in.InitialAsk, in.HumanLimitPrice, in.PushStep, in.TargetMultiplier)

	res := sim.Run(in)
	for _, row := range res.Ledger() {
		humanBid := "gone"
		if row.HumanBid != nil {
			humanBid = fmt.Sprintf("%.2f", *row.HumanBid)
		}
		fmt.Printf("t=%-4.1f %-7s bid=%-8.2f ask=%-8.2f mid=%-8.2f human=%s\n",
			row.Time, row.Action, row.BestBid, row.BestAsk, row.MidPrice, humanBid)
	}

	fmt.Println("")
	if res.Trade != nil {
		fmt.Printf("Trade: %s buys %d from %s at %.2f (t=%g)\n",
			res.Trade.Buyer, res.Trade.Size, res.Trade.Seller, res.Trade.Price, res.Trade.Time)
	} else {
		fmt.Println("No trade occurred within the step budget.")
	}

	summary := sim.BuildSummary(in, res)
	fmt.Printf("Outcome: %s, target price %.2f\n", res.Phase, summary.TargetPrice)
	if summary.PNL != nil {
		fmt.Printf("Human P&L after revert: %.2f\n", *summary.PNL)
	}
}
