package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"option-sim/internal/analysis"
	"option-sim/internal/config"
	"option-sim/internal/model"
	"option-sim/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/config.yaml --out results/ledger.csv")
	fmt.Println("  cli sweep --config examples/config.yaml --multipliers 1.0,1.2,1.5 --push-steps 0.5,1,2")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate prints the order book ledger and summary for one scenario")
	fmt.Println("  - sweep re-runs the scenario over a multiplier/push-step grid and ranks by algo edge")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional; defaults used when omitted)")
	outPath := fs.String("out", "", "Optional output CSV path")
	_ = fs.Parse(args)

	in := loadInputs(*cfgPath)
	res := sim.Run(in)
	rows := res.Ledger()

	fmt.Printf("%-6s %-6s %-10s %-10s %-10s %-10s %-8s\n",
		"index", "time", "best_bid", "best_ask", "mid", "human_bid", "action")
	for _, r := range rows {
		humanBid := "-"
		if r.HumanBid != nil {
			humanBid = strconv.FormatFloat(*r.HumanBid, 'f', 2, 64)
		}
		fmt.Printf("%-6d %-6.1f %-10.2f %-10.2f %-10.2f %-10s %-8s\n",
			r.Index, r.Time, r.BestBid, r.BestAsk, r.MidPrice, humanBid, r.Action)
	}

	summary := sim.BuildSummary(in, res)
	fmt.Println("")
	fmt.Printf("Fair value:        %.2f\n", summary.FairValue)
	fmt.Printf("Target price:      %.2f\n", summary.TargetPrice)
	fmt.Printf("Human limit price: %.2f\n", summary.HumanLimitPrice)
	fmt.Printf("Trade executed:    %v\n", summary.Filled)
	if summary.Filled {
		fmt.Printf("Fill price:        %.2f\n", *summary.FillPrice)
		fmt.Printf("Human P&L:         %.2f\n", *summary.PNL)
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := sim.WriteLedgerCSV(*outPath, rows); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(rows), *outPath)
	}
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	multipliers := fs.String("multipliers", "1.0,1.2,1.5,2.0", "Comma-separated target multipliers")
	pushSteps := fs.String("push-steps", "0.5,1,2,4", "Comma-separated push steps")
	_ = fs.Parse(args)

	base := loadInputs(*cfgPath)
	rows := analysis.Sweep(base, splitFloats(*multipliers), splitFloats(*pushSteps))

	fmt.Printf("%-4s %-10s %-10s %-8s %-8s %-10s %-10s %-10s\n",
		"rank", "mult", "push", "target", "filled", "fill@step", "human_pnl", "algo_edge")
	for i, r := range rows {
		fillStep := "-"
		if r.Filled {
			fillStep = strconv.Itoa(r.FillStep)
		}
		fmt.Printf("%-4d %-10.2f %-10.2f %-8.2f %-8v %-10s %-10.2f %-10.2f\n",
			i+1, r.TargetMultiplier, r.PushStep, r.TargetPrice, r.Filled, fillStep, r.HumanPNL, r.AlgoEdge)
	}
}

func loadInputs(cfgPath string) model.SimulationInputs {
	if cfgPath == "" {
		return model.Defaults()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}
	return cfg.Scenario.ToInputs()
}

func splitFloats(s string) []float64 {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			panic(fmt.Errorf("invalid number %q: %w", p, err))
		}
		out = append(out, v)
	}
	return out
}
