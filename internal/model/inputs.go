package model

import (
	"fmt"

	"go.uber.org/multierr"
)

// SimulationInputs are the six scalars that fully determine a run.
// The struct is treated as immutable once handed to the engine.
type SimulationInputs struct {
	FairValue        float64
	InitialBid       float64
	InitialAsk       float64
	HumanLimitPrice  float64
	PushStep         float64
	TargetMultiplier float64
}

// Defaults returns the canonical demo scenario.
func Defaults() SimulationInputs {
	return SimulationInputs{
		FairValue:        40.0,
		InitialBid:       20.0,
		InitialAsk:       100.0,
		HumanLimitPrice:  21.0,
		PushStep:         2.0,
		TargetMultiplier: 1.2,
	}
}

// TargetPrice is the mid level at which the algo is willing to fill the human.
func (in SimulationInputs) TargetPrice() float64 {
	return in.FairValue * in.TargetMultiplier
}

// Validate enforces the input-form constraints. The engine itself never
// validates; callers at the config and API edges do.
func (in SimulationInputs) Validate() error {
	var err error
	if in.FairValue < 1.0 {
		err = multierr.Append(err, fmt.Errorf("fair_value must be >= 1.0, got %g", in.FairValue))
	}
	if in.InitialBid < 0.0 {
		err = multierr.Append(err, fmt.Errorf("initial_bid must be >= 0.0, got %g", in.InitialBid))
	}
	if in.InitialAsk < 1.0 {
		err = multierr.Append(err, fmt.Errorf("initial_ask must be >= 1.0, got %g", in.InitialAsk))
	}
	if in.HumanLimitPrice < 1.0 {
		err = multierr.Append(err, fmt.Errorf("human_limit_price must be >= 1.0, got %g", in.HumanLimitPrice))
	}
	if in.PushStep < 0.5 {
		err = multierr.Append(err, fmt.Errorf("push_step must be >= 0.5, got %g", in.PushStep))
	}
	if in.TargetMultiplier < 1.0 || in.TargetMultiplier > 2.0 {
		err = multierr.Append(err, fmt.Errorf("target_multiplier must be in [1.0, 2.0], got %g", in.TargetMultiplier))
	}
	return err
}
