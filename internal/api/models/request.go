package models

// SimulateRequest is the body of POST /api/v1/simulate.
type SimulateRequest struct {
	// ScenarioFile names a preset under the scenario directory (without the
	// .yaml suffix). Inline Scenario fields override the file.
	ScenarioFile string          `json:"scenario_file"`
	Scenario     ScenarioRequest `json:"scenario"`
	Options      SimulateOptions `json:"options"`
}

// ScenarioRequest mirrors the six form inputs. Zero-valued fields fall back
// to the preset (if any) and then to the demo defaults.
type ScenarioRequest struct {
	Name             string  `json:"name"`
	FairValue        float64 `json:"fair_value"`
	InitialBid       float64 `json:"initial_bid"`
	InitialAsk       float64 `json:"initial_ask"`
	HumanLimitPrice  float64 `json:"human_limit_price"`
	PushStep         float64 `json:"push_step"`
	TargetMultiplier float64 `json:"target_multiplier"`
}

// SimulateOptions control how much of the run the response carries.
type SimulateOptions struct {
	IncludeLedger bool `json:"include_ledger"`
	IncludeChart  bool `json:"include_chart"`
}
