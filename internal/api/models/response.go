package models

import (
	"option-sim/internal/analysis"
	"option-sim/internal/model"
	"option-sim/internal/sim"
)

// SimulateResponse is the response from a simulation run.
type SimulateResponse struct {
	ID        string                    `json:"id"`
	Status    string                    `json:"status"` // "FILLED" or "EXHAUSTED"
	Summary   sim.Summary               `json:"summary"`
	Trade     *model.TradeRecord        `json:"trade,omitempty"`
	Snapshots []model.OrderBookSnapshot `json:"snapshots"`
	Ledger    []sim.LedgerRow           `json:"ledger,omitempty"`
	Chart     *analysis.ChartSeries     `json:"chart,omitempty"`
}

// RunResponse is the stored-run view returned by GET /api/v1/runs/:id.
type RunResponse struct {
	ID      string             `json:"id"`
	Status  string             `json:"status"`
	Summary sim.Summary        `json:"summary"`
	Trade   *model.TradeRecord `json:"trade,omitempty"`
}

// LedgerResponse is the response from GET /api/v1/runs/:id/ledger.
type LedgerResponse struct {
	ID     string          `json:"id"`
	Ledger []sim.LedgerRow `json:"ledger"`
}

// ScenarioInfo describes one preset scenario file.
type ScenarioInfo struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	File             string  `json:"file"`
	FairValue        float64 `json:"fair_value"`
	HumanLimitPrice  float64 `json:"human_limit_price"`
	PushStep         float64 `json:"push_step"`
	TargetMultiplier float64 `json:"target_multiplier"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
