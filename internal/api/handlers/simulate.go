package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"option-sim/internal/analysis"
	"option-sim/internal/api/models"
	"option-sim/internal/config"
	"option-sim/internal/model"
	"option-sim/internal/sim"
)

// SimulationHandler handles simulation runs and stored-run retrieval.
type SimulationHandler struct {
	store       *RunStore
	scenarioDir string
	logger      *zap.Logger
}

// NewSimulationHandler creates a new simulation handler.
func NewSimulationHandler(store *RunStore, scenarioDir string, logger *zap.Logger) *SimulationHandler {
	if scenarioDir == "" {
		scenarioDir = defaultScenarioDir()
	}
	return &SimulationHandler{
		store:       store,
		scenarioDir: scenarioDir,
		logger:      logger,
	}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	scenario, err := h.resolveScenario(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SCENARIO",
				Message: err.Error(),
			},
		})
		return
	}

	in := scenario.ToInputs()
	if err := in.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SCENARIO",
				Message: err.Error(),
			},
		})
		return
	}

	res := sim.Run(in)
	summary := sim.BuildSummary(in, res)
	run := h.store.Put(in, res, summary)

	h.logger.Info("simulation complete",
		zap.String("run_id", run.ID),
		zap.String("phase", string(res.Phase)),
		zap.Int("snapshots", len(res.Snapshots)),
	)

	response := models.SimulateResponse{
		ID:        run.ID,
		Status:    string(res.Phase),
		Summary:   summary,
		Trade:     res.Trade,
		Snapshots: res.Snapshots,
	}
	if req.Options.IncludeLedger {
		response.Ledger = res.Ledger()
	}
	if req.Options.IncludeChart {
		chart := analysis.BuildChartSeries(in, res)
		response.Chart = &chart
	}

	c.JSON(http.StatusOK, response)
}

// GetRun handles GET /api/v1/runs/:id
func (h *SimulationHandler) GetRun(c *gin.Context) {
	run, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "RUN_NOT_FOUND",
				Message: "no stored run with that id (runs expire after a while)",
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.RunResponse{
		ID:      run.ID,
		Status:  string(run.Result.Phase),
		Summary: run.Summary,
		Trade:   run.Result.Trade,
	})
}

// GetLedger handles GET /api/v1/runs/:id/ledger
func (h *SimulationHandler) GetLedger(c *gin.Context) {
	run, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "RUN_NOT_FOUND",
				Message: "no stored run with that id (runs expire after a while)",
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.LedgerResponse{
		ID:     run.ID,
		Ledger: run.Result.Ledger(),
	})
}

// resolveScenario merges preset file (if named), request overrides, and
// defaults, in that precedence order.
func (h *SimulationHandler) resolveScenario(req models.SimulateRequest) (config.ScenarioConfig, error) {
	override := config.ScenarioConfig{
		Name:             req.Scenario.Name,
		FairValue:        req.Scenario.FairValue,
		InitialBid:       req.Scenario.InitialBid,
		InitialAsk:       req.Scenario.InitialAsk,
		HumanLimitPrice:  req.Scenario.HumanLimitPrice,
		PushStep:         req.Scenario.PushStep,
		TargetMultiplier: req.Scenario.TargetMultiplier,
	}

	base := config.ScenarioConfig{}
	if req.ScenarioFile != "" {
		// scenario_file is just the preset name (e.g. "slow_push"); files are
		// always looked up in the scenario directory.
		path := filepath.Join(h.scenarioDir, req.ScenarioFile+".yaml")
		loaded, err := config.LoadScenarioFile(path)
		if err != nil {
			return config.ScenarioConfig{}, err
		}
		base = loaded
	}

	merged := config.MergeScenario(base, override)
	// Fill remaining gaps from the demo defaults so a bare request works.
	defIn := model.Defaults()
	def := config.ScenarioConfig{
		FairValue:        defIn.FairValue,
		InitialBid:       defIn.InitialBid,
		InitialAsk:       defIn.InitialAsk,
		HumanLimitPrice:  defIn.HumanLimitPrice,
		PushStep:         defIn.PushStep,
		TargetMultiplier: defIn.TargetMultiplier,
	}
	return config.MergeScenario(def, merged), nil
}

func defaultScenarioDir() string {
	dir := os.Getenv("SCENARIO_DIR")
	if dir != "" {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "./examples/scenarios"
	}
	return filepath.Join(wd, "examples", "scenarios")
}
