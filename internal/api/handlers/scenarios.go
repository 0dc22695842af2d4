package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"option-sim/internal/api/models"
	"option-sim/internal/config"
)

// ScenarioHandler serves the preset scenario catalogue.
type ScenarioHandler struct {
	scenarioDir string
	logger      *zap.Logger
}

// NewScenarioHandler creates a new scenario handler.
func NewScenarioHandler(scenarioDir string, logger *zap.Logger) *ScenarioHandler {
	if scenarioDir == "" {
		scenarioDir = defaultScenarioDir()
	}
	if abs, err := filepath.Abs(scenarioDir); err == nil {
		scenarioDir = abs
	}
	return &ScenarioHandler{scenarioDir: scenarioDir, logger: logger}
}

// ScenarioDir returns the scenario directory path (for debugging).
func (h *ScenarioHandler) ScenarioDir() string {
	return h.scenarioDir
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios := []models.ScenarioInfo{}

	entries, err := os.ReadDir(h.scenarioDir)
	if err != nil {
		h.logger.Warn("scenario directory unreadable",
			zap.String("dir", h.scenarioDir), zap.Error(err))
		// An empty catalogue is still a valid answer; the form falls back
		// to the built-in defaults.
		c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
		return
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.scenarioDir, e.Name())
		scenario, err := config.LoadScenarioFile(path)
		if err != nil {
			h.logger.Warn("skipping unparsable scenario file",
				zap.String("file", e.Name()), zap.Error(err))
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".yaml")
		name := scenario.Name
		if name == "" {
			name = id
		}
		scenarios = append(scenarios, models.ScenarioInfo{
			ID:               id,
			Name:             name,
			File:             e.Name(),
			FairValue:        scenario.FairValue,
			HumanLimitPrice:  scenario.HumanLimitPrice,
			PushStep:         scenario.PushStep,
			TargetMultiplier: scenario.TargetMultiplier,
		})
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}
