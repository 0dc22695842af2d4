package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"option-sim/internal/api/models"
)

func newTestRouter(t *testing.T, scenarioDir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := NewRunStore(time.Minute)
	handler := NewSimulationHandler(store, scenarioDir, zap.NewNop())
	scenarios := NewScenarioHandler(scenarioDir, zap.NewNop())

	router := gin.New()
	api := router.Group("/api/v1")
	api.POST("/simulate", handler.RunSimulation)
	api.GET("/runs/:id", handler.GetRun)
	api.GET("/runs/:id/ledger", handler.GetLedger)
	api.GET("/scenarios", scenarios.ListScenarios)
	return router
}

func postSimulate(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSimulateDefaults(t *testing.T) {
	router := newTestRouter(t, t.TempDir())

	w := postSimulate(t, router, `{"options":{"include_ledger":true,"include_chart":true}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: want 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp models.SimulateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID == "" {
		t.Error("expected a run id")
	}
	if resp.Status != "FILLED" {
		t.Errorf("status: want FILLED, got %s", resp.Status)
	}
	if resp.Trade == nil || resp.Trade.Price != 48 {
		t.Fatalf("expected trade at 48, got %+v", resp.Trade)
	}
	if len(resp.Snapshots) != 3 {
		t.Errorf("snapshots: want 3, got %d", len(resp.Snapshots))
	}
	if len(resp.Ledger) != 3 {
		t.Errorf("ledger: want 3 rows, got %d", len(resp.Ledger))
	}
	if resp.Chart == nil || len(resp.Chart.RefLines) != 2 {
		t.Errorf("expected chart with 2 ref lines, got %+v", resp.Chart)
	}
	if resp.Summary.PNL == nil || *resp.Summary.PNL != 12 {
		t.Errorf("summary pnl: want 12, got %v", resp.Summary.PNL)
	}
}

func TestSimulateRejectsInvalidScenario(t *testing.T) {
	router := newTestRouter(t, t.TempDir())

	w := postSimulate(t, router, `{"scenario":{"push_step":0.1}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: want 400, got %d", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error.Code != "INVALID_SCENARIO" {
		t.Errorf("error code: want INVALID_SCENARIO, got %s", resp.Error.Code)
	}
}

func TestSimulateWithScenarioFile(t *testing.T) {
	dir := t.TempDir()
	preset := `
scenario:
  name: quiet
  fair_value: 40
  initial_bid: 20
  initial_ask: 100
  human_limit_price: 15
  push_step: 2.0
  target_multiplier: 1.2
`
	if err := os.WriteFile(filepath.Join(dir, "quiet.yaml"), []byte(preset), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	router := newTestRouter(t, dir)

	w := postSimulate(t, router, `{"scenario_file":"quiet"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: want 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp models.SimulateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "EXHAUSTED" {
		t.Errorf("status: want EXHAUSTED, got %s", resp.Status)
	}
	if resp.Trade != nil {
		t.Errorf("expected no trade, got %+v", resp.Trade)
	}
	if len(resp.Snapshots) != 16 {
		t.Errorf("snapshots: want 16, got %d", len(resp.Snapshots))
	}
}

func TestGetRunAndLedger(t *testing.T) {
	router := newTestRouter(t, t.TempDir())

	w := postSimulate(t, router, `{}`)
	var created models.SimulateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs/"+created.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("get run: want 200, got %d", rec.Code)
	}
	var run models.RunResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &run); err != nil {
		t.Fatalf("decode run: %v", err)
	}
	if run.ID != created.ID || run.Status != "FILLED" {
		t.Errorf("unexpected stored run: %+v", run)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/runs/"+created.ID+"/ledger", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("get ledger: want 200, got %d", rec.Code)
	}
	var ledger models.LedgerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &ledger); err != nil {
		t.Fatalf("decode ledger: %v", err)
	}
	if len(ledger.Ledger) != 3 {
		t.Errorf("ledger rows: want 3, got %d", len(ledger.Ledger))
	}
}

func TestGetRunNotFound(t *testing.T) {
	router := newTestRouter(t, t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs/does-not-exist", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: want 404, got %d", rec.Code)
	}
}

func TestListScenarios(t *testing.T) {
	dir := t.TempDir()
	preset := `
scenario:
  name: slow_push
  fair_value: 40
  initial_bid: 20
  initial_ask: 100
  human_limit_price: 21
  push_step: 0.5
  target_multiplier: 2.0
`
	if err := os.WriteFile(filepath.Join(dir, "slow_push.yaml"), []byte(preset), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	router := newTestRouter(t, dir)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scenarios", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: want 200, got %d", rec.Code)
	}

	var resp struct {
		Scenarios []models.ScenarioInfo `json:"scenarios"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Scenarios) != 1 {
		t.Fatalf("scenarios: want 1, got %d", len(resp.Scenarios))
	}
	got := resp.Scenarios[0]
	if got.ID != "slow_push" || got.Name != "slow_push" || got.PushStep != 0.5 {
		t.Errorf("unexpected scenario info: %+v", got)
	}
}
