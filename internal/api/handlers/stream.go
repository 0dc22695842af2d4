package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"option-sim/internal/api/models"
)

// StreamHandler replays a stored run over a websocket, one snapshot per
// message, so the front end can animate the chart.
type StreamHandler struct {
	store    *RunStore
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

type outboundMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// NewStreamHandler creates a new replay stream handler.
func NewStreamHandler(store *RunStore, logger *zap.Logger) *StreamHandler {
	return &StreamHandler{
		store:    store,
		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		logger:   logger,
	}
}

// ReplayRun handles GET /ws/runs/:id. Messages arrive in run order:
// snapshots, then the trade (if any), then the summary, then a normal close.
// The optional interval_ms query parameter paces the snapshots.
func (h *StreamHandler) ReplayRun(c *gin.Context) {
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

	interval := time.Duration(0)
	if raw := c.Query("interval_ms"); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && ms > 0 {
			interval = time.Duration(ms) * time.Millisecond
		}
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	for _, snap := range run.Result.Snapshots {
		if err := conn.WriteJSON(outboundMessage{Type: "snapshot", Data: snap}); err != nil {
			return
		}
		if interval > 0 {
			time.Sleep(interval)
		}
	}
	if run.Result.Trade != nil {
		if err := conn.WriteJSON(outboundMessage{Type: "trade", Data: run.Result.Trade}); err != nil {
			return
		}
	}
	if err := conn.WriteJSON(outboundMessage{Type: "summary", Data: run.Summary}); err != nil {
		return
	}

	deadline := time.Now().Add(time.Second)
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "replay complete"), deadline)
}
