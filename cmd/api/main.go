package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"option-sim/internal/api/handlers"
	"option-sim/internal/api/middleware"
	applog "option-sim/internal/log"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	logger, err := applog.NewLogger(applog.Options{
		Level:    os.Getenv("LOG_LEVEL"),
		Encoding: os.Getenv("LOG_ENCODING"),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler())

	ttl := time.Hour
	if raw := os.Getenv("RUN_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			ttl = parsed
		}
	}
	store := handlers.NewRunStore(ttl)

	scenarioDir := os.Getenv("SCENARIO_DIR")
	simHandler := handlers.NewSimulationHandler(store, scenarioDir, logger)
	scenarioHandler := handlers.NewScenarioHandler(scenarioDir, logger)
	streamHandler := handlers.NewStreamHandler(store, logger)

	logger.Info("scenario catalogue", zap.String("dir", scenarioHandler.ScenarioDir()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simHandler.RunSimulation)
		api.GET("/runs/:id", simHandler.GetRun)
		api.GET("/runs/:id/ledger", simHandler.GetLedger)
		api.GET("/scenarios", scenarioHandler.ListScenarios)
	}

	router.GET("/ws/runs/:id", streamHandler.ReplayRun)

	// Serve the single-page front end from web/dist (if it exists).
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}
	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		logger.Info("serving static files", zap.String("dir", staticDir))
	} else {
		logger.Info("static directory not found, skipping static file serving",
			zap.String("dir", staticDir))
	}

	addr := fmt.Sprintf(":%s", port)
	logger.Info("starting API server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
