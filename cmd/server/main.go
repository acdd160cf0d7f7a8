// cmd/server/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"claim-dashboard/internal/config"
	"claim-dashboard/internal/form"
	"claim-dashboard/internal/handler"
	"claim-dashboard/internal/metrics"
	"claim-dashboard/internal/predictor"
	"claim-dashboard/pkg/logger"
	"claim-dashboard/pkg/middleware"
)

func main() {
	cfgFile := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.FromFile(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("claim-dashboard", cfg.IsProduction())
	defer log.Sync()

	// Initialize metrics
	recorder := metrics.New(prometheus.DefaultRegisterer)

	// Initialize prediction client
	client := predictor.NewClient(cfg.Predictor.URL, cfg.Predictor.Timeout, recorder, log)

	// Initialize form controller
	opts := []form.Option{form.WithMetrics(recorder)}
	if cfg.Form.DiscardStale {
		opts = append(opts, form.WithStaleDiscard())
	}
	controller := form.NewController(client, log, opts...)

	// Initialize handlers
	claimHandler := handler.NewClaimHandler(controller, log)

	// Setup router
	router := setupRouter(claimHandler, cfg, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout(cfg.Predictor.Timeout),
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("starting claim dashboard",
			zap.String("port", cfg.Port),
			zap.String("predictor_url", client.URL()),
			zap.Bool("discard_stale", cfg.Form.DiscardStale))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

func setupRouter(claims *handler.ClaimHandler, cfg *config.Config, log *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins...))

	router.SetHTMLTemplate(handler.Templates())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/", claims.Page)
	router.POST("/", claims.SubmitForm)

	v1 := router.Group("/api/v1")
	{
		claim := v1.Group("/claim")
		{
			claim.GET("", claims.GetClaim)
			claim.PATCH("", claims.PatchClaim)
			claim.PUT("/fields/:name", claims.UpdateField)
			claim.POST("/submit", claims.SubmitClaim)
		}
	}

	return router
}

// writeTimeout leaves room for a full prediction round trip. Without a
// predictor timeout the response is not bounded either.
func writeTimeout(predictorTimeout time.Duration) time.Duration {
	if predictorTimeout == 0 {
		return 0
	}
	return predictorTimeout + 15*time.Second
}
