package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yunpil/youtube/internal/credential"
	"github.com/yunpil/youtube/internal/logger"
	"github.com/yunpil/youtube/internal/metrics"
	"github.com/yunpil/youtube/internal/orchestrator"
)

// HeaderAPIKey lets a caller supply its own key for a single request.
const HeaderAPIKey = "X-Goog-Api-Key"

type Dependencies struct {
	Orchestrator   orchestrator.Orchestrator
	Credentials    credential.Holder
	Logger         logger.Logger
	Zap            *zap.Logger
	Metrics        *metrics.Metrics
	RequestTimeout time.Duration
	AllowedOrigins []string
}

type handler struct {
	orchestrator orchestrator.Orchestrator
	credentials  credential.Holder
	logger       logger.Logger
}

// NewRouter wires middleware and routes onto a fresh gin engine.
func NewRouter(d Dependencies) *gin.Engine {
	if d.Zap == nil {
		d.Zap = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(accessLog(d.Zap, d.Metrics))
	router.Use(cors.New(corsConfig(d.AllowedOrigins)))

	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", health)
	router.HEAD("/health", health)
	if d.Metrics != nil {
		router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	h := &handler{
		orchestrator: d.Orchestrator,
		credentials:  d.Credentials,
		logger:       d.Logger,
	}

	api := router.Group("/api")
	{
		api.GET("/credential", h.getCredential)
		api.PUT("/credential", h.putCredential)
		api.DELETE("/credential", h.deleteCredential)
		api.GET("/loading-messages", h.loadingMessages)

		pipeline := api.Group("", deadline(d.RequestTimeout))
		pipeline.POST("/topics", h.suggestTopics)
		pipeline.POST("/scripts", h.generateScript)

		api.POST("/scripts/export", h.exportScript)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) > 0 {
		cfg.AllowOrigins = origins
	} else {
		cfg.AllowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", HeaderAPIKey, headerRequestID}
	cfg.ExposeHeaders = []string{headerRequestID, "Content-Disposition"}
	return cfg
}
