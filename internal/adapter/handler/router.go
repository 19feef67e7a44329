package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/kina-health/kina/internal/infrastructure/http/middleware"
	"github.com/kina-health/kina/internal/infrastructure/storage"
	"github.com/kina-health/kina/pkg/config"
	"github.com/kina-health/kina/pkg/jwt"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	jwtManager       *jwt.Manager
	storage          *storage.MinIOClient
	authHandler      *AuthController
	analysisHandler  *AnalysisController
	recordingHandler *RecordingController
	webhookHandler   *WebhookController
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	jwtManager *jwt.Manager,
	storageClient *storage.MinIOClient,
	authHandler *AuthController,
	analysisHandler *AnalysisController,
	recordingHandler *RecordingController,
	webhookHandler *WebhookController,
) *Router {
	return &Router{
		cfg:              cfg,
		jwtManager:       jwtManager,
		storage:          storageClient,
		authHandler:      authHandler,
		analysisHandler:  analysisHandler,
		recordingHandler: recordingHandler,
		webhookHandler:   webhookHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupAnalysisRoutes(v1)
	rt.setupRecordingRoutes(v1)
	rt.setupWebhookRoutes(v1)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")
	authGroup.POST("/token", rt.authHandler.Token)
	authGroup.POST("/refresh", rt.authHandler.Refresh)
}

// setupAnalysisRoutes configures analysis routes
func (rt *Router) setupAnalysisRoutes(g *echo.Group) {
	analysisGroup := g.Group("/analyses", middleware.EchoAuth(rt.jwtManager))
	analysisGroup.POST("", rt.analysisHandler.AnalyzeText)
	analysisGroup.GET("", rt.analysisHandler.ListAssessments)
	analysisGroup.GET("/:id", rt.analysisHandler.GetAssessment)
	analysisGroup.GET("/:id/report", rt.analysisHandler.GetAssessmentReport)
}

// setupRecordingRoutes configures recording routes
func (rt *Router) setupRecordingRoutes(g *echo.Group) {
	recordingGroup := g.Group("/recordings", middleware.EchoAuth(rt.jwtManager))
	recordingGroup.POST("", rt.recordingHandler.SubmitRecording)
	recordingGroup.GET("/:id", rt.recordingHandler.GetRecording)
}

// setupWebhookRoutes configures webhook routes. The webhook is
// authenticated by its shared secret, not by a client JWT.
func (rt *Router) setupWebhookRoutes(g *echo.Group) {
	webhookGroup := g.Group("/webhooks")
	webhookGroup.POST("/assemblyai", rt.webhookHandler.AssemblyAIWebhook)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	body := map[string]interface{}{
		"status":      "ok",
		"time":        time.Now().Format(time.RFC3339),
		"environment": rt.cfg.Server.Environment,
	}

	if rt.storage != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if info, err := rt.storage.GetBucketInfo(ctx); err == nil {
			body["storage"] = info
		} else {
			body["storage"] = map[string]interface{}{"error": err.Error()}
		}
	}

	return c.JSON(http.StatusOK, body)
}
