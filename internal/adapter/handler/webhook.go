package handler

import (
	"io"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kina-health/kina/errors"
	"github.com/kina-health/kina/internal/usecase/analysis"
)

// WebhookController handles transcription provider callbacks
type WebhookController struct {
	svc    analysis.Service
	logger *zap.Logger
}

// NewWebhookController creates a new webhook controller
func NewWebhookController(svc analysis.Service, logger *zap.Logger) *WebhookController {
	return &WebhookController{svc: svc, logger: logger}
}

// AssemblyAIWebhook receives AssemblyAI transcription callbacks
// @Summary      AssemblyAI webhook
// @Description  Receives transcription status callbacks from AssemblyAI; not for client use
// @Tags         Webhooks
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "Acknowledged"
// @Failure      401  {object}  map[string]interface{}  "Invalid signature"
// @Router       /webhooks/assemblyai [post]
func (wc *WebhookController) AssemblyAIWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return HandleError(wc.logger, c, errors.ErrInvalidPayload())
	}

	signature := c.Request().Header.Get("X-Kina-Webhook-Secret")
	if signature == "" {
		signature = c.Request().Header.Get("X-Signature")
	}

	if err := wc.svc.HandleAssemblyAIWebhook(c.Request().Context(), payload, signature); err != nil {
		return HandleError(wc.logger, c, err)
	}

	return HandleSuccess(wc.logger, c, map[string]interface{}{"status": "accepted"})
}
