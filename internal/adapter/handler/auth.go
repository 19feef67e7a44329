package handler

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kina-health/kina/errors"
	"github.com/kina-health/kina/internal/adapter/dto"
	"github.com/kina-health/kina/pkg/config"
	"github.com/kina-health/kina/pkg/jwt"
)

// AuthController exchanges API keys for JWT pairs
type AuthController struct {
	cfg    *config.Config
	jwt    *jwt.Manager
	logger *zap.Logger
}

// NewAuthController creates a new auth controller
func NewAuthController(cfg *config.Config, manager *jwt.Manager, logger *zap.Logger) *AuthController {
	return &AuthController{cfg: cfg, jwt: manager, logger: logger}
}

// Token exchanges an API key for a token pair
// @Summary      Issue tokens
// @Description  Exchanges a client ID and API key for an access and refresh token pair
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.TokenRequest  true  "Client credentials"
// @Success      200      {object}  map[string]interface{}  "Token pair"
// @Failure      401      {object}  map[string]interface{}  "Invalid API key"
// @Router       /auth/token [post]
func (ac *AuthController) Token(c echo.Context) error {
	var req dto.TokenRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	expected, ok := ac.cfg.Auth.APIKeys[req.ClientID]
	if !ok || subtle.ConstantTimeCompare([]byte(expected), []byte(req.APIKey)) != 1 {
		return HandleError(ac.logger, c, errors.ErrInvalidAPIKey())
	}

	return ac.issueTokens(c, req.ClientID)
}

// Refresh exchanges a refresh token for a new token pair
// @Summary      Refresh tokens
// @Description  Exchanges a valid refresh token for a new access and refresh token pair
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.RefreshRequest  true  "Refresh token"
// @Success      200      {object}  map[string]interface{}  "Token pair"
// @Failure      401      {object}  map[string]interface{}  "Invalid refresh token"
// @Router       /auth/refresh [post]
func (ac *AuthController) Refresh(c echo.Context) error {
	var req dto.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	clientID, err := ac.jwt.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidRefreshToken())
	}

	// The client must still be provisioned.
	if _, ok := ac.cfg.Auth.APIKeys[clientID]; !ok {
		return HandleError(ac.logger, c, errors.ErrInvalidRefreshToken())
	}

	return ac.issueTokens(c, clientID)
}

func (ac *AuthController) issueTokens(c echo.Context, clientID string) error {
	accessToken, err := ac.jwt.GenerateAccessToken(clientID, clientID)
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrInternal(err))
	}
	refreshToken, err := ac.jwt.GenerateRefreshToken(clientID)
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrInternal(err))
	}

	return HandleSuccess(ac.logger, c, dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(ac.jwt.GetAccessExpiry().Seconds()),
	})
}
