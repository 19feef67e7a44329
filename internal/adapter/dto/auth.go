package dto

// TokenRequest exchanges an API key for a JWT pair
type TokenRequest struct {
	ClientID string `json:"client_id" validate:"required"`
	APIKey   string `json:"api_key" validate:"required"`
}

// RefreshRequest exchanges a refresh token for a new JWT pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokenResponse carries an issued JWT pair
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}
