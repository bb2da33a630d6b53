package api

import (
	"net/http"

	"crm-embed-gateway/internal/application"

	"github.com/rs/zerolog"
)

// TokenHandler exposes the session bridge over HTTP: it issues a short-lived
// integration token for the configured backend identity.
type TokenHandler struct {
	tokens *application.TokenService
	logger zerolog.Logger
}

// NewTokenHandler creates a new token handler.
func NewTokenHandler(tokens *application.TokenService, logger zerolog.Logger) *TokenHandler {
	return &TokenHandler{
		tokens: tokens,
		logger: logger,
	}
}

// HandleGetToken handles GET /api/get-jwt-token.
func (h *TokenHandler) HandleGetToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.tokens.IssueToken(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Token request failed")
		writeError(w, http.StatusInternalServerError, "failed to issue integration token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": string(token)})
}
