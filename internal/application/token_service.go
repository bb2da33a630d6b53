package application

import (
	"context"

	"crm-embed-gateway/internal/domain"
	"crm-embed-gateway/internal/ports"

	"github.com/rs/zerolog"
)

// TokenService issues short-lived integration tokens on behalf of the fixed
// backend identity. It makes a single attempt per invocation; the browser
// inspects failures and retries by user action.
type TokenService struct {
	vendor ports.VendorClient
	logger zerolog.Logger
}

// NewTokenService creates a new token service.
func NewTokenService(vendor ports.VendorClient, logger zerolog.Logger) *TokenService {
	return &TokenService{
		vendor: vendor,
		logger: logger,
	}
}

// IssueToken returns a vendor-issued token verbatim. All vendor and transport
// failures collapse to domain.ErrTokenIssuanceFailed; the cause is logged
// server-side and never forwarded. The token value itself is never logged.
func (s *TokenService) IssueToken(ctx context.Context) (domain.Token, error) {
	token, err := s.vendor.IssueToken(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to issue integration token")
		return "", domain.ErrTokenIssuanceFailed
	}
	return token, nil
}
