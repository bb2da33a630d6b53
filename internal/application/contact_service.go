package application

import (
	"context"
	"fmt"

	"crm-embed-gateway/internal/domain"
	"crm-embed-gateway/internal/ports"

	"github.com/rs/zerolog"
)

// ContactService forwards contact operations to the vendor CRM API. Handlers
// are stateless; every invocation is one outbound call keyed by the
// caller-supplied connection identifier.
type ContactService struct {
	vendor ports.VendorClient
	logger zerolog.Logger
}

// NewContactService creates a new contact service.
func NewContactService(vendor ports.VendorClient, logger zerolog.Logger) *ContactService {
	return &ContactService{
		vendor: vendor,
		logger: logger,
	}
}

// ListContacts returns the vendor's contact collection verbatim. An empty
// connection identifier is a client error raised before any outbound call.
func (s *ContactService) ListContacts(ctx context.Context, connectionID string) ([]domain.Contact, error) {
	if connectionID == "" {
		return nil, domain.ErrMissingConnection
	}

	contacts, err := s.vendor.ListContacts(ctx, connectionID)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list contacts")
		return nil, fmt.Errorf("%w: list contacts", domain.ErrContactOperationFailed)
	}

	if contacts == nil {
		contacts = []domain.Contact{}
	}
	return contacts, nil
}

// CreateContact forwards the two name fields to the vendor's write endpoint
// and returns the created record verbatim. Field-level validation beyond the
// connection precondition is owned by the calling form, not duplicated here.
func (s *ContactService) CreateContact(ctx context.Context, connectionID string, input domain.ContactInput) (domain.Contact, error) {
	if connectionID == "" {
		return nil, domain.ErrMissingConnection
	}

	created, err := s.vendor.CreateContact(ctx, connectionID, input)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create contact")
		return nil, fmt.Errorf("%w: create contact", domain.ErrContactOperationFailed)
	}

	return created, nil
}
