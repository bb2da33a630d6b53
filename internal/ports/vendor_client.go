package ports

import (
	"context"

	"crm-embed-gateway/internal/domain"
)

// VendorClient defines the interface for the embedded-integration vendor API.
// The gateway owns the credential; callers only supply the connection
// identifier produced by the vendor's widget.
type VendorClient interface {
	// IssueToken requests a short-lived integration token for the configured
	// backend user.
	IssueToken(ctx context.Context) (domain.Token, error)

	// ListContacts fetches the contact collection for a linked CRM account.
	ListContacts(ctx context.Context, connectionID string) ([]domain.Contact, error)

	// CreateContact creates a contact in the linked CRM account and returns
	// the created record as the vendor reports it.
	CreateContact(ctx context.Context, connectionID string, input domain.ContactInput) (domain.Contact, error)
}
