package application

import (
	"context"

	"crm-embed-gateway/internal/domain"
)

// fakeVendorClient implements ports.VendorClient for service tests and
// records how it was called.
type fakeVendorClient struct {
	token     domain.Token
	tokenErr  error
	contacts  []domain.Contact
	listErr   error
	created   domain.Contact
	createErr error

	tokenCalls  int
	listCalls   int
	createCalls int

	lastConnectionID string
	lastInput        domain.ContactInput
}

func (f *fakeVendorClient) IssueToken(ctx context.Context) (domain.Token, error) {
	f.tokenCalls++
	return f.token, f.tokenErr
}

func (f *fakeVendorClient) ListContacts(ctx context.Context, connectionID string) ([]domain.Contact, error) {
	f.listCalls++
	f.lastConnectionID = connectionID
	return f.contacts, f.listErr
}

func (f *fakeVendorClient) CreateContact(ctx context.Context, connectionID string, input domain.ContactInput) (domain.Contact, error) {
	f.createCalls++
	f.lastConnectionID = connectionID
	f.lastInput = input
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.created != nil {
		return f.created, nil
	}
	// Echo the input the way the vendor does.
	return domain.Contact{
		"id":        "generated-id",
		"firstName": input.FirstName,
		"lastName":  input.LastName,
	}, nil
}
