package application

import (
	"context"
	"errors"
	"testing"

	"crm-embed-gateway/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListContactsRequiresConnectionID(t *testing.T) {
	vendor := &fakeVendorClient{}
	svc := NewContactService(vendor, zerolog.Nop())

	_, err := svc.ListContacts(context.Background(), "")
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrMissingConnection)
	// The precondition fires before any outbound call.
	assert.Equal(t, 0, vendor.listCalls)
}

func TestListContactsForwardsConnectionID(t *testing.T) {
	vendor := &fakeVendorClient{
		contacts: []domain.Contact{
			{"id": "1", "firstName": "Ada", "lastName": "Lovelace"},
		},
	}
	svc := NewContactService(vendor, zerolog.Nop())

	contacts, err := svc.ListContacts(context.Background(), "conn-42")
	require.NoError(t, err)

	assert.Equal(t, "conn-42", vendor.lastConnectionID)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Ada", contacts[0]["firstName"])
}

func TestListContactsNormalizesNilToEmpty(t *testing.T) {
	vendor := &fakeVendorClient{contacts: nil}
	svc := NewContactService(vendor, zerolog.Nop())

	contacts, err := svc.ListContacts(context.Background(), "conn-42")
	require.NoError(t, err)

	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
}

func TestListContactsIsIdempotent(t *testing.T) {
	vendor := &fakeVendorClient{
		contacts: []domain.Contact{
			{"id": "1", "firstName": "Ada", "lastName": "Lovelace"},
			{"id": "2", "firstName": "Grace", "lastName": "Hopper"},
		},
	}
	svc := NewContactService(vendor, zerolog.Nop())

	first, err := svc.ListContacts(context.Background(), "conn-42")
	require.NoError(t, err)
	second, err := svc.ListContacts(context.Background(), "conn-42")
	require.NoError(t, err)

	// Repeated reads with no intervening writes return the same collection,
	// and each invocation reaches the vendor: nothing is cached in between.
	assert.Equal(t, first, second)
	assert.Equal(t, 2, vendor.listCalls)
}

func TestListContactsCollapsesVendorFailures(t *testing.T) {
	vendor := &fakeVendorClient{listErr: errors.New("vendor said 503")}
	svc := NewContactService(vendor, zerolog.Nop())

	_, err := svc.ListContacts(context.Background(), "conn-42")
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrContactOperationFailed)
	assert.Contains(t, err.Error(), "list contacts")
	assert.NotContains(t, err.Error(), "503")
}

func TestCreateContactRequiresConnectionID(t *testing.T) {
	vendor := &fakeVendorClient{}
	svc := NewContactService(vendor, zerolog.Nop())

	_, err := svc.CreateContact(context.Background(), "", domain.ContactInput{FirstName: "Ada", LastName: "Lovelace"})
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrMissingConnection)
	assert.Equal(t, 0, vendor.createCalls)
}

func TestCreateContactEchoesInput(t *testing.T) {
	vendor := &fakeVendorClient{}
	svc := NewContactService(vendor, zerolog.Nop())

	created, err := svc.CreateContact(context.Background(), "conn-42", domain.ContactInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada", created["firstName"])
	assert.Equal(t, "Lovelace", created["lastName"])
	assert.Equal(t, domain.ContactInput{FirstName: "Ada", LastName: "Lovelace"}, vendor.lastInput)
}

func TestCreateContactCollapsesVendorFailures(t *testing.T) {
	vendor := &fakeVendorClient{createErr: errors.New("vendor said 400")}
	svc := NewContactService(vendor, zerolog.Nop())

	_, err := svc.CreateContact(context.Background(), "conn-42", domain.ContactInput{FirstName: "Ada", LastName: "Lovelace"})
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrContactOperationFailed)
	assert.Contains(t, err.Error(), "create contact")
}
