package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"crm-embed-gateway/internal/domain"
	"crm-embed-gateway/internal/ports"

	"github.com/rs/zerolog"
)

type client struct {
	baseURL    string
	apiKey     string
	userID     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new vendor API client adapter.
func NewClient(baseURL, apiKey, userID string, logger zerolog.Logger) ports.VendorClient {
	return NewClientWithHTTPClient(baseURL, apiKey, userID, http.DefaultClient, logger)
}

// NewClientWithHTTPClient creates a client with a caller-supplied HTTP client.
func NewClientWithHTTPClient(baseURL, apiKey, userID string, httpClient *http.Client, logger zerolog.Logger) ports.VendorClient {
	return &client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		userID:     userID,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *client) IssueToken(ctx context.Context) (domain.Token, error) {
	endpoint := fmt.Sprintf("%s/v1/integration-token?userId=%s", c.baseURL, url.QueryEscape(c.userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to request integration token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logVendorError(resp, "integration token endpoint returned non-OK status")
		return "", fmt.Errorf("integration token endpoint returned status %d", resp.StatusCode)
	}

	var tokenResponse struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokenResponse.Token == "" {
		return "", fmt.Errorf("token response missing token field")
	}

	return domain.Token(tokenResponse.Token), nil
}

func (c *client) ListContacts(ctx context.Context, connectionID string) ([]domain.Contact, error) {
	endpoint := c.contactsURL(connectionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create list contacts request: %w", err)
	}
	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logVendorError(resp, "contacts endpoint returned non-OK status")
		return nil, fmt.Errorf("contacts endpoint returned status %d", resp.StatusCode)
	}

	var listResponse struct {
		Contacts []domain.Contact `json:"contacts"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResponse); err != nil {
		return nil, fmt.Errorf("failed to decode contacts response: %w", err)
	}

	return listResponse.Contacts, nil
}

func (c *client) CreateContact(ctx context.Context, connectionID string, input domain.ContactInput) (domain.Contact, error) {
	endpoint := c.contactsURL(connectionID)

	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to encode contact payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create contact request: %w", err)
	}
	c.setAuthHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.logVendorError(resp, "contact creation returned non-OK status")
		return nil, fmt.Errorf("contact creation returned status %d", resp.StatusCode)
	}

	var created domain.Contact
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to decode created contact: %w", err)
	}

	return created, nil
}

func (c *client) contactsURL(connectionID string) string {
	return fmt.Sprintf("%s/v1/crm/contacts?connectionId=%s", c.baseURL, url.QueryEscape(connectionID))
}

func (c *client) setAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
}

// logVendorError records the vendor's status and body server-side. The body is
// log-only context; it is never returned to callers.
func (c *client) logVendorError(resp *http.Response, msg string) {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	c.logger.Error().
		Int("status", resp.StatusCode).
		Str("body", string(body)).
		Msg(msg)
}
