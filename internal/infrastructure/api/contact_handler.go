package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"crm-embed-gateway/internal/application"
	"crm-embed-gateway/internal/domain"

	"github.com/rs/zerolog"
)

// ContactHandler exposes the contact gateway over HTTP. Both operations are
// keyed by the connectionId query parameter produced by the vendor's widget.
type ContactHandler struct {
	contacts *application.ContactService
	logger   zerolog.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contacts *application.ContactService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		contacts: contacts,
		logger:   logger,
	}
}

// HandleContacts routes /api/contacts by method: GET lists, POST creates,
// anything else is rejected with the allowed set advertised.
func (h *ContactHandler) HandleContacts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *ContactHandler) handleList(w http.ResponseWriter, r *http.Request) {
	connectionID := r.URL.Query().Get("connectionId")

	contacts, err := h.contacts.ListContacts(r.Context(), connectionID)
	if err != nil {
		h.writeServiceError(w, err, "failed to list contacts")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"contacts": contacts})
}

func (h *ContactHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	connectionID := r.URL.Query().Get("connectionId")

	var input domain.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.contacts.CreateContact(r.Context(), connectionID, input)
	if err != nil {
		h.writeServiceError(w, err, "failed to create contact")
		return
	}

	writeJSON(w, http.StatusOK, created)
}

func (h *ContactHandler) writeServiceError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, domain.ErrMissingConnection) {
		h.logger.Warn().Msg("Contact request missing connection identifier")
		writeError(w, http.StatusBadRequest, "connectionId query parameter is required")
		return
	}
	h.logger.Error().Err(err).Msg("Contact request failed")
	writeError(w, http.StatusInternalServerError, message)
}
