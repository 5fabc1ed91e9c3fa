package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"procurement/internal/apperr"
	"procurement/internal/llm"
	"procurement/internal/mail"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// maxBodySize caps request bodies to avoid trivial DoS.
const maxBodySize = 1048576

// Gateway is the language-model boundary consumed by the handlers.
type Gateway interface {
	ParseNaturalLanguageRFP(ctx context.Context, input string) (*llm.RFPDraft, error)
	ParseProposal(ctx context.Context, proposalContent string) (*llm.ProposalFields, error)
	EvaluateProposals(ctx context.Context, requirements map[string]any, proposals []map[string]any) (*llm.EvaluationResult, error)
	GenerateRFPEmailBody(ctx context.Context, rfpTitle string, requirements map[string]any) (string, error)
}

// Sender is the outbound mail boundary.
type Sender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// Receiver is the inbound mail boundary.
type Receiver interface {
	FetchUnseen(ctx context.Context) ([]mail.Message, error)
}

// Handler wires storage and the external boundaries into HTTP routes.
type Handler struct {
	Store    StorageInterface
	Gateway  Gateway
	Sender   Sender
	Receiver Receiver

	logger   *zap.Logger
	validate *validator.Validate
}

// NewHandler creates a new Handler.
func NewHandler(store StorageInterface, gateway Gateway, sender Sender, receiver Receiver, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    store,
		Gateway:  gateway,
		Sender:   sender,
		Receiver: receiver,
		logger:   logger,
		validate: validator.New(),
	}
}

// PingHandler answers "ok" for liveness checks.
func (h *Handler) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// decodeBody reads and unmarshals a JSON request body into dst.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.NewValidationError("invalid JSON body: %v", err)
	}
	return nil
}

// validateStruct runs the validate tags of a payload.
func (h *Handler) validateStruct(v any) error {
	if err := h.validate.Struct(v); err != nil {
		return apperr.NewValidationError("%v", err)
	}
	return nil
}

// respondJSON writes v as a JSON response.
func (h *Handler) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// parsePaginationParams reads limit and offset query params with a
// default page size of 5 and a cap of 50.
func parsePaginationParams(r *http.Request) (limit, offset int) {
	limit = 5
	offset = 0

	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// parseIDParam reads a positive integer URL parameter.
func parseIDParam(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, apperr.NewValidationError("invalid %s", name)
	}
	return id, nil
}

// respondError maps the error taxonomy onto the status triple: 404 for
// missing records, 400 for validation/generation/transport failures,
// 500 otherwise. The detail string is included verbatim.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperr.IsNotFound(err) || errors.Is(err, sql.ErrNoRows):
		status = http.StatusNotFound
	case apperr.IsValidation(err), apperr.IsGeneration(err), apperr.IsTransport(err):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
	}
	h.respondJSON(w, status, map[string]string{"error": err.Error()})
}
