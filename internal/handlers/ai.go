package handlers

import (
	"net/http"

	"procurement/internal/metrics"
	"procurement/models"
)

// Passthrough routes expose the gateway's prompt variants directly so
// callers can inspect model output without creating records.

// ParseNaturalLanguageHandler returns the structured draft for a prose
// purchasing need.
func (h *Handler) ParseNaturalLanguageHandler(w http.ResponseWriter, r *http.Request) {
	var req models.NaturalLanguageRFPRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if err := h.validateStruct(&req); err != nil {
		h.respondError(w, err)
		return
	}

	draft, err := h.Gateway.ParseNaturalLanguageRFP(r.Context(), req.Description)
	metrics.RecordGatewayCall("parse_rfp", err)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, draft)
}

// ParseProposalContentHandler returns the fields extracted from raw
// proposal text.
func (h *Handler) ParseProposalContentHandler(w http.ResponseWriter, r *http.Request) {
	var req models.ParseProposalRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if err := h.validateStruct(&req); err != nil {
		h.respondError(w, err)
		return
	}

	fields, err := h.Gateway.ParseProposal(r.Context(), req.ProposalContent)
	metrics.RecordGatewayCall("parse_proposal", err)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, fields.Raw)
}

// EvaluateProposalsAIHandler compares caller-supplied proposals against
// caller-supplied requirements.
func (h *Handler) EvaluateProposalsAIHandler(w http.ResponseWriter, r *http.Request) {
	var req models.EvaluateProposalsRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if err := h.validateStruct(&req); err != nil {
		h.respondError(w, err)
		return
	}

	result, err := h.Gateway.EvaluateProposals(r.Context(), req.Requirements, req.Proposals)
	metrics.RecordGatewayCall("evaluate", err)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}
