package handlers

import (
	"fmt"
	"net/http"
	"time"

	"procurement/db"
	"procurement/internal/metrics"
	"procurement/internal/workflow"
	"procurement/models"

	"github.com/lib/pq"
)

// CreateRFPHandler creates an RFP from a fully specified payload. New
// RFPs start in DRAFT; a zero deadline defaults to 30 days out.
func (h *Handler) CreateRFPHandler(w http.ResponseWriter, r *http.Request) {
	var rfp db.RFP
	if err := h.decodeBody(w, r, &rfp); err != nil {
		h.respondError(w, err)
		return
	}
	if err := h.validateStruct(&rfp); err != nil {
		h.respondError(w, err)
		return
	}

	rfp.Status = workflow.RFPDraft
	if rfp.Deadline.IsZero() {
		rfp.Deadline = time.Now().Add(30 * 24 * time.Hour)
	}

	if err := h.Store.CreateRFP(r.Context(), &rfp); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, rfp)
}

// CreateRFPFromTextHandler turns a prose purchasing need into a DRAFT
// RFP via the language-model gateway.
func (h *Handler) CreateRFPFromTextHandler(w http.ResponseWriter, r *http.Request) {
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

	rfp := db.RFP{
		Title:                draft.Title,
		Description:          req.Description,
		Requirements:         db.Document(draft.Requirements),
		Budget:               draft.Budget,
		Deadline:             draft.Deadline,
		Status:               workflow.RFPDraft,
		NaturalLanguageInput: req.Description,
	}
	if err := h.Store.CreateRFP(r.Context(), &rfp); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, rfp)
}

// GetRFPsHandler returns a paginated RFP list, newest first.
func (h *Handler) GetRFPsHandler(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePaginationParams(r)
	rfps, err := h.Store.GetRFPs(r.Context(), limit, offset)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, rfps)
}

// GetRFPHandler returns a single RFP by id.
func (h *Handler) GetRFPHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "rfpId")
	if err != nil {
		h.respondError(w, err)
		return
	}

	rfp, err := h.Store.GetRFP(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, rfp)
}

// rfpPatch carries the optional fields of an RFP edit. Status is not
// editable here; it moves through the send, award and close routes.
type rfpPatch struct {
	Title        *string      `json:"title"`
	Description  *string      `json:"description"`
	Requirements *db.Document `json:"requirements"`
	Budget       *float64     `json:"budget"`
	Deadline     *time.Time   `json:"deadline"`
}

// EditRFPHandler applies a partial update to an RFP.
func (h *Handler) EditRFPHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "rfpId")
	if err != nil {
		h.respondError(w, err)
		return
	}

	var patch rfpPatch
	if err := h.decodeBody(w, r, &patch); err != nil {
		h.respondError(w, err)
		return
	}

	rfp, err := h.Store.GetRFP(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	if patch.Title != nil {
		rfp.Title = *patch.Title
	}
	if patch.Description != nil {
		rfp.Description = *patch.Description
	}
	if patch.Requirements != nil {
		rfp.Requirements = *patch.Requirements
	}
	if patch.Budget != nil {
		rfp.Budget = patch.Budget
	}
	if patch.Deadline != nil {
		rfp.Deadline = *patch.Deadline
	}

	if err := h.Store.UpdateRFP(r.Context(), rfp); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, rfp)
}

// SendRFPToVendorsHandler emails an RFP to the selected vendors. The
// send is all-or-nothing: a failed vendor lookup, email draft or SMTP
// send aborts the whole operation and persists nothing, so the caller
// can retry the batch after fixing the cause.
func (h *Handler) SendRFPToVendorsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "rfpId")
	if err != nil {
		h.respondError(w, err)
		return
	}

	var req models.SendToVendorsRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if err := h.validateStruct(&req); err != nil {
		h.respondError(w, err)
		return
	}

	rfp, err := h.Store.GetRFP(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	subject := "Request for Proposal: " + rfp.Title
	for _, vendorID := range req.VendorIDs {
		vendor, err := h.Store.GetVendor(r.Context(), vendorID)
		if err != nil {
			h.respondError(w, err)
			return
		}

		body, err := h.Gateway.GenerateRFPEmailBody(r.Context(), rfp.Title, rfp.Requirements)
		metrics.RecordGatewayCall("draft_email", err)
		if err != nil {
			h.respondError(w, err)
			return
		}

		if err := h.Sender.Send(r.Context(), vendor.Email, subject, body); err != nil {
			h.respondError(w, err)
			return
		}
	}

	selected := make(pq.Int64Array, len(req.VendorIDs))
	for i, vendorID := range req.VendorIDs {
		selected[i] = int64(vendorID)
	}
	rfp.SelectedVendors = selected
	if workflow.CanTransitionRFP(rfp.Status, workflow.RFPSent) {
		rfp.Status = workflow.RFPSent
	}

	if err := h.Store.UpdateRFP(r.Context(), rfp); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("RFP sent to %d vendors", len(req.VendorIDs)),
		"rfp":     rfp,
	})
}

// AwardRFPHandler records the winning vendor and moves the RFP to
// AWARDED. The award is applied regardless of the current status, so a
// CLOSED RFP can still be awarded after the fact.
func (h *Handler) AwardRFPHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "rfpId")
	if err != nil {
		h.respondError(w, err)
		return
	}

	var req models.AwardRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if err := h.validateStruct(&req); err != nil {
		h.respondError(w, err)
		return
	}

	rfp, err := h.Store.GetRFP(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	rfp.AwardedVendor = &req.VendorID
	rfp.Status = workflow.RFPAwarded
	if err := h.Store.UpdateRFP(r.Context(), rfp); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, rfp)
}

// CloseRFPHandler moves an RFP to CLOSED regardless of current status.
func (h *Handler) CloseRFPHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "rfpId")
	if err != nil {
		h.respondError(w, err)
		return
	}

	rfp, err := h.Store.GetRFP(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	rfp.Status = workflow.RFPClosed
	if err := h.Store.UpdateRFP(r.Context(), rfp); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, rfp)
}

// DeleteRFPHandler removes an RFP.
func (h *Handler) DeleteRFPHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "rfpId")
	if err != nil {
		h.respondError(w, err)
		return
	}

	if err := h.Store.DeleteRFP(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
