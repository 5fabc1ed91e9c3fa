package handlers

import (
	"net/http"
	"strconv"

	"procurement/db"
	"procurement/internal/apperr"
	"procurement/internal/metrics"
	"procurement/internal/workflow"
	"procurement/models"
)

// CreateProposalHandler registers a proposal submitted outside the email
// channel. The vendor name is filled in from the vendor record when the
// payload omits it.
func (h *Handler) CreateProposalHandler(w http.ResponseWriter, r *http.Request) {
	var proposal db.Proposal
	if err := h.decodeBody(w, r, &proposal); err != nil {
		h.respondError(w, err)
		return
	}
	if err := h.validateStruct(&proposal); err != nil {
		h.respondError(w, err)
		return
	}

	proposal.Status = workflow.ProposalReceived
	if proposal.VendorName == "" {
		vendor, err := h.Store.GetVendor(r.Context(), proposal.VendorID)
		if err != nil {
			h.respondError(w, err)
			return
		}
		proposal.VendorName = vendor.Name
	}

	if err := h.Store.CreateProposal(r.Context(), &proposal); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, proposal)
}

// GetProposalsHandler lists proposals. With an rfp_id query param it
// returns every proposal for that RFP, otherwise a paginated list.
func (h *Handler) GetProposalsHandler(w http.ResponseWriter, r *http.Request) {
	if v := r.URL.Query().Get("rfp_id"); v != "" {
		rfpID, err := strconv.Atoi(v)
		if err != nil || rfpID <= 0 {
			h.respondError(w, apperr.NewValidationError("invalid rfp_id"))
			return
		}
		proposals, err := h.Store.GetProposalsForRFP(r.Context(), rfpID)
		if err != nil {
			h.respondError(w, err)
			return
		}
		h.respondJSON(w, http.StatusOK, proposals)
		return
	}

	limit, offset := parsePaginationParams(r)
	proposals, err := h.Store.GetProposals(r.Context(), limit, offset)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, proposals)
}

// GetProposalHandler returns a single proposal by id.
func (h *Handler) GetProposalHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "proposalId")
	if err != nil {
		h.respondError(w, err)
		return
	}

	proposal, err := h.Store.GetProposal(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, proposal)
}

// ParseProposalHandler runs the gateway over a stored proposal's raw
// text and persists the extracted fields, moving it to PARSED.
func (h *Handler) ParseProposalHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "proposalId")
	if err != nil {
		h.respondError(w, err)
		return
	}

	proposal, err := h.Store.GetProposal(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	fields, err := h.Gateway.ParseProposal(r.Context(), proposal.ProposalContent)
	metrics.RecordGatewayCall("parse_proposal", err)
	if err != nil {
		h.respondError(w, err)
		return
	}

	proposal.ParsedData = db.Document(fields.Raw)
	proposal.Price = fields.Price
	proposal.DeliveryTime = fields.DeliveryTime
	proposal.Warranty = fields.Warranty
	proposal.PaymentTerms = fields.PaymentTerms
	proposal.Status = workflow.ProposalParsed

	if err := h.Store.UpdateProposal(r.Context(), proposal); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, proposal)
}

// EvaluateProposalsHandler compares every proposal of an RFP in one
// gateway call. All proposals move to EVALUATED; vendors the model did
// not score get a zero score and an empty evaluation.
func (h *Handler) EvaluateProposalsHandler(w http.ResponseWriter, r *http.Request) {
	var req models.EvaluateRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if err := h.validateStruct(&req); err != nil {
		h.respondError(w, err)
		return
	}

	rfp, err := h.Store.GetRFP(r.Context(), req.RFPID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	proposals, err := h.Store.GetProposalsForRFP(r.Context(), rfp.ID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if len(proposals) == 0 {
		h.respondError(w, apperr.NewNotFoundError("no proposals found for this RFP"))
		return
	}

	data := make([]map[string]any, 0, len(proposals))
	for _, p := range proposals {
		data = append(data, map[string]any{
			"vendor_name":   p.VendorName,
			"price":         p.Price,
			"delivery_time": p.DeliveryTime,
			"warranty":      p.Warranty,
			"payment_terms": p.PaymentTerms,
			"parsed_data":   map[string]any(p.ParsedData),
		})
	}

	result, err := h.Gateway.EvaluateProposals(r.Context(), rfp.Requirements, data)
	metrics.RecordGatewayCall("evaluate", err)
	if err != nil {
		h.respondError(w, err)
		return
	}

	for i := range proposals {
		p := &proposals[i]
		score, _ := result.Score(p.VendorName)
		eval := result.Evaluations[p.VendorName]
		if eval == nil {
			eval = map[string]any{}
		}

		p.Score = &score
		p.Evaluation = db.Document(eval)
		p.Status = workflow.ProposalEvaluated
		if err := h.Store.UpdateProposal(r.Context(), p); err != nil {
			h.respondError(w, err)
			return
		}
	}

	updated, err := h.Store.GetProposalsForRFP(r.Context(), rfp.ID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, models.EvaluationResponse{
		Summary:        result.Summary,
		Recommendation: result.Recommendation,
		Proposals:      updated,
	})
}

// statusUpdateRequest moves a proposal through its pipeline stages.
type statusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateProposalStatusHandler advances a proposal's status along the
// RECEIVED -> PARSED -> EVALUATED -> ACCEPTED pipeline.
func (h *Handler) UpdateProposalStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "proposalId")
	if err != nil {
		h.respondError(w, err)
		return
	}

	var req statusUpdateRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if err := h.validateStruct(&req); err != nil {
		h.respondError(w, err)
		return
	}
	if !workflow.ValidProposalStatus(req.Status) {
		h.respondError(w, apperr.NewValidationError("unknown status %q", req.Status))
		return
	}

	proposal, err := h.Store.GetProposal(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	if !workflow.CanTransitionProposal(proposal.Status, req.Status) {
		h.respondError(w, apperr.NewValidationError(
			"cannot move proposal from %s to %s", proposal.Status, req.Status))
		return
	}

	proposal.Status = req.Status
	if err := h.Store.UpdateProposal(r.Context(), proposal); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, proposal)
}

// DeleteProposalHandler removes a proposal.
func (h *Handler) DeleteProposalHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "proposalId")
	if err != nil {
		h.respondError(w, err)
		return
	}

	if err := h.Store.DeleteProposal(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
