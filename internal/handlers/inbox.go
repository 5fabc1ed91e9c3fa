package handlers

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"procurement/db"
	"procurement/internal/mail"
	"procurement/internal/metrics"
	"procurement/internal/workflow"
	"procurement/models"

	"go.uber.org/zap"
)

// rfpIDPattern matches the RFP reference vendors are asked to quote,
// e.g. "RFP: 12" or "RFP 12", in the subject or body.
var rfpIDPattern = regexp.MustCompile(`(?i)RFP[:\s]+(\d+)`)

// extractRFPID finds the referenced RFP id in the subject first, then
// the body.
func extractRFPID(subject, body string) (int, bool) {
	for _, text := range []string{subject, body} {
		if m := rfpIDPattern.FindStringSubmatch(text); m != nil {
			id, err := strconv.Atoi(m[1])
			if err == nil && id > 0 {
				return id, true
			}
		}
	}
	return 0, false
}

// CheckInboxHandler fetches unseen mail and records a proposal for each
// message from a known vendor that references an RFP. Messages without
// a matching vendor or a recognizable RFP id are skipped. Every fetched
// message is recorded verbatim; repeated checks of the same mailbox can
// create duplicates.
func (h *Handler) CheckInboxHandler(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Receiver.FetchUnseen(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	received := []models.ReceivedProposal{}
	for _, m := range messages {
		address := mail.ExtractAddress(m.Sender)
		if address == "" {
			h.logger.Warn("skipping message with empty sender")
			continue
		}

		vendor, err := h.Store.GetVendorByEmail(r.Context(), address)
		if err != nil {
			h.logger.Info("skipping message from unknown sender",
				zap.String("address", address))
			continue
		}

		rfpID, ok := extractRFPID(m.Subject, m.Body)
		if !ok {
			h.logger.Info("skipping message without RFP reference",
				zap.String("subject", m.Subject))
			continue
		}

		proposal := db.Proposal{
			RFPID:           rfpID,
			VendorID:        vendor.ID,
			VendorName:      vendor.Name,
			ProposalContent: m.Body,
			EmailMessageID:  m.MessageID,
			Status:          workflow.ProposalReceived,
		}
		if err := h.Store.CreateProposal(r.Context(), &proposal); err != nil {
			h.respondError(w, err)
			return
		}
		metrics.ProposalsReceivedTotal.Inc()

		received = append(received, models.ReceivedProposal{
			ID:      proposal.ID,
			Vendor:  vendor.Name,
			RFPID:   rfpID,
			Subject: m.Subject,
		})
	}

	h.respondJSON(w, http.StatusOK, models.InboxCheckResult{
		Message:           fmt.Sprintf("Checked %d emails", len(messages)),
		EmailsScanned:     len(messages),
		ProposalsReceived: received,
	})
}

// SendRFPHandler emails one RFP to one vendor without touching the
// RFP's status or vendor selection.
func (h *Handler) SendRFPHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SendRFPRequest
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
	vendor, err := h.Store.GetVendor(r.Context(), req.VendorID)
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

	subject := "Request for Proposal: " + rfp.Title
	if err := h.Sender.Send(r.Context(), vendor.Email, subject, body); err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("RFP %d sent to %s", rfp.ID, vendor.Email),
	})
}
