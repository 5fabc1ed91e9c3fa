// Package models holds the request and response payloads of the action
// routes. Entity records live in the db package next to their queries.
package models

import "procurement/db"

// NaturalLanguageRFPRequest asks the gateway to structure a prose
// purchasing need.
type NaturalLanguageRFPRequest struct {
	Description string `json:"description" validate:"required"`
}

// SendToVendorsRequest selects the vendors an RFP is emailed to.
type SendToVendorsRequest struct {
	VendorIDs []int `json:"vendorIds" validate:"required,min=1,dive,gt=0"`
}

// AwardRequest names the winning vendor for an RFP.
type AwardRequest struct {
	VendorID int `json:"vendorId" validate:"required,gt=0"`
}

// EvaluateRequest asks for all proposals of one RFP to be compared.
type EvaluateRequest struct {
	RFPID int `json:"rfpId" validate:"required,gt=0"`
}

// SendRFPRequest sends one RFP to one vendor directly.
type SendRFPRequest struct {
	RFPID    int `json:"rfpId" validate:"required,gt=0"`
	VendorID int `json:"vendorId" validate:"required,gt=0"`
}

// ParseProposalRequest carries raw proposal text for the gateway
// passthrough route.
type ParseProposalRequest struct {
	ProposalContent string `json:"proposalContent" validate:"required"`
}

// EvaluateProposalsRequest carries requirements and parsed proposals for
// the gateway passthrough route.
type EvaluateProposalsRequest struct {
	Requirements map[string]any   `json:"requirements"`
	Proposals    []map[string]any `json:"proposals" validate:"required,min=1"`
}

// ReceivedProposal summarizes one proposal created by an inbox check.
type ReceivedProposal struct {
	ID      int    `json:"id"`
	Vendor  string `json:"vendor"`
	RFPID   int    `json:"rfpId"`
	Subject string `json:"subject"`
}

// InboxCheckResult reports what an inbox check scanned and created.
type InboxCheckResult struct {
	Message           string             `json:"message"`
	EmailsScanned     int                `json:"emailsScanned"`
	ProposalsReceived []ReceivedProposal `json:"proposalsReceived"`
}

// EvaluationResponse returns the evaluation verdict plus the updated
// proposals.
type EvaluationResponse struct {
	Summary        string        `json:"summary"`
	Recommendation string        `json:"recommendation"`
	Proposals      []db.Proposal `json:"proposals"`
}
