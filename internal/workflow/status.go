// Package workflow defines the status state machines for RFPs and
// proposals as explicit transition tables.
package workflow

// RFP statuses.
const (
	RFPDraft   = "DRAFT"
	RFPSent    = "SENT"
	RFPClosed  = "CLOSED"
	RFPAwarded = "AWARDED"
)

// Proposal statuses, in pipeline order.
const (
	ProposalReceived  = "RECEIVED"
	ProposalParsed    = "PARSED"
	ProposalEvaluated = "EVALUATED"
	ProposalAccepted  = "ACCEPTED"
)

// rfpTransitions is the forward-only RFP lifecycle:
// DRAFT -> SENT -> {CLOSED, AWARDED}. CLOSED and AWARDED are terminal.
var rfpTransitions = map[string][]string{
	RFPDraft:   {RFPSent, RFPClosed},
	RFPSent:    {RFPClosed, RFPAwarded},
	RFPClosed:  {},
	RFPAwarded: {},
}

// proposalTransitions follows the intake pipeline stages.
var proposalTransitions = map[string][]string{
	ProposalReceived:  {ProposalParsed},
	ProposalParsed:    {ProposalEvaluated},
	ProposalEvaluated: {ProposalAccepted},
	ProposalAccepted:  {},
}

// ValidRFPStatus reports whether s is a known RFP status.
func ValidRFPStatus(s string) bool {
	_, ok := rfpTransitions[s]
	return ok
}

// ValidProposalStatus reports whether s is a known proposal status.
func ValidProposalStatus(s string) bool {
	_, ok := proposalTransitions[s]
	return ok
}

// CanTransitionRFP reports whether the transition table permits moving
// an RFP from one status to another. Award and close bypass this check:
// both are applied unconditionally regardless of the prior state, which
// is long-standing documented behavior.
func CanTransitionRFP(from, to string) bool {
	return contains(rfpTransitions[from], to)
}

// CanTransitionProposal reports whether a proposal may advance from one
// pipeline stage to another.
func CanTransitionProposal(from, to string) bool {
	return contains(proposalTransitions[from], to)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
