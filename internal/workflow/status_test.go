package workflow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanTransitionRFP(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{RFPDraft, RFPSent, true},
		{RFPDraft, RFPClosed, true},
		{RFPDraft, RFPAwarded, false},
		{RFPSent, RFPClosed, true},
		{RFPSent, RFPAwarded, true},
		{RFPSent, RFPDraft, false},
		{RFPClosed, RFPSent, false},
		{RFPAwarded, RFPSent, false},
		{RFPAwarded, RFPClosed, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, CanTransitionRFP(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestCanTransitionProposal(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{ProposalReceived, ProposalParsed, true},
		{ProposalParsed, ProposalEvaluated, true},
		{ProposalEvaluated, ProposalAccepted, true},
		{ProposalReceived, ProposalEvaluated, false},
		{ProposalReceived, ProposalAccepted, false},
		{ProposalParsed, ProposalReceived, false},
		{ProposalAccepted, ProposalReceived, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, CanTransitionProposal(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestValidStatuses(t *testing.T) {
	for _, s := range []string{RFPDraft, RFPSent, RFPClosed, RFPAwarded} {
		require.True(t, ValidRFPStatus(s))
	}
	require.False(t, ValidRFPStatus("PENDING"))
	require.False(t, ValidRFPStatus(""))

	for _, s := range []string{ProposalReceived, ProposalParsed, ProposalEvaluated, ProposalAccepted} {
		require.True(t, ValidProposalStatus(s))
	}
	require.False(t, ValidProposalStatus("REJECTED"))
}
