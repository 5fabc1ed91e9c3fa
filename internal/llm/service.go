package llm

import (
	"context"
	"strconv"
	"time"
)

// deadlineDefault is how far out the deadline lands when the model omits
// one or returns something unparseable.
const deadlineDefault = 30 * 24 * time.Hour

// RFPDraft is the structured result of parsing a natural-language
// procurement need.
type RFPDraft struct {
	Title        string         `json:"title"`
	Requirements map[string]any `json:"requirements"`
	Budget       *float64       `json:"budget"`
	Deadline     time.Time      `json:"deadline"`
}

// ProposalFields is the structured result of parsing a vendor proposal.
type ProposalFields struct {
	Raw          map[string]any `json:"raw"`
	Price        *float64       `json:"price"`
	DeliveryTime string         `json:"deliveryTime"`
	Warranty     string         `json:"warranty"`
	PaymentTerms string         `json:"paymentTerms"`
}

// EvaluationResult is the model's comparison of all proposals for one
// RFP, keyed by vendor name.
type EvaluationResult struct {
	Evaluations    map[string]map[string]any `json:"evaluations"`
	Summary        string                    `json:"summary"`
	Recommendation string                    `json:"recommendation"`
}

// Score returns the overall score for a vendor, or 0 when the model
// listed the vendor without one.
func (e *EvaluationResult) Score(vendorName string) (float64, bool) {
	eval, ok := e.Evaluations[vendorName]
	if !ok {
		return 0, false
	}
	score, _ := eval["score"].(float64)
	return score, true
}

// Service exposes the gateway's prompt variants.
type Service struct {
	client *Client
	now    func() time.Time
}

// NewService creates the gateway service on top of a client.
func NewService(client *Client) *Service {
	return &Service{client: client, now: time.Now}
}

// ParseNaturalLanguageRFP converts a prose purchasing need into an RFP
// draft. A missing or malformed deadline defaults to 30 days out.
func (s *Service) ParseNaturalLanguageRFP(ctx context.Context, input string) (*RFPDraft, error) {
	reply, err := s.client.Generate(ctx, systemRFPAnalyst, rfpPrompt(input))
	if err != nil {
		return nil, err
	}

	doc, err := ExtractJSON(reply)
	if err != nil {
		return nil, err
	}

	draft := &RFPDraft{
		Title:        "Untitled RFP",
		Requirements: map[string]any{},
		Deadline:     s.now().Add(deadlineDefault),
	}
	if title, ok := doc["title"].(string); ok && title != "" {
		draft.Title = title
	}
	if requirements, ok := doc["requirements"].(map[string]any); ok {
		draft.Requirements = requirements
	}
	draft.Budget = asNumber(doc["budget"])
	if deadline, ok := doc["deadline"].(string); ok && deadline != "" && deadline != "null" {
		if t, perr := time.Parse("2006-01-02", deadline); perr == nil {
			draft.Deadline = t
		}
	}
	return draft, nil
}

// ParseProposal extracts structured fields from raw proposal text.
func (s *Service) ParseProposal(ctx context.Context, proposalContent string) (*ProposalFields, error) {
	reply, err := s.client.Generate(ctx, systemProposal, proposalPrompt(proposalContent))
	if err != nil {
		return nil, err
	}

	doc, err := ExtractJSON(reply)
	if err != nil {
		return nil, err
	}

	fields := &ProposalFields{Raw: doc}
	fields.Price = asNumber(doc["price"])
	fields.DeliveryTime, _ = doc["delivery_time"].(string)
	fields.Warranty, _ = doc["warranty"].(string)
	fields.PaymentTerms, _ = doc["payment_terms"].(string)
	return fields, nil
}

// EvaluateProposals scores all proposals for an RFP against its
// requirements in a single model call.
func (s *Service) EvaluateProposals(ctx context.Context, requirements map[string]any, proposals []map[string]any) (*EvaluationResult, error) {
	reply, err := s.client.Generate(ctx, systemEvaluator, evaluationPrompt(requirements, proposals))
	if err != nil {
		return nil, err
	}

	doc, err := ExtractJSON(reply)
	if err != nil {
		return nil, err
	}

	result := &EvaluationResult{Evaluations: map[string]map[string]any{}}
	if evaluations, ok := doc["evaluations"].(map[string]any); ok {
		for vendorName, v := range evaluations {
			if eval, ok := v.(map[string]any); ok {
				result.Evaluations[vendorName] = eval
			}
		}
	}
	result.Summary, _ = doc["summary"].(string)
	result.Recommendation, _ = doc["recommendation"].(string)
	return result, nil
}

// GenerateRFPEmailBody drafts the outbound vendor email. This is the
// one variant whose reply is consumed as plain text.
func (s *Service) GenerateRFPEmailBody(ctx context.Context, rfpTitle string, requirements map[string]any) (string, error) {
	return s.client.Generate(ctx, systemEmailDrafter, emailBodyPrompt(rfpTitle, requirements))
}

// asNumber coerces a JSON value into a float pointer. Models return
// budgets and prices as numbers, numeric strings, or null.
func asNumber(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return &f
		}
	}
	return nil
}
