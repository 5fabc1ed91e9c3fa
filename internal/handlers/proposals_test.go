package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"procurement/db"
	"procurement/internal/handlers/testutils"
	"procurement/internal/llm"
	"procurement/internal/workflow"

	"github.com/stretchr/testify/require"
)

func TestParseProposalHandler(t *testing.T) {
	price := 4200.0
	gateway := &MockGateway{
		ParseProposalFunc: func(ctx context.Context, content string) (*llm.ProposalFields, error) {
			return &llm.ProposalFields{
				Raw:          map[string]any{"price": price, "warranty": "2 years"},
				Price:        &price,
				DeliveryTime: "3 weeks",
				Warranty:     "2 years",
				PaymentTerms: "net 30",
			}, nil
		},
	}

	var updated *db.Proposal
	store := &MockStorage{
		GetProposalFunc: func(ctx context.Context, id int) (*db.Proposal, error) {
			return &db.Proposal{
				ID:              id,
				RFPID:           3,
				VendorID:        1,
				VendorName:      "Acme",
				ProposalContent: "We offer 20 laptops for 4200",
				Status:          workflow.ProposalReceived,
			}, nil
		},
		UpdateProposalFunc: func(ctx context.Context, p *db.Proposal) error {
			updated = p
			return nil
		},
	}
	h := newTestHandler(store, gateway, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/proposals/5/parse", nil)
	req = testutils.WithChiURLParams(req, map[string]string{"proposalId": "5"})
	rec := httptest.NewRecorder()
	h.ParseProposalHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, updated)
	require.Equal(t, workflow.ProposalParsed, updated.Status)
	require.Equal(t, &price, updated.Price)
	require.Equal(t, "3 weeks", updated.DeliveryTime)
	require.Equal(t, "net 30", updated.PaymentTerms)
	require.Equal(t, db.Document{"price": price, "warranty": "2 years"}, updated.ParsedData)
}

func evaluateRequest(t *testing.T, h *Handler, rfpID int) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]int{"rfpId": rfpID})
	req := httptest.NewRequest(http.MethodPost, "/api/proposals/evaluate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.EvaluateProposalsHandler(rec, req)
	return rec
}

func TestEvaluateProposalsHandlerNoProposals(t *testing.T) {
	store := &MockStorage{
		GetRFPFunc: func(ctx context.Context, id int) (*db.RFP, error) {
			return &db.RFP{ID: id, Title: "Office Laptops", Status: workflow.RFPSent}, nil
		},
	}
	h := newTestHandler(store, &MockGateway{}, nil, nil)

	rec := evaluateRequest(t, h, 3)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEvaluateProposalsHandler(t *testing.T) {
	proposals := []db.Proposal{
		{ID: 1, RFPID: 3, VendorID: 1, VendorName: "Acme", Status: workflow.ProposalParsed},
		{ID: 2, RFPID: 3, VendorID: 2, VendorName: "Globex", Status: workflow.ProposalReceived},
	}

	gateway := &MockGateway{
		EvaluateProposalsFunc: func(ctx context.Context, requirements map[string]any, data []map[string]any) (*llm.EvaluationResult, error) {
			require.Len(t, data, 2)
			return &llm.EvaluationResult{
				Evaluations: map[string]map[string]any{
					"Acme": {"score": 8.5, "notes": "strong offer"},
				},
				Summary:        "One strong proposal",
				Recommendation: "Acme",
			}, nil
		},
	}

	updates := map[int]db.Proposal{}
	store := &MockStorage{
		GetRFPFunc: func(ctx context.Context, id int) (*db.RFP, error) {
			return &db.RFP{ID: id, Title: "Office Laptops", Status: workflow.RFPSent}, nil
		},
		GetProposalsForRFPFunc: func(ctx context.Context, rfpID int) ([]db.Proposal, error) {
			return proposals, nil
		},
		UpdateProposalFunc: func(ctx context.Context, p *db.Proposal) error {
			updates[p.ID] = *p
			return nil
		},
	}
	h := newTestHandler(store, gateway, nil, nil)

	rec := evaluateRequest(t, h, 3)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, updates, 2)

	scored := updates[1]
	require.Equal(t, workflow.ProposalEvaluated, scored.Status)
	require.NotNil(t, scored.Score)
	require.Equal(t, 8.5, *scored.Score)
	require.Equal(t, "strong offer", scored.Evaluation["notes"])

	// Vendors the model skipped still move to EVALUATED with a zero score.
	unscored := updates[2]
	require.Equal(t, workflow.ProposalEvaluated, unscored.Status)
	require.NotNil(t, unscored.Score)
	require.Equal(t, 0.0, *unscored.Score)
	require.Equal(t, db.Document{}, unscored.Evaluation)
}

func TestUpdateProposalStatusHandler(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		wantCode int
	}{
		{"received to parsed", workflow.ProposalReceived, workflow.ProposalParsed, http.StatusOK},
		{"evaluated to accepted", workflow.ProposalEvaluated, workflow.ProposalAccepted, http.StatusOK},
		{"skipping a stage", workflow.ProposalReceived, workflow.ProposalAccepted, http.StatusBadRequest},
		{"backwards", workflow.ProposalParsed, workflow.ProposalReceived, http.StatusBadRequest},
		{"unknown status", workflow.ProposalReceived, "REJECTED", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockStorage{
				GetProposalFunc: func(ctx context.Context, id int) (*db.Proposal, error) {
					return &db.Proposal{ID: id, RFPID: 3, VendorID: 1, Status: tt.from}, nil
				},
			}
			h := newTestHandler(store, nil, nil, nil)

			body, _ := json.Marshal(map[string]string{"status": tt.to})
			req := httptest.NewRequest(http.MethodPut, "/api/proposals/5/status", bytes.NewReader(body))
			req = testutils.WithChiURLParams(req, map[string]string{"proposalId": "5"})
			rec := httptest.NewRecorder()
			h.UpdateProposalStatusHandler(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestCreateProposalHandlerRoundTrip(t *testing.T) {
	store := &MockStorage{
		CreateProposalFunc: func(ctx context.Context, p *db.Proposal) error {
			p.ID = 11
			return nil
		},
	}
	h := newTestHandler(store, nil, nil, nil)

	price := 4200.0
	payload := db.Proposal{
		RFPID:           3,
		VendorID:        1,
		VendorName:      "Acme",
		ProposalContent: "We offer 20 laptops for 4200",
		ParsedData:      db.Document{"price": price, "warranty": "2 years"},
		Price:           &price,
		DeliveryTime:    "3 weeks",
		Warranty:        "2 years",
		PaymentTerms:    "net 30",
		EmailMessageID:  "abc-123",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/proposals/new", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateProposalHandler(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got db.Proposal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 11, got.ID)
	require.Equal(t, workflow.ProposalReceived, got.Status)
	require.Equal(t, payload.RFPID, got.RFPID)
	require.Equal(t, payload.VendorID, got.VendorID)
	require.Equal(t, payload.VendorName, got.VendorName)
	require.Equal(t, payload.ProposalContent, got.ProposalContent)
	require.Equal(t, payload.ParsedData, got.ParsedData)
	require.Equal(t, payload.Price, got.Price)
	require.Equal(t, payload.DeliveryTime, got.DeliveryTime)
	require.Equal(t, payload.Warranty, got.Warranty)
	require.Equal(t, payload.PaymentTerms, got.PaymentTerms)
	require.Equal(t, payload.EmailMessageID, got.EmailMessageID)
	require.Nil(t, got.Score)
}

func TestCreateProposalHandlerFillsVendorName(t *testing.T) {
	var created *db.Proposal
	store := &MockStorage{
		GetVendorFunc: func(ctx context.Context, id int) (*db.Vendor, error) {
			return &db.Vendor{ID: id, Name: "Acme", Email: "sales@acme.test"}, nil
		},
		CreateProposalFunc: func(ctx context.Context, p *db.Proposal) error {
			p.ID = 9
			created = p
			return nil
		},
	}
	h := newTestHandler(store, nil, nil, nil)

	body, _ := json.Marshal(map[string]any{
		"rfpId":           3,
		"vendorId":        1,
		"proposalContent": "We offer 20 laptops",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/proposals/new", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateProposalHandler(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "Acme", created.VendorName)
	require.Equal(t, workflow.ProposalReceived, created.Status)
}
