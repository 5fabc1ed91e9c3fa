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

	"github.com/stretchr/testify/require"
)

func TestCreateVendorHandler(t *testing.T) {
	var created *db.Vendor
	store := &MockStorage{
		CreateVendorFunc: func(ctx context.Context, v *db.Vendor) error {
			v.ID = 1
			created = v
			return nil
		},
	}
	h := newTestHandler(store, nil, nil, nil)

	body, _ := json.Marshal(map[string]string{
		"name":  "Acme",
		"email": "sales@acme.test",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/vendors/new", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateVendorHandler(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, created.Active, "vendors default to active")

	// The response echoes the stored record, ids and all.
	var got db.Vendor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 1, got.ID)
	require.Equal(t, "Acme", got.Name)
	require.Equal(t, "sales@acme.test", got.Email)
}

func TestCreateVendorHandlerValidation(t *testing.T) {
	h := newTestHandler(&MockStorage{}, nil, nil, nil)

	tests := []struct {
		name    string
		payload map[string]string
	}{
		{"missing email", map[string]string{"name": "Acme"}},
		{"bad email", map[string]string{"name": "Acme", "email": "not-an-email"}},
		{"missing name", map[string]string{"email": "sales@acme.test"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.payload)
			req := httptest.NewRequest(http.MethodPost, "/api/vendors/new", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			h.CreateVendorHandler(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestEditVendorHandlerPartialUpdate(t *testing.T) {
	var updated *db.Vendor
	store := &MockStorage{
		GetVendorFunc: func(ctx context.Context, id int) (*db.Vendor, error) {
			return &db.Vendor{
				ID:     id,
				Name:   "Acme",
				Email:  "sales@acme.test",
				Phone:  "555-0100",
				Active: true,
			}, nil
		},
		UpdateVendorFunc: func(ctx context.Context, v *db.Vendor) error {
			updated = v
			return nil
		},
	}
	h := newTestHandler(store, nil, nil, nil)

	body, _ := json.Marshal(map[string]any{"phone": "555-0199"})
	req := httptest.NewRequest(http.MethodPatch, "/api/vendors/1/edit", bytes.NewReader(body))
	req = testutils.WithChiURLParams(req, map[string]string{"vendorId": "1"})
	rec := httptest.NewRecorder()
	h.EditVendorHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "555-0199", updated.Phone)
	require.Equal(t, "Acme", updated.Name, "omitted fields stay untouched")
	require.Equal(t, "sales@acme.test", updated.Email)
}

func TestToggleVendorActiveHandler(t *testing.T) {
	var updated *db.Vendor
	store := &MockStorage{
		GetVendorFunc: func(ctx context.Context, id int) (*db.Vendor, error) {
			return &db.Vendor{ID: id, Name: "Acme", Email: "sales@acme.test", Active: true}, nil
		},
		UpdateVendorFunc: func(ctx context.Context, v *db.Vendor) error {
			updated = v
			return nil
		},
	}
	h := newTestHandler(store, nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/vendors/1/toggle_active", nil)
	req = testutils.WithChiURLParams(req, map[string]string{"vendorId": "1"})
	rec := httptest.NewRecorder()
	h.ToggleVendorActiveHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.False(t, updated.Active)
}

func TestGetVendorHandlerNotFound(t *testing.T) {
	h := newTestHandler(&MockStorage{}, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/vendors/42", nil)
	req = testutils.WithChiURLParams(req, map[string]string{"vendorId": "42"})
	rec := httptest.NewRecorder()
	h.GetVendorHandler(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetVendorHandlerBadID(t *testing.T) {
	h := newTestHandler(&MockStorage{}, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/vendors/abc", nil)
	req = testutils.WithChiURLParams(req, map[string]string{"vendorId": "abc"})
	rec := httptest.NewRecorder()
	h.GetVendorHandler(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
