package main

import (
	"context"
	"database/sql"
	"testing"

	"procurement/db"

	"github.com/stretchr/testify/require"
)

type fakeVendorStore struct {
	existing map[string]*db.Vendor
	created  []db.Vendor
}

func (f *fakeVendorStore) GetVendorByEmail(ctx context.Context, email string) (*db.Vendor, error) {
	if v, ok := f.existing[email]; ok {
		return v, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeVendorStore) CreateVendor(ctx context.Context, v *db.Vendor) error {
	v.ID = len(f.created) + 1
	f.created = append(f.created, *v)
	return nil
}

func TestSeedVendorsEmptyDatabase(t *testing.T) {
	store := &fakeVendorStore{existing: map[string]*db.Vendor{}}

	created, err := seedVendors(context.Background(), store)
	require.NoError(t, err)
	require.Equal(t, len(sampleVendors), created)
	require.Len(t, store.created, len(sampleVendors))
	require.Equal(t, "Tech Solutions Inc", store.created[0].Name)
	for _, v := range store.created {
		require.True(t, v.Active)
		require.NotEmpty(t, v.Email)
	}
}

func TestSeedVendorsSkipsExisting(t *testing.T) {
	store := &fakeVendorStore{existing: map[string]*db.Vendor{
		"sales@techsolutions.com": {ID: 1, Name: "Tech Solutions Inc"},
	}}

	created, err := seedVendors(context.Background(), store)
	require.NoError(t, err)
	require.Equal(t, len(sampleVendors)-1, created)
	for _, v := range store.created {
		require.NotEqual(t, "sales@techsolutions.com", v.Email)
	}
}

func TestSeedVendorsIsIdempotent(t *testing.T) {
	store := &fakeVendorStore{existing: map[string]*db.Vendor{}}

	_, err := seedVendors(context.Background(), store)
	require.NoError(t, err)

	for i := range store.created {
		v := store.created[i]
		store.existing[v.Email] = &v
	}

	created, err := seedVendors(context.Background(), store)
	require.NoError(t, err)
	require.Equal(t, 0, created)
	require.Len(t, store.created, len(sampleVendors))
}
