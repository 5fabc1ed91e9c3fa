package handlers

import (
	"context"
	"procurement/db"
)

type StorageInterface interface {
	CreateVendor(ctx context.Context, v *db.Vendor) error
	GetVendor(ctx context.Context, id int) (*db.Vendor, error)
	GetVendorByEmail(ctx context.Context, email string) (*db.Vendor, error)
	GetVendors(ctx context.Context, limit, offset int) ([]db.Vendor, error)
	GetActiveVendors(ctx context.Context) ([]db.Vendor, error)
	UpdateVendor(ctx context.Context, v *db.Vendor) error
	DeleteVendor(ctx context.Context, id int) error

	CreateRFP(ctx context.Context, r *db.RFP) error
	GetRFP(ctx context.Context, id int) (*db.RFP, error)
	GetRFPs(ctx context.Context, limit, offset int) ([]db.RFP, error)
	UpdateRFP(ctx context.Context, r *db.RFP) error
	DeleteRFP(ctx context.Context, id int) error

	CreateProposal(ctx context.Context, p *db.Proposal) error
	GetProposal(ctx context.Context, id int) (*db.Proposal, error)
	GetProposalsForRFP(ctx context.Context, rfpID int) ([]db.Proposal, error)
	GetProposals(ctx context.Context, limit, offset int) ([]db.Proposal, error)
	UpdateProposal(ctx context.Context, p *db.Proposal) error
	DeleteProposal(ctx context.Context, id int) error
}
