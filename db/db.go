package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

// Vendor
type Vendor struct {
	ID            int       `db:"id" json:"id"`
	Name          string    `db:"name" json:"name" validate:"required,max=255"`
	Email         string    `db:"email" json:"email" validate:"required,email"`
	ContactPerson string    `db:"contact_person" json:"contactPerson" validate:"max=255"`
	Phone         string    `db:"phone" json:"phone" validate:"max=20"`
	Address       string    `db:"address" json:"address"`
	City          string    `db:"city" json:"city" validate:"max=100"`
	Country       string    `db:"country" json:"country" validate:"max=100"`
	Website       string    `db:"website" json:"website" validate:"omitempty,url"`
	Notes         string    `db:"notes" json:"notes"`
	Active        bool      `db:"active" json:"active"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"-"`
}

func (s *Storage) CreateVendor(ctx context.Context, v *Vendor) error {
	query := `
        INSERT INTO vendors
            (name, email, contact_person, phone, address, city, country, website, notes, active)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at, updated_at`
	return s.db.QueryRowContext(ctx, query,
		v.Name, v.Email, v.ContactPerson, v.Phone, v.Address,
		v.City, v.Country, v.Website, v.Notes, v.Active).
		Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
}

func (s *Storage) GetVendor(ctx context.Context, id int) (*Vendor, error) {
	v := &Vendor{}
	query := `SELECT * FROM vendors WHERE id=$1`
	err := s.db.GetContext(ctx, v, query, id)
	return v, err
}

func (s *Storage) GetVendorByEmail(ctx context.Context, email string) (*Vendor, error) {
	v := &Vendor{}
	query := `SELECT * FROM vendors WHERE email=$1`
	err := s.db.GetContext(ctx, v, query, email)
	return v, err
}

func (s *Storage) GetVendors(ctx context.Context, limit, offset int) ([]Vendor, error) {
	vendors := []Vendor{}
	query := `SELECT * FROM vendors ORDER BY name ASC LIMIT $1 OFFSET $2`
	err := s.db.SelectContext(ctx, &vendors, query, limit, offset)
	return vendors, err
}

func (s *Storage) GetActiveVendors(ctx context.Context) ([]Vendor, error) {
	vendors := []Vendor{}
	query := `SELECT * FROM vendors WHERE active = TRUE ORDER BY name ASC`
	err := s.db.SelectContext(ctx, &vendors, query)
	return vendors, err
}

func (s *Storage) UpdateVendor(ctx context.Context, v *Vendor) error {
	query := `
        UPDATE vendors
        SET name=$1, email=$2, contact_person=$3, phone=$4, address=$5,
            city=$6, country=$7, website=$8, notes=$9, active=$10, updated_at=NOW()
        WHERE id=$11`
	_, err := s.db.ExecContext(ctx, query,
		v.Name, v.Email, v.ContactPerson, v.Phone, v.Address,
		v.City, v.Country, v.Website, v.Notes, v.Active, v.ID)
	return err
}

func (s *Storage) DeleteVendor(ctx context.Context, id int) error {
	query := `DELETE FROM vendors WHERE id=$1`
	_, err := s.db.ExecContext(ctx, query, id)
	return err
}

// RFP
type RFP struct {
	ID                   int           `db:"id" json:"id"`
	Title                string        `db:"title" json:"title" validate:"required,max=255"`
	Description          string        `db:"description" json:"description"`
	Requirements         Document      `db:"requirements" json:"requirements"`
	Budget               *float64      `db:"budget" json:"budget"`
	Deadline             time.Time     `db:"deadline" json:"deadline"`
	Status               string        `db:"status" json:"status" validate:"omitempty,oneof=DRAFT SENT CLOSED AWARDED"`
	SelectedVendors      pq.Int64Array `db:"selected_vendors" json:"selectedVendors"`
	AwardedVendor        *int          `db:"awarded_vendor" json:"awardedVendor"`
	NaturalLanguageInput string        `db:"natural_language_input" json:"naturalLanguageInput"`
	CreatedAt            time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time     `db:"updated_at" json:"-"`
}

func (s *Storage) CreateRFP(ctx context.Context, r *RFP) error {
	if r.Requirements == nil {
		r.Requirements = Document{}
	}
	if r.SelectedVendors == nil {
		r.SelectedVendors = pq.Int64Array{}
	}
	query := `
        INSERT INTO rfps
            (title, description, requirements, budget, deadline, status,
             selected_vendors, awarded_vendor, natural_language_input)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at, updated_at`
	return s.db.QueryRowContext(ctx, query,
		r.Title, r.Description, r.Requirements, r.Budget, r.Deadline,
		r.Status, r.SelectedVendors, r.AwardedVendor, r.NaturalLanguageInput).
		Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
}

func (s *Storage) GetRFP(ctx context.Context, id int) (*RFP, error) {
	r := &RFP{}
	query := `SELECT * FROM rfps WHERE id=$1`
	err := s.db.GetContext(ctx, r, query, id)
	return r, err
}

func (s *Storage) GetRFPs(ctx context.Context, limit, offset int) ([]RFP, error) {
	rfps := []RFP{}
	query := `SELECT * FROM rfps ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	err := s.db.SelectContext(ctx, &rfps, query, limit, offset)
	return rfps, err
}

func (s *Storage) UpdateRFP(ctx context.Context, r *RFP) error {
	if r.Requirements == nil {
		r.Requirements = Document{}
	}
	if r.SelectedVendors == nil {
		r.SelectedVendors = pq.Int64Array{}
	}
	query := `
        UPDATE rfps
        SET title=$1, description=$2, requirements=$3, budget=$4, deadline=$5,
            status=$6, selected_vendors=$7, awarded_vendor=$8, updated_at=NOW()
        WHERE id=$9`
	_, err := s.db.ExecContext(ctx, query,
		r.Title, r.Description, r.Requirements, r.Budget, r.Deadline,
		r.Status, r.SelectedVendors, r.AwardedVendor, r.ID)
	return err
}

func (s *Storage) DeleteRFP(ctx context.Context, id int) error {
	query := `DELETE FROM rfps WHERE id=$1`
	_, err := s.db.ExecContext(ctx, query, id)
	return err
}

// Proposal
type Proposal struct {
	ID              int       `db:"id" json:"id"`
	RFPID           int       `db:"rfp_id" json:"rfpId" validate:"required"`
	VendorID        int       `db:"vendor_id" json:"vendorId" validate:"required"`
	VendorName      string    `db:"vendor_name" json:"vendorName"`
	ProposalContent string    `db:"proposal_content" json:"proposalContent" validate:"required"`
	ParsedData      Document  `db:"parsed_data" json:"parsedData"`
	Price           *float64  `db:"price" json:"price"`
	DeliveryTime    string    `db:"delivery_time" json:"deliveryTime"`
	Warranty        string    `db:"warranty" json:"warranty"`
	PaymentTerms    string    `db:"payment_terms" json:"paymentTerms"`
	Score           *float64  `db:"score" json:"score"`
	Evaluation      Document  `db:"evaluation" json:"evaluation"`
	EmailMessageID  string    `db:"email_message_id" json:"emailMessageId"`
	Status          string    `db:"status" json:"status" validate:"omitempty,oneof=RECEIVED PARSED EVALUATED ACCEPTED"`
	ReceivedAt      time.Time `db:"received_at" json:"receivedAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"-"`
}

func (s *Storage) CreateProposal(ctx context.Context, p *Proposal) error {
	if p.ParsedData == nil {
		p.ParsedData = Document{}
	}
	if p.Evaluation == nil {
		p.Evaluation = Document{}
	}
	query := `
        INSERT INTO proposals
            (rfp_id, vendor_id, vendor_name, proposal_content, parsed_data, price,
             delivery_time, warranty, payment_terms, score, evaluation,
             email_message_id, status)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id, received_at, updated_at`
	return s.db.QueryRowContext(ctx, query,
		p.RFPID, p.VendorID, p.VendorName, p.ProposalContent, p.ParsedData,
		p.Price, p.DeliveryTime, p.Warranty, p.PaymentTerms, p.Score,
		p.Evaluation, p.EmailMessageID, p.Status).
		Scan(&p.ID, &p.ReceivedAt, &p.UpdatedAt)
}

func (s *Storage) GetProposal(ctx context.Context, id int) (*Proposal, error) {
	p := &Proposal{}
	query := `SELECT * FROM proposals WHERE id=$1`
	err := s.db.GetContext(ctx, p, query, id)
	return p, err
}

func (s *Storage) GetProposalsForRFP(ctx context.Context, rfpID int) ([]Proposal, error) {
	proposals := []Proposal{}
	query := `SELECT * FROM proposals WHERE rfp_id=$1 ORDER BY received_at DESC`
	err := s.db.SelectContext(ctx, &proposals, query, rfpID)
	return proposals, err
}

func (s *Storage) GetProposals(ctx context.Context, limit, offset int) ([]Proposal, error) {
	proposals := []Proposal{}
	query := `SELECT * FROM proposals ORDER BY received_at DESC LIMIT $1 OFFSET $2`
	err := s.db.SelectContext(ctx, &proposals, query, limit, offset)
	return proposals, err
}

func (s *Storage) UpdateProposal(ctx context.Context, p *Proposal) error {
	if p.ParsedData == nil {
		p.ParsedData = Document{}
	}
	if p.Evaluation == nil {
		p.Evaluation = Document{}
	}
	query := `
        UPDATE proposals
        SET rfp_id=$1, vendor_id=$2, vendor_name=$3, proposal_content=$4,
            parsed_data=$5, price=$6, delivery_time=$7, warranty=$8,
            payment_terms=$9, score=$10, evaluation=$11, email_message_id=$12,
            status=$13, updated_at=NOW()
        WHERE id=$14`
	_, err := s.db.ExecContext(ctx, query,
		p.RFPID, p.VendorID, p.VendorName, p.ProposalContent, p.ParsedData,
		p.Price, p.DeliveryTime, p.Warranty, p.PaymentTerms, p.Score,
		p.Evaluation, p.EmailMessageID, p.Status, p.ID)
	return err
}

func (s *Storage) DeleteProposal(ctx context.Context, id int) error {
	query := `DELETE FROM proposals WHERE id=$1`
	_, err := s.db.ExecContext(ctx, query, id)
	return err
}
