// Command seed-vendors populates the vendors table with sample data for
// local development. Existing vendors are matched by email and left
// untouched; -reset wipes proposals, RFPs and vendors first.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"procurement/db"
	"procurement/db/migrations"
	"procurement/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

var sampleVendors = []db.Vendor{
	{
		Name:          "Tech Solutions Inc",
		Email:         "sales@techsolutions.com",
		ContactPerson: "John Smith",
		Phone:         "555-0101",
		Address:       "123 Tech Street",
		City:          "San Francisco",
		Country:       "USA",
		Website:       "https://techsolutions.com",
		Notes:         "Preferred vendor for IT equipment",
		Active:        true,
	},
	{
		Name:          "Global Hardware Ltd",
		Email:         "procurement@globalhw.com",
		ContactPerson: "Sarah Johnson",
		Phone:         "555-0102",
		Address:       "456 Hardware Ave",
		City:          "New York",
		Country:       "USA",
		Website:       "https://globalhw.com",
		Notes:         "Reliable supplier with good pricing",
		Active:        true,
	},
	{
		Name:          "Prime Equipment Supply",
		Email:         "sales@primeequip.com",
		ContactPerson: "Mike Chen",
		Phone:         "555-0103",
		Address:       "789 Supply Road",
		City:          "Chicago",
		Country:       "USA",
		Website:       "https://primeequip.com",
		Notes:         "Fast delivery capability",
		Active:        true,
	},
	{
		Name:          "Enterprise Solutions Group",
		Email:         "quote@esg.com",
		ContactPerson: "Linda Davis",
		Phone:         "555-0104",
		Address:       "321 Enterprise Blvd",
		City:          "Boston",
		Country:       "USA",
		Website:       "https://esgservices.com",
		Notes:         "High-end enterprise solutions",
		Active:        true,
	},
}

// vendorStore is the slice of storage the seeder needs.
type vendorStore interface {
	GetVendorByEmail(ctx context.Context, email string) (*db.Vendor, error)
	CreateVendor(ctx context.Context, v *db.Vendor) error
}

// seedVendors inserts every sample vendor not already present, matching
// by email. Returns how many were created.
func seedVendors(ctx context.Context, store vendorStore) (int, error) {
	created := 0
	for i := range sampleVendors {
		vendor := sampleVendors[i]
		if existing, err := store.GetVendorByEmail(ctx, vendor.Email); err == nil {
			fmt.Printf("Vendor already exists: %s\n", existing.Name)
			continue
		}
		if err := store.CreateVendor(ctx, &vendor); err != nil {
			return created, fmt.Errorf("create vendor %s: %w", vendor.Name, err)
		}
		fmt.Printf("Created vendor: %s\n", vendor.Name)
		created++
	}
	return created, nil
}

// resetData clears all records. Proposals go first so foreign keys do
// not get in the way.
func resetData(ctx context.Context, conn *sqlx.DB) error {
	for _, table := range []string{"proposals", "rfps", "vendors"} {
		if _, err := conn.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	fmt.Println("Cleared existing data")
	return nil
}

func main() {
	reset := flag.Bool("reset", false, "delete all proposals, RFPs and vendors before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	conn, err := sqlx.Connect("postgres", cfg.DB.ConnString)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer conn.Close()

	migrations.Run(cfg.DB.ConnString, cfg.DB.MigrationsDir)

	ctx := context.Background()
	if *reset {
		if err := resetData(ctx, conn); err != nil {
			log.Fatalf("reset failed: %v", err)
		}
	}

	created, err := seedVendors(ctx, db.NewStorage(conn))
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	fmt.Printf("Successfully populated vendors (%d created)\n", created)
}
