package migrations

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

// Run applies all migrations from the given directory.
func Run(connString, migrationDir string) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set dialect: %v", err)
	}

	fmt.Printf("Running migrations from %s\n", migrationDir)
	if err := goose.Up(db, migrationDir); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
}
