package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tuanngd/tenant-notes-api/internal/config"
	"github.com/tuanngd/tenant-notes-api/internal/domain"
)

// Provisions one schema per tenant with a notes table in each. Safe to rerun;
// every statement is IF NOT EXISTS.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	tenants := flag.String("tenants", "acme,globex", "Comma-separated list of tenant slugs to provision")
	flag.Parse()

	db, err := config.NewDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase(db)

	for _, tenant := range strings.Split(*tenants, ",") {
		tenant = strings.TrimSpace(tenant)
		if !domain.ValidTenantSlug(tenant) {
			log.Fatalf("Invalid tenant slug: %q", tenant)
		}

		stmts := []string{
			fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %q`, tenant),
			fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %q.notes (
				id uuid PRIMARY KEY,
				content text NOT NULL,
				created_at timestamp with time zone DEFAULT CURRENT_TIMESTAMP
			)`, tenant),
		}

		for _, stmt := range stmts {
			if err := db.Exec(stmt).Error; err != nil {
				log.Fatalf("Failed to provision tenant %s: %v", tenant, err)
			}
		}

		log.Printf("Provisioned tenant schema %s", tenant)
	}
}
