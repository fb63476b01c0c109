package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/tuanngd/tenant-notes-api/internal/auth"
	"github.com/tuanngd/tenant-notes-api/internal/domain"
)

// Mints a bearer token for manual testing, signed with the same secret the
// server verifies against.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	email := flag.String("email", "", "Email for the token")
	tenant := flag.String("tenant", "", "Tenant slug for the token")
	role := flag.String("role", string(domain.RoleMember), "Role for the token (admin or member)")
	expirationHours := flag.Int("exp", 1, "Token expiration in hours")
	flag.Parse()

	if *email == "" {
		log.Fatal("Email is required")
	}
	if *tenant == "" {
		log.Fatal("Tenant is required")
	}
	if !domain.IsValidRole(*role) {
		log.Fatalf("Invalid role: %s", *role)
	}

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		log.Fatal("JWT_SECRET_KEY must be set")
	}

	tokens := auth.NewTokenManager(secret, time.Duration(*expirationHours)*time.Hour)
	token, err := tokens.Generate(*email, *tenant, domain.Role(*role))
	if err != nil {
		log.Fatalf("Error signing token: %v", err)
	}

	fmt.Println(token)
}
