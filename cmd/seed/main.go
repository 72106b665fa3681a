package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"constructsite/internal/config"
	"constructsite/internal/database"
	"constructsite/internal/models"
	"constructsite/internal/repository"
)

// Seeds the admin account from ADMIN_EMAIL, ADMIN_PASSWORD and
// ADMIN_NAME. Safe to run more than once.
func main() {
	cfg := config.LoadConfig()

	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")

	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}
	if name == "" {
		name = "Administrator"
	}

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.CloseDB()

	repo := repository.NewRepository(db.DB)
	ctx := context.Background()

	existing, err := repo.User.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		log.Fatalf("Failed to look up admin account: %v", err)
	}
	if existing != nil {
		log.Printf("Admin account %s already exists, nothing to do", email)
		return
	}

	user := newAdminUser(email, name)
	if err := repo.User.Create(ctx, user, password); err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}

	log.Printf("Admin account %s created with id %s", email, user.ID)
}

// newAdminUser builds the bootstrap account. IsActive must be set
// explicitly: the repository inserts the field as-is rather than relying
// on the column default.
func newAdminUser(email, name string) *models.User {
	return &models.User{
		Email:    email,
		Name:     name,
		Role:     models.RoleAdmin,
		IsActive: true,
	}
}
