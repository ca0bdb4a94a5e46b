// Package auth replaces the old hard-coded staff credential map with an
// injected credential store: bcrypt-hashed passwords behind an explicit
// load/save contract.
package auth

import (
	"context"
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"madhurfashion.in/storefront/pkg/models"
)

var (
	ErrStaffNotFound      = errors.New("staff not found")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// CredentialStore persists staff accounts (pkg/mongo in production).
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Staff, error)
	List(ctx context.Context) ([]*models.Staff, error)
	Save(ctx context.Context, staff *models.Staff) error
	Remove(ctx context.Context, id string) error
}

type Service struct {
	store CredentialStore
}

func NewService(store CredentialStore) *Service {
	return &Service{store: store}
}

// Authenticate verifies an email/password pair against the stored hash.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.Staff, error) {
	staff, err := s.store.FindByEmail(ctx, email)
	if errors.Is(err, ErrStaffNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return staff, nil
}

// AddStaff creates a staff account with a bcrypt-hashed password.
func (s *Service) AddStaff(ctx context.Context, name, email, password string) (*models.Staff, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	staff := models.NewStaff(name, email, string(hash), "staff")
	if err := s.store.Save(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *Service) ListStaff(ctx context.Context) ([]*models.Staff, error) {
	return s.store.List(ctx)
}

func (s *Service) RemoveStaff(ctx context.Context, id string) error {
	return s.store.Remove(ctx, id)
}

// SeedOwner makes sure the owner account from the environment exists. Called
// once at startup; a missing configuration just logs and skips.
func (s *Service) SeedOwner(ctx context.Context) error {
	email := os.Getenv("OWNER_EMAIL")
	password := os.Getenv("OWNER_PASSWORD")
	if email == "" || password == "" {
		log.Println("Owner account not seeded - OWNER_EMAIL and OWNER_PASSWORD not provided")
		return nil
	}

	_, err := s.store.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrStaffNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	name := os.Getenv("OWNER_NAME")
	if name == "" {
		name = "Owner"
	}

	owner := models.NewStaff(name, email, string(hash), "owner")
	if err := s.store.Save(ctx, owner); err != nil {
		return err
	}
	log.Printf("Seeded owner account %s", email)
	return nil
}
