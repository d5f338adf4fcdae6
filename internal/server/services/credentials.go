// Package services contains server-side business logic: the credential
// store, the MFA engine, reset tokens, the ledger and the auth orchestrator
// that ties them together.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/ironbank/internal/common"
	"github.com/dmitrijs2005/ironbank/internal/cryptox"
	"github.com/dmitrijs2005/ironbank/internal/dbx"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/repomanager"
)

// NormalizeEmail trims and lower-cases an address; stored emails are always
// in this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CredentialService stores users and checks their passwords. Only argon2id
// hashes are persisted.
type CredentialService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      cryptox.Hasher
}

func NewCredentialService(db *sql.DB, m repomanager.RepositoryManager, hasher cryptox.Hasher) *CredentialService {
	return &CredentialService{db: db, repomanager: m, hasher: hasher}
}

// Register creates a user on db (the pool or a caller's transaction).
// Duplicate email or account number yields common.ErrDuplicateIdentity.
func (s *CredentialService) Register(ctx context.Context, db dbx.DBTX, p models.Profile, rawPassword string) (*models.User, error) {
	email := NormalizeEmail(p.Email)
	repo := s.repomanager.Users(db)

	exists, err := repo.ExistsByEmailOrAccount(ctx, email, p.AccountNumber)
	if err != nil {
		return nil, fmt.Errorf("duplicate check: %w", err)
	}
	if exists {
		return nil, common.ErrDuplicateIdentity
	}

	hash, err := s.hasher.Hash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := p.Role
	if role == "" {
		role = common.RoleCustomer
	}

	user := &models.User{
		Email:         email,
		AccountNumber: p.AccountNumber,
		FirstName:     strings.TrimSpace(p.FirstName),
		LastName:      strings.TrimSpace(p.LastName),
		IDNumber:      p.IDNumber,
		PasswordHash:  hash,
		Role:          role,
	}

	// the unique indexes still catch a concurrent registration that passed
	// the pre-check
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateIdentity) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// VerifyPassword compares rawPassword with the stored hash in constant time.
// A corrupt stored hash counts as a mismatch.
func (s *CredentialService) VerifyPassword(user *models.User, rawPassword string) bool {
	ok, err := s.hasher.Verify(rawPassword, user.PasswordHash)
	return err == nil && ok
}

// SetPassword replaces the user's hash; nothing else about the user changes.
func (s *CredentialService) SetPassword(ctx context.Context, db dbx.DBTX, userID, rawPassword string) error {
	hash, err := s.hasher.Hash(rawPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.repomanager.Users(db).UpdatePasswordHash(ctx, userID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// FindByEmail looks a user up by normalized email. Absence is common.ErrorNotFound.
func (s *CredentialService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByEmail(ctx, NormalizeEmail(email))
}

// FindByEmailAndAccount matches the login pair.
func (s *CredentialService) FindByEmailAndAccount(ctx context.Context, email, accountNumber string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByEmailAndAccount(ctx, NormalizeEmail(email), accountNumber)
}

func (s *CredentialService) FindByID(ctx context.Context, id string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}
