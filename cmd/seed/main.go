// Command seed creates the initial admin user with admin opening balances.
// It is idempotent: an existing admin e-mail is left untouched.
//
// Environment:
//
//	ADMIN_EMAIL     required
//	ADMIN_ACCOUNT   required, 10 digits
//	ADMIN_ID        required, 13 digits
//	ADMIN_PASSWORD  prompted without echo when unset
//	ADMIN_FIRST     default "Iron"
//	ADMIN_LAST      default "Admin"
//
// Database settings come from the server configuration (-d, -c, IRONBANK_CONFIG).
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/ironbank/internal/common"
	"github.com/dmitrijs2005/ironbank/internal/cryptox"
	"github.com/dmitrijs2005/ironbank/internal/logging"
	"github.com/dmitrijs2005/ironbank/internal/server/config"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/ironbank/internal/server/services"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

type adminSettings struct {
	Profile  models.Profile
	Password string
}

// adminFromEnv builds the admin profile. The password is read from stdin
// without echo when ADMIN_PASSWORD is empty.
func adminFromEnv(getenv func(string) string, w io.Writer) (*adminSettings, error) {
	settings := &adminSettings{
		Profile: models.Profile{
			FirstName:     getenv("ADMIN_FIRST"),
			LastName:      getenv("ADMIN_LAST"),
			IDNumber:      getenv("ADMIN_ID"),
			Email:         getenv("ADMIN_EMAIL"),
			AccountNumber: getenv("ADMIN_ACCOUNT"),
			Role:          common.RoleAdmin,
		},
		Password: getenv("ADMIN_PASSWORD"),
	}
	if settings.Profile.FirstName == "" {
		settings.Profile.FirstName = "Iron"
	}
	if settings.Profile.LastName == "" {
		settings.Profile.LastName = "Admin"
	}

	for name, v := range map[string]string{
		"ADMIN_EMAIL":   settings.Profile.Email,
		"ADMIN_ACCOUNT": settings.Profile.AccountNumber,
		"ADMIN_ID":      settings.Profile.IDNumber,
	} {
		if v == "" {
			return nil, fmt.Errorf("%s is required", name)
		}
	}

	if settings.Password == "" {
		fmt.Fprint(w, "Admin password: ")
		pw, err := readPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(w)
		if err != nil {
			return nil, fmt.Errorf("read password: %w", err)
		}
		defer common.WipeByteArray(pw)
		settings.Password = string(pw)
	}
	return settings, nil
}

// registrar is the part of the auth and credential services seeding needs.
type registrar interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	RegisterAdmin(ctx context.Context, p models.Profile, password string) (*models.User, error)
}

type seedServices struct {
	credentials *services.CredentialService
	auth        *services.AuthService
}

func (s seedServices) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.credentials.FindByEmail(ctx, email)
}

func (s seedServices) RegisterAdmin(ctx context.Context, p models.Profile, password string) (*models.User, error) {
	return s.auth.RegisterAdmin(ctx, p, password)
}

// seed creates the admin unless the e-mail already exists. It reports
// whether a user was created.
func seed(ctx context.Context, r registrar, settings *adminSettings, logger logging.Logger) (bool, error) {
	existing, err := r.FindByEmail(ctx, settings.Profile.Email)
	switch {
	case err == nil:
		logger.Info(ctx, "admin already exists, skipping", "user_id", existing.ID, "role", existing.Role)
		return false, nil
	case !errors.Is(err, common.ErrorNotFound):
		return false, fmt.Errorf("lookup admin: %w", err)
	}

	u, err := r.RegisterAdmin(ctx, settings.Profile, settings.Password)
	if err != nil {
		return false, fmt.Errorf("register admin: %w", err)
	}
	logger.Info(ctx, "admin created", "user_id", u.ID, "account_number", u.AccountNumber)
	return true, nil
}

func run(ctx context.Context) error {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	cfg := config.LoadConfig()

	settings, err := adminFromEnv(os.Getenv, os.Stdout)
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	hasher, err := cryptox.NewArgon2(cfg.Argon2)
	if err != nil {
		return err
	}

	credentials := services.NewCredentialService(db, m, hasher)
	authService := services.NewAuthService(services.AuthDeps{
		DB:          db,
		Credentials: credentials,
		Ledger:      services.NewLedgerService(db, m, cfg.TransferTimeout),
		Logger:      logger,
	})

	_, err = seed(ctx, seedServices{credentials: credentials, auth: authService}, settings, logger)
	return err
}

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("seed: %v", err)
	}
}
