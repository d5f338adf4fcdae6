// Package server wires the Iron Bank server together: storage, session
// revocation, outbound mail, domain services and the gRPC and ops endpoints.
// It runs them until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/ironbank/internal/cryptox"
	"github.com/dmitrijs2005/ironbank/internal/logging"
	"github.com/dmitrijs2005/ironbank/internal/server/auth"
	"github.com/dmitrijs2005/ironbank/internal/server/config"
	"github.com/dmitrijs2005/ironbank/internal/server/mailer"
	"github.com/dmitrijs2005/ironbank/internal/server/metrics"
	"github.com/dmitrijs2005/ironbank/internal/server/ops"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/ironbank/internal/server/revocation"
	"github.com/dmitrijs2005/ironbank/internal/server/services"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/ironbank/internal/server/grpc"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	redis      *redis.Client
	dispatcher *mailer.Dispatcher
	auth       *services.AuthService
	resets     *services.ResetTokenService
	statements *services.StatementService
}

// NewApp opens the database, applies migrations and builds every service.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := checkSecret(ctx, c, logger); err != nil {
		return nil, err
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	app := &App{config: c, logger: logger, db: db}

	var revocations auth.RevocationList
	if c.RedisURL != "" {
		client, err := revocation.Connect(ctx, c.RedisURL)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		app.redis = client
		revocations = revocation.NewRedisList(client)
	} else {
		logger.Warn(ctx, "redis URL not set, session revocation disabled")
	}

	hasher, err := cryptox.NewArgon2(c.Argon2)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("hasher: %w", err)
	}

	app.dispatcher = mailer.NewDispatcher(newTransport(c, logger), m.EmailLogs(db), logger)

	ledger := services.NewLedgerService(db, m, c.TransferTimeout)
	app.resets = services.NewResetTokenService(db, m, hasher)
	app.statements = services.NewStatementService(ledger, c)
	app.auth = services.NewAuthService(services.AuthDeps{
		DB:           db,
		Credentials:  services.NewCredentialService(db, m, hasher),
		MFA:          services.NewMFAService(db, m, hasher),
		Resets:       app.resets,
		Sessions:     auth.NewSessionIssuer([]byte(c.SecretKey), c.SessionValidityDuration, revocations),
		Ledger:       ledger,
		Mailer:       app.dispatcher,
		ClientOrigin: c.ClientOrigin,
		Logger:       logger,
	})

	return app, nil
}

// checkSecret refuses a production-like config signed with the development
// secret and warns about it otherwise.
func checkSecret(ctx context.Context, c *config.Config, logger logging.Logger) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.UsesDefaultSecret() {
		logger.Warn(ctx, "session secret is the development default, tokens can be forged")
	}
	return nil
}

func newTransport(c *config.Config, logger logging.Logger) mailer.Transport {
	if c.MailMode == config.MailModeSMTP {
		return mailer.NewSMTPTransport(mailer.SMTPConfig{
			Host:     c.SMTPHost,
			Port:     c.SMTPPort,
			Username: c.SMTPUser,
			Password: c.SMTPPassword,
			From:     c.MailFrom,
		})
	}
	return mailer.NewConsoleTransport(logger)
}

func (app *App) healthChecks() map[string]ops.Check {
	checks := map[string]ops.Check{
		"postgres": app.db.PingContext,
	}
	if app.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return app.redis.Ping(ctx).Err()
		}
	}
	return checks
}

// Run serves until SIGINT/SIGTERM/SIGQUIT or until one component fails.
// Pending mail is flushed and connections are closed before it returns.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...")

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.auth, app.statements).Run(ctx)
	})
	g.Go(func() error {
		return ops.NewServer(app.config.EndpointAddrOps, app.logger, app.healthChecks()).Run(ctx)
	})
	g.Go(func() error {
		runPurgeLoop(ctx, app.resets, app.config.PurgeInterval, app.logger)
		return nil
	})

	err := g.Wait()

	app.dispatcher.Wait()
	app.close()
	app.logger.Info(context.Background(), "App stopped")
	return err
}

func (app *App) close() {
	if app.redis != nil {
		_ = app.redis.Close()
	}
	_ = app.db.Close()
}

type expiredTokenPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// runPurgeLoop deletes expired reset tokens every interval until ctx is done.
func runPurgeLoop(ctx context.Context, p expiredTokenPurger, interval time.Duration, logger logging.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := p.PurgeExpired(ctx)
			if err != nil {
				if ctx.Err() == nil {
					logger.Error(ctx, "reset token purge failed", "error", err)
				}
				continue
			}
			if n > 0 {
				metrics.ResetTokensPurged.Add(float64(n))
				logger.Info(ctx, "expired reset tokens purged", "count", n)
			}
		}
	}
}
