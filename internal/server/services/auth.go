package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/ironbank/internal/common"
	"github.com/dmitrijs2005/ironbank/internal/dbx"
	"github.com/dmitrijs2005/ironbank/internal/logging"
	"github.com/dmitrijs2005/ironbank/internal/server/auth"
	"github.com/dmitrijs2005/ironbank/internal/server/mailer"
	"github.com/dmitrijs2005/ironbank/internal/server/metrics"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
)

// Session is what a successful login hands back to the client.
type Session struct {
	Token string
	User  models.UserSummary
}

// AuthService is the public face of the identity flows. It sequences the
// credential store, the MFA engine, reset tokens and the session issuer, and
// exposes the ledger to authenticated callers.
type AuthService struct {
	db           *sql.DB
	credentials  *CredentialService
	mfa          *MFAService
	resets       *ResetTokenService
	sessions     *auth.SessionIssuer
	ledger       *LedgerService
	mailer       mailer.Mailer
	clientOrigin string
	logger       logging.Logger
}

type AuthDeps struct {
	DB           *sql.DB
	Credentials  *CredentialService
	MFA          *MFAService
	Resets       *ResetTokenService
	Sessions     *auth.SessionIssuer
	Ledger       *LedgerService
	Mailer       mailer.Mailer
	ClientOrigin string
	Logger       logging.Logger
}

func NewAuthService(d AuthDeps) *AuthService {
	logger := d.Logger
	if logger == nil {
		logger = logging.Nop{}
	}
	return &AuthService{
		db:           d.DB,
		credentials:  d.Credentials,
		mfa:          d.MFA,
		resets:       d.Resets,
		sessions:     d.Sessions,
		ledger:       d.Ledger,
		mailer:       d.Mailer,
		clientOrigin: strings.TrimRight(d.ClientOrigin, "/"),
		logger:       logger.With("module", "auth"),
	}
}

// Register creates a customer together with a checking account under the
// registered number and a savings account under a fresh number. Everything
// commits in one transaction.
func (s *AuthService) Register(ctx context.Context, p models.Profile, password string) (*models.User, error) {
	p.Role = common.RoleCustomer
	if err := ValidateProfile(p); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	return s.registerWithAccounts(ctx, p, password, CustomerCheckingOpeningCents, CustomerSavingsOpeningCents)
}

// RegisterAdmin is Register for the seed tool: role admin and the larger
// opening balances.
func (s *AuthService) RegisterAdmin(ctx context.Context, p models.Profile, password string) (*models.User, error) {
	p.Role = common.RoleAdmin
	if err := ValidateProfile(p); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	return s.registerWithAccounts(ctx, p, password, AdminCheckingOpeningCents, AdminSavingsOpeningCents)
}

func (s *AuthService) registerWithAccounts(ctx context.Context, p models.Profile, password string, checking, savings int64) (*models.User, error) {
	var user *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		u, err := s.credentials.Register(ctx, tx, p, password)
		if err != nil {
			return err
		}
		if _, err := s.ledger.OpenAccounts(ctx, tx, u.ID, u.AccountNumber, checking, savings); err != nil {
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Login checks the password step and mails a one-time code. An unknown
// email/account pair and a wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password, accountNumber, role string) error {
	user, err := s.credentials.FindByEmailAndAccount(ctx, email, accountNumber)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			metrics.LoginAttempts.WithLabelValues(metrics.OutcomeRejected).Inc()
			return common.ErrInvalidCredentials
		}
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeError).Inc()
		return fmt.Errorf("login lookup: %w", err)
	}

	if !s.credentials.VerifyPassword(user, password) {
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeRejected).Inc()
		return common.ErrInvalidCredentials
	}

	if role != "" && role != user.Role {
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeRejected).Inc()
		return common.ErrRoleMismatch
	}

	code, err := s.mfa.Issue(ctx, user.ID)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeError).Inc()
		return err
	}
	s.mailer.SendVerificationCode(ctx, user.Email, code)

	metrics.LoginAttempts.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return nil
}

// VerifyOTP completes login and issues a session.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (*Session, error) {
	user, err := s.credentials.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			metrics.MFAVerifications.WithLabelValues(metrics.OutcomeRejected).Inc()
			return nil, common.ErrNoPendingChallenge
		}
		metrics.MFAVerifications.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("verify lookup: %w", err)
	}

	if err := s.mfa.Verify(ctx, user.ID, code); err != nil {
		metrics.MFAVerifications.WithLabelValues(mfaOutcome(err)).Inc()
		return nil, err
	}

	token, _, err := s.sessions.Issue(user)
	if err != nil {
		metrics.MFAVerifications.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("issue session: %w", err)
	}

	metrics.MFAVerifications.WithLabelValues(metrics.OutcomeSuccess).Inc()
	s.logger.Info(ctx, "session issued", "user_id", user.ID)
	return &Session{Token: token, User: user.Summary()}, nil
}

func mfaOutcome(err error) string {
	switch {
	case errors.Is(err, common.ErrStorageConflict):
		return metrics.OutcomeConflict
	case errors.Is(err, common.ErrNoPendingChallenge),
		errors.Is(err, common.ErrTooManyAttempts),
		errors.Is(err, common.ErrChallengeExpired),
		errors.Is(err, common.ErrCodeMismatch):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeError
	}
}

// RequestOTP resends a code. Unknown emails succeed silently.
func (s *AuthService) RequestOTP(ctx context.Context, email string) error {
	user, err := s.credentials.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return fmt.Errorf("resend lookup: %w", err)
	}

	code, err := s.mfa.Resend(ctx, user.ID)
	if err != nil {
		return err
	}
	s.mailer.SendVerificationCode(ctx, user.Email, code)
	return nil
}

// Logout revokes the presented session. Invalid tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

// Authenticate verifies a session token and returns its claims.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	return s.sessions.Verify(ctx, token)
}

// GetSession resolves a token to the current user view.
func (s *AuthService) GetSession(ctx context.Context, token string) (*models.UserSummary, error) {
	claims, err := s.sessions.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.credentials.FindByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidOrExpiredSession
		}
		return nil, fmt.Errorf("session lookup: %w", err)
	}

	summary := user.Summary()
	return &summary, nil
}

// ForgotPassword mails a reset link when the email is registered and
// succeeds either way.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.credentials.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return fmt.Errorf("forgot lookup: %w", err)
	}

	raw, err := s.resets.Issue(ctx, user.ID)
	if err != nil {
		return err
	}

	s.mailer.SendPasswordResetLink(ctx, user.Email, s.resetURL(raw, user.Email))
	return nil
}

func (s *AuthService) resetURL(token, email string) string {
	return fmt.Sprintf("%s/reset?token=%s&email=%s", s.clientOrigin, url.QueryEscape(token), url.QueryEscape(email))
}

// ResetPassword sets a new password with a mailed token. The token is
// consumed in the same transaction as the password change, and every
// session of the user issued so far is revoked.
func (s *AuthService) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	user, err := s.credentials.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			metrics.PasswordResets.WithLabelValues(metrics.OutcomeRejected).Inc()
			return common.ErrInvalidOrExpiredToken
		}
		return fmt.Errorf("reset lookup: %w", err)
	}

	rt, err := s.resets.Verify(ctx, user.ID, token)
	if err != nil {
		if errors.Is(err, common.ErrNoToken) || errors.Is(err, common.ErrTokenExpired) || errors.Is(err, common.ErrTokenMismatch) {
			metrics.PasswordResets.WithLabelValues(metrics.OutcomeRejected).Inc()
			return fmt.Errorf("%w: %w", common.ErrInvalidOrExpiredToken, err)
		}
		metrics.PasswordResets.WithLabelValues(metrics.OutcomeError).Inc()
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		consumed, err := s.resets.Consume(ctx, tx, rt.ID)
		if err != nil {
			return err
		}
		if !consumed {
			return common.ErrInvalidOrExpiredToken
		}
		return s.credentials.SetPassword(ctx, tx, user.ID, newPassword)
	})
	if err != nil {
		if errors.Is(err, common.ErrInvalidOrExpiredToken) {
			metrics.PasswordResets.WithLabelValues(metrics.OutcomeConflict).Inc()
		} else {
			metrics.PasswordResets.WithLabelValues(metrics.OutcomeError).Inc()
		}
		return err
	}

	if err := s.sessions.RevokeAll(ctx, user.ID); err != nil {
		// the password is already changed; old sessions expire on their own
		s.logger.Error(ctx, "revoke sessions after reset", "user_id", user.ID, "error", err)
	}

	metrics.PasswordResets.WithLabelValues(metrics.OutcomeSuccess).Inc()
	s.logger.Info(ctx, "password reset", "user_id", user.ID)
	return nil
}

func (s *AuthService) ListAccounts(ctx context.Context, userID string) ([]models.Account, error) {
	return s.ledger.ListAccounts(ctx, userID)
}

func (s *AuthService) ListTransactions(ctx context.Context, userID string, limit int) ([]models.Transaction, error) {
	return s.ledger.ListTransactions(ctx, userID, limit)
}

func (s *AuthService) Transfer(ctx context.Context, userID string, req models.TransferRequest) (*models.TransferResult, error) {
	return s.ledger.Transfer(ctx, userID, req)
}
