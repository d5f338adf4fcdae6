package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/ironbank/internal/common"
	"github.com/dmitrijs2005/ironbank/internal/cryptox"
	"github.com/dmitrijs2005/ironbank/internal/dbx"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/emaillogs"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/mfachallenges"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/resettokens"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/transactions"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/users"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// fakeStore is an in-memory stand-in for the Postgres tables. Transactions
// are not isolated: the *sql.DB handed to services only drives Begin/Commit.
type fakeStore struct {
	mu sync.Mutex

	users      map[string]*models.User
	accounts   map[string]*models.Account
	txs        []models.Transaction
	resets     []*models.ResetToken
	challenges map[string]*models.MFAChallenge
	emails     []models.EmailLog

	lockTimeouts []time.Duration
	lockOrder    []string
	lockedUsers  []string

	lockErr     error
	createTxErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      map[string]*models.User{},
		accounts:   map[string]*models.Account{},
		challenges: map[string]*models.MFAChallenge{},
	}
}

type fakeRepoManager struct {
	store *fakeStore
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository            { return &fakeUsers{m.store} }
func (m *fakeRepoManager) Accounts(dbx.DBTX) accounts.Repository      { return &fakeAccounts{m.store} }
func (m *fakeRepoManager) Transactions(dbx.DBTX) transactions.Repository {
	return &fakeTransactions{m.store}
}
func (m *fakeRepoManager) ResetTokens(dbx.DBTX) resettokens.Repository { return &fakeResets{m.store} }
func (m *fakeRepoManager) MFAChallenges(dbx.DBTX) mfachallenges.Repository {
	return &fakeChallenges{m.store}
}
func (m *fakeRepoManager) EmailLogs(dbx.DBTX) emaillogs.Repository { return &fakeEmails{m.store} }

// users

type fakeUsers struct{ s *fakeStore }

func (r *fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.users {
		if x.Email == u.Email || x.AccountNumber == u.AccountNumber {
			return nil, common.ErrDuplicateIdentity
		}
	}
	c := *u
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.s.users[c.ID] = &c
	out := c
	return &out, nil
}

func (r *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *u
	return &c, nil
}

func (r *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *fakeUsers) GetByEmailAndAccount(_ context.Context, email, accountNumber string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email && u.AccountNumber == accountNumber {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *fakeUsers) ExistsByEmailOrAccount(_ context.Context, email, accountNumber string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email || u.AccountNumber == accountNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUsers) UpdatePasswordHash(_ context.Context, id, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.PasswordHash = hash
	u.UpdatedAt = time.Now()
	return nil
}

func (r *fakeUsers) LockByID(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return common.ErrorNotFound
	}
	r.s.lockedUsers = append(r.s.lockedUsers, id)
	return nil
}

// accounts

type fakeAccounts struct{ s *fakeStore }

func (r *fakeAccounts) Create(_ context.Context, a *models.Account) (*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.accounts {
		if x.Number == a.Number {
			return nil, common.ErrDuplicateIdentity
		}
	}
	c := *a
	c.ID = uuid.NewString()
	if c.Currency == "" {
		c.Currency = common.DefaultCurrency
	}
	c.CreatedAt = time.Now()
	r.s.accounts[c.ID] = &c
	out := c
	return &out, nil
}

func (r *fakeAccounts) NumberExists(_ context.Context, number string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.accounts {
		if a.Number == number {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAccounts) ListByUser(_ context.Context, userID string) ([]models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Account
	for _, a := range r.s.accounts {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Type < out[j].Type
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeAccounts) GetOwned(_ context.Context, id, userID string) (*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.accounts[id]
	if !ok || a.UserID != userID {
		return nil, common.ErrorNotFound
	}
	c := *a
	return &c, nil
}

func (r *fakeAccounts) GetByNumber(_ context.Context, number string) (*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.accounts {
		if a.Number == number {
			c := *a
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *fakeAccounts) LockForUpdate(_ context.Context, id string) (*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.lockErr != nil {
		return nil, r.s.lockErr
	}
	a, ok := r.s.accounts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	r.s.lockOrder = append(r.s.lockOrder, id)
	c := *a
	return &c, nil
}

func (r *fakeAccounts) SetLockTimeout(_ context.Context, d time.Duration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.lockTimeouts = append(r.s.lockTimeouts, d)
	return nil
}

func (r *fakeAccounts) AdjustBalance(_ context.Context, id string, delta int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.accounts[id]
	if !ok {
		return 0, common.ErrorNotFound
	}
	if a.BalanceCents+delta < 0 {
		return 0, common.ErrInsufficientFunds
	}
	a.BalanceCents += delta
	return a.BalanceCents, nil
}

// transactions

type fakeTransactions struct{ s *fakeStore }

func (r *fakeTransactions) Create(_ context.Context, t *models.Transaction) (*models.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.createTxErr != nil {
		return nil, r.s.createTxErr
	}
	c := *t
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	r.s.txs = append(r.s.txs, c)
	out := c
	return &out, nil
}

func (r *fakeTransactions) ListByUser(_ context.Context, userID string, limit int) ([]models.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Transaction
	for i := len(r.s.txs) - 1; i >= 0 && len(out) < limit; i-- {
		t := r.s.txs[i]
		if t.UserID != userID {
			continue
		}
		if a, ok := r.s.accounts[t.AccountID]; ok {
			t.AccountNumber = a.Number
			t.AccountType = a.Type
		}
		out = append(out, t)
	}
	return out, nil
}

// reset tokens

type fakeResets struct{ s *fakeStore }

func (r *fakeResets) Create(_ context.Context, t *models.ResetToken) (*models.ResetToken, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *t
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	r.s.resets = append(r.s.resets, &c)
	out := c
	return &out, nil
}

func (r *fakeResets) InvalidateUnused(_ context.Context, userID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, t := range r.s.resets {
		if t.UserID == userID && !t.Used {
			t.Used = true
			n++
		}
	}
	return n, nil
}

func (r *fakeResets) LatestUnused(_ context.Context, userID string) (*models.ResetToken, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := len(r.s.resets) - 1; i >= 0; i-- {
		t := r.s.resets[i]
		if t.UserID == userID && !t.Used {
			c := *t
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *fakeResets) MarkUsed(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.resets {
		if t.ID == id {
			if t.Used {
				return false, nil
			}
			t.Used = true
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeResets) PurgeExpired(_ context.Context, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var kept []*models.ResetToken
	var n int64
	for _, t := range r.s.resets {
		if t.ExpiresAt.Before(now) {
			n++
			continue
		}
		kept = append(kept, t)
	}
	r.s.resets = kept
	return n, nil
}

func (s *fakeStore) resetTokensOf(userID string) []models.ResetToken {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ResetToken
	for _, t := range s.resets {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out
}

// mfa challenges

type fakeChallenges struct{ s *fakeStore }

func (r *fakeChallenges) Get(_ context.Context, userID string) (*models.MFAChallenge, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.challenges[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *c
	return &out, nil
}

func (r *fakeChallenges) Upsert(_ context.Context, c *models.MFAChallenge) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var version int64 = 1
	if prev, ok := r.s.challenges[c.UserID]; ok {
		version = prev.Version + 1
	}
	stored := *c
	stored.Attempts = 0
	stored.Version = version
	r.s.challenges[c.UserID] = &stored
	c.Version = version
	c.Attempts = 0
	return version, nil
}

func (r *fakeChallenges) IncrementAttempts(_ context.Context, userID string, version int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.challenges[userID]
	if !ok || c.Version != version {
		return false, nil
	}
	c.Attempts++
	c.Version++
	return true, nil
}

func (r *fakeChallenges) Delete(_ context.Context, userID string, version int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.challenges[userID]
	if !ok || c.Version != version {
		return false, nil
	}
	delete(r.s.challenges, userID)
	return true, nil
}

// email logs

type fakeEmails struct{ s *fakeStore }

func (r *fakeEmails) Create(_ context.Context, l *models.EmailLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.emails = append(r.s.emails, *l)
	return nil
}

// collaborators

type sentMail struct {
	to, code, url string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *fakeMailer) SendVerificationCode(_ context.Context, to, code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: to, code: code})
}

func (m *fakeMailer) SendPasswordResetLink(_ context.Context, to, url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: to, url: url})
}

func (m *fakeMailer) last(t *testing.T) sentMail {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.sent, "no mail sent")
	return m.sent[len(m.sent)-1]
}

func (m *fakeMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type memRevocations struct {
	mu       sync.Mutex
	jtis     map[string]time.Time
	subjects map[string]time.Time
}

func newMemRevocations() *memRevocations {
	return &memRevocations{jtis: map[string]time.Time{}, subjects: map[string]time.Time{}}
}

func (m *memRevocations) Revoke(_ context.Context, jti string, until time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jtis[jti] = until
	return nil
}

func (m *memRevocations) RevokeSubject(_ context.Context, subject string, at time.Time, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subjects[subject] = at
	return nil
}

func (m *memRevocations) IsRevoked(_ context.Context, jti, subject string, issuedAt time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jtis[jti]; ok {
		return true, nil
	}
	if at, ok := m.subjects[subject]; ok && !issuedAt.After(at) {
		return true, nil
	}
	return false, nil
}

// helpers

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestHasher(t *testing.T) cryptox.Hasher {
	t.Helper()
	h, err := cryptox.NewArgon2(cryptox.Params{Memory: 64, Time: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})
	require.NoError(t, err)
	return h
}

type fixedClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFixedClock() *fixedClock {
	return &fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// seedAccount inserts an account directly and returns it.
func (s *fakeStore) seedAccount(userID, number, typ string, balance int64) *models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := &models.Account{
		ID:           uuid.NewString(),
		UserID:       userID,
		Number:       number,
		Type:         typ,
		Currency:     common.DefaultCurrency,
		BalanceCents: balance,
		CreatedAt:    time.Now(),
	}
	s.accounts[a.ID] = a
	c := *a
	return &c
}

func (s *fakeStore) balance(id string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts[id].BalanceCents
}

func (s *fakeStore) transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Transaction(nil), s.txs...)
}
