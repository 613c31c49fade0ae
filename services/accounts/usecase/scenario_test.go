package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts"
)

// memRepo is a stateful accounts.AccountRepo. Lookups return copies, as rows
// read from the database would.
type memRepo struct {
	mu       sync.Mutex
	nextID   int64
	accounts map[models.Kind][]*models.Account
}

func newMemRepo() *memRepo {
	return &memRepo{accounts: map[models.Kind][]*models.Account{}}
}

func (r *memRepo) find(kind models.Kind, match func(a *models.Account) bool) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts[kind] {
		if match(a) {
			c := *a
			return &c, nil
		}
	}
	return nil, accounts.ErrNotFound
}

func (r *memRepo) row(kind models.Kind, id int64) *models.Account {
	for _, a := range r.accounts[kind] {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (r *memRepo) FindByEmail(ctx context.Context, kind models.Kind, email string) (*models.Account, error) {
	return r.find(kind, func(a *models.Account) bool { return a.Email == email })
}

func (r *memRepo) FindByContact(ctx context.Context, kind models.Kind, contact string) (*models.Account, error) {
	return r.find(kind, func(a *models.Account) bool { return a.Contact == contact })
}

func (r *memRepo) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	return r.find(models.KindStudent, func(a *models.Account) bool { return a.Username == username })
}

func (r *memRepo) FindByID(ctx context.Context, kind models.Kind, id int64) (*models.Account, error) {
	return r.find(kind, func(a *models.Account) bool { return a.ID == id })
}

func (r *memRepo) FindByCode(ctx context.Context, kind models.Kind, channel models.Channel, identifier, code string) (*models.Account, error) {
	return r.find(kind, func(a *models.Account) bool {
		pending := a.EmailOTP
		if channel == models.ChannelContact {
			pending = a.ContactOTP
		}
		return a.Identifier(channel) == identifier && pending != nil && *pending == code
	})
}

func (r *memRepo) Insert(ctx context.Context, kind models.Kind, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	account.ID = r.nextID
	c := *account
	r.accounts[kind] = append(r.accounts[kind], &c)
	return nil
}

func (r *memRepo) MarkVerified(ctx context.Context, kind models.Kind, channel models.Channel, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.row(kind, id)
	if a == nil {
		return accounts.ErrNotFound
	}
	markVerified(a, channel)
	return nil
}

func (r *memRepo) SetOTP(ctx context.Context, kind models.Kind, channel models.Channel, id int64, code string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.row(kind, id)
	if a == nil {
		return accounts.ErrNotFound
	}
	a.SetOTP(channel, code, expiresAt)
	return nil
}

func (r *memRepo) AcquireReissueSlot(ctx context.Context, kind models.Kind, channel models.Channel, id int64, ttl time.Duration) (bool, error) {
	return true, nil
}

func (r *memRepo) ListStudents(ctx context.Context) ([]*models.Account, error) {
	return nil, nil
}

func (r *memRepo) UpdateProfile(ctx context.Context, id int64, update *models.ProfileUpdate) error {
	return nil
}

type sentCode struct {
	channel   models.Channel
	recipient string
	code      string
}

// memGW records every code handed to it
type memGW struct {
	sent []sentCode
}

func (g *memGW) SendOTP(ctx context.Context, channel models.Channel, recipient, code string) bool {
	g.sent = append(g.sent, sentCode{channel: channel, recipient: recipient, code: code})
	return true
}

func (g *memGW) last(channel models.Channel) string {
	for i := len(g.sent) - 1; i >= 0; i-- {
		if g.sent[i].channel == channel {
			return g.sent[i].code
		}
	}
	return ""
}

type scenario struct {
	uc    *AccountUC
	repo  *memRepo
	gw    *memGW
	clock time.Time
}

func newScenario(t *testing.T, codes ...string) *scenario {
	s := &scenario{repo: newMemRepo(), gw: &memGW{}, clock: fixedNow}

	s.uc = NewAccountUC(s.repo, s.gw, &models.Config{})
	s.uc.now = func() time.Time { return s.clock }
	s.uc.bcryptCost = bcrypt.MinCost

	next := 0
	s.uc.generate = func() (string, error) {
		require.Less(t, next, len(codes), "unexpected code generation")
		code := codes[next]
		next++
		return code, nil
	}
	return s
}

func TestRegisterLoginVerifyScenario(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t, "111111", "222222", "333333", "444444")

	// Arrange
	_, err := s.uc.Register(ctx, models.KindStudent, annRequest())
	require.NoError(t, err)
	assert.Equal(t, "111111", s.gw.last(models.ChannelEmail))
	assert.Equal(t, "222222", s.gw.last(models.ChannelContact))

	// Act: login before verifying re-arms both channels
	login, err := s.uc.Login(ctx, models.KindStudent, &models.LoginRequest{Email: "ann@x.com", Password: "pw1"})

	// Assert
	require.NoError(t, err)
	assert.True(t, login.RequiresVerification)
	assert.Equal(t, "ann@x.com", login.Email)
	assert.Equal(t, "+911234567890", login.Contact)
	emailCode, contactCode := s.gw.last(models.ChannelEmail), s.gw.last(models.ChannelContact)
	assert.Equal(t, "333333", emailCode)
	assert.Equal(t, "444444", contactCode)

	// the codes from registration were overwritten
	assert.ErrorIs(t, s.uc.VerifyCode(ctx, models.KindStudent, models.ChannelEmail, "ann@x.com", "111111"), accounts.ErrInvalidCode)

	require.NoError(t, s.uc.VerifyCode(ctx, models.KindStudent, models.ChannelEmail, "ann@x.com", emailCode))

	// a verified code cannot be replayed
	assert.ErrorIs(t, s.uc.VerifyCode(ctx, models.KindStudent, models.ChannelEmail, "ann@x.com", emailCode), accounts.ErrInvalidCode)

	require.NoError(t, s.uc.VerifyCode(ctx, models.KindStudent, models.ChannelContact, "+911234567890", contactCode))

	login, err = s.uc.Login(ctx, models.KindStudent, &models.LoginRequest{Email: "ann@x.com", Password: "pw1"})
	require.NoError(t, err)
	assert.False(t, login.RequiresVerification)
	require.NotNil(t, login.Account)
	assert.Equal(t, "Ann", login.Account.Principal().Name)
	assert.Len(t, s.gw.sent, 4)
}

func TestLoginRearmsOnlyUnverifiedChannel(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t, "111111", "222222", "555555")

	_, err := s.uc.Register(ctx, models.KindStudent, annRequest())
	require.NoError(t, err)
	require.NoError(t, s.uc.VerifyCode(ctx, models.KindStudent, models.ChannelEmail, "ann@x.com", "111111"))

	login, err := s.uc.Login(ctx, models.KindStudent, &models.LoginRequest{Email: "ann@x.com", Password: "pw1"})

	require.NoError(t, err)
	assert.True(t, login.RequiresVerification)
	require.Len(t, s.gw.sent, 3)
	assert.Equal(t, sentCode{channel: models.ChannelContact, recipient: "+911234567890", code: "555555"}, s.gw.sent[2])
	assert.ErrorIs(t, s.uc.VerifyCode(ctx, models.KindStudent, models.ChannelContact, "+911234567890", "222222"), accounts.ErrInvalidCode)
}

func TestRegisterVerifyBothThenLogin(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t, "111111", "222222")

	_, err := s.uc.Register(ctx, models.KindStudent, annRequest())
	require.NoError(t, err)

	require.NoError(t, s.uc.VerifyCode(ctx, models.KindStudent, models.ChannelEmail, "ann@x.com", "111111"))
	require.NoError(t, s.uc.VerifyCode(ctx, models.KindStudent, models.ChannelContact, "+91 1234567890", "222222"))

	login, err := s.uc.Login(ctx, models.KindStudent, &models.LoginRequest{Email: "ann@x.com", Password: "pw1"})

	require.NoError(t, err)
	assert.False(t, login.RequiresVerification)
	require.NotNil(t, login.Account)
	p := login.Account.Principal()
	assert.Equal(t, models.KindStudent, p.Role)
	assert.Equal(t, "annu", p.Username)

	stored, err := s.repo.FindByEmail(ctx, models.KindStudent, "ann@x.com")
	require.NoError(t, err)
	assert.Nil(t, stored.EmailOTP)
	assert.Nil(t, stored.ContactOTP)

	for _, channel := range []models.Channel{models.ChannelEmail, models.ChannelContact} {
		assert.ErrorIs(t, s.uc.VerifyCode(ctx, models.KindStudent, channel, stored.Identifier(channel), "111111"), accounts.ErrInvalidCode)
	}
}

func TestCompleteVerificationScenario(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t, "111111", "222222")

	registered, err := s.uc.Register(ctx, models.KindStudent, annRequest())
	require.NoError(t, err)

	partial, err := s.uc.CompleteVerification(ctx, registered.Pending, "111111", "999999")
	require.NoError(t, err)
	assert.True(t, partial.Email.Verified)
	assert.ErrorIs(t, partial.Contact.Err, accounts.ErrInvalidCode)
	assert.False(t, partial.FullyVerified)

	full, err := s.uc.CompleteVerification(ctx, registered.Pending, "", "222222")
	require.NoError(t, err)
	assert.Equal(t, "already verified", full.Email.Message)
	assert.True(t, full.Contact.Verified)
	assert.True(t, full.FullyVerified)
}

func TestResendTwiceIssuesDistinctCodes(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t, "111111", "222222", "333333", "444444")

	_, err := s.uc.Register(ctx, models.KindStudent, annRequest())
	require.NoError(t, err)

	_, err = s.uc.Resend(ctx, models.KindStudent, models.ChannelEmail, "ann@x.com")
	require.NoError(t, err)
	first, err := s.repo.FindByEmail(ctx, models.KindStudent, "ann@x.com")
	require.NoError(t, err)

	s.clock = s.clock.Add(30 * time.Second)
	_, err = s.uc.Resend(ctx, models.KindStudent, models.ChannelEmail, "ann@x.com")
	require.NoError(t, err)
	second, err := s.repo.FindByEmail(ctx, models.KindStudent, "ann@x.com")
	require.NoError(t, err)

	require.NotNil(t, first.EmailOTP)
	require.NotNil(t, second.EmailOTP)
	assert.Equal(t, "333333", *first.EmailOTP)
	assert.Equal(t, "444444", *second.EmailOTP)
	assert.True(t, second.EmailOTPExpiresAt.After(*first.EmailOTPExpiresAt))

	// only the latest code verifies
	assert.ErrorIs(t, s.uc.VerifyCode(ctx, models.KindStudent, models.ChannelEmail, "ann@x.com", "333333"), accounts.ErrInvalidCode)
	assert.NoError(t, s.uc.VerifyCode(ctx, models.KindStudent, models.ChannelEmail, "ann@x.com", "444444"))

	// the contact channel was never touched
	assert.Equal(t, "222222", *second.ContactOTP)
}
