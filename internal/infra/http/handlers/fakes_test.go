package handlers

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xavierca1/leadcapture/internal/entity"
	"github.com/xavierca1/leadcapture/internal/infra/http/session"
	"github.com/xavierca1/leadcapture/internal/infra/http/views"
	"github.com/xavierca1/leadcapture/internal/infra/integration/whatsapp"
	"github.com/xavierca1/leadcapture/internal/usecase"
)

func newTestPages(t *testing.T) *Pages {
	t.Helper()
	renderer, err := views.New()
	require.NoError(t, err)
	return NewPages(session.NewManager("test-secret", false, zap.NewNop()), renderer, zap.NewNop())
}

// memLeadRepo is an in-memory lead store.
type memLeadRepo struct {
	mu     sync.Mutex
	leads  []*entity.Lead
	nextID int64
	err    error
}

func (m *memLeadRepo) Insert(ctx context.Context, lead *entity.Lead) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.nextID++
	lead.ID = m.nextID
	cp := *lead
	m.leads = append(m.leads, &cp)
	return nil
}

func (m *memLeadRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []*entity.Lead{}
	for _, l := range m.leads {
		if l.UserID == userID {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// memUserRepo is an in-memory user store keyed by id.
type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo(users ...*entity.User) *memUserRepo {
	m := &memUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return entity.ErrEmailAlreadyExists
		}
	}
	m.users[u.ID] = u
	return nil
}

func (m *memUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, entity.ErrUserNotFound
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (m *memUserRepo) FindByPhoneNumberID(ctx context.Context, phoneNumberID string) (*entity.User, error) {
	for _, u := range m.users {
		if phoneNumberID != "" && u.PhoneNumberID == phoneNumberID {
			return u, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (m *memUserRepo) ExistsByVerifyToken(ctx context.Context, token string) (bool, error) {
	for _, u := range m.users {
		if token != "" && u.VerifyToken == token {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserRepo) UpdateWhatsAppCredentials(ctx context.Context, userID string, creds entity.WhatsAppCredentials) error {
	u, ok := m.users[userID]
	if !ok {
		return entity.ErrUserNotFound
	}
	u.WhatsAppCredentials = creds
	return nil
}

func (m *memUserRepo) Claim(ctx context.Context, userID, passwordHash string) error {
	u, ok := m.users[userID]
	if !ok || !u.Unclaimed() {
		return entity.ErrEmailAlreadyExists
	}
	u.PasswordHash = passwordHash
	return nil
}

type sentMessage struct {
	To    string
	Body  string
	Creds whatsapp.Credentials
}

type recordingSender struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (s *recordingSender) SendText(ctx context.Context, to, body string, creds whatsapp.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentMessage{To: to, Body: body, Creds: creds})
	return s.err
}

type MockLeadCapturer struct {
	mock.Mock
}

func (m *MockLeadCapturer) Execute(ctx context.Context, in usecase.InboundMessage) usecase.CaptureLeadOutput {
	args := m.Called(ctx, in)
	return args.Get(0).(usecase.CaptureLeadOutput)
}

type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, mode, token string) bool {
	args := m.Called(ctx, mode, token)
	return args.Bool(0)
}

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Signup(ctx context.Context, input usecase.SignupInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthenticator) Login(ctx context.Context, input usecase.LoginInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}
