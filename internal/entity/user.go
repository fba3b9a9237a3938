package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTenantID owns every lead whose receiving number is not registered.
const DefaultTenantID = "1"

// UnclaimedPasswordHash marks a seeded account nobody has signed up for yet.
// It never matches a bcrypt comparison.
const UnclaimedPasswordHash = "!"

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrPhoneNumberIDInUse = errors.New("phone number id already in use")
)

// WhatsAppCredentials are the optional per-tenant Cloud API settings.
// Empty values fall back to the process-wide defaults.
type WhatsAppCredentials struct {
	AccessToken   string `db:"wa_access_token" json:"access_token,omitempty"`
	PhoneNumberID string `db:"wa_phone_number_id" json:"phone_number_id,omitempty"`
	VerifyToken   string `db:"wa_verify_token" json:"verify_token,omitempty"`
}

type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`

	WhatsAppCredentials
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByPhoneNumberID(ctx context.Context, phoneNumberID string) (*User, error)
	ExistsByVerifyToken(ctx context.Context, token string) (bool, error)
	UpdateWhatsAppCredentials(ctx context.Context, userID string, creds WhatsAppCredentials) error
	Claim(ctx context.Context, userID, passwordHash string) error
}

// NewUser builds a user with a fresh id. The password must already be hashed.
func NewUser(email, passwordHash string) (*User, error) {
	u := &User{
		ID:           uuid.New().String(),
		Email:        strings.TrimSpace(email),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) Unclaimed() bool {
	return u.PasswordHash == UnclaimedPasswordHash
}

func (u *User) Validate() error {
	if u.Email == "" {
		return errors.New("email is required")
	}
	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}
	return nil
}
