package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/xavierca1/leadcapture/internal/entity"
)

const (
	emailConstraint         = "users_email_key"
	phoneNumberIDConstraint = "users_wa_phone_number_id_key"
)

const selectUser = `
	SELECT id, email, password_hash, created_at,
		COALESCE(wa_access_token, '')    AS wa_access_token,
		COALESCE(wa_phone_number_id, '') AS wa_phone_number_id,
		COALESCE(wa_verify_token, '')    AS wa_verify_token
	FROM users
`

type UserRepository struct {
	DB *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.DB.ExecContext(ctx, query, u.ID, u.Email, u.PasswordHash, u.CreatedAt)
	if err != nil {
		if uniqueConstraint(err) != "" {
			return entity.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, selectUser+` WHERE id = $1`, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, selectUser+` WHERE email = $1`, email)
}

func (r *UserRepository) FindByPhoneNumberID(ctx context.Context, phoneNumberID string) (*entity.User, error) {
	if phoneNumberID == "" {
		return nil, entity.ErrUserNotFound
	}
	return r.findOne(ctx, selectUser+` WHERE wa_phone_number_id = $1`, phoneNumberID)
}

// ExistsByVerifyToken reports whether any tenant registered this webhook
// verification token.
func (r *UserRepository) ExistsByVerifyToken(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	var exists bool
	err := r.DB.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM users WHERE wa_verify_token = $1)`, token)
	return exists, err
}

func (r *UserRepository) UpdateWhatsAppCredentials(ctx context.Context, userID string, creds entity.WhatsAppCredentials) error {
	query := `
		UPDATE users
		SET wa_access_token = $2, wa_phone_number_id = $3, wa_verify_token = $4
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query,
		userID,
		nullString(creds.AccessToken),
		nullString(creds.PhoneNumberID),
		nullString(creds.VerifyToken),
	)
	if err != nil {
		if uniqueConstraint(err) == phoneNumberIDConstraint {
			return entity.ErrPhoneNumberIDInUse
		}
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}

// Claim sets the password of a seeded account. It only succeeds once: a
// claimed row reports ErrEmailAlreadyExists.
func (r *UserRepository) Claim(ctx context.Context, userID, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $2, created_at = NOW()
		WHERE id = $1 AND password_hash = $3
	`

	res, err := r.DB.ExecContext(ctx, query, userID, passwordHash, entity.UnclaimedPasswordHash)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrEmailAlreadyExists
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	if err := r.DB.GetContext(ctx, &u, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
