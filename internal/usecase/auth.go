package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/xavierca1/leadcapture/internal/entity"
)

type AuthUseCase struct {
	Users entity.UserRepositoryInterface
	Cost  int
}

func NewAuthUseCase(users entity.UserRepositoryInterface) *AuthUseCase {
	return &AuthUseCase{Users: users, Cost: bcrypt.DefaultCost}
}

// Signup registers a new account. The plaintext password is never stored.
func (uc *AuthUseCase) Signup(ctx context.Context, input SignupInput) (*entity.User, error) {
	input.Email = strings.TrimSpace(input.Email)

	if input.Email == "" || input.Password == "" {
		return nil, ErrMissingCredentials
	}
	if errs := ValidateSignupInput(input); len(errs) > 0 {
		if errs[0].Field == "email" {
			return nil, ErrInvalidEmail
		}
		return nil, &DomainError{Code: "INVALID_PASSWORD", Message: "Password " + errs[0].Message}
	}

	existing, err := uc.Users.FindByEmail(ctx, input.Email)
	switch {
	case err == nil && !existing.Unclaimed():
		return nil, ErrEmailTaken
	case err != nil && !errors.Is(err, entity.ErrUserNotFound):
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.Cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if existing != nil {
		return uc.claim(ctx, existing, string(hash))
	}

	user, err := entity.NewUser(input.Email, string(hash))
	if err != nil {
		return nil, err
	}

	if err := uc.Users.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// claim takes over a seeded account (the default tenant) together with the
// leads it already owns.
func (uc *AuthUseCase) claim(ctx context.Context, user *entity.User, hash string) (*entity.User, error) {
	if err := uc.Users.Claim(ctx, user.ID, hash); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("claim user: %w", err)
	}

	claimed := *user
	claimed.PasswordHash = hash
	return &claimed, nil
}

// Login checks the password. Unknown email and wrong password are
// indistinguishable to the caller.
func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*entity.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := uc.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
