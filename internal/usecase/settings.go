package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/xavierca1/leadcapture/internal/entity"
)

type SettingsUseCase struct {
	Users entity.UserRepositoryInterface
}

func NewSettingsUseCase(users entity.UserRepositoryInterface) *SettingsUseCase {
	return &SettingsUseCase{Users: users}
}

func (uc *SettingsUseCase) Get(ctx context.Context, userID string) (*entity.User, error) {
	return uc.Users.FindByID(ctx, userID)
}

// UpdateWhatsApp replaces the tenant's credentials. Blank values clear the
// field so the process defaults apply again.
func (uc *SettingsUseCase) UpdateWhatsApp(ctx context.Context, userID string, input WhatsAppSettingsInput) error {
	input.AccessToken = strings.TrimSpace(input.AccessToken)
	input.PhoneNumberID = strings.TrimSpace(input.PhoneNumberID)
	input.VerifyToken = strings.TrimSpace(input.VerifyToken)

	if errs := ValidateWhatsAppSettings(input); len(errs) > 0 {
		return &DomainError{Code: "INVALID_SETTINGS", Message: errs[0].Error()}
	}

	err := uc.Users.UpdateWhatsAppCredentials(ctx, userID, entity.WhatsAppCredentials{
		AccessToken:   input.AccessToken,
		PhoneNumberID: input.PhoneNumberID,
		VerifyToken:   input.VerifyToken,
	})
	if errors.Is(err, entity.ErrPhoneNumberIDInUse) {
		return ErrPhoneNumberIDInUse
	}
	return err
}
