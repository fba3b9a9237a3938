package usecase

import (
	"fmt"
	"net/mail"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateSignupInput(input SignupInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if addr, err := mail.ParseAddress(input.Email); err != nil || addr.Address != input.Email {
		// bare addresses only, no "Name <addr>" form
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.Password == "" {
		errors = append(errors, ValidationError{"password", "is required"})
	} else if len(input.Password) > 72 {
		// bcrypt only looks at the first 72 bytes
		errors = append(errors, ValidationError{"password", "must not exceed 72 bytes"})
	}

	return errors
}

func ValidateWhatsAppSettings(input WhatsAppSettingsInput) []ValidationError {
	var errors []ValidationError

	if input.PhoneNumberID != "" && !isDigits(input.PhoneNumberID) {
		errors = append(errors, ValidationError{"phone_number_id", "must contain only digits"})
	}
	if strings.ContainsAny(input.AccessToken, " \t\r\n") {
		errors = append(errors, ValidationError{"access_token", "must not contain whitespace"})
	}

	return errors
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
