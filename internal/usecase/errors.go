package usecase

import "errors"

// DomainError carries a message that is safe to show to the end user.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

var (
	ErrMissingCredentials = &DomainError{Code: "MISSING_FIELDS", Message: "Email and password are required"}
	ErrInvalidEmail       = &DomainError{Code: "INVALID_EMAIL", Message: "Email is invalid"}
	ErrEmailTaken         = &DomainError{Code: "EMAIL_TAKEN", Message: "Email already registered"}
	ErrInvalidCredentials = &DomainError{Code: "INVALID_CREDENTIALS", Message: "Wrong email or password"}
	ErrPhoneNumberIDInUse = &DomainError{Code: "PHONE_NUMBER_ID_IN_USE", Message: "Phone number id already in use"}
)
