package httperr

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Rejection codes surfaced verbatim to the transport layer.
const (
	CodePast       = "past"
	CodeConflict   = "conflict"
	CodeInvalid    = "invalid"
	CodeNotFound   = "not_found"
	CodeAuthFailed = "auth_failed"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the rejection code, or "" for faults.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// IsUniqueViolation reports whether err is the storage layer refusing a
// duplicate start_time. gorm normalizes this for the postgres driver;
// the sqlite driver still reports it as a raw message.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
