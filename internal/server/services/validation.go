package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/useraccounts/internal/common"
)

const (
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLength = 72
)

var emailPattern = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", common.ErrValidation, msg)
}

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validPassword requires ASCII letters and digits only, with at least one
// lower-case letter, one upper-case letter and one digit.
func validPassword(password string) bool {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return false
	}

	var lower, upper, digit bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		default:
			return false
		}
	}
	return lower && upper && digit
}

func validateRegistration(in RegisterInput) error {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" ||
		in.Email == "" || in.Password == "" {
		return validationError("invalid user data")
	}
	if !validEmail(in.Email) {
		return validationError("invalid email")
	}
	if !validPassword(in.Password) {
		return validationError("invalid password")
	}
	return nil
}
