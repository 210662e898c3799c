// Package validation holds boundary input checks shared by handlers and
// services.
package validation

import (
	"errors"
	"net/mail"
	"unicode"
)

const (
	minPasswordLen = 8
	pinMinLen      = 4
	pinMaxLen      = 6
)

// Email checks basic address syntax.
func Email(address string) error {
	if _, err := mail.ParseAddress(address); err != nil {
		return errors.New("invalid email address")
	}
	return nil
}

// Password enforces the minimum password policy.
func Password(password string) error {
	if len(password) < minPasswordLen {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

// TransferPIN checks the PIN shape: 4-6 digits.
func TransferPIN(pin string) error {
	if len(pin) < pinMinLen || len(pin) > pinMaxLen {
		return errors.New("pin must be 4-6 digits")
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return errors.New("pin must contain digits only")
		}
	}
	return nil
}

// TransactionType reports whether t is a user-recordable type.
func TransactionType(t string) bool {
	return t == "income" || t == "expense"
}
