package transfer

import "errors"

var (
	// ErrValidation covers malformed input caught before any store access.
	ErrValidation = errors.New("invalid transfer request")
	// ErrAccountNotAuthorized means the source account is missing, not owned
	// by the requester, or not active.
	ErrAccountNotAuthorized = errors.New("source account not found or not authorized")
	// ErrInsufficientFunds means the source balance cannot cover amount + fee.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrAccountNotFound means the destination account is missing or inactive.
	ErrAccountNotFound = errors.New("destination account not found")
	// ErrInvalidPIN means PIN verification against the requester failed.
	ErrInvalidPIN = errors.New("transfer PIN verification failed")
	// ErrTransferFailed wraps infrastructure failures (store errors, lock
	// timeouts). The unit of work was rolled back; callers may retry.
	ErrTransferFailed = errors.New("transfer failed")
)
