package identity

import "errors"

// AuthenticationError is a rejection from login, register or the restore
// check. The message is ready for direct display.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

// TransactionError is a failed purchase, such as buying a shield without
// enough coins. Counters stay untouched when one is returned.
type TransactionError struct {
	Message string
}

func (e *TransactionError) Error() string { return e.Message }

// IsAuthentication reports whether err is an AuthenticationError.
func IsAuthentication(err error) bool {
	var ae *AuthenticationError
	return errors.As(err, &ae)
}

// IsTransaction reports whether err is a TransactionError.
func IsTransaction(err error) bool {
	var te *TransactionError
	return errors.As(err, &te)
}
