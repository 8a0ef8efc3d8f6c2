package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrUnsupportedSchema   = errors.New("Unsupported schema")
	ErrInvalidJsonFormat   = errors.New("invalid JSON format")
	ErrInvalidNumberFormat = errors.New("invalid number format")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")

	// wallet and transaction flow
	ErrWalletNotConnected = errors.New("wallet is not connected")
	ErrUnauthorized       = errors.New("unauthorized")
	// ErrNetworkMismatch is returned after a network switch was requested instead
	// of submitting a transaction. The caller is expected to retry.
	ErrNetworkMismatch = errors.New("wallet is connected to another network, switch requested")
	// ErrSubmitting is returned while the same control already has a transaction in flight
	ErrSubmitting = errors.New("a transaction is already being submitted")
	// ErrTransactionFailed wraps any rejection from the contract layer
	ErrTransactionFailed = errors.New("transaction failed")
)
