package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrChainIDMismatch is returned when the RPC reports a different chain than configured
	ErrChainIDMismatch = errors.New("chain ID mismatch")

	// ErrNetworkNotConfigured is returned when no network was selected or the name is unknown
	ErrNetworkNotConfigured = errors.New("network not configured")

	// ErrSenderNotConfigured is returned when the selected sender is missing or has no key
	ErrSenderNotConfigured = errors.New("sender not configured")

	// ErrUnsupportedSender is returned for sender types other than private_key
	ErrUnsupportedSender = errors.New("unsupported sender type")

	// ErrArtifactNotFound is returned when no compiled artifact matches a contract name
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrInvalidArtifact is returned when an artifact lacks a usable ABI or bytecode
	ErrInvalidArtifact = errors.New("invalid artifact")

	// ErrInvalidArgument is returned when a constructor argument can't be coerced to its ABI type
	ErrInvalidArgument = errors.New("invalid constructor argument")
)

// UnsetEnvVarErr is returned when a config value references an environment variable
// that is not set.
type UnsetEnvVarErr struct {
	Field  string
	EnvVar string
}

func (e UnsetEnvVarErr) Error() string {
	return fmt.Sprintf("%s references ${%s} which is not set (add it to .env or export it)", e.Field, e.EnvVar)
}

// ArgumentCountErr is returned when the number of constructor arguments doesn't match the ABI.
type ArgumentCountErr struct {
	Contract string
	Expected int
	Actual   int
}

func (e ArgumentCountErr) Error() string {
	return fmt.Sprintf("%s constructor expects %d arguments, got %d", e.Contract, e.Expected, e.Actual)
}
