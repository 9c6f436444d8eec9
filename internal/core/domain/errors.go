package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Run Errors.

	// ErrCritical indicates a failure that aborts the whole run.
	ErrCritical = errors.New("critical error")

	// ErrEmptyDocument indicates the source document has no pages.
	ErrEmptyDocument = errors.New("document has no pages")

	// ErrNoPayslips indicates the output directory holds no payslip files.
	ErrNoPayslips = errors.New("no files found")

	// ErrRunInProgress indicates a stage is already running.
	ErrRunInProgress = errors.New("run in progress")

	// Configuration Errors.

	// ErrConfigInvalid indicates a required setting is missing or malformed.
	ErrConfigInvalid = errors.New("invalid configuration")

	// Authentication Errors.

	// ErrCredentialsMissing indicates the OAuth client descriptor file does not exist.
	ErrCredentialsMissing = errors.New("credentials file not found")

	// ErrAuthRequired indicates no usable token is stored and interactive login is needed.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthExpired indicates the stored token has expired and refresh failed.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrRateLimited indicates the storage API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
