package tui

import "errors"

// ErrMissingSplitter is returned when the split service is not provided.
var ErrMissingSplitter = errors.New("tui: split service is required")

// ErrMissingUploader is returned when the upload service is not provided.
var ErrMissingUploader = errors.New("tui: upload service is required")

// ErrInvalidPorts is returned when no ports are provided.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
