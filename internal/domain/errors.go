package domain

import "errors"

// ErrNotFound is returned when the requested photo or tag does not exist
// in the loaded collection.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. empty tag, missing destination, unknown direction).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrStorage is returned when the filesystem cannot serve an operation:
// an unreadable import folder or an export folder that cannot be created.
// Per-file copy failures during an export are NOT reported through this
// error; they are collected in ExportReport.Failures instead.
var ErrStorage = errors.New("storage error")
