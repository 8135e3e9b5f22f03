package domain

import "github.com/google/uuid"

// ExportReport summarises one export-by-tag run.
//
// Matched counts the photos carrying the tag; Copied counts the ones that
// actually landed in Folder. Matched - Copied == len(Failures).
// Matched == 0 means no photo carries the tag, which callers usually narrate
// differently from a partial failure.
type ExportReport struct {
	ID       uuid.UUID
	Tag      string
	Folder   string // absolute path of the COLLECTION_ folder
	Matched  int
	Copied   int
	Failures []CopyFailure
}

// CopyFailure records a single photo that could not be copied during an export.
type CopyFailure struct {
	FileName string
	Err      error
}

// Error implements error so a failure can be logged or wrapped directly.
func (f CopyFailure) Error() string {
	return f.FileName + ": " + f.Err.Error()
}

// Unwrap exposes the underlying I/O error.
func (f CopyFailure) Unwrap() error {
	return f.Err
}
