// backend/src/services/interfaces.go
package services

import (
	"io"

	"github.com/username/kontoflow/backend/src/models"
)

// ImportResult is what one statement file upload produces: the canonical
// transactions in file order plus everything the review surface needs to
// show the user what happened.
type ImportResult struct {
	RunID            string                        `json:"run_id"`
	FileName         string                        `json:"file_name"`
	FileKind         models.FileKind               `json:"file_kind"`
	Format           models.FormatIdentifier       `json:"format,omitempty"`
	Transactions     []models.CanonicalTransaction `json:"transactions"`
	Warnings         []models.ParseWarning         `json:"warnings"`
	TransactionCount int                           `json:"transaction_count"`
	WarningCount     int                           `json:"warning_count"`
}

// ImportService is the core statement ingestion entry point: one file in,
// one ordered record sequence out. Persisting or deduplicating the parsed
// transactions is the caller's concern, not this service's.
type ImportService interface {
	// ProcessUpload parses one statement file. formatHint is consulted only
	// when dialect detection yields unrecognized. With preview set, the
	// parse is not recorded as a run.
	ProcessUpload(fileReader io.Reader, fileName string, formatHint models.FormatIdentifier, preview bool) (*ImportResult, error)
	// GetImportResult returns a recently parsed result from the cache.
	GetImportResult(runID string) (*ImportResult, bool)
	GetImportRun(runID string) (*models.ImportRun, error)
	ListImportRuns(limit int) ([]models.ImportRun, error)
}
