// backend/src/models/importrun.go
package models

import "time"

// ImportRun is the stored summary of one statement file import. Only the
// summary and its warnings are persisted; the parsed transactions themselves
// are handed to the caller and kept in a short-lived cache.
type ImportRun struct {
	ID               string    `json:"id"`
	FileName         string    `json:"file_name"`
	FileKind         string    `json:"file_kind"`
	Format           string    `json:"format,omitempty"`
	TransactionCount int       `json:"transaction_count"`
	WarningCount     int       `json:"warning_count"`
	CreatedAt        time.Time `json:"created_at"`
}
