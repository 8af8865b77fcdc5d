// backend/src/parsers/parser.go
package parsers

import (
	"io"

	"github.com/username/kontoflow/backend/src/models"
)

// StatementParser converts one statement file into canonical transactions.
// Implementations are best-effort by contract: malformed rows or entries are
// reported as warnings and skipped, never aborting the whole file, and a
// well-formed call returns an error only when the input cannot be read or is
// not the expected container format at all (e.g. broken XML).
type StatementParser interface {
	Parse(r io.Reader) ([]models.CanonicalTransaction, []models.ParseWarning, error)
}
