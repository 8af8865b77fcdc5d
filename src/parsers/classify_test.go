// backend/src/parsers/classify_test.go
package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/username/kontoflow/backend/src/models"
)

func TestDetectFileKind(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		content  string
		want     models.FileKind
	}{
		{"xml extension", "statement.xml", "anything", models.FileKindCAMT053},
		{"xml declaration", "export.dat", "<?xml version=\"1.0\"?><Document></Document>", models.FileKindCAMT053},
		{"document element without declaration", "export.dat", "<Document xmlns=\"urn:iso\"></Document>", models.FileKindCAMT053},
		{"mt940 in filename", "konto_MT940_export.txt", "irrelevant", models.FileKindMT940},
		{"sta extension", "auszug.sta", "irrelevant", models.FileKindMT940},
		{"swift tags in content", "auszug.txt", ":20:STARTUMS\n:61:2301020102D123,45NTRF\n", models.FileKindMT940},
		{"tag 61 alone is not mt940", "auszug.txt", ":61:2301020102D123,45NTRF\n", models.FileKindCSV},
		{"plain csv", "umsaetze.csv", "Buchungstag;Betrag\n", models.FileKindCSV},
		{"empty file defaults to csv", "upload", "", models.FileKindCSV},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFileKind(tt.fileName, tt.content))
		})
	}
}
