// backend/src/parsers/classify.go
package parsers

import (
	"strings"

	"github.com/username/kontoflow/backend/src/models"
)

// DetectFileKind decides from filename and content sniffing whether a file
// is a CAMT.053 XML document, an MT940 SWIFT message, or delimited text.
// It runs once per file, before any parser is invoked.
func DetectFileKind(fileName, content string) models.FileKind {
	lowerName := strings.ToLower(fileName)

	if strings.HasSuffix(lowerName, ".xml") ||
		strings.HasPrefix(strings.TrimSpace(content), "<?xml") ||
		strings.Contains(content, "<Document") {
		return models.FileKindCAMT053
	}

	if strings.Contains(lowerName, "mt940") ||
		strings.HasSuffix(lowerName, ".sta") ||
		(strings.Contains(content, ":20:") && strings.Contains(content, ":61:")) {
		return models.FileKindMT940
	}

	return models.FileKindCSV
}
