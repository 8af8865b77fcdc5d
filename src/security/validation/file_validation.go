// backend/src/security/validation/file_validation.go
package validation

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/username/kontoflow/backend/src/logger"
)

// AllowedClientContentTypes is a map for quick lookup of allowed
// client-declared MIME types. Bank statement exports arrive as CSV, plain
// text (MT940), or XML (CAMT.053); browsers frequently mislabel all three.
var AllowedClientContentTypes = map[string]bool{
	"text/csv":                 true,
	"application/csv":          true,
	"application/vnd.ms-excel": true, // older Excel installs claim this for CSV
	"text/plain":               true,
	"text/xml":                 true,
	"application/xml":          true,
	"application/octet-stream": true, // generic fallback; parsing decides
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": false, // real .xlsx is not a statement export
}

// ValidateClientContentType checks the Content-Type header provided by the client.
func ValidateClientContentType(contentType string) error {
	normalized := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	if allowed, exists := AllowedClientContentTypes[normalized]; !exists || !allowed {
		logger.L.Warn("Disallowed client-declared Content-Type", "contentType", contentType)
		return fmt.Errorf("client-declared file type '%s' is not allowed for statement upload", contentType)
	}
	return nil
}

// ValidateFileContentByMagicBytes checks the actual file content signature
// and returns the detected content type. The read pointer is reset so the
// parser can read the full file afterwards.
func ValidateFileContentByMagicBytes(file io.ReadSeeker) (string, error) {
	if file == nil {
		return "", fmt.Errorf("file is nil")
	}

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read file for content type checking: %w", err)
	}

	if _, seekErr := file.Seek(0, io.SeekStart); seekErr != nil {
		return "", fmt.Errorf("failed to reset file read pointer: %w", seekErr)
	}

	detectedContentType := http.DetectContentType(buffer[:n])
	detectedContentType = strings.ToLower(strings.Split(detectedContentType, ";")[0])

	allowedDetectedTypes := map[string]bool{
		"text/plain":               true,
		"text/csv":                 true,
		"text/xml":                 true,
		"application/csv":          true,
		"application/octet-stream": true,
	}
	if !allowedDetectedTypes[detectedContentType] {
		logger.L.Warn("File content signature rejected", "detectedType", detectedContentType)
		return detectedContentType, fmt.Errorf("file content looks like '%s', not a bank statement export", detectedContentType)
	}
	return detectedContentType, nil
}
