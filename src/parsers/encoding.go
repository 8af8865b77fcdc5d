// backend/src/parsers/encoding.go
package parsers

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// NormalizeContent converts raw statement file bytes into UTF-8 text ready
// for detection and parsing. German banks still ship CSV exports in
// ISO-8859-1/Windows-1252, so anything that is not valid UTF-8 is transcoded
// from Windows-1252. A UTF-8 byte order mark, if present, is stripped.
func NormalizeContent(raw []byte) string {
	if !utf8.Valid(raw) {
		if decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw); err == nil {
			raw = decoded
		}
	}
	return strings.TrimPrefix(string(raw), "\ufeff")
}
