// backend/src/parsers/tokenize.go
package parsers

import "strings"

// SplitSemicolonLine splits a semicolon-delimited statement line into fields
// and strips one layer of surrounding double quotes per field. The observed
// German bank dialects never embed semicolons inside quoted fields, so a
// naive split is sufficient here.
func SplitSemicolonLine(line string) []string {
	fields := strings.Split(line, ";")
	for i, f := range fields {
		fields[i] = stripQuotes(f)
	}
	return fields
}

// ParseCSVLine splits a comma-delimited line with quote awareness: commas
// inside double-quoted fields do not split, and the quotes themselves are
// removed. Needed for Revolut/C24/Kontist/Finom style exports whose
// description fields may contain commas.
func ParseCSVLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

func stripQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
