// backend/src/parsers/locale_test.go
package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGermanDate(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"german full year", "31.12.2023", "2023-12-31"},
		{"iso passthrough", "2023-12-31", "2023-12-31"},
		{"iso is idempotent", "2023-01-05", "2023-01-05"},
		{"two digit year below pivot", "01.01.49", "2049-01-01"},
		{"two digit year above pivot", "01.01.51", "1951-01-01"},
		{"pivot year maps to 2050", "01.01.50", "2050-01-01"},
		{"single digit day and month", "1.2.2023", "2023-02-01"},
		{"surrounding whitespace", " 03.04.2022 ", "2022-04-03"},
		{"malformed passes through", "31/12/2023", "31/12/2023"},
		{"wrong segment count passes through", "31.12", "31.12"},
		{"empty passes through", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseGermanDate(tt.token))
		})
	}
}

func TestParseGermanNumber(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"thousands and decimal separator", "1.234,56", "1234.56"},
		{"plain decimal comma", "12,30", "12.3"},
		{"negative amount", "-1.234,56", "-1234.56"},
		{"integer", "500", "500"},
		{"empty yields zero", "", "0"},
		{"garbage yields zero", "abc", "0"},
		{"lone separator yields zero", ",", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseGermanNumber(tt.token).String())
		})
	}
}

func TestParsePlainNumber(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"dot decimal", "1234.56", "1234.56"},
		{"comma thousands", "1,234.56", "1234.56"},
		{"negative", "-50.00", "-50"},
		{"empty yields zero", "", "0"},
		{"garbage yields zero", "n/a", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePlainNumber(tt.token).String())
		})
	}
}
