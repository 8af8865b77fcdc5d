// backend/src/parsers/mt940/parser_test.go
package mt940

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/kontoflow/backend/src/models"
)

func parse(t *testing.T, content string) ([]models.CanonicalTransaction, []models.ParseWarning) {
	t.Helper()
	txs, warnings, err := NewParser().Parse(strings.NewReader(content))
	require.NoError(t, err)
	return txs, warnings
}

const sampleStatement = `:20:STARTUMS
:25:10020030/1234567
:28C:5/1
:60F:C230101EUR1000,00
:61:2301020102D123,45NTRFNONREF//B4E8PO
:86:116?00SEPA-LASTSCHRIFT?20Miete Januar?32MUSTERMANN, MAX
:61:230103C50,00NTRF471123
:86:166?00GUTSCHRIFT?20Rueckerstattung
Versandkosten
:62F:C230131EUR926,55
`

func TestParseStatement(t *testing.T) {
	txs, warnings := parse(t, sampleStatement)
	require.Len(t, txs, 2)
	assert.Empty(t, warnings)

	debit := txs[0]
	assert.Equal(t, "2023-01-02", debit.Date)
	assert.Equal(t, "2023-01-02", debit.ValueDate)
	assert.Equal(t, "-123.45", debit.Amount.String())
	assert.Equal(t, "116 SEPA-LASTSCHRIFT Miete Januar MUSTERMANN, MAX", debit.Description)
	assert.Empty(t, debit.Reference) // NONREF normalizes to empty

	credit := txs[1]
	assert.Equal(t, "2023-01-03", credit.Date)
	assert.Equal(t, "50", credit.Amount.String())
	assert.Equal(t, "471123", credit.Reference)
	// Continuation lines of the narrative collapse into one string.
	assert.Equal(t, "166 GUTSCHRIFT Rueckerstattung Versandkosten", credit.Description)
}

func TestCreditDebitMarkers(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		amount string
	}{
		{"debit is negative", ":61:230601D10,00NTRFREF1\n:86:test\n", "-10"},
		{"credit is positive", ":61:230601C10,00NTRFREF1\n:86:test\n", "10"},
		{"reversal debit is negative", ":61:230601RD10,00NTRFREF1\n:86:test\n", "-10"},
		{"reversal credit is positive", ":61:230601RC10,00NTRFREF1\n:86:test\n", "10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs, _ := parse(t, tt.line)
			require.Len(t, txs, 1)
			assert.Equal(t, tt.amount, txs[0].Amount.String())
		})
	}
}

func TestTwoDigitYearPivot(t *testing.T) {
	txs, _ := parse(t, ":61:990104C1,00NTRFX\n:86:old\n:61:010104C1,00NTRFX\n:86:new\n")
	require.Len(t, txs, 2)
	assert.Equal(t, "1999-01-04", txs[0].Date)
	assert.Equal(t, "2001-01-04", txs[1].Date)
}

func TestBookingDateFromOptionalField(t *testing.T) {
	// Value date 2023-01-05, booking date 01-03 of the same year.
	txs, _ := parse(t, ":61:2301050103D20,00NTRFX\n:86:x\n")
	require.Len(t, txs, 1)
	assert.Equal(t, "2023-01-03", txs[0].Date)
	assert.Equal(t, "2023-01-05", txs[0].ValueDate)
}

func TestAmountWithoutDecimals(t *testing.T) {
	// SWIFT allows a trailing comma with no decimal digits.
	txs, _ := parse(t, ":61:230601C250,NTRFX\n:86:x\n")
	require.Len(t, txs, 1)
	assert.Equal(t, "250", txs[0].Amount.String())
}

func TestStatementLineWithoutNarrativeIsDropped(t *testing.T) {
	content := ":61:230601C10,00NTRFX\n:61:230602C20,00NTRFY\n:86:only the second\n:62F:C230630EUR30,00\n"
	txs, warnings := parse(t, content)
	require.Len(t, txs, 1)
	assert.Equal(t, "20", txs[0].Amount.String())
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, ":86:")
}

func TestUnparsableStatementLine(t *testing.T) {
	txs, warnings := parse(t, ":61:garbled\n:86:narrative\n")
	assert.Empty(t, txs)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, ":61:")
}

func TestNonStatementTextIsIgnored(t *testing.T) {
	txs, warnings := parse(t, "random preamble\n:20:REF\n:62F:C230630EUR0,00\n")
	assert.Empty(t, txs)
	assert.Empty(t, warnings)
}
