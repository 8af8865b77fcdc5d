// backend/src/parsers/camt/parser_test.go
package camt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02">
  <BkToCstmrStmt>
    <Stmt>
      <Id>STMT-2023-001</Id>
      <Acct><Id><IBAN>CH9300762011623852957</IBAN></Id><Ccy>CHF</Ccy></Acct>
      <Ntry>
        <NtryRef>ENTRY-1</NtryRef>
        <Amt Ccy="CHF">50.00</Amt>
        <CdtDbtInd>DBIT</CdtDbtInd>
        <Sts>BOOK</Sts>
        <BookgDt><Dt>2023-09-01</Dt></BookgDt>
        <ValDt><Dt>2023-09-02</Dt></ValDt>
        <AcctSvcrRef>SVCR-REF-1</AcctSvcrRef>
        <NtryDtls>
          <TxDtls>
            <Refs><EndToEndId>E2E-1</EndToEndId></Refs>
            <RltdPties>
              <Cdtr><Nm>Stromwerk AG</Nm></Cdtr>
              <CdtrAcct><Id><IBAN>CH5604835012345678009</IBAN></Id></CdtrAcct>
            </RltdPties>
            <RmtInf>
              <Ustrd>Rechnung 2023-41</Ustrd>
              <Ustrd>Kundennummer 778</Ustrd>
            </RmtInf>
          </TxDtls>
        </NtryDtls>
        <AddtlNtryInf>Zahlungsauftrag</AddtlNtryInf>
      </Ntry>
      <Ntry>
        <NtryRef>ENTRY-2</NtryRef>
        <Amt Ccy="CHF">1200.00</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
        <Sts>BOOK</Sts>
        <BookgDt><Dt>2023-09-03</Dt></BookgDt>
        <NtryDtls>
          <TxDtls>
            <Refs><EndToEndId>NOTPROVIDED</EndToEndId><MndtId>MNDT-7</MndtId></Refs>
            <RltdPties>
              <Dbtr><Nm>Arbeitgeber GmbH</Nm></Dbtr>
              <DbtrAcct><Id><IBAN>DE89370400440532013000</IBAN></Id></DbtrAcct>
            </RltdPties>
          </TxDtls>
        </NtryDtls>
        <AddtlNtryInf>Gutschrift Lohn</AddtlNtryInf>
      </Ntry>
    </Stmt>
  </BkToCstmrStmt>
</Document>`

func TestParseDocument(t *testing.T) {
	txs, warnings, err := NewParser().Parse(strings.NewReader(sampleDocument))
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Empty(t, warnings)

	debit := txs[0]
	assert.Equal(t, "2023-09-01", debit.Date)
	assert.Equal(t, "2023-09-02", debit.ValueDate)
	assert.Equal(t, "-50", debit.Amount.String()) // DBIT inverts the unsigned amount
	assert.Equal(t, "Rechnung 2023-41 Kundennummer 778", debit.Description)
	assert.Equal(t, "SVCR-REF-1", debit.Reference)
	assert.Equal(t, "Stromwerk AG", debit.CounterpartName)
	assert.Equal(t, "CH5604835012345678009", debit.CounterpartIBAN)

	credit := txs[1]
	assert.Equal(t, "2023-09-03", credit.Date)
	assert.Equal(t, "2023-09-03", credit.ValueDate) // no ValDt: value date mirrors booking date
	assert.Equal(t, "1200", credit.Amount.String())
	assert.Equal(t, "Gutschrift Lohn", credit.Description) // no Ustrd: entry-level info
	assert.Equal(t, "MNDT-7", credit.Reference)            // NOTPROVIDED end-to-end id skipped
	assert.Equal(t, "Arbeitgeber GmbH", credit.CounterpartName)
	assert.Equal(t, "DE89370400440532013000", credit.CounterpartIBAN)
}

func TestEntryWithoutBookingDateIsSkipped(t *testing.T) {
	doc := `<Document><BkToCstmrStmt><Stmt>
      <Ntry>
        <NtryRef>BROKEN</NtryRef>
        <Amt Ccy="EUR">10.00</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
      </Ntry>
      <Ntry>
        <Amt Ccy="EUR">20.00</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
        <BookgDt><Dt>2023-09-05</Dt></BookgDt>
      </Ntry>
    </Stmt></BkToCstmrStmt></Document>`
	txs, warnings, err := NewParser().Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "20", txs[0].Amount.String())
	require.Len(t, warnings, 1)
	assert.Equal(t, 1, warnings[0].Line)
	assert.Contains(t, warnings[0].Message, "booking date")
	assert.Equal(t, "BROKEN", warnings[0].Raw)
}

func TestUnparsableAmountBecomesZero(t *testing.T) {
	doc := `<Document><BkToCstmrStmt><Stmt>
      <Ntry>
        <Amt Ccy="EUR">not-a-number</Amt>
        <CdtDbtInd>DBIT</CdtDbtInd>
        <BookgDt><Dt>2023-09-06</Dt></BookgDt>
      </Ntry>
    </Stmt></BkToCstmrStmt></Document>`
	txs, warnings, err := NewParser().Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Empty(t, warnings)
	assert.True(t, txs[0].Amount.IsZero())
}

func TestMalformedXMLFailsWholeFile(t *testing.T) {
	_, _, err := NewParser().Parse(strings.NewReader("<Document><BkToCstmrStmt>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CAMT.053")
}

func TestEntriesAcrossMultipleStatements(t *testing.T) {
	doc := `<Document><BkToCstmrStmt>
      <Stmt><Ntry><Amt Ccy="EUR">1.00</Amt><CdtDbtInd>CRDT</CdtDbtInd><BookgDt><Dt>2023-01-01</Dt></BookgDt></Ntry></Stmt>
      <Stmt><Ntry><Amt Ccy="EUR">2.00</Amt><CdtDbtInd>CRDT</CdtDbtInd><BookgDt><Dt>2023-02-01</Dt></BookgDt></Ntry></Stmt>
    </BkToCstmrStmt></Document>`
	txs, _, err := NewParser().Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Len(t, txs, 2)
}
