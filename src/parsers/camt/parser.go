// backend/src/parsers/camt/parser.go

// Package camt parses ISO 20022 CAMT.053 bank-to-customer statements,
// emitting one canonical transaction per booked Ntry element.
package camt

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/username/kontoflow/backend/src/logger"
	"github.com/username/kontoflow/backend/src/models"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse unmarshals the XML document and walks every statement's entries.
// An entry that cannot be converted is skipped with a warning; the rest of
// the file keeps parsing, matching the per-row policy of the CSV dialects.
func (p *Parser) Parse(r io.Reader) ([]models.CanonicalTransaction, []models.ParseWarning, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("reading CAMT.053 file: %w", err)
	}

	var doc document
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("unmarshalling CAMT.053 document: %w", err)
	}

	var txs []models.CanonicalTransaction
	var warnings []models.ParseWarning

	entryNo := 0
	for _, stmt := range doc.BkToCstmrStmt.Stmt {
		for _, e := range stmt.Ntry {
			entryNo++
			tx, err := entryToTransaction(e)
			if err != nil {
				logger.L.Warn("Skipping CAMT.053 entry", "entry", entryNo, "error", err)
				warnings = append(warnings, models.ParseWarning{
					Line:    entryNo,
					Message: fmt.Sprintf("skipping entry: %v", err),
					Raw:     e.NtryRef,
				})
				continue
			}
			txs = append(txs, tx)
		}
	}
	return txs, warnings, nil
}

func entryToTransaction(e entry) (models.CanonicalTransaction, error) {
	date := strings.TrimSpace(e.BookgDt.Dt)
	if date == "" {
		return models.CanonicalTransaction{}, errors.New("entry has no booking date")
	}

	valueDate := strings.TrimSpace(e.ValDt.Dt)
	if valueDate == "" {
		valueDate = date
	}

	// Amount stays lenient like everywhere else: a garbled Amt text
	// becomes zero for human review, not a dropped entry.
	amount, err := decimal.NewFromString(strings.TrimSpace(e.Amt.Value))
	if err != nil {
		amount = decimal.Zero
	}
	if e.CdtDbtInd == "DBIT" {
		amount = amount.Neg()
	}

	return models.CanonicalTransaction{
		Date:            date,
		ValueDate:       valueDate,
		Amount:          amount,
		Description:     entryDescription(e),
		Reference:       entryReference(e),
		CounterpartName: counterpartName(e),
		CounterpartIBAN: counterpartIBAN(e),
	}, nil
}

// entryDescription prefers the unstructured remittance info of the entry's
// transaction details over the entry-level additional info.
func entryDescription(e entry) string {
	for _, tx := range e.NtryDtls.TxDtls {
		if joined := strings.TrimSpace(strings.Join(tx.RmtInf.Ustrd, " ")); joined != "" {
			return joined
		}
	}
	return strings.TrimSpace(e.AddtlNtryInf)
}

func entryReference(e entry) string {
	if ref := strings.TrimSpace(e.AcctSvcrRef); ref != "" {
		return ref
	}
	for _, tx := range e.NtryDtls.TxDtls {
		if ref := strings.TrimSpace(tx.Refs.EndToEndID); ref != "" && ref != "NOTPROVIDED" {
			return ref
		}
		if ref := strings.TrimSpace(tx.Refs.MndtID); ref != "" {
			return ref
		}
	}
	return ""
}

// counterpartName reads the other party from the first transaction detail,
// creditor first, then debtor.
func counterpartName(e entry) string {
	for _, tx := range e.NtryDtls.TxDtls {
		if nm := strings.TrimSpace(tx.RltdPties.Cdtr.Nm); nm != "" {
			return nm
		}
		if nm := strings.TrimSpace(tx.RltdPties.Dbtr.Nm); nm != "" {
			return nm
		}
	}
	return ""
}

func counterpartIBAN(e entry) string {
	for _, tx := range e.NtryDtls.TxDtls {
		if iban := strings.TrimSpace(tx.RltdPties.CdtrAcct.ID.IBAN); iban != "" {
			return iban
		}
		if iban := strings.TrimSpace(tx.RltdPties.DbtrAcct.ID.IBAN); iban != "" {
			return iban
		}
	}
	return ""
}
