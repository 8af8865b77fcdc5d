// backend/src/parsers/columns.go
package parsers

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/username/kontoflow/backend/src/models"
)

// columnLayout records where a CSV dialect puts each canonical field. Column
// numbers are 1-based; zero means the dialect has no such column. These maps
// are the encoded tribal knowledge of each bank's export layout: change one
// and previously working imports silently produce garbage.
type columnLayout struct {
	date      int
	valueDate int
	// description, falling back to altDescription when the primary
	// column is empty.
	description    int
	altDescription int
	// amount, falling back to altAmount (Soll/Haben split columns).
	amount    int
	altAmount int
	reference int
	name      int
	iban      int
	category  int
	// debitMark points at an S/H indicator column; a value of "S"
	// negates the amount (Volksbank exports unsigned amounts).
	debitMark int
	// german selects German number decoding (1.234,56); otherwise the
	// dot-decimal decoder is used.
	german bool
	// comma selects the quote-aware comma tokenizer instead of the
	// semicolon split.
	comma bool
	// minFields is the column count a row needs before it is mapped;
	// shorter rows are skipped with a warning.
	minFields int
}

var dialectLayouts = map[models.FormatIdentifier]columnLayout{
	// #;Konto;Datum;Valuta;Betrag;Währung;Name;Nummer;Verwendungszweck;Kategorie
	models.FormatOutbank: {date: 3, valueDate: 4, amount: 5, name: 7, reference: 8, description: 9, category: 10, german: true, minFields: 9},

	// Buchungsdatum,Wertstellung,Buchungstyp,Auftraggeber/Empfänger,Verwendungszweck,IBAN,Betrag
	models.FormatC24: {date: 1, valueDate: 2, category: 3, name: 4, description: 5, iban: 6, amount: 7, german: true, comma: true, minFields: 7},

	// Type,Product,Started Date,Completed Date,Description,Amount,...
	models.FormatRevolut: {category: 1, date: 4, description: 5, amount: 6, comma: true, minFields: 6},

	// Date,Payee,Account number,Transaction type,Payment reference,Amount (EUR)
	models.FormatN26: {date: 1, name: 2, iban: 3, category: 4, reference: 5, amount: 6, comma: true, minFields: 6},

	// Datum,Empfänger,Verwendungszweck,Kategorie,Betrag
	models.FormatTomorrow: {date: 1, name: 2, description: 3, category: 4, amount: 5, german: true, comma: true, minFields: 5},

	// Booking Date,Value Date,Name,Purpose,Amount (EUR)
	models.FormatKontist: {date: 1, valueDate: 2, name: 3, description: 4, amount: 5, comma: true, minFields: 5},

	// Date,Counterparty,Payment Reference,Counterparty IBAN,Amount
	models.FormatFinom: {date: 1, name: 2, description: 3, iban: 4, amount: 5, comma: true, minFields: 5},

	// Buchungstag;Wertstellung;Umsatzart;Buchungstext;Betrag
	models.FormatCommerzbank: {date: 1, valueDate: 2, category: 3, description: 4, amount: 5, german: true, minFields: 5},

	// Buchungstag;Wert;Buchungsart;Begünstigter/Auftraggeber;Verwendungszweck;IBAN;BIC;Kundenreferenz;Soll;Haben
	models.FormatDeutscheBank: {date: 1, valueDate: 2, category: 3, name: 4, description: 5, iban: 6, reference: 8, amount: 9, altAmount: 10, german: true, minFields: 10},

	// Buchung;Valuta;Auftraggeber/Empfänger;Buchungstext;Verwendungszweck;Saldo;Währung;Betrag
	models.FormatING: {date: 1, valueDate: 2, name: 3, category: 4, description: 5, amount: 8, german: true, minFields: 8},

	// Buchungsdatum;Wertstellung;Status;Zahlungspflichtige*r;Zahlungsempfänger*in;Verwendungszweck;Umsatztyp;IBAN;Betrag (€);...;Kundenreferenz
	models.FormatDKB: {date: 1, valueDate: 2, name: 5, description: 6, category: 7, iban: 8, amount: 9, reference: 12, german: true, minFields: 9},

	// Buchungstag;Wertstellung;Buchungstext;Auftraggeber/Begünstigter;Verwendungszweck;Kontonummer;BLZ;Betrag (EUR);...;Kundenreferenz
	models.FormatDKBLegacy: {date: 1, valueDate: 2, category: 3, name: 4, description: 5, iban: 6, amount: 8, reference: 11, german: true, minFields: 8},

	// Buchungsdatum;Valuta;Empfänger/Auftraggeber;Verwendungszweck;Betrag;Währung
	models.FormatHypovereinsbank: {date: 1, valueDate: 2, name: 3, description: 4, amount: 5, german: true, minFields: 5},

	// Buchungstag;Wertstellung (Valuta);Vorgang;Buchungstext;Umsatz in EUR
	models.FormatComdirect: {date: 1, valueDate: 2, category: 3, description: 4, amount: 5, german: true, minFields: 5},

	// Buchungsdatum;Wertstellung;Buchungstyp;Buchungsdetails;Auftraggeber;Empfänger/Zahlungspflichtiger;Betrag (€);Saldo (€)
	models.FormatPostbank: {date: 1, valueDate: 2, category: 3, description: 4, name: 6, amount: 7, german: true, minFields: 7},

	// Buchungstag;Wertstellung;Transaktionsart;Verwendungszweck;Betrag
	models.FormatTargobank: {date: 1, valueDate: 2, category: 3, description: 4, amount: 5, german: true, minFields: 5},

	// Buchung;Valutadatum;Sender/Empfänger;IBAN;BIC;Buchungstext;Betrag in EUR
	models.FormatConsorsbank: {date: 1, valueDate: 2, name: 3, iban: 4, description: 6, amount: 7, german: true, minFields: 7},

	// Buchungstag;Valutadatum;Auftraggeber/Zahlungsempfänger;IBAN;Vorgang/Verwendungszweck;Kundenreferenz;Umsatz;Soll/Haben
	models.FormatVolksbank: {date: 1, valueDate: 2, name: 3, iban: 4, description: 5, reference: 6, amount: 7, debitMark: 8, german: true, minFields: 8},

	// Auftragskonto;Buchungstag;Valutadatum;Buchungstext;Verwendungszweck;Begünstigter/Zahlungspflichtiger;IBAN;BIC;Betrag
	models.FormatSparkasse: {date: 2, valueDate: 3, altDescription: 4, description: 5, name: 6, iban: 7, amount: 9, german: true, minFields: 9},

	// Structural fallback: date, description, amount in the first three
	// columns, German conventions.
	models.FormatGeneral: {date: 1, description: 2, amount: 3, german: true, minFields: 3},
}

// field returns the 1-based column col of a tokenized row, or "" when the
// layout has no such column or the row is too short.
func field(rec []string, col int) string {
	if col <= 0 || col > len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[col-1])
}

// mapRow converts one tokenized row into a canonical transaction according
// to the layout.
func (l columnLayout) mapRow(rec []string) models.CanonicalTransaction {
	date := ParseGermanDate(field(rec, l.date))
	valueDate := date
	if v := field(rec, l.valueDate); v != "" {
		valueDate = ParseGermanDate(v)
	}

	desc := field(rec, l.description)
	if desc == "" {
		desc = field(rec, l.altDescription)
	}

	rawAmount := field(rec, l.amount)
	if rawAmount == "" {
		rawAmount = field(rec, l.altAmount)
	}
	var amount decimal.Decimal
	if l.german {
		amount = ParseGermanNumber(rawAmount)
	} else {
		amount = ParsePlainNumber(rawAmount)
	}
	if l.debitMark > 0 && strings.EqualFold(field(rec, l.debitMark), "s") && amount.IsPositive() {
		amount = amount.Neg()
	}

	return models.CanonicalTransaction{
		Date:            date,
		ValueDate:       valueDate,
		Amount:          amount,
		Description:     desc,
		Reference:       field(rec, l.reference),
		CounterpartName: field(rec, l.name),
		CounterpartIBAN: field(rec, l.iban),
		Category:        field(rec, l.category),
	}
}
