// backend/src/models/format.go
package models

// FormatIdentifier names one supported bank/PSP CSV export dialect. The
// string values form a stable vocabulary that other components (frontend
// format pickers, stored run summaries) may reference.
type FormatIdentifier string

const (
	FormatOutbank         FormatIdentifier = "outbank"
	FormatC24             FormatIdentifier = "c24"
	FormatSparkasse       FormatIdentifier = "sparkasse"
	FormatDeutscheBank    FormatIdentifier = "deutschebank"
	FormatCommerzbank     FormatIdentifier = "commerzbank"
	FormatN26             FormatIdentifier = "n26"
	FormatRevolut         FormatIdentifier = "revolut"
	FormatING             FormatIdentifier = "ing"
	FormatDKB             FormatIdentifier = "dkb"
	FormatDKBLegacy       FormatIdentifier = "dkb_legacy"
	FormatComdirect       FormatIdentifier = "comdirect"
	FormatVolksbank       FormatIdentifier = "volksbank"
	FormatConsorsbank     FormatIdentifier = "consorsbank"
	FormatTargobank       FormatIdentifier = "targobank"
	FormatHypovereinsbank FormatIdentifier = "hypovereinsbank"
	FormatPostbank        FormatIdentifier = "postbank"
	FormatTomorrow        FormatIdentifier = "tomorrow"
	FormatKontist         FormatIdentifier = "kontist"
	FormatFinom           FormatIdentifier = "finom"

	// FormatGeneral is the structural fallback when no dialect matches:
	// date, description and amount in the first three columns.
	FormatGeneral FormatIdentifier = "general"

	// FormatUnrecognized means detection failed; the caller may supply an
	// explicit dialect, otherwise parsing falls back to FormatGeneral.
	FormatUnrecognized FormatIdentifier = "unrecognized"
)

// SupportedFormats lists every dialect a caller may select, in a stable order.
func SupportedFormats() []FormatIdentifier {
	return []FormatIdentifier{
		FormatOutbank, FormatC24, FormatSparkasse, FormatDeutscheBank,
		FormatCommerzbank, FormatN26, FormatRevolut, FormatING,
		FormatDKB, FormatDKBLegacy, FormatComdirect, FormatVolksbank,
		FormatConsorsbank, FormatTargobank, FormatHypovereinsbank,
		FormatPostbank, FormatTomorrow, FormatKontist, FormatFinom,
		FormatGeneral,
	}
}

// Valid reports whether f is a selectable dialect identifier.
func (f FormatIdentifier) Valid() bool {
	for _, known := range SupportedFormats() {
		if f == known {
			return true
		}
	}
	return false
}

// FileKind classifies a whole statement file before parser dispatch.
type FileKind string

const (
	FileKindCSV     FileKind = "csv"
	FileKindMT940   FileKind = "mt940"
	FileKindCAMT053 FileKind = "camt053"
)
