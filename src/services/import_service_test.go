// backend/src/services/import_service_test.go
package services

import (
	"strings"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/kontoflow/backend/src/database"
	"github.com/username/kontoflow/backend/src/model"
	"github.com/username/kontoflow/backend/src/models"
)

func newTestService(t *testing.T) ImportService {
	t.Helper()
	database.InitDB(":memory:")
	t.Cleanup(func() { database.DB.Close() })
	return NewImportService(cache.New(5*time.Minute, 10*time.Minute))
}

const sparkasseUpload = `"Auftragskonto";"Buchungstag";"Valutadatum";"Buchungstext";"Verwendungszweck";"Begünstigter/Zahlungspflichtiger";"IBAN";"BIC";"Betrag"
"DE11222333440000012345";"01.02.2023";"02.02.2023";"LASTSCHRIFT";"Miete Februar";"Vermieter GmbH";"DE02120300000000202051";"BYLADEM1001";"-850,00"
`

func TestProcessUploadRecordsRun(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.ProcessUpload(strings.NewReader(sparkasseUpload), "umsaetze.csv", "", false)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, models.FileKindCSV, result.FileKind)
	assert.Equal(t, models.FormatSparkasse, result.Format)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "-850", result.Transactions[0].Amount.String())
	assert.Equal(t, 1, result.TransactionCount)
	assert.Equal(t, 0, result.WarningCount)

	run, err := svc.GetImportRun(result.RunID)
	require.NoError(t, err)
	assert.Equal(t, "umsaetze.csv", run.FileName)
	assert.Equal(t, string(models.FormatSparkasse), run.Format)
	assert.Equal(t, 1, run.TransactionCount)

	cached, found := svc.GetImportResult(result.RunID)
	require.True(t, found)
	assert.Equal(t, result.RunID, cached.RunID)

	runs, err := svc.ListImportRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, result.RunID, runs[0].ID)
}

func TestPreviewLeavesNoTrace(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.ProcessUpload(strings.NewReader(sparkasseUpload), "umsaetze.csv", "", true)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)

	_, err = svc.GetImportRun(result.RunID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRunNotFound)

	_, found := svc.GetImportResult(result.RunID)
	assert.False(t, found)

	runs, err := svc.ListImportRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestWarningsArePersistedWithTheRun(t *testing.T) {
	svc := newTestService(t)

	content := "Buchungstag;Wertstellung;Umsatzart;Buchungstext;Betrag\n" +
		"01.03.2023;01.03.2023;GUTSCHRIFT;Gehalt;3.000,00\n" +
		"kaputte;zeile\n"
	result, err := svc.ProcessUpload(strings.NewReader(content), "commerzbank.csv", "", false)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TransactionCount)
	assert.Equal(t, 1, result.WarningCount)

	stored, err := model.GetWarningsByRunID(database.DB, result.RunID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 3, stored[0].Line)
}

func TestMT940UploadClassifiedByExtension(t *testing.T) {
	svc := newTestService(t)

	content := ":20:REF\n:61:230601D10,00NTRFX\n:86:Lastschrift Strom\n"
	result, err := svc.ProcessUpload(strings.NewReader(content), "auszug.sta", "", false)
	require.NoError(t, err)
	assert.Equal(t, models.FileKindMT940, result.FileKind)
	assert.Empty(t, result.Format) // no CSV dialect for SWIFT files
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "-10", result.Transactions[0].Amount.String())
}

func TestFreeTextFieldsAreSanitized(t *testing.T) {
	svc := newTestService(t)

	content := "Datum;Text;Betrag\n01.08.2023;=SUM(A1:A9)\x07;-10,00\n"
	result, err := svc.ProcessUpload(strings.NewReader(content), "export.csv", models.FormatGeneral, false)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "'=SUM(A1:A9)", result.Transactions[0].Description)
}

func TestEmptyResultSlicesAreNonNil(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.ProcessUpload(strings.NewReader("eins;zwei;drei\n"), "leer.csv", "", true)
	require.NoError(t, err)
	assert.NotNil(t, result.Transactions)
	assert.NotNil(t, result.Warnings)
	assert.Equal(t, models.FormatGeneral, result.Format)
}
