// backend/src/services/import_service.go
package services

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/username/kontoflow/backend/src/database"
	"github.com/username/kontoflow/backend/src/logger"
	"github.com/username/kontoflow/backend/src/model"
	"github.com/username/kontoflow/backend/src/models"
	"github.com/username/kontoflow/backend/src/parsers"
	"github.com/username/kontoflow/backend/src/security/validation"
)

var (
	ErrParsingFailed = errors.New("statement parsing failed")
	ErrRunNotFound   = errors.New("import run not found")
)

const resultCacheKey = "import_result_%s"

type importServiceImpl struct {
	resultCache *cache.Cache
}

func NewImportService(resultCache *cache.Cache) ImportService {
	return &importServiceImpl{resultCache: resultCache}
}

// ProcessUpload runs the full ingestion pipeline for one file: normalize
// encoding, classify the file kind, resolve the CSV dialect when applicable,
// parse, then record the run summary. The parsed transactions themselves are
// only cached, never persisted.
func (s *importServiceImpl) ProcessUpload(fileReader io.Reader, fileName string, formatHint models.FormatIdentifier, preview bool) (*ImportResult, error) {
	startTime := time.Now()
	logger.L.Info("ProcessUpload START", "fileName", fileName, "formatHint", formatHint, "preview", preview)

	raw, err := io.ReadAll(fileReader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading upload: %v", ErrParsingFailed, err)
	}
	content := parsers.NormalizeContent(raw)

	parser, kind, format := parsers.ParserForFile(fileName, content, formatHint)
	logger.L.Info("Statement file classified", "fileName", fileName, "kind", kind, "format", format)

	txs, warnings, err := parser.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsingFailed, err)
	}
	sanitizeTransactions(txs)

	result := &ImportResult{
		RunID:            uuid.NewString(),
		FileName:         fileName,
		FileKind:         kind,
		Format:           format,
		Transactions:     txs,
		Warnings:         warnings,
		TransactionCount: len(txs),
		WarningCount:     len(warnings),
	}
	if result.Transactions == nil {
		result.Transactions = []models.CanonicalTransaction{}
	}
	if result.Warnings == nil {
		result.Warnings = []models.ParseWarning{}
	}

	if !preview {
		run := models.ImportRun{
			ID:               result.RunID,
			FileName:         fileName,
			FileKind:         string(kind),
			Format:           string(format),
			TransactionCount: result.TransactionCount,
			WarningCount:     result.WarningCount,
			CreatedAt:        time.Now().UTC(),
		}
		if err := model.InsertImportRun(database.DB, run, warnings); err != nil {
			return nil, fmt.Errorf("recording import run: %w", err)
		}
		s.resultCache.Set(fmt.Sprintf(resultCacheKey, result.RunID), result, cache.DefaultExpiration)
	}

	logger.L.Info("ProcessUpload END",
		"fileName", fileName,
		"transactions", result.TransactionCount,
		"warnings", result.WarningCount,
		"duration", time.Since(startTime))
	return result, nil
}

func (s *importServiceImpl) GetImportResult(runID string) (*ImportResult, bool) {
	if cached, found := s.resultCache.Get(fmt.Sprintf(resultCacheKey, runID)); found {
		if result, ok := cached.(*ImportResult); ok {
			return result, true
		}
	}
	return nil, false
}

func (s *importServiceImpl) GetImportRun(runID string) (*models.ImportRun, error) {
	run, err := model.GetImportRunByID(database.DB, runID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return run, nil
}

func (s *importServiceImpl) ListImportRuns(limit int) ([]models.ImportRun, error) {
	runs, err := model.ListImportRuns(database.DB, limit)
	if err != nil {
		return nil, fmt.Errorf("listing import runs: %w", err)
	}
	if runs == nil {
		runs = []models.ImportRun{}
	}
	return runs, nil
}

// sanitizeTransactions scrubs the free-text fields of every record: control
// characters are stripped and spreadsheet formula triggers neutralized, since
// these values routinely end up re-exported to CSV/Excel by the review UI.
func sanitizeTransactions(txs []models.CanonicalTransaction) {
	for i := range txs {
		txs[i].Description = validation.SanitizeForFormulaInjection(validation.StripUnprintable(txs[i].Description))
		txs[i].CounterpartName = validation.SanitizeForFormulaInjection(validation.StripUnprintable(txs[i].CounterpartName))
		txs[i].Reference = validation.StripUnprintable(txs[i].Reference)
	}
}
