// backend/src/model/importrun.go
package model

import (
	"database/sql"
	"time"

	"github.com/username/kontoflow/backend/src/models"
)

// InsertImportRun stores one run summary and its warnings atomically.
func InsertImportRun(db *sql.DB, run models.ImportRun, warnings []models.ParseWarning) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
	INSERT INTO import_runs (id, file_name, file_kind, format, transaction_count, warning_count, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.FileName, run.FileKind, run.Format,
		run.TransactionCount, run.WarningCount, run.CreatedAt)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO import_warnings (run_id, line, message, raw) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, w := range warnings {
		if _, err := stmt.Exec(run.ID, w.Line, w.Message, w.Raw); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetImportRunByID returns one stored run summary.
func GetImportRunByID(db *sql.DB, id string) (*models.ImportRun, error) {
	row := db.QueryRow(`
	SELECT id, file_name, file_kind, format, transaction_count, warning_count, created_at
	FROM import_runs WHERE id = ?`, id)

	var run models.ImportRun
	var createdAt string
	if err := row.Scan(&run.ID, &run.FileName, &run.FileKind, &run.Format,
		&run.TransactionCount, &run.WarningCount, &createdAt); err != nil {
		return nil, err
	}
	run.CreatedAt = parseTimestamp(createdAt)
	return &run, nil
}

// ListImportRuns returns the most recent run summaries, newest first.
func ListImportRuns(db *sql.DB, limit int) ([]models.ImportRun, error) {
	rows, err := db.Query(`
	SELECT id, file_name, file_kind, format, transaction_count, warning_count, created_at
	FROM import_runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []models.ImportRun
	for rows.Next() {
		var run models.ImportRun
		var createdAt string
		if err := rows.Scan(&run.ID, &run.FileName, &run.FileKind, &run.Format,
			&run.TransactionCount, &run.WarningCount, &createdAt); err != nil {
			return nil, err
		}
		run.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetWarningsByRunID returns the stored warnings for one run, in file order.
func GetWarningsByRunID(db *sql.DB, runID string) ([]models.ParseWarning, error) {
	rows, err := db.Query(`SELECT line, message, raw FROM import_warnings WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warnings []models.ParseWarning
	for rows.Next() {
		var w models.ParseWarning
		if err := rows.Scan(&w.Line, &w.Message, &w.Raw); err != nil {
			return nil, err
		}
		warnings = append(warnings, w)
	}
	return warnings, rows.Err()
}

func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
