// backend/src/database/database.go
package database

import (
	"database/sql"
	stdlog "log"

	"github.com/username/kontoflow/backend/src/logger"
	_ "modernc.org/sqlite"
)

var DB *sql.DB

func InitDB(databasePath string) {
	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		stdlog.Fatalf("failed to open database at %s: %v", databasePath, err)
	}

	DB = db

	logger.L.Info("Ensuring database schema", "databasePath", databasePath)

	createTableStatement := `
	CREATE TABLE IF NOT EXISTS import_runs (
		id TEXT PRIMARY KEY,
		file_name TEXT NOT NULL,
		file_kind TEXT NOT NULL,
		format TEXT,
		transaction_count INTEGER NOT NULL,
		warning_count INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS import_warnings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		line INTEGER,
		message TEXT NOT NULL,
		raw TEXT,
		FOREIGN KEY(run_id) REFERENCES import_runs(id)
	);

	CREATE INDEX IF NOT EXISTS idx_import_warnings_run_id ON import_warnings(run_id);
	`

	if _, err := db.Exec(createTableStatement); err != nil {
		stdlog.Fatalf("failed to create tables: %v", err)
	}
}
