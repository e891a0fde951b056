package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/seqqc/seqqc/internal/model"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "seqqc.db"

// QCDB provides SQLite-based storage for parsed QC runs.
// It manages connection pooling and provides methods for CRUD operations.
//
// Design decision: We use a single database file for all runs rather than
// one file per run. Cross-run queries (history of one sample, comparison
// across a sequencing project) need all runs in one place.
type QCDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures QCDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a QCDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*QCDB, error) {
	dbPath := filepath.Join(dbDir, DBFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite DSN: mode=rw prevents creating new files,
	// mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; a single connection avoids
	// SQLITE_BUSY churn during batch saves.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	qdb := &QCDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := qdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return qdb, nil
}

// Close closes the database connection.
func (qdb *QCDB) Close() error {
	return qdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (qdb *QCDB) createTables() error {
	schema := `
	-- Runs store one parsed report each: headline numbers in columns,
	-- the full typed report as JSON for lossless retrieval.
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source_path TEXT NOT NULL,
		filename TEXT NOT NULL,
		format_version TEXT NOT NULL,
		total_sequences INTEGER NOT NULL,
		percent_gc REAL NOT NULL,
		deduplicated_pct REAL,
		pass_count INTEGER NOT NULL,
		warn_count INTEGER NOT NULL,
		fail_count INTEGER NOT NULL,
		parsed_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		report_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_filename ON runs(filename);
	CREATE INDEX IF NOT EXISTS idx_runs_parsed_at ON runs(parsed_at);
	`

	_, err := qdb.db.ExecContext(context.Background(), schema)
	return err
}

// Run is a stored run's headline row, as returned by ListRuns.
type Run struct {
	ID               int64
	SourcePath       string
	Filename         string
	FormatVersion    string
	TotalSequences   int64
	PercentGC        float64
	DeduplicatedPct  *float64
	PassCount        int
	WarnCount        int
	FailCount        int
	ParsedAt         time.Time
}

// SaveReport stores a parsed report and returns the new run's ID.
func (qdb *QCDB) SaveReport(ctx context.Context, report *model.Report) (int64, error) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize report: %w", err)
	}

	query := `
	INSERT INTO runs (
		source_path, filename, format_version, total_sequences, percent_gc,
		deduplicated_pct, pass_count, warn_count, fail_count, report_json
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := qdb.db.ExecContext(ctx, query,
		report.SourcePath,
		report.BasicStatistics.Filename,
		report.FormatVersion,
		report.BasicStatistics.TotalSequences,
		report.BasicStatistics.PercentGC,
		report.DeduplicatedPercentage,
		report.Summary.PassCount(),
		report.Summary.WarnCount(),
		report.Summary.FailCount(),
		string(reportJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	return result.LastInsertId()
}

// GetReport retrieves a stored report by run ID.
func (qdb *QCDB) GetReport(ctx context.Context, id int64) (*model.Report, error) {
	var reportJSON string
	err := qdb.db.QueryRowContext(ctx,
		"SELECT report_json FROM runs WHERE id = ?", id,
	).Scan(&reportJSON)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query run %d: %w", id, err)
	}

	var report model.Report
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to deserialize run %d: %w", id, err)
	}
	return &report, nil
}

// ListRuns returns all stored runs, most recent first.
func (qdb *QCDB) ListRuns(ctx context.Context) ([]Run, error) {
	query := `
	SELECT id, source_path, filename, format_version, total_sequences,
	       percent_gc, deduplicated_pct, pass_count, warn_count, fail_count,
	       parsed_at
	FROM runs
	ORDER BY parsed_at DESC, id DESC
	`
	rows, err := qdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only cursor

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(
			&r.ID, &r.SourcePath, &r.Filename, &r.FormatVersion,
			&r.TotalSequences, &r.PercentGC, &r.DeduplicatedPct,
			&r.PassCount, &r.WarnCount, &r.FailCount, &r.ParsedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}
