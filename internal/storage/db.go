package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"textclean/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL UNIQUE,
  inputPath TEXT NOT NULL,
  outputPath TEXT NOT NULL,
  keyPath TEXT NOT NULL,
  format TEXT NOT NULL,
  records INTEGER NOT NULL,
  labelCountsJson TEXT NOT NULL,
  timingsJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_runs_inputPath ON runs(inputPath);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) InsertRun(run internal.RunRow) (int64, error) {
	countsJSON, _ := json.Marshal(run.LabelCounts)
	timingsJSON, _ := json.Marshal(run.Timings)
	result, err := d.conn.Exec(`
INSERT INTO runs (traceId, inputPath, outputPath, keyPath, format, records, labelCountsJson, timingsJson)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`, run.TraceID, run.InputPath, run.OutputPath, run.KeyPath, run.Format, run.Records, string(countsJSON), string(timingsJSON))
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (d *DB) ListRuns(limit int) ([]internal.RunRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.conn.Query(`
SELECT id, traceId, inputPath, outputPath, keyPath, format, records, labelCountsJson, timingsJson, createdAt
FROM runs ORDER BY id DESC LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.RunRow
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

func (d *DB) GetRunByTraceID(traceID string) (*internal.RunRow, error) {
	row := d.conn.QueryRow(`
SELECT id, traceId, inputPath, outputPath, keyPath, format, records, labelCountsJson, timingsJson, createdAt
FROM runs WHERE traceId = ?
`, traceID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (internal.RunRow, error) {
	var run internal.RunRow
	var countsJSON, timingsJSON string
	if err := s.Scan(
		&run.ID, &run.TraceID, &run.InputPath, &run.OutputPath, &run.KeyPath,
		&run.Format, &run.Records, &countsJSON, &timingsJSON, &run.CreatedAt,
	); err != nil {
		return internal.RunRow{}, err
	}
	_ = json.Unmarshal([]byte(countsJSON), &run.LabelCounts)
	_ = json.Unmarshal([]byte(timingsJSON), &run.Timings)
	return run, nil
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}
