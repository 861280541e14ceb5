package db

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Source kinds.
const (
	KindWeb    = "web"
	KindGitHub = "github"
	KindPDF    = "pdf"
)

// InsertSource records a source locator, returning the source_id.
// If the locator already exists, returns the existing source_id.
func (db *DB) InsertSource(locator, kind string) (int64, error) {
	// Check if source already exists
	var existingID int64
	err := db.QueryRow("SELECT source_id FROM sources WHERE locator = ?", locator).Scan(&existingID)
	if err == nil {
		return existingID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check existing source: %w", err)
	}

	// Only URL-shaped locators carry a domain
	var domain string
	if parsed, err := url.Parse(locator); err == nil && parsed.Host != "" {
		domain = parsed.Host
	}

	result, err := db.Exec(`
		INSERT INTO sources (locator, kind, domain)
		VALUES (?, ?, ?)
	`, locator, kind, domain)
	if err != nil {
		return 0, fmt.Errorf("failed to insert source: %w", err)
	}

	sourceID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get source ID: %w", err)
	}

	return sourceID, nil
}

// RecordAccess records a fetch attempt in source_accesses.
func (db *DB) RecordAccess(sourceID int64, statusCode int, errorType string, success bool) error {
	_, err := db.Exec(`
		INSERT INTO source_accesses (source_id, status_code, error_type, success)
		VALUES (?, ?, ?, ?)
	`, sourceID, statusCode, errorType, success)
	if err != nil {
		return fmt.Errorf("failed to record access: %w", err)
	}
	return nil
}

// RecordHarvest records how many examples a stage extracted from a source.
func (db *DB) RecordHarvest(sourceID int64, stage string, exampleCount int) error {
	_, err := db.Exec(`
		INSERT INTO harvests (source_id, stage, example_count)
		VALUES (?, ?, ?)
	`, sourceID, stage, exampleCount)
	if err != nil {
		return fmt.Errorf("failed to record harvest: %w", err)
	}
	return nil
}

// SetSourceMetadata sets a metadata key-value pair for a source (upsert).
func (db *DB) SetSourceMetadata(sourceID int64, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO source_metadata (source_id, key, value)
		VALUES (?, ?, ?)
		ON CONFLICT(source_id, key) DO UPDATE SET value = excluded.value
	`, sourceID, key, value)
	if err != nil {
		return fmt.Errorf("failed to set source metadata: %w", err)
	}
	return nil
}

// GetLastAccess returns the most recent access record for a source.
func (db *DB) GetLastAccess(sourceID int64) (*AccessRecord, error) {
	var record AccessRecord
	err := db.QueryRow(`
		SELECT access_id, accessed_at, status_code, error_type, success
		FROM source_accesses
		WHERE source_id = ?
		ORDER BY access_id DESC
		LIMIT 1
	`, sourceID).Scan(&record.AccessID, &record.AccessedAt, &record.StatusCode, &record.ErrorType, &record.Success)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last access: %w", err)
	}
	return &record, nil
}

// AccessRecord represents a source access attempt.
type AccessRecord struct {
	AccessID   int64
	AccessedAt time.Time
	StatusCode int
	ErrorType  string
	Success    bool
}

// SourceStat summarizes harvest activity for one source kind.
type SourceStat struct {
	Kind         string
	SourceCount  int
	AccessCount  int
	FailedCount  int
	ExampleCount int
}

// Stats aggregates per-kind source, access, and harvest counts.
func (db *DB) Stats() ([]SourceStat, error) {
	rows, err := db.Query(`
		SELECT s.kind,
			COUNT(DISTINCT s.source_id),
			COUNT(a.access_id),
			COALESCE(SUM(CASE WHEN a.success = 0 THEN 1 ELSE 0 END), 0),
			COALESCE((SELECT SUM(h.example_count)
				FROM harvests h
				JOIN sources hs ON h.source_id = hs.source_id
				WHERE hs.kind = s.kind), 0)
		FROM sources s
		LEFT JOIN source_accesses a ON s.source_id = a.source_id
		GROUP BY s.kind
		ORDER BY s.kind
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	var stats []SourceStat
	for rows.Next() {
		var stat SourceStat
		err := rows.Scan(&stat.Kind, &stat.SourceCount, &stat.AccessCount, &stat.FailedCount, &stat.ExampleCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stat: %w", err)
		}
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}
