// Package store persists analysis results to a local SQLite archive so
// classification and bearing capacity runs can be revisited later.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"soilworks/internal/logging"
)

// ErrNotFound is returned when a record id is not in the archive.
var ErrNotFound = errors.New("store: record not found")

// ClassificationRecord is one archived classification run.
type ClassificationRecord struct {
	ID           string
	CreatedAt    time.Time
	SampleName   string
	LiquidLimit  float64
	PlasticLimit float64
	Fines        float64
	Sand         float64
	Gravel       float64
	AASHTO       string
	USCS         string
}

// BearingRecord is one archived bearing capacity run.
type BearingRecord struct {
	ID        string
	CreatedAt time.Time
	Kind      string // "ubc" or "abc"
	Method    string
	Inputs    string // human-readable parameter summary
	Capacity  float64
}

// Store is the SQLite-backed analysis archive.
type Store struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
}

// NewStore opens (or creates) the archive database at path. Pass
// ":memory:" for an ephemeral archive.
func NewStore(path string) (*Store, error) {
	timer := logging.StartTimer(logging.CategoryStore, "NewStore")
	defer timer.Stop()

	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("store: creating directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	for _, pragma := range []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			logging.Get(logging.CategoryStore).Debug("pragma failed: %s: %v", pragma, err)
		}
	}

	s := &Store{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	logging.Get(logging.CategoryStore).Info("archive opened at %s", path)
	return s, nil
}

func (s *Store) initialize() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS classification_runs (
			id TEXT PRIMARY KEY,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			sample_name TEXT NOT NULL,
			liquid_limit REAL NOT NULL,
			plastic_limit REAL NOT NULL,
			fines REAL NOT NULL,
			sand REAL NOT NULL,
			gravel REAL NOT NULL,
			aashto TEXT NOT NULL,
			uscs TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_classification_sample
			ON classification_runs(sample_name)`,
		`CREATE TABLE IF NOT EXISTS bearing_runs (
			id TEXT PRIMARY KEY,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			kind TEXT NOT NULL,
			method TEXT NOT NULL,
			inputs TEXT NOT NULL,
			capacity REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bearing_method
			ON bearing_runs(method)`,
	}
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("store: initializing schema: %w", err)
		}
	}
	return nil
}

// SaveClassification archives a classification run and returns its id.
func (s *Store) SaveClassification(rec ClassificationRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO classification_runs
			(id, sample_name, liquid_limit, plastic_limit, fines, sand, gravel, aashto, uscs)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, rec.SampleName, rec.LiquidLimit, rec.PlasticLimit,
		rec.Fines, rec.Sand, rec.Gravel, rec.AASHTO, rec.USCS)
	if err != nil {
		return "", fmt.Errorf("store: saving classification: %w", err)
	}
	logging.Get(logging.CategoryStore).Debug("saved classification %s (%s)", id, rec.SampleName)
	return id, nil
}

// GetClassification fetches one archived classification run by id.
func (s *Store) GetClassification(id string) (ClassificationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rec ClassificationRecord
	err := s.db.QueryRow(
		`SELECT id, created_at, sample_name, liquid_limit, plastic_limit,
			fines, sand, gravel, aashto, uscs
		FROM classification_runs WHERE id = ?`, id).
		Scan(&rec.ID, &rec.CreatedAt, &rec.SampleName, &rec.LiquidLimit,
			&rec.PlasticLimit, &rec.Fines, &rec.Sand, &rec.Gravel,
			&rec.AASHTO, &rec.USCS)
	if err == sql.ErrNoRows {
		return ClassificationRecord{}, fmt.Errorf("%w: classification %s", ErrNotFound, id)
	}
	if err != nil {
		return ClassificationRecord{}, fmt.Errorf("store: loading classification: %w", err)
	}
	return rec, nil
}

// ListClassifications returns the most recent classification runs, newest
// first.
func (s *Store) ListClassifications(limit int) ([]ClassificationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, created_at, sample_name, liquid_limit, plastic_limit,
			fines, sand, gravel, aashto, uscs
		FROM classification_runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: listing classifications: %w", err)
	}
	defer rows.Close()

	var recs []ClassificationRecord
	for rows.Next() {
		var rec ClassificationRecord
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.SampleName,
			&rec.LiquidLimit, &rec.PlasticLimit, &rec.Fines, &rec.Sand,
			&rec.Gravel, &rec.AASHTO, &rec.USCS); err != nil {
			return nil, fmt.Errorf("store: scanning classification: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// SaveBearingRun archives a bearing capacity run and returns its id.
func (s *Store) SaveBearingRun(rec BearingRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO bearing_runs (id, kind, method, inputs, capacity)
		VALUES (?, ?, ?, ?, ?)`,
		id, rec.Kind, rec.Method, rec.Inputs, rec.Capacity)
	if err != nil {
		return "", fmt.Errorf("store: saving bearing run: %w", err)
	}
	logging.Get(logging.CategoryStore).Debug("saved bearing run %s (%s/%s)", id, rec.Kind, rec.Method)
	return id, nil
}

// ListBearingRuns returns the most recent bearing runs, newest first.
func (s *Store) ListBearingRuns(limit int) ([]BearingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, created_at, kind, method, inputs, capacity
		FROM bearing_runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: listing bearing runs: %w", err)
	}
	defer rows.Close()

	var recs []BearingRecord
	for rows.Next() {
		var rec BearingRecord
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.Kind,
			&rec.Method, &rec.Inputs, &rec.Capacity); err != nil {
			return nil, fmt.Errorf("store: scanning bearing run: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
