package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"spaceflow/pkg/logger"
	"spaceflow/pkg/metrics"
)

// Store is a namespaced key-value store holding JSON-serialized blobs. Get
// reports absence (or an unreadable blob) through the found flag instead of an
// error so that callers can fall back to their default value.
type Store interface {
	Set(key string, value interface{}) error
	Get(key string, dest interface{}) (bool, error)
	Remove(key string) error
}

// SQLiteStore persists blobs in a single kv table. Keys are prefixed with the
// application namespace to keep unrelated data in the same file apart.
type SQLiteStore struct {
	db     *sql.DB
	prefix string
	logger logger.Logger
}

func NewSQLiteStore(db *sql.DB, prefix string, logger logger.Logger) Store {
	return &SQLiteStore{
		db:     db,
		prefix: prefix,
		logger: logger,
	}
}

func (s *SQLiteStore) makeKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

func (s *SQLiteStore) Set(key string, value interface{}) error {
	start := time.Now()

	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("Veri serileştirilemedi", map[string]interface{}{"key": key, "error": err.Error()})
		return fmt.Errorf("veri serileştirilemedi: %w", err)
	}

	query := `
		INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	_, err = s.db.Exec(query, s.makeKey(key), string(data), time.Now())
	if err != nil {
		s.logger.Error("Veri kaydedilemedi", map[string]interface{}{"key": key, "error": err.Error()})
		return fmt.Errorf("veri kaydedilemedi: %w", err)
	}

	metrics.RecordStoreOperation("set", key, time.Since(start))
	return nil
}

func (s *SQLiteStore) Get(key string, dest interface{}) (bool, error) {
	start := time.Now()

	var raw string
	query := `SELECT value FROM kv WHERE key = $1`
	err := s.db.QueryRow(query, s.makeKey(key)).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		s.logger.Error("Veri okunamadı", map[string]interface{}{"key": key, "error": err.Error()})
		return false, fmt.Errorf("veri okunamadı: %w", err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		// Corrupt blob: behave as absent, the caller keeps its default.
		s.logger.Error("Veri çözümlenemedi", map[string]interface{}{"key": key, "error": err.Error()})
		return false, nil
	}

	metrics.RecordStoreOperation("get", key, time.Since(start))
	return true, nil
}

func (s *SQLiteStore) Remove(key string) error {
	start := time.Now()

	query := `DELETE FROM kv WHERE key = $1`
	if _, err := s.db.Exec(query, s.makeKey(key)); err != nil {
		s.logger.Error("Veri silinemedi", map[string]interface{}{"key": key, "error": err.Error()})
		return fmt.Errorf("veri silinemedi: %w", err)
	}

	metrics.RecordStoreOperation("remove", key, time.Since(start))
	return nil
}
