package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FilterStore is a JSON-file key-value store standing in for the browser's
// localStorage: it persists the transaction filter form between sessions
// and a short history of report exports.
const (
	keyTransactionFilters = "transaction_filters"
	keyRecentExports      = "recent_transaction_exports"

	maxRecentExports = 5
)

type FilterStore struct {
	mu   sync.Mutex
	path string
}

func NewFilterStore(path string) *FilterStore {
	return &FilterStore{path: path}
}

func (s *FilterStore) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("read filter store: %w", err)
	}
	m := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse filter store: %w", err)
	}
	return m, nil
}

func (s *FilterStore) write(m map[string]json.RawMessage) error {
	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create filter store dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode filter store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write filter store: %w", err)
	}
	return nil
}

// SaveTransactionFilters persists the filter form for the next session.
func (s *FilterStore) SaveTransactionFilters(f TransactionFilters) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode filters: %w", err)
	}
	m[keyTransactionFilters] = raw
	return s.write(m)
}

// LoadTransactionFilters returns the saved filters. ok is true only when a
// non-empty filter set is stored; that is the signal to apply it on load
// instead of the default fetch-all path.
func (s *FilterStore) LoadTransactionFilters() (TransactionFilters, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f TransactionFilters
	m, err := s.read()
	if err != nil {
		return f, false, err
	}
	raw, ok := m[keyTransactionFilters]
	if !ok {
		return f, false, nil
	}
	if err := json.Unmarshal(raw, &f); err != nil {
		return TransactionFilters{}, false, fmt.Errorf("parse saved filters: %w", err)
	}
	return f, !f.IsZero(), nil
}

// ClearTransactionFilters removes the saved filter set.
func (s *FilterStore) ClearTransactionFilters() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return err
	}
	delete(m, keyTransactionFilters)
	return s.write(m)
}

// ExportRecord remembers one generated report.
type ExportRecord struct {
	Filename  string             `json:"filename"`
	Settings  TransactionFilters `json:"settings"`
	CreatedAt time.Time          `json:"created_at"`
}

func sameSettings(a, b TransactionFilters) bool {
	ja, _ := json.Marshal(a)
	jb, _ := json.Marshal(b)
	return bytes.Equal(ja, jb)
}

// RememberExport prepends rec to the recent-exports history, de-duplicating
// entries with the same settings and keeping at most five.
func (s *FilterStore) RememberExport(rec ExportRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return err
	}

	var list []ExportRecord
	if raw, ok := m[keyRecentExports]; ok {
		if err := json.Unmarshal(raw, &list); err != nil {
			return fmt.Errorf("parse recent exports: %w", err)
		}
	}

	kept := make([]ExportRecord, 0, len(list)+1)
	kept = append(kept, rec)
	for _, old := range list {
		if sameSettings(old.Settings, rec.Settings) {
			continue
		}
		kept = append(kept, old)
	}
	if len(kept) > maxRecentExports {
		kept = kept[:maxRecentExports]
	}

	raw, err := json.Marshal(kept)
	if err != nil {
		return fmt.Errorf("encode recent exports: %w", err)
	}
	m[keyRecentExports] = raw
	return s.write(m)
}

// RecentExports returns the export history, most recent first.
func (s *FilterStore) RecentExports() ([]ExportRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return nil, err
	}
	raw, ok := m[keyRecentExports]
	if !ok {
		return nil, nil
	}
	var list []ExportRecord
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("parse recent exports: %w", err)
	}
	return list, nil
}
