// Package seen implements the time-windowed dedup ledger.
//
// The ledger is a flat JSON object mapping item identifiers (article URLs)
// to floating-point Unix timestamps. Entries older than the retention
// window are pruned on every check, so an identifier becomes reportable as
// new again once it has not been observed for a full window.
//
// There is no file locking: the design assumes a single process with a
// single active cycle at a time. Concurrent invocations of CheckAndMark
// against the same path would race on the read-modify-write.
package seen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RetentionSeconds is the TTL after which a ledger entry is pruned.
const RetentionSeconds = 86400 // 24 hours

// Result is the outcome of one dedup check. Field names match the JSON
// contract consumed by the model via the `seen` subcommand.
type Result struct {
	NewIDs       []string `json:"new_ids"`
	TotalChecked int      `json:"total_checked"`
	NewCount     int      `json:"new_count"`
}

// Store persists the ledger at a fixed path.
type Store struct {
	path string

	// now is swappable for TTL tests.
	now func() time.Time
}

// NewStore creates a Store backed by the ledger file at path.
// The file is created on first CheckAndMark if absent.
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// CheckAndMark partitions ids into new and previously seen, refreshes the
// timestamp of every input id, and persists the updated ledger before
// returning. Pruning happens before the membership check so that expired
// ids are treated as new again.
func (s *Store) CheckAndMark(ids []string) (Result, error) {
	ledger, err := s.load()
	if err != nil {
		return Result{}, err
	}

	now := float64(s.now().UnixNano()) / 1e9
	cutoff := now - RetentionSeconds

	for id, ts := range ledger {
		if ts <= cutoff {
			delete(ledger, id)
		}
	}

	newIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := ledger[id]; !ok {
			newIDs = append(newIDs, id)
		}
	}

	for _, id := range ids {
		ledger[id] = now
	}

	if err := s.save(ledger); err != nil {
		return Result{}, err
	}

	return Result{
		NewIDs:       newIDs,
		TotalChecked: len(ids),
		NewCount:     len(newIDs),
	}, nil
}

func (s *Store) load() (map[string]float64, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]float64{}, nil
		}
		return nil, fmt.Errorf("read ledger %s: %w", s.path, err)
	}

	ledger := map[string]float64{}
	if err := json.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("parse ledger %s: %w", s.path, err)
	}
	return ledger, nil
}

// save writes the ledger to a temp file and renames it into place so a
// crash mid-write never leaves a torn ledger behind.
func (s *Store) save(ledger map[string]float64) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create ledger dir: %w", err)
	}

	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}
	data = append(data, '\n')

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write ledger %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace ledger %s: %w", s.path, err)
	}
	return nil
}
