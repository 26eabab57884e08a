// Package progress records which signs a learner has mastered, per domain.
package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/abhisek/signmaster/internal/store"
)

// Snapshot is the set of known sign ids for one domain.
type Snapshot struct {
	Domain string
	Known  map[int]struct{}
}

// NewSnapshot returns a snapshot holding ids.
func NewSnapshot(domain string, ids ...int) Snapshot {
	known := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}
	return Snapshot{Domain: normalizeDomain(domain), Known: known}
}

// Has reports whether id is known.
func (s Snapshot) Has(id int) bool {
	_, ok := s.Known[id]
	return ok
}

// Count returns the number of known ids.
func (s Snapshot) Count() int {
	return len(s.Known)
}

// CountIn returns how many of ids are known. Duplicates in ids are
// counted once.
func (s Snapshot) CountIn(ids []int) int {
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := s.Known[id]; ok {
			seen[id] = struct{}{}
		}
	}
	return len(seen)
}

// IDs returns the known ids in ascending order.
func (s Snapshot) IDs() []int {
	ids := make([]int, 0, len(s.Known))
	for id := range s.Known {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Store persists snapshots through a store.KV.
// Writes are serialized so a merge never loses a concurrent merge's ids.
type Store struct {
	mu sync.Mutex
	kv store.KV
}

// NewStore creates a progress store over kv.
func NewStore(kv store.KV) *Store {
	return &Store{kv: kv}
}

// Key returns the persistence key for domain, e.g. "cz-learned-signs".
func Key(domain string) string {
	return normalizeDomain(domain) + "-learned-signs"
}

func normalizeDomain(domain string) string {
	return strings.ToLower(strings.TrimSpace(domain))
}

// Load returns the persisted snapshot for domain. It never fails: a missing
// key, a storage error or an unparseable value all yield an empty snapshot.
func (s *Store) Load(ctx context.Context, domain string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.read(ctx, domain)
	if err != nil {
		slog.Warn("progress unavailable, starting empty", "domain", domain, "error", err)
		return NewSnapshot(domain)
	}
	return snap
}

// MergeKnown adds ids to the domain's known set. Merging an id that is
// already known is a no-op, and no id is ever removed.
func (s *Store) MergeKnown(ctx context.Context, domain string, ids ...int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.read(ctx, domain)
	if err != nil {
		var corrupt *corruptValueError
		if !errors.As(err, &corrupt) {
			return fmt.Errorf("merge known: %w", err)
		}
		slog.Warn("discarding corrupt progress value", "domain", domain, "error", err)
		snap = NewSnapshot(domain)
	}

	for _, id := range ids {
		snap.Known[id] = struct{}{}
	}
	if err := s.write(ctx, snap); err != nil {
		return fmt.Errorf("merge known: %w", err)
	}
	return nil
}

// ResetAll clears the domain's known set.
func (s *Store) ResetAll(ctx context.Context, domain string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(ctx, NewSnapshot(domain)); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}

func (s *Store) read(ctx context.Context, domain string) (Snapshot, error) {
	key := Key(domain)
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return Snapshot{}, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return NewSnapshot(domain), nil
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return Snapshot{}, &corruptValueError{Key: key, Err: err}
	}
	return NewSnapshot(domain, ids...), nil
}

func (s *Store) write(ctx context.Context, snap Snapshot) error {
	data, err := json.Marshal(snap.IDs())
	if err != nil {
		return fmt.Errorf("encode known ids: %w", err)
	}
	return s.kv.Set(ctx, Key(snap.Domain), string(data))
}
