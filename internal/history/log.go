package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"agribrain/backend/internal/repository"
)

// Keys of the persisted histories, one per session kind.
const (
	KeyChat     = "chatMessages"
	KeyAnalysis = "analysisHistory"
	KeyWeather  = "weatherHistory"
	KeyCrop     = "cropHistory"
)

// Log is an append-only, ordered history persisted under a single key. It is
// loaded once when opened and rewritten in full on every append. There is no
// eviction.
type Log[T any] struct {
	store repository.KVStore
	key   string

	mu      sync.Mutex
	entries []T
}

// Open loads the log stored under key. A missing key yields an empty log.
func Open[T any](ctx context.Context, store repository.KVStore, key string) (*Log[T], error) {
	l := &Log[T]{store: store, key: key}

	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return l, nil
		}
		return nil, fmt.Errorf("could not load history %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, &l.entries); err != nil {
		return nil, fmt.Errorf("could not decode history %q: %w", key, err)
	}
	slog.Debug("Loaded history", "key", key, "entries", len(l.entries))
	return l, nil
}

// Key returns the storage key of the log.
func (l *Log[T]) Key() string { return l.key }

// Append adds entries in order and persists the whole log. On a write failure
// the in-memory log is left unchanged.
func (l *Log[T]) Append(ctx context.Context, entries ...T) error {
	if len(entries) == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]T, 0, len(l.entries)+len(entries))
	next = append(next, l.entries...)
	next = append(next, entries...)

	if err := l.write(ctx, next); err != nil {
		return err
	}
	l.entries = next
	return nil
}

// Entries returns a copy of the log in insertion order.
func (l *Log[T]) Entries() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Log[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Last returns the newest entry.
func (l *Log[T]) Last() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var zero T
	if len(l.entries) == 0 {
		return zero, false
	}
	return l.entries[len(l.entries)-1], true
}

// Clear removes every entry, in memory and in the store.
func (l *Log[T]) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.store.Delete(ctx, l.key); err != nil {
		return fmt.Errorf("could not clear history %q: %w", l.key, err)
	}
	l.entries = nil
	return nil
}

func (l *Log[T]) write(ctx context.Context, entries []T) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("could not encode history %q: %w", l.key, err)
	}
	if err := l.store.Put(ctx, l.key, raw); err != nil {
		return fmt.Errorf("could not save history %q: %w", l.key, err)
	}
	return nil
}
