// Package registry maintains named tables of bound wrappers — the dispatch
// surface a callback library grows once bindings outlive the scope that
// created them (interrupt tables, event routes).
//
// A Table stores entries heterogeneously; typed retrieval goes through
// LookupFunc, LookupMethod, and LookupView. Unlike the wrappers themselves,
// a Table is shared infrastructure and locks per shard.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/call_able_go/callable"
	"github.com/on-the-ground/call_able_go/shared/helper"
)

// ErrNotFound indicates that no entry is registered under the name.
var ErrNotFound = errors.New("no entry for name")

// Entry is one registration: the stored wrapper, a unique id, and the span
// bounding the registration time.
type Entry struct {
	Id           string
	Value        any
	RegisteredAt TimeSpan
}

// Table is a named registry of bound wrappers, sharded by hash of the name
// so unrelated registrations do not contend on one lock.
type Table struct {
	shards []shard
	logger *zap.Logger
}

type shard struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// New returns a table with numShards shards (clamped to at least 1). A nil
// logger disables registration logging.
func New(numShards int, logger *zap.Logger) *Table {
	if numShards <= 0 {
		numShards = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	shards := make([]shard, numShards)
	for i := range shards {
		shards[i].entries = make(map[string]Entry)
	}
	return &Table{shards: shards, logger: logger}
}

func (t *Table) shardOf(name string) *shard {
	if len(t.shards) == 1 {
		return &t.shards[0]
	}
	return &t.shards[xxhash.Sum64String(name)%uint64(len(t.shards))]
}

// Register stores value under name, replacing any previous entry, and
// returns the stored entry. The wrapper value is copied in; the callable it
// references is shared, as with any wrapper copy.
func (t *Table) Register(name string, value any) Entry {
	entry := Entry{
		Id:           uuid.New().String(),
		Value:        value,
		RegisteredAt: now(),
	}
	s := t.shardOf(name)
	s.mu.Lock()
	s.entries[name] = entry
	s.mu.Unlock()
	t.logger.Debug("registered callable",
		zap.String("name", name),
		zap.String("id", entry.Id),
	)
	return entry
}

// Deregister removes name and reports whether an entry was present.
func (t *Table) Deregister(name string) bool {
	s := t.shardOf(name)
	s.mu.Lock()
	_, ok := s.entries[name]
	delete(s.entries, name)
	s.mu.Unlock()
	if ok {
		t.logger.Debug("deregistered callable", zap.String("name", name))
	}
	return ok
}

// Lookup returns the entry registered under name.
func (t *Table) Lookup(name string) (Entry, bool) {
	s := t.shardOf(name)
	s.mu.RLock()
	entry, ok := s.entries[name]
	s.mu.RUnlock()
	return entry, ok
}

// LookupFunc returns the Func wrapper registered under name. It fails with
// ErrNotFound on a miss, or a type error when the entry holds a different
// wrapper shape.
func LookupFunc[T, R any](t *Table, name string) (callable.Func[T, R], error) {
	w, err := helper.GetTypedValueOf[callable.Func[T, R]](func() (any, bool) {
		entry, ok := t.Lookup(name)
		return entry.Value, ok
	})
	return w, notFoundOf(err, name)
}

// LookupMethod returns the Method wrapper registered under name.
func LookupMethod[O, T, R any](t *Table, name string) (callable.Method[O, T, R], error) {
	w, err := helper.GetTypedValueOf[callable.Method[O, T, R]](func() (any, bool) {
		entry, ok := t.Lookup(name)
		return entry.Value, ok
	})
	return w, notFoundOf(err, name)
}

// LookupView returns the View wrapper registered under name.
func LookupView[O, T, R any](t *Table, name string) (callable.View[O, T, R], error) {
	w, err := helper.GetTypedValueOf[callable.View[O, T, R]](func() (any, bool) {
		entry, ok := t.Lookup(name)
		return entry.Value, ok
	})
	return w, notFoundOf(err, name)
}

func notFoundOf(err error, name string) error {
	if errors.Is(err, helper.ErrNoValue) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return err
}
