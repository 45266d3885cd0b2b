package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Direction of the active sort pass.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// Config describes the capabilities a record type exposes to the table:
// how to read and assign its id, which fields the search term matches
// against, and which keys it can be sorted by.
type Config[T any] struct {
	ID         func(T) int
	SetID      func(T, int) T
	SearchText func(T) []string
	SortKeys   map[string]func(a, b T) int
}

// Table manages one screen's ordered record collection together with its
// view state (search term, sort key, sort direction). The derived view is
// recomputed from scratch on every read; the underlying slice keeps
// insertion order. Each table is owned by exactly one service, but handlers
// run concurrently, so access is guarded by a mutex.
type Table[T any] struct {
	mu        sync.RWMutex
	cfg       Config[T]
	records   []T
	term      string
	sortKey   string
	direction Direction
}

// New seeds a table with the given fixture records. The seed slice is
// copied, so callers may reuse it across tables and tests.
func New[T any](cfg Config[T], seed []T) *Table[T] {
	records := make([]T, len(seed))
	copy(records, seed)
	return &Table[T]{
		cfg:       cfg,
		records:   records,
		direction: Ascending,
	}
}

// SetSearchTerm stores the current filter text. No validation is applied;
// an empty term matches every record.
func (t *Table[T]) SetSearchTerm(term string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.term = term
}

// SetSort selects the sort key. Requesting the key already active toggles
// the direction; a new key resets the direction to ascending. Keys not
// declared in the config are rejected.
func (t *Table[T]) SetSort(key string) (Direction, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.cfg.SortKeys[key]; !ok {
		return "", fmt.Errorf("unsortable key: %q", key)
	}

	if t.sortKey == key && t.direction == Ascending {
		t.direction = Descending
	} else {
		t.sortKey = key
		t.direction = Ascending
	}
	return t.direction, nil
}

// Add assigns the next id (max of existing ids plus one, starting at 1 on
// an empty collection) and appends the record. The view re-sorts on the
// next read; no insert-in-order is attempted.
func (t *Table[T]) Add(draft T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	maxID := 0
	for _, r := range t.records {
		if id := t.cfg.ID(r); id > maxID {
			maxID = id
		}
	}
	record := t.cfg.SetID(draft, maxID+1)
	t.records = append(t.records, record)
	return record
}

// Delete removes the record with the given id. It reports whether a record
// was removed; an absent id leaves the collection unchanged.
func (t *Table[T]) Delete(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, r := range t.records {
		if t.cfg.ID(r) == id {
			t.records = append(t.records[:i], t.records[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the record with the given id.
func (t *Table[T]) Get(id int) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, r := range t.records {
		if t.cfg.ID(r) == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Update applies fn to the record with the given id and stores the result.
func (t *Table[T]) Update(id int, fn func(T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, r := range t.records {
		if t.cfg.ID(r) == id {
			t.records[i] = fn(r)
			return t.records[i], true
		}
	}
	var zero T
	return zero, false
}

// View computes the derived view: filter by the search term first, then a
// stable sort of the surviving subset by (key, direction). With no sort key
// selected the filtered records keep insertion order.
func (t *Table[T]) View() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	view := t.filtered()
	if t.sortKey == "" {
		return view
	}

	cmp := t.cfg.SortKeys[t.sortKey]
	desc := t.direction == Descending
	sort.SliceStable(view, func(i, j int) bool {
		c := cmp(view[i], view[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
	return view
}

func (t *Table[T]) filtered() []T {
	if t.term == "" {
		out := make([]T, len(t.records))
		copy(out, t.records)
		return out
	}

	term := strings.ToLower(t.term)
	out := make([]T, 0, len(t.records))
	for _, r := range t.records {
		for _, field := range t.cfg.SearchText(r) {
			if strings.Contains(strings.ToLower(field), term) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// All returns a copy of the collection in insertion order, ignoring the
// view state.
func (t *Table[T]) All() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, len(t.records))
	copy(out, t.records)
	return out
}

// Len reports the collection size.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.records)
}

// SearchTerm returns the active filter text.
func (t *Table[T]) SearchTerm() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.term
}

// Sort returns the active sort key and direction. The key is empty until
// the first SetSort call.
func (t *Table[T]) Sort() (string, Direction) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.sortKey, t.direction
}

// CompareStrings is a lexicographic comparator usable in SortKeys.
func CompareStrings(a, b string) int {
	return strings.Compare(a, b)
}

// CompareInts is a numeric comparator usable in SortKeys.
func CompareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
