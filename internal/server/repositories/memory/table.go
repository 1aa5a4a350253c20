// Package memory is the in-process storage backend of the development
// server. Data lives for the lifetime of the process.
package memory

import (
	"sync"

	"github.com/mindcase/mindcase/internal/common"
)

// table keeps rows in insertion order. Reads return copies made by clone.
type table[T any] struct {
	mu    sync.RWMutex
	rows  []T
	id    func(*T) string
	owner func(*T) string
	clone func(T) T
}

func newTable[T any](id, owner func(*T) string, clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{id: id, owner: owner, clone: clone}
}

func (t *table[T]) insert(v T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, t.clone(v))
	return t.clone(v)
}

func (t *table[T]) indexOf(owner, id string) int {
	for i := range t.rows {
		if t.id(&t.rows[i]) == id && t.owner(&t.rows[i]) == owner {
			return i
		}
	}
	return -1
}

func (t *table[T]) get(owner, id string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i := t.indexOf(owner, id)
	if i < 0 {
		var zero T
		return zero, common.ErrNotFound
	}
	return t.clone(t.rows[i]), nil
}

func (t *table[T]) update(owner, id string, fn func(*T)) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.indexOf(owner, id)
	if i < 0 {
		var zero T
		return zero, common.ErrNotFound
	}
	row := t.clone(t.rows[i])
	fn(&row)
	t.rows[i] = row
	return t.clone(row), nil
}

func (t *table[T]) remove(owner, id string) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.indexOf(owner, id)
	if i < 0 {
		var zero T
		return zero, common.ErrNotFound
	}
	row := t.rows[i]
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return row, nil
}

func (t *table[T]) list(owner string, keep func(*T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0)
	for i := range t.rows {
		if t.owner(&t.rows[i]) != owner {
			continue
		}
		if keep != nil && !keep(&t.rows[i]) {
			continue
		}
		out = append(out, t.clone(t.rows[i]))
	}
	return out
}
