package mocks

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memory is an ordered, mutex-guarded document list shared by the store mocks.
type memory[T any] struct {
	mu    sync.Mutex
	docs  []T
	idOf  func(*T) *primitive.ObjectID
	Error error // returned by every operation when set
}

func newMemory[T any](idOf func(*T) *primitive.ObjectID, seed []T) *memory[T] {
	docs := make([]T, len(seed))
	copy(docs, seed)
	return &memory[T]{docs: docs, idOf: idOf}
}

func (m *memory[T]) filter(match func(*T) bool) []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]T, 0)
	for i := range m.docs {
		if match == nil || match(&m.docs[i]) {
			out = append(out, m.docs[i])
		}
	}
	return out
}

func (m *memory[T]) first(match func(*T) bool) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.docs {
		if match(&m.docs[i]) {
			return m.docs[i], true
		}
	}
	var zero T
	return zero, false
}

func (m *memory[T]) byID(id primitive.ObjectID) (T, bool) {
	return m.first(func(d *T) bool { return *m.idOf(d) == id })
}

func (m *memory[T]) insert(doc T) primitive.ObjectID {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := primitive.NewObjectID()
	*m.idOf(&doc) = id
	m.docs = append(m.docs, doc)
	return id
}

func (m *memory[T]) count(match func(*T) bool) int64 {
	return int64(len(m.filter(match)))
}

func (m *memory[T]) deleteFirst(match func(*T) bool) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.docs {
		if match(&m.docs[i]) {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return 1
		}
	}
	return 0
}

// updateFirst applies change to the first match and reports whether the
// document was found and whether change modified it.
func (m *memory[T]) updateFirst(match func(*T) bool, change func(*T) bool) (matched, modified int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.docs {
		if match(&m.docs[i]) {
			if change(&m.docs[i]) {
				return 1, 1
			}
			return 1, 0
		}
	}
	return 0, 0
}

// All returns a snapshot of every stored document.
func (m *memory[T]) All() []T {
	return m.filter(nil)
}
