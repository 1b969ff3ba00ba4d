// Package model holds TrackPad's in-memory state: the owning lists of
// attractions and itineraries, the filtered views over them, and the Model
// facade that command layers drive.
//
// Nothing in this package is safe for concurrent use. Callers serialize
// access (see handler.Server).
package model

import (
	"slices"

	"github.com/pkordes/trackpad/internal/domain"
)

// entity is satisfied by the domain types a List can own.
// IsSame is the duplicate rule; Equal is full identity.
type entity[T any] interface {
	IsSame(other T) bool
	Equal(other T) bool
}

// List is an ordered collection in which no two elements are the same
// entity. Insertion order is kept. A failed operation leaves the list as it
// was.
type List[T entity[T]] struct {
	items        []T
	msgDuplicate string
	msgNotFound  string
	listeners    map[int]func()
	nextID       int
}

func newList[T entity[T]](msgDuplicate, msgNotFound string) List[T] {
	return List[T]{
		msgDuplicate: msgDuplicate,
		msgNotFound:  msgNotFound,
		listeners:    map[int]func(){},
	}
}

// Contains reports whether an element is the same entity as x.
func (l *List[T]) Contains(x T) bool {
	return slices.ContainsFunc(l.items, x.IsSame)
}

// Add appends x. Returns domain.ErrDuplicate if Contains(x).
func (l *List[T]) Add(x T) error {
	if l.Contains(x) {
		return domain.NewError(domain.ErrDuplicate, l.msgDuplicate)
	}
	l.items = append(l.items, x)
	l.notify()
	return nil
}

// Remove deletes the element equal to x.
// Returns domain.ErrNotFound if there is none.
func (l *List[T]) Remove(x T) error {
	if _, err := l.remove(x); err != nil {
		return err
	}
	l.notify()
	return nil
}

// Set replaces target with replacement at the same position.
// Returns domain.ErrNotFound if target is absent, or domain.ErrDuplicate if
// replacement is the same entity as some element other than target.
func (l *List[T]) Set(target, replacement T) error {
	if _, err := l.set(target, replacement); err != nil {
		return err
	}
	l.notify()
	return nil
}

// Reset replaces the whole contents with xs.
// Returns domain.ErrDuplicate if xs holds two elements that are the same.
func (l *List[T]) Reset(xs []T) error {
	if err := l.reset(xs); err != nil {
		return err
	}
	l.notify()
	return nil
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return len(l.items) }

// Items returns a copy of the elements in order.
func (l *List[T]) Items() []T { return slices.Clone(l.items) }

// Subscribe registers fn to run after every successful mutation.
// The returned func unregisters it.
func (l *List[T]) Subscribe(fn func()) (cancel func()) {
	id := l.nextID
	l.nextID++
	l.listeners[id] = fn
	return func() { delete(l.listeners, id) }
}

func (l *List[T]) indexOf(x T) int {
	return slices.IndexFunc(l.items, x.Equal)
}

func (l *List[T]) remove(x T) (int, error) {
	i := l.indexOf(x)
	if i < 0 {
		return -1, domain.NewError(domain.ErrNotFound, l.msgNotFound)
	}
	l.items = slices.Delete(l.items, i, i+1)
	return i, nil
}

func (l *List[T]) set(target, replacement T) (int, error) {
	i := l.indexOf(target)
	if i < 0 {
		return -1, domain.NewError(domain.ErrNotFound, l.msgNotFound)
	}
	for j, x := range l.items {
		if j != i && x.IsSame(replacement) {
			return -1, domain.NewError(domain.ErrDuplicate, l.msgDuplicate)
		}
	}
	l.items[i] = replacement
	return i, nil
}

func (l *List[T]) reset(xs []T) error {
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if xs[i].IsSame(xs[j]) {
				return domain.NewError(domain.ErrDuplicate, l.msgDuplicate)
			}
		}
	}
	l.items = slices.Clone(xs)
	return nil
}

func (l *List[T]) notify() {
	for _, fn := range l.listeners {
		fn()
	}
}
