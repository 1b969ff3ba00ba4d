package model

import (
	"slices"

	"github.com/pkordes/trackpad/internal/domain"
)

// MessageInvalidIndex is reported when an index is past the end of the
// displayed list.
const MessageInvalidIndex = "The index provided is invalid"

// FilteredView is a read-only projection of a List through a predicate.
// It re-derives its contents whenever the list changes or the predicate is
// replaced, so Visible never needs a manual refresh. Order always mirrors
// the backing list.
type FilteredView[T entity[T]] struct {
	source    *List[T]
	predicate Predicate[T]
	visible   []T
	observers map[int]func([]T)
	nextID    int
}

// NewFilteredView builds a view over source that shows everything.
func NewFilteredView[T entity[T]](source *List[T]) *FilteredView[T] {
	v := &FilteredView[T]{
		source:    source,
		predicate: ShowAll[T](),
		observers: map[int]func([]T){},
	}
	source.Subscribe(v.refresh)
	v.refresh()
	return v
}

// SetPredicate installs p. A nil p shows everything.
func (v *FilteredView[T]) SetPredicate(p Predicate[T]) {
	if p == nil {
		p = ShowAll[T]()
	}
	v.predicate = p
	v.refresh()
}

// Visible returns the elements that currently pass the predicate.
func (v *FilteredView[T]) Visible() []T { return slices.Clone(v.visible) }

// Len returns the number of visible elements.
func (v *FilteredView[T]) Len() int { return len(v.visible) }

// At resolves an index against the visible elements, not the backing list.
// Returns domain.ErrInvalidIndex when i is out of range.
func (v *FilteredView[T]) At(i domain.Index) (T, error) {
	if !i.In(len(v.visible)) {
		var zero T
		return zero, domain.NewError(domain.ErrInvalidIndex, MessageInvalidIndex)
	}
	return v.visible[i.ZeroBased()], nil
}

// Subscribe registers fn to receive the visible elements after every change.
// fn runs synchronously on the mutating goroutine and must not block.
func (v *FilteredView[T]) Subscribe(fn func([]T)) (cancel func()) {
	id := v.nextID
	v.nextID++
	v.observers[id] = fn
	return func() { delete(v.observers, id) }
}

func (v *FilteredView[T]) refresh() {
	v.visible = filter(v.source.items, v.predicate)
	for _, fn := range v.observers {
		fn(slices.Clone(v.visible))
	}
}

func filter[T any](items []T, p Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, x := range items {
		if p(x) {
			out = append(out, x)
		}
	}
	return out
}
