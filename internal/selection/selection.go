// Package selection implements multi-select and bulk deletion over a set of
// item identifiers
package selection

import "slices"

// Set is an ordered set of selected identifiers.
type Set[T comparable] struct {
	index map[T]int
	items []T
}

// New returns an empty selection.
func New[T comparable]() *Set[T] {
	return &Set[T]{
		index: make(map[T]int),
	}
}

// Toggle adds id to the selection if it is absent and removes it otherwise.
func (s *Set[T]) Toggle(id T) {
	if _, ok := s.index[id]; ok {
		s.remove(id)
		return
	}

	s.index[id] = len(s.items)
	s.items = append(s.items, id)
}

// Has reports whether id is selected.
func (s *Set[T]) Has(id T) bool {
	_, ok := s.index[id]
	return ok
}

// Len returns the number of selected items.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Items returns the selected ids in the order they were selected.
func (s *Set[T]) Items() []T {
	return slices.Clone(s.items)
}

// Clear empties the selection.
func (s *Set[T]) Clear() {
	clear(s.index)
	s.items = nil
}

// ToggleAll clears the selection if every item in all is already selected,
// and selects all of them otherwise.
func (s *Set[T]) ToggleAll(all []T) {
	if len(all) > 0 && s.Len() == len(all) {
		s.Clear()
		return
	}

	s.Clear()

	for _, id := range all {
		if !s.Has(id) {
			s.Toggle(id)
		}
	}
}

// Delete asks for confirmation and passes the selected ids to del. The
// selection is cleared once del succeeds. It reports whether del was
// called; an empty selection is never deleted.
func (s *Set[T]) Delete(
	confirm func(n int) (bool, error),
	del func(ids []T) error,
) (bool, error) {
	if s.Len() == 0 {
		return false, nil
	}

	ok, err := confirm(s.Len())
	if err != nil || !ok {
		return false, err
	}

	err = del(s.Items())
	if err != nil {
		return false, err
	}

	s.Clear()

	return true, nil
}

func (s *Set[T]) remove(id T) {
	i := s.index[id]
	delete(s.index, id)

	s.items = slices.Delete(s.items, i, i+1)

	for j := i; j < len(s.items); j++ {
		s.index[s.items[j]] = j
	}
}
