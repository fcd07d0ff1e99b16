package csync

import "sync"

// Slice is a thread-safe slice implementation with generic types.
// It uses a RWMutex for concurrent read access and exclusive write access.
type Slice[T any] struct {
	data []T
	mu   sync.RWMutex
}

// NewSlice creates a new thread-safe slice
func NewSlice[T any]() *Slice[T] {
	return &Slice[T]{
		data: make([]T, 0),
	}
}

// Append adds elements to the end of the slice
func (s *Slice[T]) Append(elements ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(s.data, elements...)
}

// Len returns the length of the slice
func (s *Slice[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Last returns the last element
func (s *Slice[T]) Last() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero T
	if len(s.data) == 0 {
		return zero, false
	}
	return s.data[len(s.data)-1], true
}

// Find returns the first element matching predicate
func (s *Slice[T]) Find(predicate func(T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, value := range s.data {
		if predicate(value) {
			return value, true
		}
	}
	var zero T
	return zero, false
}

// RemoveFirst removes the first element matching predicate and returns it.
// The order of the remaining elements is preserved.
func (s *Slice[T]) RemoveFirst(predicate func(T) bool) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, value := range s.data {
		if predicate(value) {
			s.data = append(s.data[:i:i], s.data[i+1:]...)
			return value, true
		}
	}
	var zero T
	return zero, false
}

// Clear removes all elements and returns them
func (s *Slice[T]) Clear() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.data
	s.data = make([]T, 0)
	return old
}

// ToSlice returns a copy of the underlying slice
func (s *Slice[T]) ToSlice() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, len(s.data))
	copy(result, s.data)
	return result
}
