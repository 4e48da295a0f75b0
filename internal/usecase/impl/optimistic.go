package impl

import "sync"

// listView is the client-held copy of one remote collection. The backend owns
// the data; this copy exists so mutations can be shown before the server
// confirms them and taken back when it refuses.
//
// Every refetch is tagged with a generation number. A mutation bumps the
// generation, so a fetch that was already in flight when the mutation landed
// can no longer overwrite the mutated view with pre-mutation data.
type listView[T any] struct {
	mu         sync.Mutex
	items      []T
	generation uint64
}

// begin marks the start of a refetch and returns its generation tag.
func (v *listView[T]) begin() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.generation++

	return v.generation
}

// complete installs the fetched items unless a newer fetch or a mutation has
// superseded the tag. Reports whether the result was installed.
func (v *listView[T]) complete(gen uint64, items []T) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.generation {
		return false
	}
	v.items = items

	return true
}

// snapshot returns a copy of the current items.
func (v *listView[T]) snapshot() []T {
	v.mu.Lock()
	defer v.mu.Unlock()

	return append([]T(nil), v.items...)
}

// mutate applies transform to the view and returns a rollback that restores
// the prior items. Both directions bump the generation, so in-flight fetches
// from before the mutation are discarded either way.
func (v *listView[T]) mutate(transform func([]T) []T) (rollback func()) {
	v.mu.Lock()
	defer v.mu.Unlock()

	prev := append([]T(nil), v.items...)
	v.generation++
	v.items = transform(append([]T(nil), v.items...))

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		v.generation++
		v.items = prev
	}
}

// commitMutation is the optimistic write path: show the change, send it, take
// it back when the server says no. The commit error is returned as-is.
func commitMutation[T any](v *listView[T], transform func([]T) []T, commit func() error) error {
	rollback := v.mutate(transform)
	if err := commit(); err != nil {
		rollback()

		return err
	}

	return nil
}

// viewSet holds one listView per principal, keyed by email. Admin views use a
// single shared listView instead.
type viewSet[T any] struct {
	mu    sync.Mutex
	views map[string]*listView[T]
}

func (s *viewSet[T]) view(key string) *listView[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.views == nil {
		s.views = make(map[string]*listView[T])
	}
	if v, ok := s.views[key]; ok {
		return v
	}

	v := &listView[T]{}
	s.views[key] = v

	return v
}

// removeWhere filters a slice in a fresh backing array.
func removeWhere[T any](items []T, drop func(T) bool) []T {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if !drop(item) {
			kept = append(kept, item)
		}
	}

	return kept
}
