package store

import "sync"

// Phase is the lifecycle position of a store.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseError   Phase = "error"
)

// State is an immutable snapshot of a store.
type State[T any] struct {
	Phase Phase
	Data  T
	Err   error
}

// Loading reports whether a request is outstanding.
func (s State[T]) Loading() bool {
	return s.Phase == PhaseLoading
}

// Slice is the reducer behind every store: it owns one piece of
// server-derived data plus its phase and last error.
//
// Loads are numbered. Succeed and Fail only apply for the most recent
// Begin, so a slow response from an older load cannot overwrite a newer
// one. A failed load keeps whatever data was there before.
type Slice[T any] struct {
	mu    sync.RWMutex
	state State[T]
	gen   uint64
}

// NewSlice returns a slice holding initial in the given phase.
func NewSlice[T any](initial T, phase Phase) *Slice[T] {
	return &Slice[T]{state: State[T]{Phase: phase, Data: initial}}
}

// Snapshot returns the current state.
func (s *Slice[T]) Snapshot() State[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Begin starts a load and returns its generation.
func (s *Slice[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.state.Phase = PhaseLoading
	return s.gen
}

// Succeed completes load gen with data. It reports false for a stale load.
func (s *Slice[T]) Succeed(gen uint64, data T) bool {
	return s.SucceedFunc(gen, func(T) T { return data })
}

// SucceedFunc completes load gen with fn applied to the current data.
func (s *Slice[T]) SucceedFunc(gen uint64, fn func(prev T) T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.state = State[T]{Phase: PhaseReady, Data: fn(s.state.Data)}
	return true
}

// Fail completes load gen with err, keeping the current data.
func (s *Slice[T]) Fail(gen uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.state.Phase = PhaseError
	s.state.Err = err
	return true
}

// StartMutation marks a mutation in flight.
func (s *Slice[T]) StartMutation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Phase = PhaseLoading
}

// CompleteMutation merges a mutation result into the data. fn may be nil.
func (s *Slice[T]) CompleteMutation(fn func(prev T) T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fn != nil {
		s.state.Data = fn(s.state.Data)
	}
	s.state.Phase = PhaseReady
	s.state.Err = nil
}

// FailMutation records a mutation error, keeping the current data.
func (s *Slice[T]) FailMutation(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Phase = PhaseError
	s.state.Err = err
}

// Replace swaps the data without touching phase or error.
func (s *Slice[T]) Replace(data T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Data = data
}
