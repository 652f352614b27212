package novelwriting

import (
	"context"
	"fmt"
	"sync"
)

// ResourceState is the readiness of a lazily loaded resource.
type ResourceState int

const (
	Uninitialized ResourceState = iota
	Ready
	Failed
)

func (s ResourceState) String() string {
	switch s {
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "uninitialized"
}

// Resource holds a handle that becomes available asynchronously. It moves
// from Uninitialized to either Ready or Failed exactly once and never changes
// afterwards.
type Resource[T any] struct {
	name string

	mu     sync.RWMutex
	state  ResourceState
	handle T
	reason error
	done   chan struct{}
}

// NewResource returns an uninitialized resource. name is used in errors.
func NewResource[T any](name string) *Resource[T] {
	return &Resource[T]{
		name: name,
		done: make(chan struct{}),
	}
}

// Set makes the resource Ready. It reports false, and leaves the resource
// untouched, if it already left the Uninitialized state.
func (r *Resource[T]) Set(handle T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != Uninitialized {
		return false
	}
	r.state, r.handle = Ready, handle
	close(r.done)
	return true
}

// Fail makes the resource Failed with the given reason. Like Set, only the
// first transition counts.
func (r *Resource[T]) Fail(reason error) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != Uninitialized {
		return false
	}
	r.state, r.reason = Failed, reason
	close(r.done)
	return true
}

// Get returns the handle once Ready. Before that it returns ErrNotReady, and
// after a failure an error wrapping both ErrInitialization and the reason.
func (r *Resource[T]) Get() (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var zero T
	switch r.state {
	case Ready:
		return r.handle, nil
	case Failed:
		return zero, fmt.Errorf("%w: %s: %w", ErrInitialization, r.name, r.reason)
	}
	return zero, fmt.Errorf("%s: %w", r.name, ErrNotReady)
}

// State returns the current state.
func (r *Resource[T]) State() ResourceState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Done is closed when the resource leaves the Uninitialized state.
func (r *Resource[T]) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the resource is Ready or Failed, or ctx ends, and then
// behaves like Get.
func (r *Resource[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-r.done:
		return r.Get()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
