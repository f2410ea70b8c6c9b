package asset

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"
)

var (
	ErrNotFound = errors.New("asset not found")
	ErrDecode   = errors.New("asset decode failed")
)

// Loadable is anything the Library can resolve from a path
type Loadable interface {
	Path() string
	Decode(r io.Reader) error
	Ready() bool
}

// Handle is an asynchronously resolved asset
// Readers must tolerate the not-ready state; Get reports false until Decode succeeds
type Handle[T any] struct {
	path   string
	decode func(io.Reader) (T, error)
	value  atomic.Pointer[T]
	failed atomic.Bool
}

// NewHandle creates an unresolved handle, decode may be nil for handles resolved by hand
func NewHandle[T any](path string, decode func(io.Reader) (T, error)) *Handle[T] {
	return &Handle[T]{path: path, decode: decode}
}

func (h *Handle[T]) Path() string { return h.path }

// Ready reports whether the value is available
func (h *Handle[T]) Ready() bool {
	return h != nil && h.value.Load() != nil
}

// Failed reports whether decoding was attempted and failed
func (h *Handle[T]) Failed() bool {
	return h != nil && h.failed.Load()
}

// Get returns the value if resolved
func (h *Handle[T]) Get() (T, bool) {
	var zero T
	if h == nil {
		return zero, false
	}
	if p := h.value.Load(); p != nil {
		return *p, true
	}
	return zero, false
}

// Resolve publishes v, later readers see it immediately
func (h *Handle[T]) Resolve(v T) {
	h.value.Store(&v)
}

// Decode implements Loadable
func (h *Handle[T]) Decode(r io.Reader) error {
	if h.decode == nil {
		return fmt.Errorf("%w: %s: no decoder", ErrDecode, h.path)
	}
	v, err := h.decode(r)
	if err != nil {
		h.failed.Store(true)
		return fmt.Errorf("%w: %s: %v", ErrDecode, h.path, err)
	}
	h.Resolve(v)
	return nil
}
