// Package array provides the dense row-major container the view engine
// composes over: reference-counted storage, element access, the strided
// data interface, and a flat-position stepper.
package array

import (
	"sync"
	"sync/atomic"

	"github.com/born-ml/ndview/internal/ndim"
)

// buffer is a reference-counted storage block shared between arrays.
// Releasing the last reference drops the data slice, so a stale alias
// fails fast instead of reading freed storage.
type buffer[T ndim.DType] struct {
	data     []T
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newBuffer creates a reference-counted buffer with refCount = 1.
func newBuffer[T ndim.DType](size int) *buffer[T] {
	b := &buffer[T]{
		data: make([]T, size),
	}
	b.refCount.Store(1)
	return b
}

// addRef increments the reference count (for Clone/Retain operations).
func (b *buffer[T]) addRef() {
	b.refCount.Add(1)
}

// release decrements the reference count and deallocates if it reaches 0.
func (b *buffer[T]) release() {
	if b.refCount.Add(-1) == 0 {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.data = nil
	}
}

// isUnique returns true if this buffer has only one reference.
func (b *buffer[T]) isUnique() bool {
	return b.refCount.Load() == 1
}

// refs returns the current reference count.
func (b *buffer[T]) refs() int {
	return int(b.refCount.Load())
}
