// Package viewstate holds per-screen state: the loaded data, the last
// error message, and a loading flag. Failed calls keep previously
// loaded data intact so a screen never blanks out on refresh errors.
package viewstate

import (
	"context"
	"sync"
)

type Holder[T any] struct {
	mu      sync.Mutex
	data    T
	hasData bool
	err     string
	loading bool
}

func NewHolder[T any]() *Holder[T] {
	return &Holder[T]{}
}

// Run executes one call: loading is set and the error cleared up front;
// on success the data is replaced, on failure only the error is set.
func (h *Holder[T]) Run(ctx context.Context, call func(ctx context.Context) (T, error)) {
	h.mu.Lock()
	h.loading = true
	h.err = ""
	h.mu.Unlock()

	v, err := call(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.loading = false
	if err != nil {
		h.err = err.Error()
		return
	}
	h.data = v
	h.hasData = true
}

func (h *Holder[T]) Data() (T, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.data, h.hasData
}

func (h *Holder[T]) Err() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

func (h *Holder[T]) Loading() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loading
}
