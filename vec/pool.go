package vec

import "sync"

// Pool provides sync.Pool-based Buffer reuse to reduce allocation churn in
// hot loops. The pool itself is safe for concurrent Get/Put; the buffers it
// hands out are not.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool returns a Pool of trivial-path buffers.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return New[T]()
			},
		},
	}
}

// NewManagedPool returns a Pool of managed-path buffers.
func NewManagedPool[T Element[T]]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return NewManaged[T]()
			},
		},
	}
}

// Get returns a buffer resized to length. Every slot holds the zero value,
// regardless of what the buffer held before it was pooled. Callers must
// return it via Put when done.
func (p *Pool[T]) Get(length int) *Buffer[T] {
	b := p.pool.Get().(*Buffer[T])
	b.Resize(length)
	return b
}

// Put clears the buffer, running managed teardown immediately, and returns
// it to the pool. The caller must not use the buffer after Put. Put(nil) is
// a no-op.
func (p *Pool[T]) Put(b *Buffer[T]) {
	if b == nil {
		return
	}
	b.Clear()
	p.pool.Put(b)
}
