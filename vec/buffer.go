package vec

import "errors"

// ErrOutOfRange is returned by At for indexes outside [0, Len()).
var ErrOutOfRange = errors.New("vec: index out of range")

// growFactor scales the capacity on append-driven growth. The extra +1 in
// grow guarantees progress from capacity zero.
const growFactor = 2

// Buffer is a growable contiguous container of T. It tracks live elements
// (Len) separately from allocated slots (Cap) and routes every memory
// operation through the element path fixed at construction: New and
// FromSlice select the trivial path, NewManaged and FromSliceManaged the
// managed one.
//
// The zero Buffer is an empty trivial-path buffer ready for use.
type Buffer[T any] struct {
	data []T // backing region; len(data) is the capacity
	size int // live elements occupy data[:size]
	eops elemOps[T]
}

// New returns an empty trivial-path buffer. No memory is allocated until
// the first insertion. Vacated slots on this path are not zeroed, so
// element types holding pointers should prefer NewManaged if delayed
// collection of removed values matters.
func New[T any]() *Buffer[T] {
	return &Buffer[T]{eops: podOps[T]{}}
}

// NewManaged returns an empty managed-path buffer. Every copy of an element
// goes through Clone and every discarded element through Destroy.
func NewManaged[T Element[T]]() *Buffer[T] {
	return &Buffer[T]{eops: managedOps[T]{}}
}

// FromSlice returns a trivial-path buffer holding a copy of src, with
// capacity exactly equal to its length.
func FromSlice[T any](src []T) *Buffer[T] {
	b := New[T]()
	b.initFrom(src)
	return b
}

// FromSliceManaged returns a managed-path buffer holding a Clone of every
// element of src, with capacity exactly equal to its length.
func FromSliceManaged[T Element[T]](src []T) *Buffer[T] {
	b := NewManaged[T]()
	b.initFrom(src)
	return b
}

func (b *Buffer[T]) initFrom(src []T) {
	if len(src) == 0 {
		return
	}
	b.data = make([]T, len(src))
	b.eops.clone(b.data, src)
	b.size = len(src)
}

// ops returns the element path, defaulting a zero-value Buffer to the
// trivial one.
func (b *Buffer[T]) ops() elemOps[T] {
	if b.eops == nil {
		b.eops = podOps[T]{}
	}
	return b.eops
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int {
	return b.size
}

// Cap returns the number of allocated slots.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// Empty reports whether the buffer holds no elements.
func (b *Buffer[T]) Empty() bool {
	return b.size == 0
}

// Get returns the element at index i. The index must be in [0, Len());
// anything else is a programming error and panics. Use At for a checked
// lookup.
func (b *Buffer[T]) Get(i int) T {
	if i < 0 || i >= b.size {
		panic("vec: index out of range")
	}
	return b.data[i]
}

// At returns the element at index i, or ErrOutOfRange if i is outside
// [0, Len()).
func (b *Buffer[T]) At(i int) (T, error) {
	if i < 0 || i >= b.size {
		var zero T
		return zero, ErrOutOfRange
	}
	return b.data[i], nil
}

// Set stores v at index i. On the managed path the value previously held
// there is destroyed and the buffer takes ownership of v. The index must be
// in [0, Len()).
func (b *Buffer[T]) Set(i int, v T) {
	if i < 0 || i >= b.size {
		panic("vec: index out of range")
	}
	b.ops().destroy(b.data[i : i+1])
	b.data[i] = v
}

// Front returns the first element. The buffer must not be empty.
func (b *Buffer[T]) Front() T {
	if b.size == 0 {
		panic("vec: buffer is empty")
	}
	return b.data[0]
}

// Back returns the last element. The buffer must not be empty.
func (b *Buffer[T]) Back() T {
	if b.size == 0 {
		panic("vec: buffer is empty")
	}
	return b.data[b.size-1]
}

// Slice returns the live region as a view sharing the buffer's memory. The
// view's capacity is clamped to its length, so appending to it cannot write
// into the buffer's spare slots. Any operation that grows, shrinks, or
// releases the buffer invalidates the view.
func (b *Buffer[T]) Slice() []T {
	return b.data[:b.size:b.size]
}

// Reserve reallocates the backing region to exactly newCap slots,
// relocating the live elements in order. newCap must exceed the current
// capacity; asking for less is a programming error and panics.
func (b *Buffer[T]) Reserve(newCap int) {
	if newCap <= len(b.data) {
		panic("vec: Reserve capacity must exceed current capacity")
	}
	next := make([]T, newCap)
	b.ops().relocate(next[:b.size], b.data[:b.size])
	b.data = next
}

// grow reallocates ahead of an append so repeated appends cost amortized
// O(1). need is the total slot count the caller requires.
func (b *Buffer[T]) grow(need int) {
	b.Reserve(max(len(b.data)*growFactor+1, need))
}

// ShrinkToFit reallocates so that capacity equals size. Empty buffers and
// buffers that are already tight are left alone.
func (b *Buffer[T]) ShrinkToFit() {
	if b.size == 0 || b.size == len(b.data) {
		return
	}
	next := make([]T, b.size)
	b.ops().relocate(next, b.data[:b.size])
	b.data = next
}

// Clone returns a deep copy. The copy's capacity equals the source's size;
// spare capacity is not carried over.
func (b *Buffer[T]) Clone() *Buffer[T] {
	next := &Buffer[T]{eops: b.ops()}
	if b.size > 0 {
		next.data = make([]T, b.size)
		next.eops.clone(next.data, b.data[:b.size])
		next.size = b.size
	}
	return next
}

// CopyFrom replaces the contents with a deep copy of src. The current
// elements are destroyed first. The new capacity equals src's size.
// Copying a buffer onto itself is a no-op.
func (b *Buffer[T]) CopyFrom(src *Buffer[T]) {
	if b == src {
		return
	}
	if b.eops == nil {
		b.eops = src.ops()
	}
	ops := b.ops()
	ops.destroy(b.data[:b.size])
	b.data = nil
	b.size = 0
	if src.size > 0 {
		b.data = make([]T, src.size)
		ops.clone(b.data, src.data[:src.size])
		b.size = src.size
	}
}

// Move transfers ownership of the region to a new buffer and leaves the
// receiver empty and non-owning. Releasing or reusing the moved-from buffer
// is safe.
func (b *Buffer[T]) Move() *Buffer[T] {
	next := &Buffer[T]{data: b.data, size: b.size, eops: b.ops()}
	b.data = nil
	b.size = 0
	return next
}

// MoveFrom destroys the current contents and steals src's region, size, and
// capacity. src is left empty and non-owning. Moving a buffer onto itself
// is a no-op.
func (b *Buffer[T]) MoveFrom(src *Buffer[T]) {
	if b == src {
		return
	}
	if b.eops == nil {
		b.eops = src.ops()
	}
	b.ops().destroy(b.data[:b.size])
	b.data = src.data
	b.size = src.size
	src.data = nil
	src.size = 0
}

// Release destroys all live elements and drops the backing region. Managed
// buffers must be released (or cleared) before being discarded so element
// teardown runs; trivial buffers may simply be dropped. Release is
// idempotent and safe on moved-from buffers.
func (b *Buffer[T]) Release() {
	b.ops().destroy(b.data[:b.size])
	b.data = nil
	b.size = 0
}
