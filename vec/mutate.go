package vec

// PushBack appends v, growing the region when full. On the managed path the
// buffer takes ownership of v; pass v.Clone() to keep using the original.
func (b *Buffer[T]) PushBack(v T) {
	if b.size == len(b.data) {
		b.grow(b.size + 1)
	}
	b.data[b.size] = v
	b.size++
}

// EmplaceBack grows b by one default-constructed element and returns a
// pointer to it for in-place initialization. Only managed element types can
// be emplaced; trivial buffers assemble the value and use PushBack instead.
// The pointer is invalidated by any later growth or destructive operation.
func EmplaceBack[T Element[T]](b *Buffer[T]) *T {
	if b.size == len(b.data) {
		b.grow(b.size + 1)
	}
	var zero T
	b.data[b.size] = zero
	b.size++
	return &b.data[b.size-1]
}

// Append bulk-adds a copy of every element of src. The growth decision is
// made once for the combined total, so at most one reallocation covers the
// whole batch. src is borrowed: on the managed path each element is cloned.
func (b *Buffer[T]) Append(src []T) {
	if len(src) == 0 {
		return
	}
	if b.size+len(src) > len(b.data) {
		b.grow(b.size + len(src))
	}
	b.ops().clone(b.data[b.size:b.size+len(src)], src)
	b.size += len(src)
}

// PopBack removes and destroys the last element. Popping an empty buffer is
// a programming error and panics.
func (b *Buffer[T]) PopBack() {
	if b.size == 0 {
		panic("vec: PopBack on empty buffer")
	}
	b.ops().destroy(b.data[b.size-1 : b.size])
	b.size--
}

// Erase removes the first element equal to value, destroying it and
// shifting the remainder down one slot to close the gap. It reports whether
// an element was removed; relative order of the others is preserved.
func Erase[T comparable](b *Buffer[T], value T) bool {
	for i := 0; i < b.size; i++ {
		if b.data[i] == value {
			b.eraseAt(i)
			return true
		}
	}
	return false
}

// EraseFunc removes the first element for which match returns true. It is
// the Erase variant for element types without a useful == comparison.
func (b *Buffer[T]) EraseFunc(match func(T) bool) bool {
	for i := 0; i < b.size; i++ {
		if match(b.data[i]) {
			b.eraseAt(i)
			return true
		}
	}
	return false
}

func (b *Buffer[T]) eraseAt(i int) {
	ops := b.ops()
	ops.destroy(b.data[i : i+1])
	if i < b.size-1 {
		ops.relocate(b.data[i:b.size-1], b.data[i+1:b.size])
	}
	b.size--
}

// Resize sets the element count to n. Newly exposed slots hold the zero
// value; slots cut off are destroyed. Capacity only ever grows. Negative n
// is treated as 0.
func (b *Buffer[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n == b.size {
		return
	}
	if n > len(b.data) {
		b.Reserve(n)
	}
	ops := b.ops()
	if n > b.size {
		ops.construct(b.data[b.size:n])
	} else {
		ops.destroy(b.data[n:b.size])
	}
	b.size = n
}

// Clear destroys all live elements and resets the size to zero. Capacity is
// kept for reuse.
func (b *Buffer[T]) Clear() {
	b.ops().destroy(b.data[:b.size])
	b.size = 0
}
