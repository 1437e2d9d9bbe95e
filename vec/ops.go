package vec

// Element is the constraint for managed element types: values whose copies
// and teardown carry meaning beyond a plain bit copy. Clone produces an
// independent copy; Destroy tears a value down. Destroy must tolerate the
// zero value, since default-constructed slots hold it.
type Element[T any] interface {
	Clone() T
	Destroy()
}

// elemOps constructs, clones, relocates, and destroys ranges of slots.
// Every Buffer mutation goes through one of these implementations, which is
// what keeps the clone-exactly-once / destroy-exactly-once invariant.
type elemOps[T any] interface {
	// construct default-initializes a range of dead slots.
	construct(s []T)
	// clone copy-constructs src into a range of dead slots.
	clone(dst, src []T)
	// relocate transfers ownership of src into a range of dead slots,
	// leaving src dead. dst must not start after src.
	relocate(dst, src []T)
	// destroy tears down a range of live slots, leaving them dead.
	destroy(s []T)
}

// podOps is the trivial path: values move with the builtin copy and have no
// per-slot teardown. Vacated slots keep their old bits; they are re-zeroed
// by construct before they can become visible again.
type podOps[T any] struct{}

func (podOps[T]) construct(s []T)       { clear(s) }
func (podOps[T]) clone(dst, src []T)    { copy(dst, src) }
func (podOps[T]) relocate(dst, src []T) { copy(dst, src) }
func (podOps[T]) destroy([]T)           {}

// managedOps is the managed path: copies go through Clone and discarded
// values through Destroy, exactly once each.
type managedOps[T Element[T]] struct{}

func (managedOps[T]) construct(s []T) { clear(s) }

func (managedOps[T]) clone(dst, src []T) {
	for i := range src {
		dst[i] = src[i].Clone()
	}
}

// relocate zeroes each source slot right after its value is copied out, so
// teardown responsibility moves with the value. The forward order makes a
// one-slot-down shift over overlapping ranges safe: every slot is read
// before it is zeroed.
func (managedOps[T]) relocate(dst, src []T) {
	var zero T
	for i := range src {
		dst[i] = src[i]
		src[i] = zero
	}
}

func (managedOps[T]) destroy(s []T) {
	var zero T
	for i := range s {
		s[i].Destroy()
		s[i] = zero
	}
}
