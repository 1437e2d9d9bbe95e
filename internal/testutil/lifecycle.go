package testutil

// Tracker counts element copies and teardowns across a test, so lifecycle
// invariants (clone exactly once, destroy exactly once) can be asserted.
type Tracker struct {
	Clones   int
	Destroys int
}

// Res is a managed element bound to a Tracker. Its zero value is inert:
// Clone and Destroy on it are counted nowhere and tear down nothing.
type Res struct {
	Val int
	tr  *Tracker
}

// New returns a live Res carrying val.
func (t *Tracker) New(val int) Res {
	return Res{Val: val, tr: t}
}

// Clone returns an independent copy and counts it.
func (r Res) Clone() Res {
	if r.tr != nil {
		r.tr.Clones++
	}
	return r
}

// Destroy counts the teardown.
func (r Res) Destroy() {
	if r.tr != nil {
		r.tr.Destroys++
	}
}
