package floats_test

import (
	"testing"

	"github.com/cwbudde/fastvec/floats"
	"github.com/cwbudde/fastvec/internal/testutil"
	"github.com/cwbudde/fastvec/vec"
)

const eps = 1e-12

func TestAddMatchesScalar(t *testing.T) {
	a := testutil.Ramp(0.5, 0.25, 64)
	b := testutil.Ramp(10, -0.5, 64)

	want := make([]float64, len(a))
	for i := range want {
		want[i] = a[i] + b[i]
	}

	dst := vec.FromSlice(a)
	src := vec.FromSlice(b)
	floats.Add(dst, src)

	testutil.RequireSliceNearlyEqual(t, dst.Slice(), want, eps)
}

func TestMulMatchesScalar(t *testing.T) {
	a := testutil.Ramp(1, 0.125, 48)
	b := testutil.Ramp(2, -0.25, 48)

	want := make([]float64, len(a))
	for i := range want {
		want[i] = a[i] * b[i]
	}

	dst := vec.FromSlice(a)
	src := vec.FromSlice(b)
	floats.Mul(dst, src)

	testutil.RequireSliceNearlyEqual(t, dst.Slice(), want, eps)
}

func TestMulToLeavesOperandsUntouched(t *testing.T) {
	aVals := testutil.Ramp(1, 1, 16)
	bVals := testutil.Ramp(3, 0.5, 16)

	a := vec.FromSlice(aVals)
	b := vec.FromSlice(bVals)
	dst := vec.New[float64]()
	dst.Resize(16)

	floats.MulTo(dst, a, b)

	want := make([]float64, 16)
	for i := range want {
		want[i] = aVals[i] * bVals[i]
	}
	testutil.RequireSliceNearlyEqual(t, dst.Slice(), want, eps)
	testutil.RequireSliceNearlyEqual(t, a.Slice(), aVals, 0)
	testutil.RequireSliceNearlyEqual(t, b.Slice(), bVals, 0)
}

func TestScaleMatchesScalar(t *testing.T) {
	src := vec.FromSlice(testutil.Ramp(-4, 0.5, 32))
	dst := vec.New[float64]()
	dst.Resize(32)

	floats.Scale(dst, src, 1.5)

	want := make([]float64, 32)
	for i, v := range src.Slice() {
		want[i] = v * 1.5
	}
	testutil.RequireSliceNearlyEqual(t, dst.Slice(), want, eps)
}

func TestScaleByOneIsIdentity(t *testing.T) {
	src := vec.FromSlice(testutil.Ramp(0, 0.1, 32))
	dst := vec.New[float64]()
	dst.Resize(32)

	floats.Scale(dst, src, 1)

	if d := testutil.MaxAbsDiff(t, dst.Slice(), src.Slice()); d != 0 {
		t.Fatalf("MaxAbsDiff = %v, want 0", d)
	}
}
