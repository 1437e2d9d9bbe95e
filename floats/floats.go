// Package floats provides bulk numeric block operations over the live
// region of a Buffer[float64], delegating to the SIMD-dispatched kernels in
// algo-vecmath. All operands must have the same length; the kernels panic
// on mismatch.
package floats

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/fastvec/vec"
)

// Add adds src into dst element-wise: dst[i] += src[i].
func Add(dst, src *vec.Buffer[float64]) {
	vecmath.AddBlockInPlace(dst.Slice(), src.Slice())
}

// Mul multiplies dst by src element-wise: dst[i] *= src[i].
func Mul(dst, src *vec.Buffer[float64]) {
	vecmath.MulBlockInPlace(dst.Slice(), src.Slice())
}

// MulTo writes the element-wise product of a and b into dst.
func MulTo(dst, a, b *vec.Buffer[float64]) {
	vecmath.MulBlock(dst.Slice(), a.Slice(), b.Slice())
}

// Scale writes src scaled by k into dst: dst[i] = src[i] * k.
func Scale(dst, src *vec.Buffer[float64], k float64) {
	vecmath.ScaleBlock(dst.Slice(), src.Slice(), k)
}
