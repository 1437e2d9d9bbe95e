package vec

import "testing"

var benchSizes = []struct {
	name string
	size int
}{
	{"16", 16},
	{"1k", 1024},
	{"64k", 64 * 1024},
}

func BenchmarkPushBack(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			b.SetBytes(int64(tc.size * 8))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				buf := New[float64]()
				for j := 0; j < tc.size; j++ {
					buf.PushBack(float64(j))
				}
			}
		})
	}
}

func BenchmarkAppend(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			src := make([]float64, tc.size)
			for i := range src {
				src[i] = float64(i)
			}

			b.SetBytes(int64(tc.size * 8))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				buf := New[float64]()
				buf.Append(src)
			}
		})
	}
}

func BenchmarkPushBackPooled(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			p := NewPool[float64]()

			b.SetBytes(int64(tc.size * 8))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				buf := p.Get(0)
				for j := 0; j < tc.size; j++ {
					buf.PushBack(float64(j))
				}
				p.Put(buf)
			}
		})
	}
}
