package engine

import (
	"testing"
)

func TestFlipDepthRows(t *testing.T) {
	tests := []struct {
		Width, Height int
		Src, Expected []float32
	}{
		{
			// gpu bottom row must land in output row 0
			2, 2,
			[]float32{
				1, 2,
				3, 4,
			},
			[]float32{
				3, 4,
				1, 2,
			},
		}, {
			3, 1,
			[]float32{5, 6, 7},
			[]float32{5, 6, 7},
		}, {
			2, 3,
			[]float32{
				1, 2,
				3, 4,
				5, 6,
			},
			[]float32{
				5, 6,
				3, 4,
				1, 2,
			},
		},
	}

	for _, c := range tests {
		dst := make([]float32, len(c.Src))
		flipDepthRows(dst, c.Src, c.Width, c.Height)

		for i := range dst {
			if dst[i] != c.Expected[i] {
				t.Errorf("flipDepthRows(%vx%v) = %v, expected %v", c.Width, c.Height, dst, c.Expected)
				break
			}
		}
	}
}

func TestFlipColorRows(t *testing.T) {
	tests := []struct {
		Width, Height int
		Src, Expected []uint8
	}{
		{
			// columns and channel order preserved, rows flipped
			2, 2,
			[]uint8{
				1, 2, 3, 4, 5, 6,
				7, 8, 9, 10, 11, 12,
			},
			[]uint8{
				7, 8, 9, 10, 11, 12,
				1, 2, 3, 4, 5, 6,
			},
		}, {
			1, 3,
			[]uint8{
				1, 2, 3,
				4, 5, 6,
				7, 8, 9,
			},
			[]uint8{
				7, 8, 9,
				4, 5, 6,
				1, 2, 3,
			},
		},
	}

	for _, c := range tests {
		dst := make([]uint8, len(c.Src))
		flipColorRows(dst, c.Src, c.Width, c.Height)

		for i := range dst {
			if dst[i] != c.Expected[i] {
				t.Errorf("flipColorRows(%vx%v) = %v, expected %v", c.Width, c.Height, dst, c.Expected)
				break
			}
		}
	}
}

func BenchmarkFlipColorRows(b *testing.B) {
	b.StopTimer()
	width, height := 640, 480
	src := make([]uint8, width*height*3)
	dst := make([]uint8, width*height*3)

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		flipColorRows(dst, src, width, height)
	}
}
