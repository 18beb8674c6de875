package engine

// glReadPixels returns rows bottom-up; callers expect row 0 at the top of
// the frame. These copy staging row (height-h-1) into destination row h,
// columns unchanged.

func flipDepthRows(dst, src []float32, width, height int) {
	for h := 0; h < height; h++ {
		copy(dst[h*width:(h+1)*width], src[(height-h-1)*width:(height-h)*width])
	}
}

func flipColorRows(dst, src []uint8, width, height int) {
	stride := width * 3
	for h := 0; h < height; h++ {
		copy(dst[h*stride:(h+1)*stride], src[(height-h-1)*stride:(height-h)*stride])
	}
}
