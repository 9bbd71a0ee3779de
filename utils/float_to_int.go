package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 on the positive side avoids overflowing int16.
	return int16(x * 32767.0)
}

// Float32SliceToInt16 converts a whole buffer of normalized samples to
// 16-bit PCM in one pass.
func Float32SliceToInt16(src []float32) []int16 {
	dst := make([]int16, len(src))
	for i, x := range src {
		dst[i] = Float32ToInt16(x)
	}

	return dst
}
