package physics

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clampf restricts a value to a range
func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
