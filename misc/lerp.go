package misc

// LerpFloat64 moves fraction of the way from v1 to v2. A fraction of 0 returns v1 exactly.
func LerpFloat64(v1 float64, v2 float64, fraction float64) float64 {
	return v1 + (v2-v1)*fraction
}
