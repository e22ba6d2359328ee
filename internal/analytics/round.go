package analytics

import "math"

// Rounding is applied once, here, so every consumer of the engine sees
// the same numbers: two decimals for money-valued outputs, one decimal
// for consumption. math.Round rounds half away from zero, which keeps
// results reproducible across runs and platforms.

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
