package pointgen_test

import "math"

const (
	minInt = math.MinInt
	maxInt = math.MaxInt
)
