package closestpair

// Test bridge: unexported kernels exposed to closestpair_test only.
var (
	PartitionByY = partitionByY
	BuildStrip   = buildStrip
	StripClosest = stripClosest
	CompareXY    = compareXY
	CompareYX    = compareYX
)

// NoPair is the "no candidate yet" Pair with infinite distance.
var NoPair = noPair
