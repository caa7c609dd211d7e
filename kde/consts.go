package kde

const (
	// density and cdf are evaluated on this many points whatever the sample size
	KdeGridSize = 100

	// kernel support is cut bandwidths on each side of the sample
	KdeDefaultCut = 3.0

	KdeDefaultBwAdjust = 1.0

	// 1.349 ~= IQR of the standard normal distribution
	IqrNormalize = 1.349
)
