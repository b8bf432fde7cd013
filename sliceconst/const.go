// Package sliceconst holds the handful of numeric tolerances shared across
// the slicing pipeline, so that params and profile agree on what "close
// enough" means along Z.
package sliceconst

const (
	// Epsilon is the tolerance used for Z comparisons throughout the
	// pipeline.
	Epsilon = 1e-4

	// GlobalMinLayerHeight is the hard floor under which no extruder's
	// minimum layer height is allowed to fall.
	GlobalMinLayerHeight = 0.01

	// DefaultMinLayerHeight is used for an extruder that configures no
	// explicit minimum.
	DefaultMinLayerHeight = 0.07

	// DefaultMaxLayerHeightRatio sets the fallback maximum layer height
	// as a fraction of nozzle diameter when an extruder configures no
	// explicit maximum.
	DefaultMaxLayerHeightRatio = 0.75

	// ResampleStep is the fixed Z step the Profile Editor resamples a
	// band at: a deliberate compromise between profile fidelity and
	// edit latency. Must never be set below MinLayerHeight, or an edit
	// would under-resolve.
	ResampleStep = 0.1
)
