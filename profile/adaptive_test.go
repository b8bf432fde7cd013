package profile

import (
	"testing"
)

// constantOracle reports a fixed cusp height regardless of z, as a flat
// mesh (no curvature) would.
type constantOracle struct {
	height float64
}

func (o constantOracle) CuspHeight(z, cuspTolerance float64, facetHint *int) float64 {
	return o.height
}

// steppedOracle reports a small height below a threshold Z and a larger
// one above it, modeling a mesh with a curved cap partway up.
type steppedOracle struct {
	threshold, low, high float64
}

func (o steppedOracle) CuspHeight(z, cuspTolerance float64, facetHint *int) float64 {
	if z < o.threshold {
		return o.low
	}
	return o.high
}

// Property: Adaptive always terminates and produces a profile whose last
// Z reaches the object's print top.
func TestAdaptiveTerminatesAtObjectTop(t *testing.T) {
	p := buildParams(t, 10)
	oracle := constantOracle{height: 0.15}

	prof := Adaptive(p, oracle, 0.2)
	if prof.NumPoints() == 0 {
		t.Fatalf("expected a non-empty profile")
	}
	if got := prof.LastZ(); got < p.ObjectPrintZHeight()-1e-6 {
		t.Fatalf("LastZ() = %v, want >= %v", got, p.ObjectPrintZHeight())
	}
}

// Oracle heights above MaxLayerHeight are clamped down.
func TestAdaptiveClampsToMaxLayerHeight(t *testing.T) {
	p := buildParams(t, 10)
	oracle := constantOracle{height: p.MaxLayerHeight * 10}

	prof := Adaptive(p, oracle, 0.2)
	for i := 0; i < prof.NumPoints(); i++ {
		if h := prof.H(i); h > p.MaxLayerHeight+1e-6 {
			t.Fatalf("point %d height %v exceeds MaxLayerHeight %v", i, h, p.MaxLayerHeight)
		}
	}
}

// Oracle heights below MinLayerHeight are clamped up.
func TestAdaptiveClampsToMinLayerHeight(t *testing.T) {
	p := buildParams(t, 10)
	oracle := constantOracle{height: p.MinLayerHeight / 10}

	prof := Adaptive(p, oracle, 0.2)
	for i := 0; i < prof.NumPoints(); i++ {
		if h := prof.H(i); h < p.MinLayerHeight-1e-6 {
			t.Fatalf("point %d height %v below MinLayerHeight %v", i, h, p.MinLayerHeight)
		}
	}
}

// A stepped oracle produces a profile whose height increases once z
// crosses the oracle's threshold.
func TestAdaptiveFollowsOracleStep(t *testing.T) {
	p := buildParams(t, 10)
	oracle := steppedOracle{threshold: 5, low: 0.1, high: 0.25}

	prof := Adaptive(p, oracle, 0.2)
	if h := prof.HeightAt(1); h >= 0.2 {
		t.Fatalf("HeightAt(1) = %v, want a low height below the threshold", h)
	}
	if h := prof.HeightAt(9); h <= 0.15 {
		t.Fatalf("HeightAt(9) = %v, want a high height above the threshold", h)
	}
}
