package profile

import (
	"math"
	"testing"

	"github.com/hiddenvs/slicecore/params"
	"github.com/hiddenvs/slicecore/sliceconfig"
)

func buildParams(t *testing.T, objectHeight float64) params.SlicingParameters {
	t.Helper()
	cfg := sliceconfig.Config{
		LayerHeight:                      0.2,
		NozzleDiameter:                   []float64{0.4},
		SupportMaterialExtruder:          1,
		SupportMaterialInterfaceExtruder: 1,
		ExtrudersUsed:                    []int{1},
	}
	p, err := params.Build(cfg, objectHeight, []int{1})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return p
}

// No raft, no ranges: the whole height defaults to the nominal 0.2.
func TestFromRangesEmptyYieldsNominalProfile(t *testing.T) {
	p := buildParams(t, 10)
	prof := FromRanges(p, nil)
	want := Profile{0, 0.2, 10, 0.2}
	if !profilesEqual(prof, want) {
		t.Fatalf("got %v, want %v", prof, want)
	}
}

// Fixed first layer height takes priority over any declared range.
func TestFromRangesFixedFirstLayer(t *testing.T) {
	cfg := sliceconfig.Config{
		LayerHeight:                      0.2,
		FirstLayer:                       sliceconfig.FirstLayerHeight{Value: 0.3},
		NozzleDiameter:                   []float64{0.4},
		SupportMaterialExtruder:          1,
		SupportMaterialInterfaceExtruder: 1,
		ExtrudersUsed:                    []int{1},
	}
	p, err := params.Build(cfg, 1.5, []int{1})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	prof := FromRanges(p, nil)
	want := Profile{0, 0.3, 1.5, 0.2}
	if !profilesEqual(prof, want) {
		t.Fatalf("got %v, want %v", prof, want)
	}
}

// A single declared range.
func TestFromRangesOneRange(t *testing.T) {
	p := buildParams(t, 5)
	prof := FromRanges(p, []LayerRange{{Lo: 1.0, Hi: 2.0, Height: 0.1}})
	if prof.NumPoints() != 6 {
		t.Fatalf("expected 4 segments (6 points), got %d points: %v", prof.NumPoints(), prof)
	}
	checkHeightAt(t, prof, 0.5, 0.2)
	checkHeightAt(t, prof, 1.5, 0.1)
	checkHeightAt(t, prof, 3.5, 0.2)
}

// Overlapping ranges.
func TestFromRangesOverlappingTrimsLaterRange(t *testing.T) {
	p := buildParams(t, 5)
	prof := FromRanges(p, []LayerRange{
		{Lo: 1.0, Hi: 3.0, Height: 0.1},
		{Lo: 2.0, Hi: 4.0, Height: 0.25},
	})
	checkHeightAt(t, prof, 1.5, 0.1)
	checkHeightAt(t, prof, 2.5, 0.1)
	checkHeightAt(t, prof, 3.5, 0.25)
	checkHeightAt(t, prof, 4.5, 0.2)
}

func TestFromRangesDropsDegenerateRange(t *testing.T) {
	p := buildParams(t, 5)
	prof := FromRanges(p, []LayerRange{
		{Lo: 1.0, Hi: 3.0, Height: 0.1},
		{Lo: 3.0, Hi: 3.0 + 1e-6, Height: 0.25},
	})
	checkHeightAt(t, prof, 3.5, 0.2)
}

func checkHeightAt(t *testing.T, prof Profile, z, want float64) {
	t.Helper()
	if h := prof.HeightAt(z); math.Abs(h-want) > 1e-9 {
		t.Fatalf("HeightAt(%v) = %v, want %v", z, h, want)
	}
}

func profilesEqual(a, b Profile) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}
