package profile

import (
	"math"
	"testing"
)

// An Increase edit raises the height near the edit center and leaves
// the profile untouched far away from it.
func TestAdjustIncreaseRaisesCenterLeavesFarEndsAlone(t *testing.T) {
	p := buildParams(t, 10)
	prof := FromRanges(p, nil)

	edited := Adjust(p, prof, 5, 0.05, 2, Increase)

	if h := edited.HeightAt(5); h <= 0.2+1e-6 {
		t.Fatalf("HeightAt(5) after Increase = %v, want > 0.2", h)
	}
	if h := edited.HeightAt(0.1); math.Abs(h-0.2) > 1e-6 {
		t.Fatalf("HeightAt(0.1) should be untouched by a band centered at 5, got %v", h)
	}
	if h := edited.HeightAt(9.9); math.Abs(h-0.2) > 1e-6 {
		t.Fatalf("HeightAt(9.9) should be untouched by a band centered at 5, got %v", h)
	}
}

func TestAdjustDecreaseLowersCenter(t *testing.T) {
	p := buildParams(t, 10)
	prof := FromRanges(p, nil)

	edited := Adjust(p, prof, 5, 0.05, 2, Decrease)
	if h := edited.HeightAt(5); h >= 0.2-1e-6 {
		t.Fatalf("HeightAt(5) after Decrease = %v, want < 0.2", h)
	}
}

// Property: repeated Increase edits never push the height above MaxLayerHeight.
func TestAdjustIncreaseSaturatesAtMax(t *testing.T) {
	p := buildParams(t, 10)
	prof := FromRanges(p, nil)

	edited := prof
	for i := 0; i < 50; i++ {
		edited = Adjust(p, edited, 5, 0.05, 2, Increase)
	}
	if h := edited.HeightAt(5); h > p.MaxLayerHeight+1e-6 {
		t.Fatalf("HeightAt(5) = %v exceeds MaxLayerHeight %v", h, p.MaxLayerHeight)
	}
}

// Property: repeated Decrease edits never push the height below MinLayerHeight.
func TestAdjustDecreaseSaturatesAtMin(t *testing.T) {
	p := buildParams(t, 10)
	prof := FromRanges(p, nil)

	edited := prof
	for i := 0; i < 50; i++ {
		edited = Adjust(p, edited, 5, 0.05, 2, Decrease)
	}
	if h := edited.HeightAt(5); h < p.MinLayerHeight-1e-6 {
		t.Fatalf("HeightAt(5) = %v below MinLayerHeight %v", h, p.MinLayerHeight)
	}
}

// Property: once a height sits exactly at the bound, a further edit toward
// that bound is a no-op and returns the identical slice.
func TestAdjustNoopAtSaturatedBound(t *testing.T) {
	p := buildParams(t, 10)
	prof := FromRanges(p, nil)

	saturated := prof
	for i := 0; i < 50; i++ {
		saturated = Adjust(p, saturated, 5, 0.05, 2, Increase)
	}
	again := Adjust(p, saturated, 5, 0.05, 2, Increase)
	if !profilesEqual(again, saturated) {
		t.Fatalf("edit at a saturated bound should be a no-op, got %v vs %v", again, saturated)
	}
}

// Property: an edit centered outside the variable Z window is a no-op.
func TestAdjustNoopOutsideWindow(t *testing.T) {
	p := buildParams(t, 10)
	prof := FromRanges(p, nil)

	edited := Adjust(p, prof, p.ObjectPrintZHeight()+5, 0.05, 2, Increase)
	if !profilesEqual(edited, prof) {
		t.Fatalf("edit centered beyond the object top should be a no-op")
	}
}

// Smooth keeps every touched height within configured bounds and
// leaves the untouched suffix past the band alone.
func TestAdjustSmoothStaysWithinBoundsAndLeavesFarEndAlone(t *testing.T) {
	p := buildParams(t, 10)
	stepped := FromRanges(p, []LayerRange{{Lo: 4, Hi: 6, Height: p.MaxLayerHeight}})

	edited := Adjust(p, stepped, 5, 0.1, 4, Smooth)

	for i := 0; i < edited.NumPoints(); i++ {
		h := edited.H(i)
		if h < p.MinLayerHeight-1e-6 || h > p.MaxLayerHeight+1e-6 {
			t.Fatalf("point %d height %v out of bounds [%v, %v]", i, h, p.MinLayerHeight, p.MaxLayerHeight)
		}
	}
	if h := edited.HeightAt(9.9); math.Abs(h-0.2) > 1e-6 {
		t.Fatalf("HeightAt(9.9) should be untouched by a band centered at 5, got %v", h)
	}
}

func TestAdjustReduceMovesTowardNominal(t *testing.T) {
	p := buildParams(t, 10)
	stepped := FromRanges(p, []LayerRange{{Lo: 4, Hi: 6, Height: p.MaxLayerHeight}})

	before := stepped.HeightAt(5)
	edited := Adjust(p, stepped, 5, 1.0, 3, Reduce)
	after := edited.HeightAt(5)

	if math.Abs(after-p.LayerHeight) > math.Abs(before-p.LayerHeight) {
		t.Fatalf("Reduce should move the center height toward nominal: before=%v after=%v nominal=%v", before, after, p.LayerHeight)
	}
}
