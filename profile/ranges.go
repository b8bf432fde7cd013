package profile

import (
	"math"
	"sort"

	"github.com/hiddenvs/slicecore/params"
	"github.com/hiddenvs/slicecore/sliceconst"
)

// LayerRange is a user-declared fixed-height band over [Lo, Hi).
type LayerRange struct {
	Lo, Hi, Height float64
}

// FromRanges builds an initial profile from a set of user-declared layer
// ranges. Overlapping ranges are resolved by trimming the later range's
// low edge against the earlier range's high edge; a fixed first object
// layer (SlicingParameters.FirstObjectLayerHeightFixed) takes priority
// over every user range as the implicit range [0, FirstObjectLayerHeight].
// Z not covered by any range defaults to the nominal layer height. Ranges
// narrower than sliceconst.Epsilon after trimming are dropped.
func FromRanges(p params.SlicingParameters, ranges []LayerRange) Profile {
	objectHeight := p.ObjectPrintZHeight()
	nominal := p.LayerHeight

	sorted := make([]LayerRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Lo != sorted[j].Lo {
			return sorted[i].Lo < sorted[j].Lo
		}
		return sorted[i].Hi < sorted[j].Hi
	})

	var trimmed []LayerRange
	if p.FirstObjectLayerHeightFixed() {
		trimmed = append(trimmed, LayerRange{0, p.FirstObjectLayerHeight, p.FirstObjectLayerHeight})
	}
	for _, r := range sorted {
		lo, hi := r.Lo, math.Min(r.Hi, objectHeight)
		if n := len(trimmed); n > 0 && lo < trimmed[n-1].Hi {
			lo = trimmed[n-1].Hi
		}
		if lo+sliceconst.Epsilon < hi {
			trimmed = append(trimmed, LayerRange{lo, hi, r.Height})
		}
	}

	var out Profile
	lastZ := 0.0
	for _, r := range trimmed {
		if r.Lo-lastZ > sliceconst.Epsilon {
			out = append(out, lastZ, nominal, r.Lo, nominal)
		}
		out = append(out, r.Lo, r.Height, r.Hi, r.Height)
		lastZ = r.Hi
	}
	if objectHeight-lastZ > sliceconst.Epsilon {
		out = append(out, lastZ, nominal, objectHeight, nominal)
	}
	return out
}
