package profile

import (
	"math"

	"github.com/hiddenvs/slicecore/params"
	"github.com/hiddenvs/slicecore/sliceconst"
)

// EditAction is the closed tagged variant of localized profile edits.
// Adding a new action means extending this variant and both the clamping
// and resampling dispatch below.
type EditAction int

const (
	Increase EditAction = iota
	Decrease
	Reduce
	Smooth
)

// smoothRounds is the number of in-place averaging passes Adjust runs for
// a Smooth edit.
const smoothRounds = 6

// Adjust applies a localized edit to prof over a Z-band of width
// bandWidth centered at z, and returns the updated profile. delta is the
// magnitude of the thickness change; its sign is resolved per action.
//
// Adjust never mutates prof's backing array in place; it returns a new
// Profile, in the idiom of append(). Callers must reassign their
// reference, e.g. profile = Adjust(params, profile, ...). An edit whose z
// falls outside the variable window, or whose effective delta is too
// small to matter, is a no-op: Adjust returns prof unchanged.
func Adjust(p params.SlicingParameters, prof Profile, z, delta, bandWidth float64, action EditAction) Profile {
	zLoVar := 0.0
	if p.FirstObjectLayerHeightFixed() {
		zLoVar = p.FirstObjectLayerHeight
	}
	zHiVar := p.ObjectPrintZHeight()

	if z < zLoVar-sliceconst.Epsilon || z > zHiVar+sliceconst.Epsilon {
		return prof
	}

	current := prof.HeightAt(z)
	effDelta, noop := prepareDelta(action, current, math.Abs(delta), p.LayerHeight, p.MinLayerHeight, p.MaxLayerHeight)
	if noop {
		return prof
	}

	lo := math.Max(zLoVar, z-bandWidth/2)
	bandHi := z + bandWidth/2 // deliberately not clipped to zHiVar; stopZ below does that
	stopZ := math.Min(bandHi, zHiVar)

	// Copy the prefix through the last key-point at or below lo.
	idx := 0
	for idx < prof.NumPoints()-1 && prof.Z(idx+1) <= lo {
		idx++
	}
	out := make(Profile, 0, len(prof)+64)
	out = append(out, prof[:2*(idx+1)]...)

	iStart := out.NumPoints()
	zz := lo
	for {
		final := zz >= stopZ-sliceconst.Epsilon
		if final {
			zz = stopZ
		}
		hOld := prof.HeightAt(zz)
		w := cosWeight(zz, z, bandWidth)
		hNew := applyAction(action, hOld, w, effDelta, p.LayerHeight)
		hNew = clamp(hNew, p.MinLayerHeight, p.MaxLayerHeight)
		out = appendDedup(out, zz, hNew, final)
		if final {
			break
		}
		zz = math.Min(zz+sliceconst.ResampleStep, stopZ)
	}
	iEnd := out.NumPoints()

	// Append the untouched suffix of the old profile past the band.
	j := prof.NumPoints() - 1
	for j >= 0 && prof.Z(j) > stopZ+sliceconst.Epsilon {
		j--
	}
	j++
	out = append(out, prof[2*j:]...)

	if action == Smooth {
		smoothBand(out, iStart, iEnd, z, bandWidth)
	}
	assertValid(out, zHiVar, p.MinLayerHeight, p.MaxLayerHeight)
	return out
}

// prepareDelta clamps the requested edit magnitude per action and reports
// whether the edit is a no-op. delta is already an absolute magnitude.
func prepareDelta(action EditAction, current, delta, nominal, minH, maxH float64) (effDelta float64, noop bool) {
	switch action {
	case Increase, Decrease:
		d := delta
		if action == Decrease {
			d = -delta
		}
		bound := maxH
		if d < 0 {
			bound = minH
		}
		if math.Abs(current-bound) < sliceconst.Epsilon {
			return 0, true
		}
		if current+d > maxH {
			d = maxH - current
		}
		if current+d < minH {
			d = minH - current
		}
		return d, false
	case Reduce, Smooth:
		capped := math.Min(delta, math.Abs(nominal-current))
		if capped < sliceconst.Epsilon {
			return 0, true
		}
		return capped, false
	default:
		return 0, true
	}
}

// cosWeight is the cosine falloff window centered at z.
func cosWeight(zz, z, bandWidth float64) float64 {
	if math.Abs(zz-z) >= bandWidth/2 {
		return 0
	}
	return 0.5 + 0.5*math.Cos(2*math.Pi*(zz-z)/bandWidth)
}

// applyAction computes the resampled height at one cursor position.
func applyAction(action EditAction, hOld, w, effDelta, nominal float64) float64 {
	switch action {
	case Increase, Decrease:
		return hOld + w*effDelta
	case Reduce:
		diff := nominal - hOld
		step := w * effDelta
		if math.Abs(diff) > step {
			return hOld + math.Copysign(step, diff)
		}
		return nominal
	case Smooth:
		return hOld
	default:
		return hOld
	}
}

// appendDedup appends (z, h) to buf, unless the last point already sits
// within Epsilon of z (avoids zero-length segments). The final cursor
// position is the exception: it pops and replaces a duplicate so the
// band's last computed height is never silently dropped.
func appendDedup(buf Profile, z, h float64, final bool) Profile {
	n := len(buf)
	if n >= 2 && math.Abs(buf[n-2]-z) < sliceconst.Epsilon {
		if final {
			buf[n-2], buf[n-1] = z, h
		}
		return buf
	}
	return append(buf, z, h)
}

// smoothBand runs the 6-round in-place averaging pass over the freshly
// resampled point range [iStart, iEnd) of prof. Neighbours are the
// adjacent key points, the natural reading of neighbour-averaging for a
// profile where most edits don't straddle a doubled step vertex (see
// DESIGN.md).
func smoothBand(prof Profile, iStart, iEnd int, z, bandWidth float64) {
	n := prof.NumPoints()
	for round := 0; round < smoothRounds; round++ {
		snapshot := make([]float64, n)
		for i := 0; i < n; i++ {
			snapshot[i] = prof.H(i)
		}
		for i := iStart; i < iEnd; i++ {
			zi := prof.Z(i)
			t := 0.0
			if math.Abs(zi-z) < bandWidth/2 {
				t = 0.25 + 0.25*math.Cos(2*math.Pi*(zi-z)/bandWidth)
			}
			var neighbourAvg float64
			switch {
			case i == 0:
				neighbourAvg = snapshot[i+1]
			case i == n-1:
				neighbourAvg = snapshot[i-1]
			default:
				neighbourAvg = (snapshot[i-1] + snapshot[i+1]) / 2
			}
			prof[2*i+1] = (1-t)*snapshot[i] + t*neighbourAvg
		}
	}
}
