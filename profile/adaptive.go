package profile

import (
	"math"

	"github.com/hiddenvs/slicecore/meshheight"
	"github.com/hiddenvs/slicecore/params"
	"github.com/hiddenvs/slicecore/sliceconst"
)

// maxAdaptiveSteps bounds the stepping loop in Adaptive as a defensive
// guard against a misbehaving Oracle; termination is otherwise guaranteed
// because every step advances Z by at least MinLayerHeight.
const maxAdaptiveSteps = 1_000_000

// Adaptive builds a profile by repeatedly querying a Mesh Height Oracle
// for the largest layer height that keeps the chordal error under
// cuspTolerance. A cuspTolerance <= 0 uses meshheight.DefaultCuspTolerance.
func Adaptive(p params.SlicingParameters, oracle meshheight.Oracle, cuspTolerance float64) Profile {
	if cuspTolerance <= 0 {
		cuspTolerance = meshheight.DefaultCuspTolerance
	}
	objectHeight := p.ObjectPrintZHeight()
	firstH := p.FirstObjectLayerHeight

	out := Profile{0, firstH}
	if p.FirstObjectLayerHeightFixed() {
		out = append(out, firstH, firstH)
	}

	sliceZ := firstH
	hint := 0
	for steps := 0; sliceZ < objectHeight-sliceconst.Epsilon && steps < maxAdaptiveSteps; steps++ {
		h := oracle.CuspHeight(sliceZ, cuspTolerance, &hint)
		h = clamp(h, p.MinLayerHeight, p.MaxLayerHeight)
		top := math.Min(sliceZ+h, objectHeight)
		out = append(out, sliceZ, h, top, h)
		sliceZ = top
	}

	out = append(out, sliceZ, firstH, objectHeight, firstH)
	assertValid(out, objectHeight, p.MinLayerHeight, p.MaxLayerHeight)
	return out
}
