package profile

import "github.com/hiddenvs/slicecore/params"

// Generate walks prof from bottom to top and emits a flat sequence
// [lo0, hi0, lo1, hi1, ...] of abutting layer intervals whose heights are
// sampled from the profile at each layer's midpoint. The final layer's
// top is not snapped to the object's exact top Z: the loop stops once the
// next layer's midpoint would reach the top, so up to half a layer height
// at the very top can stay uncovered rather than forcing one last
// undersized layer.
func Generate(p params.SlicingParameters, prof Profile) []float64 {
	objectHeight := p.ObjectPrintZHeight()

	var out []float64
	printZ := 0.0
	if p.FirstObjectLayerHeightFixed() {
		out = append(out, 0, p.FirstObjectLayerHeight)
		printZ = p.FirstObjectLayerHeight
	}

	for {
		sliceZ := printZ + 0.5*p.MinLayerHeight
		h := prof.HeightAt(sliceZ)
		sliceZ = printZ + 0.5*h
		if sliceZ >= objectHeight {
			break
		}
		out = append(out, printZ, printZ+h)
		printZ += h
	}
	return out
}
