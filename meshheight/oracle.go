package meshheight

import (
	"github.com/arl/gogeo/f32"
	"github.com/arl/math32"
)

// Oracle is the Mesh Height Oracle capability consumed by the adaptive
// Profile Builder. Implementations must be safe to call repeatedly with
// a monotonically increasing z; facetHint is an opaque cursor the oracle
// may update to accelerate the next call.
type Oracle interface {
	// CuspHeight returns the largest layer height such that every
	// triangle intersecting [z, z+h] keeps its chordal error under
	// cuspTolerance. The caller clamps the result into
	// [min_layer_height, max_layer_height]; an oracle may return any
	// positive value, including one outside that range.
	CuspHeight(z, cuspTolerance float64, facetHint *int) float64
}

// DefaultCuspTolerance is the default cusp tolerance used when a caller
// doesn't supply one.
const DefaultCuspTolerance = 0.2

// TriMeshOracle is a concrete Oracle backed by one or more triangle
// meshes.
type TriMeshOracle struct {
	mesh Mesh

	// probeHeight bounds how far above z the oracle looks for
	// intersecting triangles; it is set from the object's configured
	// max layer height so the search window never needs to exceed what
	// the caller could possibly use.
	probeHeight float64

	// refineIterations bounds the fixed-point refinement loop in
	// CuspHeight.
	refineIterations int
}

// NewTriMeshOracle returns a TriMeshOracle with the given probe height
// (typically the slicing parameters' max layer height).
func NewTriMeshOracle(probeHeight float64) *TriMeshOracle {
	return &TriMeshOracle{probeHeight: probeHeight, refineIterations: 4}
}

// AddMesh appends a flat-array triangle mesh, see Mesh.AddMesh.
func (o *TriMeshOracle) AddMesh(verts []float32, tris []int32) {
	o.mesh.AddMesh(verts, tris)
}

// Prepare builds the oracle's acceleration structure. It must be called
// once after all meshes are added and before the first CuspHeight call.
func (o *TriMeshOracle) Prepare() {
	o.mesh.Prepare()
}

// SetProbeHeight overrides the search window used to bound candidate
// layer heights; it should track the slicing parameters' max layer
// height.
func (o *TriMeshOracle) SetProbeHeight(h float64) {
	o.probeHeight = h
}

// CuspHeight implements Oracle. The per-facet bound follows the common
// adaptive-layer-height heuristic: a facet that is mostly horizontal
// (|normal.z| near 1, i.e. a near-flat top or bottom surface) bounds the
// layer height close to the tolerance itself, while a facet that is
// mostly vertical (a wall, parallel to the build direction, |normal.z|
// near 0) imposes no bound at all, because a vertical wall produces no
// visible stairstep regardless of layer height.
func (o *TriMeshOracle) CuspHeight(z, cuspTolerance float64, facetHint *int) float64 {
	if o.probeHeight <= 0 {
		zmin, zmax := o.mesh.ZBounds()
		o.probeHeight = float64(f32.Clamp(float32(cuspTolerance*50), 0.01, zmax-zmin))
	}
	height := o.probeHeight

	start := 0
	if facetHint != nil {
		start = *facetHint
	}
	if start < 0 || start > len(o.mesh.tris) {
		start = 0
	}
	// Triangles are Z-sorted ascending by ZMin; skip everything that
	// ended strictly below z to accelerate the next call.
	for start < len(o.mesh.tris) && float64(o.mesh.tris[start].ZMax) < z {
		start++
	}
	if facetHint != nil {
		*facetHint = start
	}

	for iter := 0; iter < o.refineIterations; iter++ {
		refined := height
		top := z + height
		for i := start; i < len(o.mesh.tris); i++ {
			t := o.mesh.tris[i]
			if float64(t.ZMin) > top {
				break
			}
			if float64(t.ZMax) < z {
				continue
			}
			nz32 := t.Normal.Z()
			if math32.Signbit(nz32) {
				nz32 = math32.Copysign(nz32, 1)
			}
			if math32.ApproxEpsilon(nz32, 0, 1e-6) {
				continue
			}
			candidate := cuspTolerance / float64(nz32)
			if candidate < refined {
				refined = candidate
			}
		}
		if refined >= height {
			height = refined
			break
		}
		height = refined
	}
	if height <= 0 {
		height = cuspTolerance
	}
	return height
}
