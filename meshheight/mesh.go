// Package meshheight wraps one or more object meshes and answers cusp
// height queries: given a Z and a chordal-error tolerance, the largest
// layer height that keeps every crossing triangle's stairstep error
// under that tolerance.
//
// Triangles are kept as a flat, Z-sorted list so a scan position can
// advance monotonically with increasing Z instead of re-scanning the
// whole mesh on every query.
package meshheight

import (
	"sort"

	"github.com/arl/gogeo/f32/d3"
)

// Triangle is one facet of an object mesh, in object coordinates.
type Triangle struct {
	V0, V1, V2 d3.Vec3
	Normal     d3.Vec3
	ZMin, ZMax float32
}

func newTriangle(v0, v1, v2 d3.Vec3) Triangle {
	e0 := v1.Sub(v0)
	e1 := v2.Sub(v0)
	n := e0.Cross(e1)
	if l := n.Len(); l > 0 {
		n = n.Scale(1 / l)
	}
	zmin, zmax := v0.Z(), v0.Z()
	for _, v := range [2]d3.Vec3{v1, v2} {
		if v.Z() < zmin {
			zmin = v.Z()
		}
		if v.Z() > zmax {
			zmax = v.Z()
		}
	}
	return Triangle{V0: v0, V1: v1, V2: v2, Normal: n, ZMin: zmin, ZMax: zmax}
}

// Mesh is a flat triangle soup, combining every mesh added with AddMesh.
// The zero Mesh is empty and ready to use.
type Mesh struct {
	tris   []Triangle
	sorted bool
}

// AddMesh appends the triangles described by a flat vertex array (xyz
// triples) and a flat, 0-based triangle index array (vi0,vi1,vi2
// triples).
func (m *Mesh) AddMesh(verts []float32, tris []int32) {
	vertAt := func(i int32) d3.Vec3 {
		return d3.NewVec3XYZ(verts[i*3], verts[i*3+1], verts[i*3+2])
	}
	for i := 0; i+2 < len(tris); i += 3 {
		m.tris = append(m.tris, newTriangle(vertAt(tris[i]), vertAt(tris[i+1]), vertAt(tris[i+2])))
	}
	m.sorted = false
}

// Prepare builds the acceleration structure (a Z-sorted triangle list) used
// by CuspHeight to accelerate queries with increasing Z.
func (m *Mesh) Prepare() {
	sort.Slice(m.tris, func(i, j int) bool { return m.tris[i].ZMin < m.tris[j].ZMin })
	m.sorted = true
}

// TriCount returns the number of triangles in the mesh.
func (m *Mesh) TriCount() int { return len(m.tris) }

// ZBounds returns the mesh's minimum and maximum Z, or (0, 0) if empty.
func (m *Mesh) ZBounds() (zmin, zmax float32) {
	if len(m.tris) == 0 {
		return 0, 0
	}
	zmin, zmax = m.tris[0].ZMin, m.tris[0].ZMax
	for _, t := range m.tris[1:] {
		if t.ZMin < zmin {
			zmin = t.ZMin
		}
		if t.ZMax > zmax {
			zmax = t.ZMax
		}
	}
	return zmin, zmax
}
