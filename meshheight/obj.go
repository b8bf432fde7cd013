package meshheight

import "github.com/arl/gobj"

// LoadOBJ reads a Wavefront OBJ file and returns its triangles as flat
// vertex/index arrays suitable for AddMesh, fan-triangulating any
// polygon with more than 3 vertices. gobj's Polygon is a slice of full
// Vertex coordinates rather than vertex indices, so the index array is
// built here rather than read off the file directly.
func LoadOBJ(path string) (verts []float32, tris []int32, err error) {
	obj, err := gobj.Load(path)
	if err != nil {
		return nil, nil, err
	}

	for _, poly := range obj.Polys() {
		if len(poly) < 3 {
			continue
		}
		base := int32(len(verts) / 3)
		for _, v := range poly {
			verts = append(verts, float32(v.X()), float32(v.Y()), float32(v.Z()))
		}
		for i := int32(2); int(i) < len(poly); i++ {
			tris = append(tris, base, base+i-1, base+i)
		}
	}
	return verts, tris, nil
}

// AddOBJ loads path and adds its triangles to the oracle.
func (o *TriMeshOracle) AddOBJ(path string) error {
	verts, tris, err := LoadOBJ(path)
	if err != nil {
		return err
	}
	o.AddMesh(verts, tris)
	return nil
}
