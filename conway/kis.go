package conway

// KisOp splits each selected face into one triangle per edge, each
// extending to a new centroid vertex. Existing points are retained.
type KisOp struct {
	// Height offsets the new centroid point along the face normal. nil
	// means 0.
	Height *float32
	// FaceArity restricts the operator to faces whose vertex count is in
	// this list. nil selects every face.
	FaceArity []int
	// RegularFacesOnly additionally restricts to faces whose edge-length
	// regularity (longest/shortest edge) is within 0.1 of 1.
	RegularFacesOnly bool
}

func (o KisOp) Symbol() string { return "k" }
func (o KisOp) Name() string   { return "kis" }

func (o KisOp) Apply(m Mesh) Mesh {
	return applyKis(m, o.Height, o.FaceArity, o.RegularFacesOnly)
}

// Kis is the free-function form of KisOp.
func Kis(m Mesh, height *float32, faceArity []int, regularFacesOnly bool) Mesh {
	return KisOp{Height: height, FaceArity: faceArity, RegularFacesOnly: regularFacesOnly}.Apply(m)
}

func kisSelects(face Face, points []Point, arity []int, regularFacesOnly bool) bool {
	if !selectedFace(face, arity) {
		return false
	}
	if !regularFacesOnly {
		return true
	}
	r := faceEdgeRegularity(face, points)
	return abs32(r-1.0) < 0.1
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func applyKis(m Mesh, height *float32, faceArity []int, regularFacesOnly bool) Mesh {
	h := resolveHeight(height, 0)

	vi := newVertexIndex(len(m.Points))
	for i, face := range m.Faces {
		if !kisSelects(face, m.Points, faceArity, regularFacesOnly) {
			continue
		}
		fp := asPoints(face, m.Points)
		c := centroid(fp).Add(faceNormal(fp).Mul(h))
		vi.addFace(i, c)
	}

	points := append(append([]Point{}, m.Points...), vi.points...)

	faces := make([]Face, 0, len(m.Faces)*2)
	for i, face := range m.Faces {
		centroidIdx, ok := vi.faceOK(i)
		if !ok {
			faces = append(faces, face)
			continue
		}
		n := len(face)
		for j := 0; j < n; j++ {
			faces = append(faces, Face{face[j], face[(j+1)%n], centroidIdx})
		}
	}

	// kis does not record a new FaceSet (see gyro's note on bookkeeping
	// scope).
	return Mesh{Points: points, Faces: faces, FaceSets: m.FaceSets, Name: m.Name}
}
