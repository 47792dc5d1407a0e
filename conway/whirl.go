package conway

// WhirlOp creates a hexagon for each original edge corner, whirled around
// the face, plus a smaller copy of each original face rotated to match.
// It is gyro's more elaborate cousin: every N-face becomes N hexagons and
// one inner N-gon.
type WhirlOp struct {
	// Ratio controls how far each new point sits along its edge and how
	// far the inner face points are pulled toward the face center. nil
	// means the default of 1/3.
	Ratio *float32
	// Height offsets each face's center (used to pull the inner points
	// inward) along the face normal. nil means 0.
	Height *float32
}

func (o WhirlOp) Symbol() string { return "w" }
func (o WhirlOp) Name() string   { return "whirl" }

func (o WhirlOp) Apply(m Mesh) Mesh {
	return applyWhirl(m, o.Ratio, o.Height)
}

// Whirl is the free-function form of WhirlOp.
func Whirl(m Mesh, ratio, height *float32) Mesh {
	return WhirlOp{Ratio: ratio, Height: height}.Apply(m)
}

func applyWhirl(m Mesh, ratio, height *float32) Mesh {
	r := clampRatio(ratio, 1.0/3.0)
	h := resolveHeight(height, 0)

	vi := newVertexIndex(len(m.Points))

	for i, face := range m.Faces {
		fp := asPoints(face, m.Points)
		center := centroid(fp).Add(faceNormal(fp).Mul(h))
		n := len(face)
		for j, v := range face {
			p0, p1 := fp[j], fp[(j+1)%n]
			middle := p0.Add(p1.Sub(p0).Mul(r))
			point := middle.Add(center.Sub(middle).Mul(r))
			vi.addCorner(i, v, point)
		}
	}

	for _, e := range distinctEdges(m.Faces) {
		p0, p1 := m.Points[e[0]], m.Points[e[1]]
		vi.addEdge(Edge{e[0], e[1]}, p0.Add(p1.Sub(p0).Mul(r)))
		vi.addEdge(Edge{e[1], e[0]}, p1.Add(p0.Sub(p1).Mul(r)))
	}

	var hexagons []Face
	for i, face := range m.Faces {
		n := len(face)
		for j := 0; j < n; j++ {
			a := face[j]
			b := face[(j+1)%n]
			c := face[(j+2)%n]
			eab := vi.mustEdge(a, b)
			eba := vi.mustEdge(b, a)
			ebc := vi.mustEdge(b, c)
			mida := vi.mustCorner(i, a)
			midb := vi.mustCorner(i, b)
			hexagons = append(hexagons, Face{eab, eba, b, ebc, midb, mida})
		}
	}

	innerFaces := make([]Face, len(m.Faces))
	for i, face := range m.Faces {
		nf := make(Face, len(face))
		for j, v := range face {
			nf[j] = vi.mustCorner(i, v)
		}
		innerFaces[i] = nf
	}

	faces := append(hexagons, innerFaces...)
	faceSets := appendFaceSet(nil, 0, len(faces))

	points := append(append([]Point{}, m.Points...), vi.points...)

	return Mesh{Points: points, Faces: faces, FaceSets: faceSets, Name: m.Name}
}
