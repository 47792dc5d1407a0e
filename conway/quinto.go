package conway

// QuintoOp splits each face into a smaller central copy plus one pentagon
// per original edge, turning every N-face into N pentagons and a shrunk
// N-gon.
type QuintoOp struct {
	// Height controls how far each edge point sits from the edge's
	// midpoint toward the origin. nil means 0.5. Negative values clamp
	// to 0.
	Height *float32
}

func (o QuintoOp) Symbol() string { return "q" }
func (o QuintoOp) Name() string   { return "quinto" }

func (o QuintoOp) Apply(m Mesh) Mesh {
	return applyQuinto(m, o.Height)
}

// Quinto is the free-function form of QuintoOp.
func Quinto(m Mesh, height *float32) Mesh {
	return QuintoOp{Height: height}.Apply(m)
}

func applyQuinto(m Mesh, height *float32) Mesh {
	h := resolveHeight(height, 0.5)
	if h < 0 {
		h = 0
	}

	vi := newVertexIndex(m.PointsLen())
	for _, e := range distinctEdges(m.Faces) {
		p0, p1 := m.Points[e[0]], m.Points[e[1]]
		vi.addEdge(Edge{e[0], e[1]}, p0.Add(p1).Mul(h))
	}
	for i, face := range m.Faces {
		fp := asPoints(face, m.Points)
		c := centroid(fp)
		n := len(face)
		for j := 0; j < n; j++ {
			p := fp[j].Add(fp[(j+1)%n]).Add(c).Mul(1.0 / 3.0)
			vi.addCorner(i, Index(j), p)
		}
	}

	innerFaces := make([]Face, len(m.Faces))
	for i, face := range m.Faces {
		n := len(face)
		nf := make(Face, n)
		for j := 0; j < n; j++ {
			nf[j] = vi.mustCorner(i, Index(j))
		}
		innerFaces[i] = nf
	}

	var pentagonFaces []Face
	for i, face := range m.Faces {
		n := len(face)
		for j := 0; j < n; j++ {
			v := face[j]
			e0 := distinctEdge(face[(j+n-1)%n], v)
			e1 := distinctEdge(v, face[(j+1)%n])
			e0p := vi.mustEdge(e0[0], e0[1])
			e1p := vi.mustEdge(e1[0], e1[1])
			iv0 := vi.mustCorner(i, Index((j+n-1)%n))
			iv1 := vi.mustCorner(i, Index(j))
			pentagonFaces = append(pentagonFaces, Face{v, e1p, iv1, iv0, e0p})
		}
	}

	faces := append(innerFaces, pentagonFaces...)
	points := append(append([]Point{}, m.Points...), vi.points...)

	// quinto does not record a new FaceSet (see gyro's note on bookkeeping
	// scope).
	return Mesh{Points: points, Faces: faces, FaceSets: m.FaceSets, Name: m.Name}
}
