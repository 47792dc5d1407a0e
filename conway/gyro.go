package conway

// GyroOp retains the original points, and adds a centroid per original face
// and two directed-edge points per original edge - turning each N-face into
// N pentagons. dual(gyro(dual(m))) is snub.
type GyroOp struct {
	// Ratio controls where the two new points per edge sit, clamped to
	// [0,1]. nil means the default of 1/3.
	Ratio *float32
	// Height offsets each face's new centroid point along its normal.
	// nil means 0.
	Height *float32
}

func (o GyroOp) Symbol() string { return "g" }
func (o GyroOp) Name() string   { return "gyro" }

func (o GyroOp) Apply(m Mesh) Mesh {
	return applyGyro(m, o.Ratio, o.Height)
}

// Gyro is the free-function form of GyroOp.
func Gyro(m Mesh, ratio, height *float32) Mesh {
	return GyroOp{Ratio: ratio, Height: height}.Apply(m)
}

func applyGyro(m Mesh, ratio, height *float32) Mesh {
	r := clampRatio(ratio, 1.0/3.0)
	h := resolveHeight(height, 0)

	vi := newVertexIndex(len(m.Points))
	for i, face := range m.Faces {
		fp := asPoints(face, m.Points)
		p := centroid(fp).Normalize().Add(faceNormal(fp).Mul(h))
		vi.addFace(i, p)
	}

	for _, e := range distinctEdges(m.Faces) {
		p0, p1 := m.Points[e[0]], m.Points[e[1]]
		fwd := p0.Add(p1.Sub(p0).Mul(r))
		bwd := p1.Add(p0.Sub(p1).Mul(r))
		vi.addEdge(Edge{e[0], e[1]}, fwd)
		vi.addEdge(Edge{e[1], e[0]}, bwd)
	}

	points := append(append([]Point{}, m.Points...), vi.points...)

	faces := make([]Face, 0, len(m.Points)*2)
	for i, face := range m.Faces {
		n := len(face)
		c := vi.mustFace(i)
		for j := 0; j < n; j++ {
			a := face[j]
			b := face[(j+1)%n]
			z := face[(j+n-1)%n]
			eab := vi.mustEdge(a, b)
			eza := vi.mustEdge(z, a)
			eaz := vi.mustEdge(a, z)
			faces = append(faces, Face{a, eab, c, eza, eaz})
		}
	}

	// gyro does not record a new FaceSet: like kis, propellor and quinto,
	// it leaves face-set bookkeeping to whatever already existed on the
	// input mesh, matching the scope spec.md §4.4 gives to that bookkeeping
	// (only ambo, chamfer and whirl are documented to record one).
	return Mesh{Points: points, Faces: faces, FaceSets: m.FaceSets, Name: m.Name}
}
