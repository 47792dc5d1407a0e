package conway

// PropellorOp adds a new vertex, offset along each edge, for both
// directions of every edge, and turns each face into a pinwheel of
// quadrilaterals around a smaller central copy of itself.
type PropellorOp struct {
	Ratio *float32
}

func (o PropellorOp) Symbol() string { return "p" }
func (o PropellorOp) Name() string   { return "propellor" }

func (o PropellorOp) Apply(m Mesh) Mesh {
	return applyPropellor(m, o.Ratio)
}

// Propellor is the free-function form of PropellorOp.
func Propellor(m Mesh, ratio *float32) Mesh {
	return PropellorOp{Ratio: ratio}.Apply(m)
}

func applyPropellor(m Mesh, ratio *float32) Mesh {
	r := clampRatio(ratio, 1.0/3.0)

	vi := newVertexIndex(m.PointsLen())
	for _, e := range distinctEdges(m.Faces) {
		p0, p1 := m.Points[e[0]], m.Points[e[1]]
		vi.addEdge(Edge{e[0], e[1]}, p0.Add(p1.Sub(p0).Mul(r)))
		vi.addEdge(Edge{e[1], e[0]}, p1.Add(p0.Sub(p1).Mul(r)))
	}

	innerFaces := make([]Face, len(m.Faces))
	for i, face := range m.Faces {
		n := len(face)
		nf := make(Face, n)
		for j := 0; j < n; j++ {
			nf[j] = vi.mustEdge(face[j], face[(j+1)%n])
		}
		innerFaces[i] = nf
	}

	var pinwheelFaces []Face
	for _, face := range m.Faces {
		n := len(face)
		for j := 0; j < n; j++ {
			a := face[j]
			b := face[(j+1)%n]
			z := face[(j+n-1)%n]
			eab := vi.mustEdge(a, b)
			eba := vi.mustEdge(b, a)
			eza := vi.mustEdge(z, a)
			pinwheelFaces = append(pinwheelFaces, Face{a, eba, eab, eza})
		}
	}

	faces := append(innerFaces, pinwheelFaces...)
	points := append(append([]Point{}, m.Points...), vi.points...)

	// propellor does not record a new FaceSet (see gyro's note on
	// bookkeeping scope).
	return Mesh{Points: points, Faces: faces, FaceSets: m.FaceSets, Name: m.Name}
}
