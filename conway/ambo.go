package conway

// AmboOp creates a vertex at the midpoint of every edge, and a new face for
// every original face and every original vertex. It is also known as
// rectification, or the medial graph in graph theory.
type AmboOp struct {
	// Ratio controls where along each edge the new vertex sits, clamped to
	// [0,1]. nil means the default of 0.5 (the true midpoint).
	Ratio *float32
}

func (o AmboOp) Symbol() string { return "a" }
func (o AmboOp) Name() string   { return "ambo" }

func (o AmboOp) Apply(m Mesh) Mesh {
	return applyAmbo(m, o.Ratio)
}

// Ambo is the free-function form of AmboOp.
func Ambo(m Mesh, ratio *float32) Mesh {
	return AmboOp{Ratio: ratio}.Apply(m)
}

func applyAmbo(m Mesh, ratio *float32) Mesh {
	r := clampRatio(ratio, 0.5)

	edges := distinctEdges(m.Faces)

	vi := newVertexIndex(0)
	for _, e := range edges {
		p0, p1 := m.Points[e[0]], m.Points[e[1]]
		mid := p0.Mul(r).Add(p1.Mul(1 - r))
		vi.addEdge(e, mid)
	}

	faces := make([]Face, 0, len(m.Faces)+len(m.Points))
	for _, face := range m.Faces {
		nf := make(Face, 0, len(face))
		for _, e := range distinctFaceEdges(face) {
			nf = append(nf, vi.mustEdge(e[0], e[1]))
		}
		faces = append(faces, nf)
	}

	for v := range m.Points {
		vnum := Index(v)
		ve := orderedVertexEdges(vnum, m.Faces)
		nf := make(Face, 0, len(ve))
		for _, e := range ve {
			de := distinctEdge(e[0], e[1])
			nf = append(nf, vi.mustEdge(de[0], de[1]))
		}
		faces = append(faces, nf)
	}

	faceSets := appendFaceSet(nil, 0, len(faces))

	return Mesh{Points: vi.points, Faces: faces, FaceSets: faceSets, Name: m.Name}
}
