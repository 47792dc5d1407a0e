package conway

// ChamferOp replaces each edge with a new hexagonal face and shrinks each
// original face toward its own centroid, producing a smaller inset copy of
// it. Existing points are rescaled by 1.5*ratio - a deliberate choice of
// this implementation, not independently re-derived.
type ChamferOp struct {
	Ratio *float32
}

func (o ChamferOp) Symbol() string { return "c" }
func (o ChamferOp) Name() string   { return "chamfer" }

func (o ChamferOp) Apply(m Mesh) Mesh {
	return applyChamfer(m, o.Ratio)
}

// Chamfer is the free-function form of ChamferOp.
func Chamfer(m Mesh, ratio *float32) Mesh {
	return ChamferOp{Ratio: ratio}.Apply(m)
}

func applyChamfer(m Mesh, ratio *float32) Mesh {
	r := clampRatio(ratio, 0.5)

	vi := newVertexIndex(m.PointsLen())
	for i, face := range m.Faces {
		fp := asPoints(face, m.Points)
		c := centroid(fp)
		for j, v := range face {
			p := fp[j].Add(c.Sub(fp[j]).Mul(r))
			vi.addCorner(i, v, p)
		}
	}

	insetFaces := make([]Face, len(m.Faces))
	for i, face := range m.Faces {
		nf := make(Face, len(face))
		for j, v := range face {
			nf[j] = vi.mustCorner(i, v)
		}
		insetFaces[i] = nf
	}

	var edgeFaces []Face
	for i, face := range m.Faces {
		n := len(face)
		for j := 0; j < n; j++ {
			a, b := face[j], face[(j+1)%n]
			if a >= b {
				continue
			}
			opposite, ok := faceWithEdge(b, a, m.Faces)
			if !ok {
				panicVertexIndexMiss("chamfer: edge has no opposite face")
			}
			edgeFaces = append(edgeFaces, Face{
				a,
				vi.mustCorner(opposite, a),
				vi.mustCorner(opposite, b),
				b,
				vi.mustCorner(i, b),
				vi.mustCorner(i, a),
			})
		}
	}

	faces := append(insetFaces, edgeFaces...)

	points := make([]Point, len(m.Points))
	for i, p := range m.Points {
		points[i] = p.Mul(1.5 * r)
	}
	points = append(points, vi.points...)

	return Mesh{Points: points, Faces: faces, FaceSets: appendFaceSet(nil, 0, len(faces)), Name: m.Name}
}
