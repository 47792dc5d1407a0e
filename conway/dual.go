package conway

// DualOp replaces each face with a vertex, and each vertex with a face.
type DualOp struct{}

func (o DualOp) Symbol() string { return "d" }
func (o DualOp) Name() string   { return "dual" }

func (o DualOp) Apply(m Mesh) Mesh {
	return applyDual(m)
}

// Dual is the free-function form of DualOp.
func Dual(m Mesh) Mesh {
	return DualOp{}.Apply(m)
}

func applyDual(m Mesh) Mesh {
	newPoints := make([]Point, len(m.Faces))
	for i, face := range m.Faces {
		newPoints[i] = centroid(asPoints(face, m.Points))
	}

	newFaces := make([]Face, len(m.Points))
	for v := range m.Points {
		ring := orderedVertexFaces(Index(v), m.Faces)
		nf := make(Face, len(ring))
		for i, faceID := range ring {
			nf[i] = Index(faceID)
		}
		newFaces[v] = nf
	}

	// dual discards the previous face-set partitioning: its new faces
	// correspond one-to-one with old vertices, not with the prior faces,
	// so there is no meaningful way to carry the old grouping forward.
	faceSets := appendFaceSet(nil, 0, len(newFaces))

	return Mesh{Points: newPoints, Faces: newFaces, FaceSets: faceSets, Name: m.Name}
}
