package conway

// distinctEdge canonicalizes an undirected edge with the lower index first.
func distinctEdge(a, b Index) Edge {
	if a < b {
		return Edge{a, b}
	}
	return Edge{b, a}
}

// orderedFaceEdges returns the face's directed edges in winding order:
// (f[0],f[1]), (f[1],f[2]), ..., (f[n-1],f[0]).
func orderedFaceEdges(face Face) []Edge {
	n := len(face)
	out := make([]Edge, n)
	for i := range face {
		out[i] = Edge{face[i], face[(i+1)%n]}
	}
	return out
}

// distinctFaceEdges returns one canonicalized edge per edge of the face,
// local to that face (not deduplicated against any other face).
func distinctFaceEdges(face Face) []Edge {
	n := len(face)
	out := make([]Edge, n)
	for i := range face {
		out[i] = distinctEdge(face[i], face[(i+1)%n])
	}
	return out
}

// distinctEdges returns the set of unique undirected edges across every
// face of the mesh, each canonicalized with the lower index first, in order
// of first appearance.
func distinctEdges(faces []Face) []Edge {
	seen := make(map[Edge]bool)
	var out []Edge
	for _, face := range faces {
		for _, e := range distinctFaceEdges(face) {
			if !seen[e] {
				seen[e] = true
				out = append(out, e)
			}
		}
	}
	return out
}

func indexOfIndex(v Index, face Face) int {
	for i, x := range face {
		if x == v {
			return i
		}
	}
	return -1
}

// vertexFaces returns the positions, in faces, of every face containing v.
func vertexFaces(v Index, faces []Face) []int {
	var out []int
	for i, f := range faces {
		if indexOfIndex(v, f) >= 0 {
			out = append(out, i)
		}
	}
	return out
}

// faceWithEdgeAmong returns the position, among candidates, of the face
// whose directed edge list contains (a,b). It panics if none does - every
// caller only asks for an edge it already knows exists among candidates.
func faceWithEdgeAmong(a, b Index, faces []Face, candidates []int) int {
	for _, ci := range candidates {
		f := faces[ci]
		n := len(f)
		for i := 0; i < n; i++ {
			if f[i] == a && f[(i+1)%n] == b {
				return ci
			}
		}
	}
	panicVertexIndexMiss("faceWithEdgeAmong: no candidate face carries the requested directed edge")
	return 0
}

// faceWithEdge returns the position, among every face of the mesh, of the
// face whose directed edge list contains (a,b). Unlike faceWithEdgeAmong it
// searches the whole face list, for callers (chamfer) that need the face on
// the far side of an edge rather than one sharing a vertex.
func faceWithEdge(a, b Index, faces []Face) (int, bool) {
	for i, f := range faces {
		n := len(f)
		for j := 0; j < n; j++ {
			if f[j] == a && f[(j+1)%n] == b {
				return i, true
			}
		}
	}
	return 0, false
}

// orderedVertexFaces walks the ring of faces around vertex v in order,
// using the faces' shared directed edges to step from one to the next.
func orderedVertexFaces(v Index, faces []Face) []int {
	candidates := vertexFaces(v, faces)
	if len(candidates) == 0 {
		return nil
	}
	result := make([]int, 0, len(candidates))
	current := candidates[0]
	result = append(result, current)
	for len(result) < len(candidates) {
		f := faces[current]
		i := indexOfIndex(v, f)
		j := (i - 1 + len(f)) % len(f)
		current = faceWithEdgeAmong(v, f[j], faces, candidates)
		result = append(result, current)
	}
	return result
}

// orderedVertexEdges walks the ring of faces around vertex v in order and
// returns, for each, the directed edge (v, previous-vertex-in-that-face).
func orderedVertexEdges(v Index, faces []Face) []Edge {
	candidates := vertexFaces(v, faces)
	if len(candidates) == 0 {
		return nil
	}
	result := make([]Edge, 0, len(candidates))
	current := candidates[0]
	for len(result) < len(candidates) {
		f := faces[current]
		i := indexOfIndex(v, f)
		j := (i - 1 + len(f)) % len(f)
		edge := Edge{v, f[j]}
		result = append(result, edge)
		current = faceWithEdgeAmong(edge[0], edge[1], faces, candidates)
	}
	return result
}
