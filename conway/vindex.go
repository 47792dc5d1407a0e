package conway

// vertexIndex is the scratch lookup table every operator builds once per
// invocation: new points are assigned indices in deterministic enumeration
// order (an offset plus a position within the current batch), keyed by
// whatever identifies them - an edge, a whole face, or a face-and-corner
// pair. A systems-language implementation of this table would key on the
// full point-producing key (an edge or a face's index sequence) compared
// by value; here every face is instead given a stable integer id (its
// position in the face slice that is current for the duration of one
// operator call), so the face and face-corner keys can be ordinary
// comparable Go map keys with O(1) lookup instead of sequence comparison.
type vertexIndex struct {
	offset int
	points []Point

	byEdge   map[Edge]Index
	byFace   map[int]Index
	byCorner map[corner]Index
}

type corner struct {
	face int
	aux  Index
}

func newVertexIndex(offset int) *vertexIndex {
	return &vertexIndex{
		offset:   offset,
		byEdge:   make(map[Edge]Index),
		byFace:   make(map[int]Index),
		byCorner: make(map[corner]Index),
	}
}

func (vi *vertexIndex) next() Index {
	return Index(vi.offset + len(vi.points))
}

func (vi *vertexIndex) addEdge(key Edge, p Point) Index {
	idx := vi.next()
	vi.points = append(vi.points, p)
	vi.byEdge[key] = idx
	return idx
}

func (vi *vertexIndex) addFace(faceID int, p Point) Index {
	idx := vi.next()
	vi.points = append(vi.points, p)
	vi.byFace[faceID] = idx
	return idx
}

func (vi *vertexIndex) addCorner(faceID int, aux Index, p Point) Index {
	idx := vi.next()
	vi.points = append(vi.points, p)
	vi.byCorner[corner{faceID, aux}] = idx
	return idx
}

func (vi *vertexIndex) edge(a, b Index) (Index, bool) {
	idx, ok := vi.byEdge[Edge{a, b}]
	return idx, ok
}

func (vi *vertexIndex) mustEdge(a, b Index) Index {
	idx, ok := vi.edge(a, b)
	if !ok {
		panicVertexIndexMiss("edge key not registered")
	}
	return idx
}

func (vi *vertexIndex) mustFace(faceID int) Index {
	idx, ok := vi.byFace[faceID]
	if !ok {
		panicVertexIndexMiss("face key not registered")
	}
	return idx
}

func (vi *vertexIndex) faceOK(faceID int) (Index, bool) {
	idx, ok := vi.byFace[faceID]
	return idx, ok
}

func (vi *vertexIndex) mustCorner(faceID int, aux Index) Index {
	idx, ok := vi.byCorner[corner{faceID, aux}]
	if !ok {
		panicVertexIndexMiss("face-corner key not registered")
	}
	return idx
}
