package conway

// Seed coordinates and face windings below are the exact literals of the
// reference implementation this package's operators are ported from; seeds
// are not auto-normalized to the unit sphere - call Normalize explicitly if
// a caller wants that.

// Tetrahedron returns the tetrahedron seed, named "T".
func Tetrahedron() Mesh {
	c0 := float32(1.0)
	points := []Point{
		{c0, c0, c0},
		{c0, -c0, -c0},
		{-c0, c0, -c0},
		{-c0, -c0, c0},
	}
	faces := []Face{
		{2, 1, 0},
		{3, 2, 0},
		{1, 3, 0},
		{2, 3, 1},
	}
	return Mesh{Points: points, Faces: faces, FaceSets: []FaceSet{faceSetRange(0, 4)}, Name: "T"}
}

// Hexahedron returns the cube seed, named "C".
func Hexahedron() Mesh {
	c0 := float32(1.0)
	points := []Point{
		{c0, c0, c0},
		{c0, c0, -c0},
		{c0, -c0, c0},
		{c0, -c0, -c0},
		{-c0, c0, c0},
		{-c0, c0, -c0},
		{-c0, -c0, c0},
		{-c0, -c0, -c0},
	}
	faces := []Face{
		{4, 5, 1, 0},
		{2, 6, 4, 0},
		{1, 3, 2, 0},
		{6, 2, 3, 7},
		{5, 4, 6, 7},
		{3, 1, 5, 7},
	}
	return Mesh{Points: points, Faces: faces, FaceSets: []FaceSet{faceSetRange(0, 6)}, Name: "C"}
}

// Cube is an alias for Hexahedron.
func Cube() Mesh {
	return Hexahedron()
}

// Octahedron returns the octahedron seed, named "O".
func Octahedron() Mesh {
	c0 := float32(0.70710677)
	points := []Point{
		{0, 0, c0},
		{0, 0, -c0},
		{c0, 0, 0},
		{-c0, 0, 0},
		{0, c0, 0},
		{0, -c0, 0},
	}
	faces := []Face{
		{4, 2, 0},
		{3, 4, 0},
		{5, 3, 0},
		{2, 5, 0},
		{5, 2, 1},
		{3, 5, 1},
		{4, 3, 1},
		{2, 4, 1},
	}
	return Mesh{Points: points, Faces: faces, FaceSets: []FaceSet{faceSetRange(0, 8)}, Name: "O"}
}

// Dodecahedron returns the dodecahedron seed, named "D".
func Dodecahedron() Mesh {
	c0 := float32(0.809017)
	c1 := float32(1.309017)
	points := []Point{
		{0, 0.5, c1}, {0, 0.5, -c1}, {0, -0.5, c1}, {0, -0.5, -c1},
		{c1, 0, 0.5}, {c1, 0, -0.5}, {-c1, 0, 0.5}, {-c1, 0, -0.5},
		{0.5, c1, 0}, {0.5, -c1, 0}, {-0.5, c1, 0}, {-0.5, -c1, 0},
		{c0, c0, c0}, {c0, c0, -c0}, {c0, -c0, c0}, {c0, -c0, -c0},
		{-c0, c0, c0}, {-c0, c0, -c0}, {-c0, -c0, c0}, {-c0, -c0, -c0},
	}
	faces := []Face{
		{12, 4, 14, 2, 0},
		{16, 10, 8, 12, 0},
		{2, 18, 6, 16, 0},
		{17, 10, 16, 6, 7},
		{19, 3, 1, 17, 7},
		{6, 18, 11, 19, 7},
		{15, 3, 19, 11, 9},
		{14, 4, 5, 15, 9},
		{11, 18, 2, 14, 9},
		{8, 10, 17, 1, 13},
		{5, 4, 12, 8, 13},
		{1, 3, 15, 5, 13},
	}
	return Mesh{Points: points, Faces: faces, FaceSets: []FaceSet{faceSetRange(0, 12)}, Name: "D"}
}

// Icosahedron returns the icosahedron seed, named "I".
func Icosahedron() Mesh {
	c0 := float32(0.809017)
	points := []Point{
		{0.5, 0, c0}, {0.5, 0, -c0}, {-0.5, 0, c0}, {-0.5, 0, -c0},
		{c0, 0.5, 0}, {c0, -0.5, 0}, {-c0, 0.5, 0}, {-c0, -0.5, 0},
		{0, c0, 0.5}, {0, c0, -0.5}, {0, -c0, 0.5}, {0, -c0, -0.5},
	}
	faces := []Face{
		{10, 2, 0}, {5, 10, 0}, {4, 5, 0}, {8, 4, 0}, {2, 8, 0},
		{6, 8, 2}, {7, 6, 2}, {10, 7, 2},
		{11, 7, 10}, {5, 11, 10},
		{1, 11, 5}, {4, 1, 5},
		{9, 1, 4}, {8, 9, 4},
		{6, 9, 8},
		{3, 9, 6}, {7, 3, 6},
		{11, 3, 7},
		{1, 3, 11},
		{9, 3, 1},
	}
	return Mesh{Points: points, Faces: faces, FaceSets: []FaceSet{faceSetRange(0, 20)}, Name: "I"}
}

func faceSetRange(start, end int) FaceSet {
	fs := make(FaceSet, 0, end-start)
	for i := start; i < end; i++ {
		fs = append(fs, i)
	}
	return fs
}

// GetSeed returns the Platonic seed for one of the single-letter symbols
// T, C, O, D, I. It reports ErrUnknownSeed for anything else.
func GetSeed(symbol string) (Mesh, error) {
	switch symbol {
	case "T":
		return Tetrahedron(), nil
	case "C":
		return Cube(), nil
	case "O":
		return Octahedron(), nil
	case "D":
		return Dodecahedron(), nil
	case "I":
		return Icosahedron(), nil
	default:
		return Mesh{}, ErrUnknownSeed
	}
}
