// Package conway builds polyhedra from the five Platonic seeds by composing
// Conway-Hart operators. Every operator is a pure function over an indexed
// mesh: a flat point list plus a list of faces, each a cyclic sequence of
// point indices. No operator mutates its input; each returns a fresh Mesh.
package conway

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Point is a position in 3D space. Vector3 is the same representation used
// for directions, offsets and normals. Both alias mathgl's single-precision
// vector type; all arithmetic (Add, Sub, Mul, Cross, Dot, Len, Normalize) is
// the library's.
type Point = mgl32.Vec3

// Vector3 is an alias of Point used where a value is conceptually a
// direction rather than a position.
type Vector3 = mgl32.Vec3

// Index identifies a point by position in a Mesh's Points slice.
type Index = uint32

// Face is an ordered, cyclic sequence of point indices, length >= 3.
// Consecutive entries (wrapping around) name a directed edge of the face.
type Face []Index

// Edge is a pair of point indices. Depending on context it is either
// canonical (lower index first, identifying an undirected edge) or directed
// (as it appears walking a face).
type Edge [2]Index

// FaceSet is the set of face positions, within a Mesh's Faces slice, that a
// single operator invocation produced.
type FaceSet []int

var (
	// ErrUnknownSeed is returned by GetSeed for an unrecognized symbol.
	ErrUnknownSeed = errors.New("conway: unknown seed symbol")
	// ErrDegenerateFace is returned where a face has fewer than 3 vertices.
	ErrDegenerateFace = errors.New("conway: degenerate face")
	// ErrNonManifoldEdge is returned by Validate when an edge is not shared
	// by exactly two faces.
	ErrNonManifoldEdge = errors.New("conway: edge is not shared by exactly two faces")
)

// errVertexIndexNotFound backs panics raised by the vertex-id index: a
// lookup found no entry for a key that every operator is expected to have
// registered earlier in the same invocation. This is always a logic error
// in the operator, never a user error.
var errVertexIndexNotFound = errors.New("conway: vertex index lookup miss")

func panicVertexIndexMiss(context string) {
	panic(fmt.Errorf("%w: %s", errVertexIndexNotFound, context))
}

// Mesh is the indexed polygonal mesh that every operator consumes and
// produces. Points and Faces are never shared between two Mesh values:
// every operator builds a fresh Points slice and a fresh Faces slice for
// its result.
type Mesh struct {
	Points   []Point
	Faces    []Face
	FaceSets []FaceSet
	Name     string
}

// PointsLen returns the number of points in the mesh.
func (m Mesh) PointsLen() int {
	return len(m.Points)
}

// Clone returns a deep copy of the mesh: its own Points, Faces and FaceSets
// backing arrays, independent of the receiver's.
func (m Mesh) Clone() Mesh {
	points := make([]Point, len(m.Points))
	copy(points, m.Points)

	faces := make([]Face, len(m.Faces))
	for i, f := range m.Faces {
		nf := make(Face, len(f))
		copy(nf, f)
		faces[i] = nf
	}

	faceSets := make([]FaceSet, len(m.FaceSets))
	for i, fs := range m.FaceSets {
		nfs := make(FaceSet, len(fs))
		copy(nfs, fs)
		faceSets[i] = nfs
	}

	return Mesh{Points: points, Faces: faces, FaceSets: faceSets, Name: m.Name}
}

// EulerCharacteristic returns V - E + F for the mesh. For a closed,
// genus-0 manifold this is 2.
func (m Mesh) EulerCharacteristic() int {
	edges := distinctEdges(m.Faces)
	return len(m.Points) - len(edges) + len(m.Faces)
}

// Stats is a human-readable one-line summary of the mesh's size.
func (m Mesh) Stats() string {
	return fmt.Sprintf("%s: %d points, %d faces, euler=%d", m.Name, len(m.Points), len(m.Faces), m.EulerCharacteristic())
}

// Validate checks the structural invariants every mesh must hold: every
// face has at least 3 vertices, every face index is in range, and every
// edge is shared by exactly two faces (closed 2-manifold). Edge direction
// is not compared, so it does not check that faces are consistently
// oriented. It does not check planarity or convexity - those are not
// invariants of this data model.
func (m Mesh) Validate() error {
	for i, f := range m.Faces {
		if len(f) < 3 {
			return fmt.Errorf("%w: face %d has %d vertices", ErrDegenerateFace, i, len(f))
		}
		for _, idx := range f {
			if int(idx) >= len(m.Points) {
				return fmt.Errorf("conway: face %d references out-of-range point %d", i, idx)
			}
		}
	}

	counts := make(map[Edge]int)
	for _, f := range m.Faces {
		for _, e := range orderedFaceEdges(f) {
			counts[distinctEdge(e[0], e[1])]++
		}
	}
	for e, n := range counts {
		if n != 2 {
			return fmt.Errorf("%w: %v seen %d times", ErrNonManifoldEdge, e, n)
		}
	}

	return nil
}
