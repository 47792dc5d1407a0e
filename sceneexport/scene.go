// Package sceneexport describes a conway.Mesh the way a subdivision
// renderer would want to ingest it: a flat position buffer, per-face
// vertex counts, a flat face-index buffer, and the crease/corner
// attributes Catmull-Clark subdivision uses to sharpen edges and
// vertices. It has no renderer dependency of its own — Emit returns a
// plain Go struct describing the scene, for a caller to hand to whatever
// renderer binding it has.
package sceneexport

import "github.com/polyforge/conway/conway"

const defaultCreaseSharpness = 10.0

// Scene is a renderer-agnostic description of one subdivision mesh.
type Scene struct {
	Name string

	// Positions is the flattened x0,y0,z0,x1,y1,z1,... point buffer.
	Positions []float32

	// FaceArity holds the vertex count of each face, in face order.
	FaceArity []uint32

	// FaceIndices is every face's vertex indices concatenated in face
	// order, indexed the same way as FaceArity.
	FaceIndices []uint32

	// SubdivisionScheme is always "catmull-clark"; it's carried as a
	// field so callers can serialize Scene without hard-coding it.
	SubdivisionScheme string

	// CreaseVertices/CreaseSharpness describe edges to crease, one
	// sharpness value per entry of CreaseVertices (two per edge). Both are nil
	// when creasing is disabled (crease sharpness of exactly 0).
	CreaseVertices  []uint32
	CreaseSharpness []float32

	// CornerVertices/CornerSharpness describe vertices to pin as sharp
	// corners. Both are nil when no corner sharpness was requested.
	CornerVertices  []uint32
	CornerSharpness []float32

	// SmoothCreaseCorners is only meaningful when CornerVertices is nil:
	// it tells the renderer whether to let a vertex where three or more
	// creased edges meet automatically become a corner.
	SmoothCreaseCorners bool
}

// Emit builds a Scene from mesh.
//
// creaseSharpness defaults to 10.0 (semi-sharp) when nil; passing a
// pointer to 0 disables edge creasing entirely. cornerSharpness, when
// non-nil and positive, pins every vertex as a corner at that sharpness;
// when nil, smoothCorners controls the renderer's automatic corner
// detection instead.
func Emit(mesh conway.Mesh, creaseSharpness, cornerSharpness *float32, smoothCorners bool) Scene {
	scene := Scene{
		Name:              mesh.Name,
		Positions:         flattenPoints(mesh.Points),
		FaceArity:         faceArities(mesh.Faces),
		FaceIndices:       concatFaces(mesh.Faces),
		SubdivisionScheme: "catmull-clark",
	}

	sharpness := defaultCreaseSharpness
	if creaseSharpness != nil {
		sharpness = float64(*creaseSharpness)
	}
	if sharpness != 0 {
		edges := conway.NewBuilder(mesh).ToEdges()
		verts := make([]uint32, 0, 2*len(edges))
		for _, e := range edges {
			verts = append(verts, uint32(e[0]), uint32(e[1]))
		}
		scene.CreaseVertices = verts
		scene.CreaseSharpness = uniform(float32(sharpness), len(verts))
	}

	switch {
	case cornerSharpness != nil && *cornerSharpness > 0:
		corners := make([]uint32, len(mesh.Points))
		for i := range mesh.Points {
			corners[i] = uint32(i)
		}
		scene.CornerVertices = corners
		scene.CornerSharpness = uniform(*cornerSharpness, len(corners))
	default:
		scene.SmoothCreaseCorners = smoothCorners
	}

	return scene
}

func flattenPoints(points []conway.Point) []float32 {
	flat := make([]float32, 0, 3*len(points))
	for _, p := range points {
		flat = append(flat, p.X(), p.Y(), p.Z())
	}
	return flat
}

func faceArities(faces []conway.Face) []uint32 {
	arity := make([]uint32, len(faces))
	for i, f := range faces {
		arity[i] = uint32(len(f))
	}
	return arity
}

func concatFaces(faces []conway.Face) []uint32 {
	total := 0
	for _, f := range faces {
		total += len(f)
	}
	indices := make([]uint32, 0, total)
	for _, f := range faces {
		for _, v := range f {
			indices = append(indices, uint32(v))
		}
	}
	return indices
}

func uniform(value float32, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = value
	}
	return out
}
