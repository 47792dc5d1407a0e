package conway

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalKind selects the normal computation performed by Normals.
type NormalKind int

const (
	// NormalsFlat computes one normal per face corner from the two
	// adjacent edges, matching Flat normal generation on a possibly
	// non-planar polygon.
	NormalsFlat NormalKind = iota
	// NormalsSmooth is accepted but produces no normals: per-vertex
	// smoothing is an exporter concern this module does not implement.
	NormalsSmooth
)

// Builder owns a single mesh, dispatches operators against it in place,
// and accumulates a symbolic name token per call. It is the seam between
// the operator engine and everything outside this package: a chain of
// Builder calls is the entire public construction surface.
type Builder struct {
	mesh Mesh
}

// NewBuilder wraps an existing mesh, e.g. one produced by a seed
// constructor.
func NewBuilder(m Mesh) *Builder {
	return &Builder{mesh: m}
}

// Finalize returns a snapshot of the current mesh. The builder remains
// usable afterward; the returned mesh does not alias its points or faces.
func (b *Builder) Finalize() Mesh {
	return b.mesh.Clone()
}

// Mesh returns the builder's current mesh without copying.
func (b *Builder) Mesh() Mesh { return b.mesh }

// Points, Faces, Name and PointsLen mirror the equivalent Mesh accessors.
func (b *Builder) Points() []Point   { return b.mesh.Points }
func (b *Builder) Faces() []Face     { return b.mesh.Faces }
func (b *Builder) Name() string      { return b.mesh.Name }
func (b *Builder) PointsLen() int    { return b.mesh.PointsLen() }

// ToEdges returns the mesh's distinct edges.
func (b *Builder) ToEdges() []Edge {
	return distinctEdges(b.mesh.Faces)
}

// Normalize recenters the mesh on its centroid and rescales it so its
// farthest point sits at unit distance from the origin.
func (b *Builder) Normalize() *Builder {
	maxResize(b.mesh.Points, 1.0)
	return b
}

// Reverse reverses the winding order of every face.
func (b *Builder) Reverse() *Builder {
	b.mesh = applyReverse(b.mesh)
	return b
}

// Triangulate splits every face into triangles. Quadrilaterals split
// along whichever diagonal is shortest when shortest is true, longest
// otherwise; pentagons use a fixed fan; larger faces use a simple fan
// from their first vertex.
func (b *Builder) Triangulate(shortest bool) *Builder {
	faces := make([]Face, 0, len(b.mesh.Faces)*2)
	for _, face := range b.mesh.Faces {
		faces = append(faces, triangulateFace(face, b.mesh.Points, shortest)...)
	}
	b.mesh = Mesh{Points: b.mesh.Points, Faces: faces, FaceSets: b.mesh.FaceSets, Name: b.mesh.Name}
	return b
}

func triangulateFace(face Face, points []Point, shortest bool) []Face {
	switch len(face) {
	case 4:
		p := asPoints(face, points)
		d02 := p[0].Sub(p[2]).Len()
		d13 := p[1].Sub(p[3]).Len()
		if shortest == (d02*d02 < d13*d13) {
			return []Face{
				{face[0], face[1], face[2]},
				{face[0], face[2], face[3]},
			}
		}
		return []Face{
			{face[1], face[2], face[3]},
			{face[1], face[3], face[0]},
		}
	case 5:
		return []Face{
			{face[0], face[1], face[4]},
			{face[1], face[2], face[4]},
			{face[4], face[2], face[3]},
		}
	default:
		a := face[0]
		out := make([]Face, 0, len(face)-2)
		for i := 2; i < len(face); i++ {
			out = append(out, Face{a, face[i-1], face[i]})
		}
		return out
	}
}

// Normals computes per-corner normal vectors, one slice entry per face
// corner in face order. NormalsSmooth always returns nil: smoothing is
// left to exporters.
func (b *Builder) Normals(kind NormalKind) []Vector3 {
	if kind == NormalsSmooth {
		return nil
	}
	var out []Vector3
	for _, face := range b.mesh.Faces {
		n := len(face)
		for i := 0; i < n; i++ {
			prev := face[(i+n-1)%n]
			cur := face[i]
			next := face[(i+1)%n]
			v := orthogonal(b.mesh.Points[prev], b.mesh.Points[cur], b.mesh.Points[next])
			out = append(out, v.Mul(-1).Normalize())
		}
	}
	return out
}

// paramToken is one slot of a symbolic name's parameter list. Slot 0
// (when present) is written with no leading separator; every later
// present slot is always comma-prefixed, regardless of which earlier
// slots were present - matching the grammar in spec.md §6.
type paramToken struct {
	present bool
	text    string
}

func fParam(v *float32) paramToken {
	if v == nil {
		return paramToken{}
	}
	return paramToken{present: true, text: fmt.Sprintf("%.2f", *v)}
}

func listParam(v []int) paramToken {
	if v == nil {
		return paramToken{}
	}
	return paramToken{present: true, text: formatIntList(v)}
}

func flagParam(v bool, text string) paramToken {
	if !v {
		return paramToken{}
	}
	return paramToken{present: true, text: text}
}

func formatIntList(v []int) string {
	if len(v) == 0 {
		return ""
	}
	if len(v) == 1 {
		return strconv.Itoa(v[0])
	}
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func buildParams(tokens ...paramToken) string {
	var b strings.Builder
	for i, t := range tokens {
		if !t.present {
			continue
		}
		if i == 0 {
			b.WriteString(t.text)
		} else {
			b.WriteString(",")
			b.WriteString(t.text)
		}
	}
	return b.String()
}

func (b *Builder) rename(symbol, params string) {
	b.mesh.Name = symbol + params + b.mesh.Name
}

// Ambo applies AmboOp in place.
func (b *Builder) Ambo(ratio *float32, changeName bool) *Builder {
	b.mesh = AmboOp{Ratio: ratio}.Apply(b.mesh)
	if changeName {
		b.rename("a", buildParams(fParam(ratio)))
	}
	return b
}

// Bevel applies BevelOp in place.
func (b *Builder) Bevel(ratio, height *float32, vertexValence []int, regularFacesOnly, changeName bool) *Builder {
	b.mesh = BevelOp{Ratio: ratio, Height: height, VertexValence: vertexValence, RegularFacesOnly: regularFacesOnly}.Apply(b.mesh)
	if changeName {
		b.rename("b", buildParams(fParam(ratio), fParam(height), listParam(vertexValence), flagParam(regularFacesOnly, "t")))
	}
	return b
}

// Chamfer applies ChamferOp in place.
func (b *Builder) Chamfer(ratio *float32, changeName bool) *Builder {
	b.mesh = ChamferOp{Ratio: ratio}.Apply(b.mesh)
	if changeName {
		b.rename("c", buildParams(fParam(ratio)))
	}
	return b
}

// Dual applies DualOp in place.
func (b *Builder) Dual(changeName bool) *Builder {
	b.mesh = DualOp{}.Apply(b.mesh)
	if changeName {
		b.rename("d", "")
	}
	return b
}

// Expand applies ExpandOp in place.
func (b *Builder) Expand(ratio *float32, changeName bool) *Builder {
	b.mesh = ExpandOp{Ratio: ratio}.Apply(b.mesh)
	if changeName {
		b.rename("e", buildParams(fParam(ratio)))
	}
	return b
}

// Gyro applies GyroOp in place.
func (b *Builder) Gyro(ratio, height *float32, changeName bool) *Builder {
	b.mesh = GyroOp{Ratio: ratio, Height: height}.Apply(b.mesh)
	if changeName {
		b.rename("g", buildParams(fParam(ratio), fParam(height)))
	}
	return b
}

// Join applies JoinOp in place.
func (b *Builder) Join(ratio *float32, changeName bool) *Builder {
	b.mesh = JoinOp{Ratio: ratio}.Apply(b.mesh)
	if changeName {
		b.rename("j", buildParams(fParam(ratio)))
	}
	return b
}

// Kis applies KisOp in place.
func (b *Builder) Kis(height *float32, faceArity []int, regularFacesOnly, changeName bool) *Builder {
	b.mesh = KisOp{Height: height, FaceArity: faceArity, RegularFacesOnly: regularFacesOnly}.Apply(b.mesh)
	if changeName {
		b.rename("k", buildParams(fParam(height), listParam(faceArity), flagParam(regularFacesOnly, "t")))
	}
	return b
}

// Medial applies MedialOp in place.
func (b *Builder) Medial(ratio, height *float32, vertexValence []int, regularFacesOnly, changeName bool) *Builder {
	b.mesh = MedialOp{Ratio: ratio, Height: height, VertexValence: vertexValence, RegularFacesOnly: regularFacesOnly}.Apply(b.mesh)
	if changeName {
		b.rename("M", buildParams(fParam(ratio), fParam(height), listParam(vertexValence), flagParam(regularFacesOnly, "t")))
	}
	return b
}

// Meta applies MetaOp in place.
func (b *Builder) Meta(ratio, height *float32, vertexValence []int, regularFacesOnly, changeName bool) *Builder {
	b.mesh = MetaOp{Ratio: ratio, Height: height, VertexValence: vertexValence, RegularFacesOnly: regularFacesOnly}.Apply(b.mesh)
	if changeName {
		b.rename("m", buildParams(fParam(ratio), fParam(height), listParam(vertexValence), flagParam(regularFacesOnly, "t")))
	}
	return b
}

// Needle applies NeedleOp in place.
func (b *Builder) Needle(height *float32, vertexValence []int, regularFacesOnly, changeName bool) *Builder {
	b.mesh = NeedleOp{Height: height, VertexValence: vertexValence, RegularFacesOnly: regularFacesOnly}.Apply(b.mesh)
	if changeName {
		b.rename("n", buildParams(fParam(height), listParam(vertexValence), flagParam(regularFacesOnly, "t")))
	}
	return b
}

// Ortho applies OrthoOp in place.
func (b *Builder) Ortho(ratio *float32, changeName bool) *Builder {
	b.mesh = OrthoOp{Ratio: ratio}.Apply(b.mesh)
	if changeName {
		b.rename("o", buildParams(fParam(ratio)))
	}
	return b
}

// Propellor applies PropellorOp in place.
func (b *Builder) Propellor(ratio *float32, changeName bool) *Builder {
	b.mesh = PropellorOp{Ratio: ratio}.Apply(b.mesh)
	if changeName {
		b.rename("p", buildParams(fParam(ratio)))
	}
	return b
}

// Quinto applies QuintoOp in place.
func (b *Builder) Quinto(height *float32, changeName bool) *Builder {
	b.mesh = QuintoOp{Height: height}.Apply(b.mesh)
	if changeName {
		b.rename("q", buildParams(fParam(height)))
	}
	return b
}

// Reflect applies ReflectOp in place.
func (b *Builder) Reflect(changeName bool) *Builder {
	b.mesh = ReflectOp{}.Apply(b.mesh)
	if changeName {
		b.rename("r", "")
	}
	return b
}

// Snub applies SnubOp in place.
func (b *Builder) Snub(ratio, height *float32, changeName bool) *Builder {
	b.mesh = SnubOp{Ratio: ratio, Height: height}.Apply(b.mesh)
	if changeName {
		b.rename("s", buildParams(fParam(ratio), fParam(height)))
	}
	return b
}

// Truncate applies TruncateOp in place.
func (b *Builder) Truncate(height *float32, vertexValence []int, regularFacesOnly, changeName bool) *Builder {
	b.mesh = TruncateOp{Height: height, VertexValence: vertexValence, RegularFacesOnly: regularFacesOnly}.Apply(b.mesh)
	if changeName {
		b.rename("t", buildParams(fParam(height), listParam(vertexValence), flagParam(regularFacesOnly, "t")))
	}
	return b
}

// Whirl applies WhirlOp in place.
func (b *Builder) Whirl(ratio, height *float32, changeName bool) *Builder {
	b.mesh = WhirlOp{Ratio: ratio, Height: height}.Apply(b.mesh)
	if changeName {
		b.rename("w", buildParams(fParam(ratio), fParam(height)))
	}
	return b
}

// Zip applies ZipOp in place.
func (b *Builder) Zip(height *float32, vertexValence []int, regularFacesOnly, changeName bool) *Builder {
	b.mesh = ZipOp{Height: height, VertexValence: vertexValence, RegularFacesOnly: regularFacesOnly}.Apply(b.mesh)
	if changeName {
		b.rename("z", buildParams(fParam(height), listParam(vertexValence), flagParam(regularFacesOnly, "t")))
	}
	return b
}
