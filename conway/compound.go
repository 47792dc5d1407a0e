package conway

// This file collects the operators defined purely by composing other
// operators: each applies a short, fixed sequence of primitive operators
// and otherwise does no geometry of its own.

// ExpandOp pushes faces apart and fills the gaps with new faces, one per
// original edge and one per original vertex. It is ambo applied twice.
type ExpandOp struct {
	Ratio *float32
}

func (o ExpandOp) Symbol() string { return "e" }
func (o ExpandOp) Name() string   { return "expand" }
func (o ExpandOp) Apply(m Mesh) Mesh {
	return applyExpand(m, o.Ratio)
}

// Expand is the free-function form of ExpandOp.
func Expand(m Mesh, ratio *float32) Mesh {
	return ExpandOp{Ratio: ratio}.Apply(m)
}

func applyExpand(m Mesh, ratio *float32) Mesh {
	m = applyAmbo(m, ratio)
	m = applyAmbo(m, ratio)
	return m
}

// OrthoOp quadrangulates each face around its center. It is join applied
// twice.
type OrthoOp struct {
	Ratio *float32
}

func (o OrthoOp) Symbol() string { return "o" }
func (o OrthoOp) Name() string   { return "ortho" }
func (o OrthoOp) Apply(m Mesh) Mesh {
	return applyOrtho(m, o.Ratio)
}

// Ortho is the free-function form of OrthoOp.
func Ortho(m Mesh, ratio *float32) Mesh {
	return OrthoOp{Ratio: ratio}.Apply(m)
}

func applyOrtho(m Mesh, ratio *float32) Mesh {
	m = applyJoin(m, ratio)
	m = applyJoin(m, ratio)
	return m
}

// SnubOp is gyro performed in the dual domain: dual, gyro, dual.
type SnubOp struct {
	Ratio  *float32
	Height *float32
}

func (o SnubOp) Symbol() string { return "s" }
func (o SnubOp) Name() string   { return "snub" }
func (o SnubOp) Apply(m Mesh) Mesh {
	return applySnub(m, o.Ratio, o.Height)
}

// Snub is the free-function form of SnubOp.
func Snub(m Mesh, ratio, height *float32) Mesh {
	return SnubOp{Ratio: ratio, Height: height}.Apply(m)
}

func applySnub(m Mesh, ratio, height *float32) Mesh {
	m = applyDual(m)
	m = applyGyro(m, ratio, height)
	m = applyDual(m)
	return m
}

// BevelOp truncates every vertex, then ambos the result. It is
// truncate followed by ambo.
type BevelOp struct {
	Ratio            *float32
	Height           *float32
	VertexValence    []int
	RegularFacesOnly bool
}

func (o BevelOp) Symbol() string { return "b" }
func (o BevelOp) Name() string   { return "bevel" }
func (o BevelOp) Apply(m Mesh) Mesh {
	return applyBevel(m, o.Ratio, o.Height, o.VertexValence, o.RegularFacesOnly)
}

// Bevel is the free-function form of BevelOp.
func Bevel(m Mesh, ratio, height *float32, vertexValence []int, regularFacesOnly bool) Mesh {
	return BevelOp{Ratio: ratio, Height: height, VertexValence: vertexValence, RegularFacesOnly: regularFacesOnly}.Apply(m)
}

func applyBevel(m Mesh, ratio, height *float32, vertexValence []int, regularFacesOnly bool) Mesh {
	m = applyTruncate(m, height, vertexValence, regularFacesOnly)
	m = applyAmbo(m, ratio)
	return m
}

// MedialOp is dual, truncate, ambo.
type MedialOp struct {
	Ratio            *float32
	Height           *float32
	VertexValence    []int
	RegularFacesOnly bool
}

func (o MedialOp) Symbol() string { return "M" }
func (o MedialOp) Name() string   { return "medial" }
func (o MedialOp) Apply(m Mesh) Mesh {
	return applyMedial(m, o.Ratio, o.Height, o.VertexValence, o.RegularFacesOnly)
}

// Medial is the free-function form of MedialOp.
func Medial(m Mesh, ratio, height *float32, vertexValence []int, regularFacesOnly bool) Mesh {
	return MedialOp{Ratio: ratio, Height: height, VertexValence: vertexValence, RegularFacesOnly: regularFacesOnly}.Apply(m)
}

func applyMedial(m Mesh, ratio, height *float32, vertexValence []int, regularFacesOnly bool) Mesh {
	m = applyDual(m)
	m = applyTruncate(m, height, vertexValence, regularFacesOnly)
	m = applyAmbo(m, ratio)
	return m
}

// MetaOp is kis followed by join. VertexValence is passed to kis as its
// face-arity filter; nil means [3], so by default only triangular faces
// are split.
type MetaOp struct {
	Ratio            *float32
	Height           *float32
	VertexValence    []int
	RegularFacesOnly bool
}

func (o MetaOp) Symbol() string { return "m" }
func (o MetaOp) Name() string   { return "meta" }
func (o MetaOp) Apply(m Mesh) Mesh {
	return applyMeta(m, o.Ratio, o.Height, o.VertexValence, o.RegularFacesOnly)
}

// Meta is the free-function form of MetaOp.
func Meta(m Mesh, ratio, height *float32, vertexValence []int, regularFacesOnly bool) Mesh {
	return MetaOp{Ratio: ratio, Height: height, VertexValence: vertexValence, RegularFacesOnly: regularFacesOnly}.Apply(m)
}

func applyMeta(m Mesh, ratio, height *float32, vertexValence []int, regularFacesOnly bool) Mesh {
	valence := vertexValence
	if valence == nil {
		valence = []int{3}
	}
	m = applyKis(m, height, valence, regularFacesOnly)
	m = applyJoin(m, ratio)
	return m
}

// NeedleOp is dual, truncate.
type NeedleOp struct {
	Height           *float32
	VertexValence    []int
	RegularFacesOnly bool
}

func (o NeedleOp) Symbol() string { return "n" }
func (o NeedleOp) Name() string   { return "needle" }
func (o NeedleOp) Apply(m Mesh) Mesh {
	return applyNeedle(m, o.Height, o.VertexValence, o.RegularFacesOnly)
}

// Needle is the free-function form of NeedleOp.
func Needle(m Mesh, height *float32, vertexValence []int, regularFacesOnly bool) Mesh {
	return NeedleOp{Height: height, VertexValence: vertexValence, RegularFacesOnly: regularFacesOnly}.Apply(m)
}

func applyNeedle(m Mesh, height *float32, vertexValence []int, regularFacesOnly bool) Mesh {
	m = applyDual(m)
	m = applyTruncate(m, height, vertexValence, regularFacesOnly)
	return m
}

// ZipOp is dual, kis - unlike truncate it does not dualize back.
type ZipOp struct {
	Height           *float32
	VertexValence    []int
	RegularFacesOnly bool
}

func (o ZipOp) Symbol() string { return "z" }
func (o ZipOp) Name() string   { return "zip" }
func (o ZipOp) Apply(m Mesh) Mesh {
	return applyZip(m, o.Height, o.VertexValence, o.RegularFacesOnly)
}

// Zip is the free-function form of ZipOp.
func Zip(m Mesh, height *float32, vertexValence []int, regularFacesOnly bool) Mesh {
	return ZipOp{Height: height, VertexValence: vertexValence, RegularFacesOnly: regularFacesOnly}.Apply(m)
}

func applyZip(m Mesh, height *float32, vertexValence []int, regularFacesOnly bool) Mesh {
	m = applyDual(m)
	m = applyKis(m, height, vertexValence, regularFacesOnly)
	return m
}
