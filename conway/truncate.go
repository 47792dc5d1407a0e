package conway

// TruncateOp cuts each selected vertex off, replacing it with a small face.
// It is the composition dual, kis, dual - kis run on the dual's faces
// (which correspond to the original's vertices) and then dualized back.
type TruncateOp struct {
	Height           *float32
	VertexValence    []int
	RegularFacesOnly bool
}

func (o TruncateOp) Symbol() string { return "t" }
func (o TruncateOp) Name() string   { return "truncate" }

func (o TruncateOp) Apply(m Mesh) Mesh {
	return applyTruncate(m, o.Height, o.VertexValence, o.RegularFacesOnly)
}

// Truncate is the free-function form of TruncateOp.
func Truncate(m Mesh, height *float32, vertexValence []int, regularFacesOnly bool) Mesh {
	return TruncateOp{Height: height, VertexValence: vertexValence, RegularFacesOnly: regularFacesOnly}.Apply(m)
}

func applyTruncate(m Mesh, height *float32, vertexValence []int, regularFacesOnly bool) Mesh {
	m = applyDual(m)
	m = applyKis(m, height, vertexValence, regularFacesOnly)
	m = applyDual(m)
	return m
}
