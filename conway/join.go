package conway

// JoinOp creates quadrilateral faces around each original edge; original
// edges are discarded. It is the composition dual, ambo, dual.
type JoinOp struct {
	Ratio *float32
}

func (o JoinOp) Symbol() string { return "j" }
func (o JoinOp) Name() string   { return "join" }

func (o JoinOp) Apply(m Mesh) Mesh {
	return applyJoin(m, o.Ratio)
}

// Join is the free-function form of JoinOp.
func Join(m Mesh, ratio *float32) Mesh {
	return JoinOp{Ratio: ratio}.Apply(m)
}

func applyJoin(m Mesh, ratio *float32) Mesh {
	m = applyDual(m)
	m = applyAmbo(m, ratio)
	m = applyDual(m)
	return m
}
