package conway

// ReflectOp mirrors a mesh through the XZ plane and reverses every face's
// winding order to compensate, producing the mirror image of the input.
type ReflectOp struct{}

func (o ReflectOp) Symbol() string { return "r" }
func (o ReflectOp) Name() string   { return "reflect" }

func (o ReflectOp) Apply(m Mesh) Mesh {
	return applyReflect(m)
}

// Reflect is the free-function form of ReflectOp.
func Reflect(m Mesh) Mesh {
	return ReflectOp{}.Apply(m)
}

func applyReflect(m Mesh) Mesh {
	points := make([]Point, len(m.Points))
	for i, p := range m.Points {
		points[i] = Point{p.X(), -p.Y(), p.Z()}
	}
	out := Mesh{Points: points, Faces: m.Faces, FaceSets: m.FaceSets, Name: m.Name}
	return applyReverse(out)
}

// ReverseOp reverses the winding order of every face, without touching
// points or face-set bookkeeping.
type ReverseOp struct{}

func (o ReverseOp) Symbol() string { return "" }
func (o ReverseOp) Name() string   { return "reverse" }

func (o ReverseOp) Apply(m Mesh) Mesh {
	return applyReverse(m)
}

// Reverse is the free-function form of ReverseOp.
func Reverse(m Mesh) Mesh {
	return ReverseOp{}.Apply(m)
}

func applyReverse(m Mesh) Mesh {
	faces := make([]Face, len(m.Faces))
	for i, face := range m.Faces {
		nf := make(Face, len(face))
		for j, v := range face {
			nf[len(face)-1-j] = v
		}
		faces[i] = nf
	}
	points := make([]Point, len(m.Points))
	copy(points, m.Points)
	return Mesh{Points: points, Faces: faces, FaceSets: m.FaceSets, Name: m.Name}
}
