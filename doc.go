// Package conway builds polyhedra from the five Platonic seeds by applying
// Conway polyhedron operators: transformations like dual, ambo, truncate,
// kis, and join that rewrite a mesh's vertices and faces according to fixed
// combinatorial rules.
//
// This root package holds documentation only. The types and functions
// described below live in the conway subdirectory, imported as
// github.com/polyforge/conway/conway; the OBJ and scene exporters live in
// the objexport and sceneexport subdirectories.
//
// # Seeds
//
// The five Platonic solids are available as seed constructors, or by
// symbol through GetSeed:
//
//	cube, err := conway.GetSeed("C")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(cube.Stats())
//
// GetSeed accepts T (tetrahedron), C (cube), O (octahedron), D
// (dodecahedron), and I (icosahedron), and returns ErrUnknownSeed for
// anything else.
//
// # Operators
//
// Every operator is available both as a struct implementing Operation
// (Symbol, Name, Apply) and as a plain free function taking a Mesh and its
// parameters:
//
//	dual := conway.Dual(cube)
//	truncated := conway.Truncate(dual, nil, nil, false)
//
// Optional parameters use nil to mean "use the operator's default": a
// *float32 for ratios and heights, a []int for face-arity or
// vertex-valence filters. Operators never mutate the Name of the mesh
// they're given, and every Apply rewrites Points and Faces. Dual, ambo,
// chamfer and whirl replace FaceSets with a single set spanning their
// output; kis, gyro, propellor, quinto, reflect and reverse pass FaceSets
// through unchanged; composite operators inherit this from their steps. No
// operator appends a new set to the FaceSets it was given.
//
// # Chaining with Builder
//
// Builder lets operators be chained without juggling intermediate Mesh
// values, and tracks the resulting Conway notation name as it goes:
//
//	b := conway.NewBuilder(conway.Cube())
//	b.Truncate(nil, nil, false, true)
//	b.Dual(true)
//	result := b.Finalize()
//	fmt.Println(result.Name) // "dtC"
//
// The changeName argument on each Builder method controls whether that
// step's symbol is recorded; passing false applies the operator without
// touching the notation string.
//
// # Validation
//
// A Mesh can be checked for topological and geometric soundness:
//
//	if err := result.ValidateComplete(); err != nil {
//		log.Printf("invalid mesh: %v", err)
//	}
//
// Validate checks face arity, point-index bounds, and edge-manifoldness.
// ValidatePlanarity, ValidateWinding, and ValidateGeometry check
// additional geometric properties that only matter once points carry real
// coordinates; ValidateComplete runs all four in sequence and stops at the
// first failure.
package conway
