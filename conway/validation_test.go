package conway

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := ValidationError{
		Type:    "Planarity",
		Message: "this is a test error message",
	}

	errorStr := err.Error()
	assert.Contains(t, errorStr, "Planarity")
	assert.Contains(t, errorStr, "this is a test error message")
}

func TestValidatePlanarity(t *testing.T) {
	t.Run("TrianglesAlwaysPass", func(t *testing.T) {
		assert.NoError(t, Tetrahedron().ValidatePlanarity())
	})

	t.Run("SeedQuadsAndPentagonsArePlanar", func(t *testing.T) {
		assert.NoError(t, Cube().ValidatePlanarity())
		assert.NoError(t, Dodecahedron().ValidatePlanarity())
	})

	t.Run("NonPlanarQuadFails", func(t *testing.T) {
		m := Mesh{
			Points: []Point{{0, 0, 0}, {1, 0, 0}, {1, 1, 1}, {0, 1, 0}},
			Faces:  []Face{{0, 1, 2, 3}},
		}
		err := m.ValidatePlanarity()
		require.Error(t, err)
		var ve ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "Planarity", ve.Type)
	})
}

func TestValidateWinding(t *testing.T) {
	t.Run("SeedsWindOutward", func(t *testing.T) {
		for _, m := range []Mesh{Tetrahedron(), Cube(), Octahedron(), Dodecahedron(), Icosahedron()} {
			assert.NoError(t, m.ValidateWinding())
		}
	})

	t.Run("EmptyMeshPasses", func(t *testing.T) {
		assert.NoError(t, Mesh{}.ValidateWinding())
	})

	t.Run("ReversedFaceFailsWinding", func(t *testing.T) {
		cube := Cube()
		reversed := cube.Clone()
		reversed.Faces[0] = Reverse(Mesh{Points: cube.Points, Faces: []Face{cube.Faces[0]}}).Faces[0]

		err := reversed.ValidateWinding()
		require.Error(t, err)
		var ve ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "Winding", ve.Type)
	})
}

func TestValidateGeometry(t *testing.T) {
	t.Run("SeedsHaveNoDegenerateEdges", func(t *testing.T) {
		for _, m := range []Mesh{Tetrahedron(), Cube(), Octahedron()} {
			assert.NoError(t, m.ValidateGeometry())
		}
	})

	t.Run("CollapsedEdgeFails", func(t *testing.T) {
		m := Mesh{
			Points: []Point{{0, 0, 0}, {0, 0, 0}, {0, 1, 0}},
			Faces:  []Face{{0, 1, 2}},
		}
		err := m.ValidateGeometry()
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "Geometry"))
	})
}

func TestValidateComplete(t *testing.T) {
	t.Run("ValidSeeds", func(t *testing.T) {
		for _, m := range []Mesh{Tetrahedron(), Cube(), Octahedron(), Dodecahedron(), Icosahedron()} {
			assert.NoError(t, m.ValidateComplete())
		}
	})

	t.Run("StructuralFailureTakesPrecedence", func(t *testing.T) {
		m := Mesh{
			Points: []Point{{0, 0, 0}, {1, 0, 0}},
			Faces:  []Face{{0, 1}},
		}
		err := m.ValidateComplete()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDegenerateFace)
	})

	t.Run("OperatorOutputPassesComplete", func(t *testing.T) {
		cube := Cube()
		for _, m := range []Mesh{
			Dual(cube), Ambo(cube, nil), Truncate(cube, nil, nil, false),
			Kis(cube, nil, nil, false),
		} {
			assert.NoError(t, m.ValidateComplete())
		}

		// Join builds each quad from four face centroids that are not
		// coplanar here, so its output is structurally valid but fails the
		// planarity check.
		joined := Join(cube, nil)
		assert.NoError(t, joined.Validate())
		assert.Error(t, joined.ValidatePlanarity())
	})
}
