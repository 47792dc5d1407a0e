package conway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedVertexFaces(t *testing.T) {
	t.Run("CubeVertexHasThreeFaces", func(t *testing.T) {
		cube := Cube()
		ring := orderedVertexFaces(0, cube.Faces)
		assert.Len(t, ring, 3)

		seen := make(map[int]bool)
		for _, faceID := range ring {
			assert.False(t, seen[faceID], "face %d repeated in ring", faceID)
			seen[faceID] = true
			assert.Contains(t, cube.Faces[faceID], Index(0))
		}
	})

	t.Run("TetrahedronEveryVertexHasThreeFaces", func(t *testing.T) {
		tetra := Tetrahedron()
		for v := range tetra.Points {
			ring := orderedVertexFaces(Index(v), tetra.Faces)
			assert.Len(t, ring, 3)
		}
	})

	t.Run("IcosahedronEveryVertexHasFiveFaces", func(t *testing.T) {
		icosa := Icosahedron()
		for v := range icosa.Points {
			ring := orderedVertexFaces(Index(v), icosa.Faces)
			assert.Len(t, ring, 5)
		}
	})
}

func TestApplyDual(t *testing.T) {
	t.Run("Tetrahedron", func(t *testing.T) {
		tetra := Tetrahedron()
		result := DualOp{}.Apply(tetra)

		require.NoError(t, result.Validate())
		assert.Equal(t, 2, result.EulerCharacteristic())
		assert.Len(t, result.Faces, len(tetra.Points))
		assert.Len(t, result.Points, len(tetra.Faces))
	})

	t.Run("Cube", func(t *testing.T) {
		cube := Cube()
		result := DualOp{}.Apply(cube)

		require.NoError(t, result.Validate())
		assert.Equal(t, 2, result.EulerCharacteristic())
		// Dual of the cube is an octahedron.
		assert.Len(t, result.Points, 6)
		assert.Len(t, result.Faces, 8)
		for _, f := range result.Faces {
			assert.Len(t, f, 3)
		}
	})

	t.Run("Octahedron", func(t *testing.T) {
		octa := Octahedron()
		result := DualOp{}.Apply(octa)

		require.NoError(t, result.Validate())
		// Dual of the octahedron is a cube.
		assert.Len(t, result.Points, 8)
		assert.Len(t, result.Faces, 6)
		for _, f := range result.Faces {
			assert.Len(t, f, 4)
		}
	})

	t.Run("ResetsFaceSets", func(t *testing.T) {
		cube := Cube()
		result := DualOp{}.Apply(cube)
		require.Len(t, result.FaceSets, 1)
		assert.Equal(t, FaceSet{0, 1, 2, 3, 4, 5, 6, 7}, result.FaceSets[0])
	})

	t.Run("DualOfDualIsIdentityUpToReindexing", func(t *testing.T) {
		cube := Cube()
		roundTrip := DualOp{}.Apply(DualOp{}.Apply(cube))
		assert.Equal(t, len(cube.Points), len(roundTrip.Points))
		assert.Equal(t, len(cube.Faces), len(roundTrip.Faces))
		assert.Equal(t, cube.EulerCharacteristic(), roundTrip.EulerCharacteristic())
	})
}

func TestDualFreeFunction(t *testing.T) {
	cube := Cube()
	result := Dual(cube)
	require.NoError(t, result.Validate())
	assert.Equal(t, "C", result.Name)
}

func TestDualOpMethods(t *testing.T) {
	op := DualOp{}
	assert.Equal(t, "d", op.Symbol())
	assert.Equal(t, "dual", op.Name())
}
