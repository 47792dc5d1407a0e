package conway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyChamfer(t *testing.T) {
	t.Run("Cube", func(t *testing.T) {
		cube := Cube()
		result := ChamferOp{}.Apply(cube)

		require.NoError(t, result.Validate())
		assert.Equal(t, 2, result.EulerCharacteristic())

		// One inset face per original face, plus one hexagon per edge.
		wantFaces := len(cube.Faces) + len(distinctEdges(cube.Faces))
		assert.Equal(t, wantFaces, len(result.Faces))

		for _, f := range result.Faces[len(cube.Faces):] {
			assert.Len(t, f, 6, "edge faces should be hexagons")
		}
		for i, f := range result.Faces[:len(cube.Faces)] {
			assert.Len(t, f, len(cube.Faces[i]), "inset faces keep the original arity")
		}
	})

	t.Run("RecordsSingleFaceSetSpanningAllFaces", func(t *testing.T) {
		cube := Cube()
		result := ChamferOp{}.Apply(cube)
		require.Len(t, result.FaceSets, 1)
		assert.Len(t, result.FaceSets[0], len(result.Faces))
	})

	t.Run("RescalesOriginalPoints", func(t *testing.T) {
		cube := Cube()
		ratio := float32(0.5)
		result := ChamferOp{Ratio: &ratio}.Apply(cube)

		for i, p := range cube.Points {
			want := p.Mul(1.5 * ratio)
			assert.InDelta(t, want.X(), result.Points[i].X(), 1e-5)
			assert.InDelta(t, want.Y(), result.Points[i].Y(), 1e-5)
			assert.InDelta(t, want.Z(), result.Points[i].Z(), 1e-5)
		}
	})

	t.Run("DoesNotMutateName", func(t *testing.T) {
		cube := Cube()
		result := Chamfer(cube, nil)
		assert.Equal(t, cube.Name, result.Name)
	})
}

func TestChamferOpMethods(t *testing.T) {
	assert.Equal(t, "c", ChamferOp{}.Symbol())
	assert.Equal(t, "chamfer", ChamferOp{}.Name())
}
