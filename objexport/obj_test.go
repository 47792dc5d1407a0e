package objexport

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyforge/conway/conway"
)

func TestEncode(t *testing.T) {
	t.Run("HeaderNamesTheMesh", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, conway.Cube(), false))
		assert.True(t, strings.HasPrefix(buf.String(), "o C\n"))
	})

	t.Run("EmitsOnePointLinePerVertex", func(t *testing.T) {
		cube := conway.Cube()
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, cube, false))

		count := strings.Count(buf.String(), "\nv ") + strings.Count(buf.String(), "\no ")
		vLines := 0
		for _, line := range strings.Split(buf.String(), "\n") {
			if strings.HasPrefix(line, "v ") {
				vLines++
			}
		}
		assert.Equal(t, len(cube.Points), vLines)
		_ = count
	})

	t.Run("FaceLinesAreOneBased", func(t *testing.T) {
		cube := conway.Cube()
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, cube, false))

		fLines := 0
		for _, line := range strings.Split(buf.String(), "\n") {
			if strings.HasPrefix(line, "f ") {
				fLines++
				assert.NotContains(t, line, " 0")
			}
		}
		assert.Equal(t, len(cube.Faces), fLines)
	})

	t.Run("ReverseWindingReversesFaceOrder", func(t *testing.T) {
		cube := conway.Cube()

		var forward, reversed bytes.Buffer
		require.NoError(t, Encode(&forward, cube, false))
		require.NoError(t, Encode(&reversed, cube, true))

		forwardFace := firstFaceLine(t, forward.String())
		reversedFace := firstFaceLine(t, reversed.String())

		forwardFields := strings.Fields(forwardFace)[1:]
		reversedFields := strings.Fields(reversedFace)[1:]
		require.Len(t, reversedFields, len(forwardFields))

		for i, v := range forwardFields {
			assert.Equal(t, v, reversedFields[len(reversedFields)-1-i])
		}
	})
}

func firstFaceLine(t *testing.T, text string) string {
	t.Helper()
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "f ") {
			return line
		}
	}
	t.Fatal("no face line found")
	return ""
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	path, err := Write(conway.Cube(), dir, false)
	require.NoError(t, err)
	assert.Equal(t, dir+"/polyhedron-C.obj", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "o C\n"))
}
