package conway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCentroid(t *testing.T) {
	t.Run("SinglePoint", func(t *testing.T) {
		c := centroid([]Point{{1, 2, 3}})
		assert.Equal(t, Point{1, 2, 3}, c)
	})

	t.Run("Square", func(t *testing.T) {
		pts := []Point{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}}
		c := centroid(pts)
		assert.InDelta(t, 1, c.X(), 1e-6)
		assert.InDelta(t, 1, c.Y(), 1e-6)
		assert.InDelta(t, 0, c.Z(), 1e-6)
	})
}

func TestOrthogonalAndCollinear(t *testing.T) {
	t.Run("RightAngle", func(t *testing.T) {
		o := orthogonal(Point{0, 0, 0}, Point{1, 0, 0}, Point{1, 1, 0})
		assert.InDelta(t, 0, o.X(), 1e-6)
		assert.InDelta(t, 0, o.Y(), 1e-6)
		assert.NotEqual(t, float32(0), o.Z())
	})

	t.Run("CollinearPoints", func(t *testing.T) {
		assert.True(t, collinear(Point{0, 0, 0}, Point{1, 0, 0}, Point{2, 0, 0}))
	})

	t.Run("NonCollinearPoints", func(t *testing.T) {
		assert.False(t, collinear(Point{0, 0, 0}, Point{1, 0, 0}, Point{0, 1, 0}))
	})
}

func TestFaceNormal(t *testing.T) {
	t.Run("SquareInXYPlane", func(t *testing.T) {
		pts := []Point{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
		n := faceNormal(pts)
		assert.InDelta(t, 0, n.X(), 1e-5)
		assert.InDelta(t, 0, n.Y(), 1e-5)
		assert.InDelta(t, 1, n.Z()*n.Z(), 1e-5)
	})

	t.Run("DegenerateFallsBackToCentroidDirection", func(t *testing.T) {
		pts := []Point{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}
		n := faceNormal(pts)
		want := centroid(pts).Normalize()
		assert.InDelta(t, want.X(), n.X(), 1e-5)
		assert.InDelta(t, want.Y(), n.Y(), 1e-5)
		assert.InDelta(t, want.Z(), n.Z(), 1e-5)
	})

	t.Run("CubeFacesPointOutward", func(t *testing.T) {
		cube := Cube()
		center := centroid(cube.Points)
		for _, f := range cube.Faces {
			fp := asPoints(f, cube.Points)
			n := faceNormal(fp)
			outward := centroid(fp).Sub(center).Normalize()
			assert.Greater(t, n.Dot(outward), float32(0))
		}
	})
}

func TestMaxResize(t *testing.T) {
	pts := []Point{{10, 0, 0}, {0, 0, 0}, {-10, 0, 0}}
	maxResize(pts, 1.0)

	c := centroid(pts)
	assert.InDelta(t, 0, c.X(), 1e-5)
	assert.InDelta(t, 0, c.Y(), 1e-5)
	assert.InDelta(t, 0, c.Z(), 1e-5)

	assert.InDelta(t, 1.0, maxMagnitude(pts), 1e-5)
}

func TestFaceEdgeRegularity(t *testing.T) {
	t.Run("Square", func(t *testing.T) {
		face := Face{0, 1, 2, 3}
		pts := []Point{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
		assert.InDelta(t, 1.0, faceEdgeRegularity(face, pts), 1e-6)
	})

	t.Run("Rectangle", func(t *testing.T) {
		face := Face{0, 1, 2, 3}
		pts := []Point{{0, 0, 0}, {2, 0, 0}, {2, 1, 0}, {0, 1, 0}}
		assert.InDelta(t, 2.0, faceEdgeRegularity(face, pts), 1e-6)
	})
}

func TestSelectedFace(t *testing.T) {
	tri := Face{0, 1, 2}
	quad := Face{0, 1, 2, 3}

	assert.True(t, selectedFace(tri, nil))
	assert.True(t, selectedFace(quad, nil))
	assert.True(t, selectedFace(tri, []int{3, 5}))
	assert.False(t, selectedFace(quad, []int{3, 5}))
}

func TestGeometryStats(t *testing.T) {
	t.Run("Cube", func(t *testing.T) {
		stats := Cube().GeometryStats()
		assert.InDelta(t, stats.MinEdgeLength, stats.MaxEdgeLength, 1e-5)
		assert.InDelta(t, stats.MinEdgeLength, stats.AvgEdgeLength, 1e-5)
		assert.Greater(t, stats.MinRadius, float32(0))
	})

	t.Run("EmptyMesh", func(t *testing.T) {
		stats := Mesh{}.GeometryStats()
		assert.Equal(t, GeometryStats{}, stats)
	})
}
