package conway

import (
	"math"
)

// collinearityTolerance is the squared-length threshold below which three
// points are treated as collinear when computing a face normal.
const collinearityTolerance = 1e-4

// centroid averages points left-to-right, matching the determinism
// requirement: summation order is never reordered for a parallel reduce,
// even though the per-element work that produces each summand may run
// concurrently.
func centroid(points []Point) Point {
	var sum Vector3
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float32(len(points)))
}

// asPoints resolves a face's point indices against the mesh's point list.
func asPoints(f Face, points []Point) []Point {
	out := make([]Point, len(f))
	for i, idx := range f {
		out[i] = points[idx]
	}
	return out
}

// orthogonal returns (v1-v0) x (v2-v1), the cross product used throughout
// face-normal estimation.
func orthogonal(v0, v1, v2 Point) Vector3 {
	return v1.Sub(v0).Cross(v2.Sub(v1))
}

func collinear(v0, v1, v2 Point) bool {
	o := orthogonal(v0, v1, v2)
	return o.Dot(o) < collinearityTolerance
}

// faceNormal averages the (negated, normalized) orthogonal vector of every
// non-collinear consecutive triple of the face's points, walking the cycle
// forward. A face with no non-collinear triple (fully degenerate or a
// single point repeated) falls back to the normalized direction from the
// origin to the face's centroid - not a true normal, but a stable
// direction that keeps downstream math from dividing by zero.
func faceNormal(points []Point) Vector3 {
	n := len(points)
	var normal Vector3
	considered := 0
	for i := 0; i < n; i++ {
		v0 := points[i]
		v1 := points[(i+1)%n]
		v2 := points[(i+2)%n]
		if collinear(v0, v1, v2) {
			continue
		}
		considered++
		normal = normal.Sub(orthogonal(v0, v1, v2).Normalize())
	}
	if considered != 0 {
		return normal.Mul(1 / float32(considered))
	}
	return centroid(points).Normalize()
}

// vnorm returns the length of every point, treated as a vector from the
// origin.
func vnorm(points []Point) []float32 {
	out := make([]float32, len(points))
	for i, p := range points {
		out[i] = p.Len()
	}
	return out
}

func maxMagnitude(points []Point) float32 {
	max := float32(math.Inf(-1))
	for _, p := range points {
		if l := p.Len(); l > max {
			max = l
		}
	}
	return max
}

func centerOnCentroid(points []Point) {
	c := centroid(points)
	for i := range points {
		points[i] = points[i].Sub(c)
	}
}

// maxResize recenters points on their centroid, then uniformly scales them
// so the farthest point lands exactly at the given radius.
func maxResize(points []Point, radius float32) {
	centerOnCentroid(points)
	max := maxMagnitude(points)
	if max == 0 {
		return
	}
	scale := radius / max
	for i := range points {
		points[i] = points[i].Mul(scale)
	}
}

func edgeLength(e Edge, points []Point) float32 {
	return points[e[0]].Sub(points[e[1]]).Len()
}

func faceEdgeLengths(face Face, points []Point) []float32 {
	edges := orderedFaceEdges(face)
	out := make([]float32, len(edges))
	for i, e := range edges {
		out[i] = edgeLength(e, points)
	}
	return out
}

// faceEdgeRegularity is the ratio of the longest to the shortest edge of a
// face. A value of 1 means every edge is the same length.
func faceEdgeRegularity(face Face, points []Point) float32 {
	lengths := faceEdgeLengths(face, points)
	min, max := lengths[0], lengths[0]
	for _, l := range lengths[1:] {
		if l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}
	return max / min
}

// selectedFace reports whether a face's arity passes the given filter. A
// nil filter selects every face.
func selectedFace(face Face, arity []int) bool {
	if arity == nil {
		return true
	}
	for _, a := range arity {
		if a == len(face) {
			return true
		}
	}
	return false
}

// GeometryStats summarizes edge-length and point-radius extremes for a
// mesh, the kind of numbers a caller reaches for when sanity-checking the
// result of a long operator chain.
type GeometryStats struct {
	MinEdgeLength, MaxEdgeLength, AvgEdgeLength float32
	MinRadius, MaxRadius                        float32
}

// GeometryStats computes GeometryStats for the mesh.
func (m Mesh) GeometryStats() GeometryStats {
	var stats GeometryStats
	edges := distinctEdges(m.Faces)
	if len(edges) == 0 || len(m.Points) == 0 {
		return stats
	}

	stats.MinEdgeLength = float32(math.Inf(1))
	var total float32
	for _, e := range edges {
		l := edgeLength(e, m.Points)
		if l < stats.MinEdgeLength {
			stats.MinEdgeLength = l
		}
		if l > stats.MaxEdgeLength {
			stats.MaxEdgeLength = l
		}
		total += l
	}
	stats.AvgEdgeLength = total / float32(len(edges))

	stats.MinRadius = float32(math.Inf(1))
	for _, p := range m.Points {
		l := p.Len()
		if l < stats.MinRadius {
			stats.MinRadius = l
		}
		if l > stats.MaxRadius {
			stats.MaxRadius = l
		}
	}

	return stats
}
