package conway

import (
	"fmt"
)

// ValidationError reports a single structural or geometric defect found by
// one of the Validate* checks below.
type ValidationError struct {
	Type    string
	Message string
}

func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s validation error: %s", ve.Type, ve.Message)
}

const (
	planarityTolerance = 1e-3
	minEdgeLength      = 1e-6
	windingTolerance   = -0.1
)

// ValidatePlanarity checks that every face of arity >= 4 is planar within
// tolerance: the fitted plane comes from the face's first three points,
// and every later point must lie within planarityTolerance of it. Faces of
// arity 3 are always planar and are skipped.
func (m Mesh) ValidatePlanarity() error {
	for i, face := range m.Faces {
		if len(face) < 4 {
			continue
		}
		fp := asPoints(face, m.Points)
		normal := orthogonal(fp[0], fp[1], fp[2]).Normalize()
		for j := 3; j < len(fp); j++ {
			dist := normal.Dot(fp[j].Sub(fp[0]))
			if dist < 0 {
				dist = -dist
			}
			if dist > planarityTolerance {
				return ValidationError{
					Type:    "Planarity",
					Message: fmt.Sprintf("face %d point %d is %.2e units from the face plane (tolerance %.2e)", i, j, dist, planarityTolerance),
				}
			}
		}
	}
	return nil
}

// ValidateWinding checks that every face's normal points away from the
// mesh's overall centroid, the convention every seed and operator in this
// package maintains for convex input.
func (m Mesh) ValidateWinding() error {
	if len(m.Points) == 0 {
		return nil
	}
	center := centroid(m.Points)
	for i, face := range m.Faces {
		fp := asPoints(face, m.Points)
		n := faceNormal(fp)
		outward := centroid(fp).Sub(center)
		if outward.Dot(outward) == 0 {
			continue
		}
		outward = outward.Normalize()
		if n.Dot(outward) < windingTolerance {
			return ValidationError{
				Type:    "Winding",
				Message: fmt.Sprintf("face %d has inward-facing winding", i),
			}
		}
	}
	return nil
}

// ValidateGeometry checks for degenerate edges: any edge shorter than
// minEdgeLength signals that two points that should be distinct have
// collapsed onto each other.
func (m Mesh) ValidateGeometry() error {
	for _, e := range distinctEdges(m.Faces) {
		if l := edgeLength(e, m.Points); l < minEdgeLength {
			return ValidationError{
				Type:    "Geometry",
				Message: fmt.Sprintf("edge %v has degenerate length %e", e, l),
			}
		}
	}
	return nil
}

// ValidateComplete runs every structural and geometric check: Validate,
// then ValidatePlanarity, ValidateWinding and ValidateGeometry.
func (m Mesh) ValidateComplete() error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := m.ValidatePlanarity(); err != nil {
		return err
	}
	if err := m.ValidateWinding(); err != nil {
		return err
	}
	if err := m.ValidateGeometry(); err != nil {
		return err
	}
	return nil
}
