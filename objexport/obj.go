// Package objexport writes a conway.Mesh out as a Wavefront OBJ file, one
// of the two external collaborator formats the core package never imports
// itself.
package objexport

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/polyforge/conway/conway"
)

// Write renders mesh as Wavefront OBJ text into destination, naming the
// file "polyhedron-<name>.obj" inside the given directory. When
// reverseWinding is true, each face's vertex order is emitted reversed,
// for target coordinate systems with the opposite handedness.
//
// On success it returns the full path of the file it wrote.
func Write(mesh conway.Mesh, destination string, reverseWinding bool) (string, error) {
	path := filepath.Join(destination, fmt.Sprintf("polyhedron-%s.obj", mesh.Name))

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := Encode(file, mesh, reverseWinding); err != nil {
		return "", err
	}
	return path, nil
}

// Encode writes mesh as Wavefront OBJ text to w without touching the
// filesystem, for callers that already own their destination (an
// in-memory buffer, a response writer, an archive entry).
func Encode(w io.Writer, mesh conway.Mesh, reverseWinding bool) error {
	if _, err := fmt.Fprintf(w, "o %s\n", mesh.Name); err != nil {
		return err
	}

	for _, p := range mesh.Points {
		if _, err := fmt.Fprintf(w, "v %g %g %g\n", p.X(), p.Y(), p.Z()); err != nil {
			return err
		}
	}

	for _, face := range mesh.Faces {
		if _, err := io.WriteString(w, "f"); err != nil {
			return err
		}
		if err := writeFaceIndices(w, face, reverseWinding); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}

func writeFaceIndices(w io.Writer, face conway.Face, reverseWinding bool) error {
	if !reverseWinding {
		for _, v := range face {
			if _, err := fmt.Fprintf(w, " %d", v+1); err != nil {
				return err
			}
		}
		return nil
	}

	for i := len(face) - 1; i >= 0; i-- {
		if _, err := fmt.Fprintf(w, " %d", face[i]+1); err != nil {
			return err
		}
	}
	return nil
}
