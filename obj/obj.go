// Package obj reads and writes meshes in the Wavefront OBJ format (*.obj).
// Only the subset the sweep meshes need is supported: vertex positions,
// vertex normals and triangular faces. Basic format info:
// https://en.wikipedia.org/wiki/Wavefront_.obj_file
package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexozer/sweep"
	"github.com/ungerik/go3d/float64/vec3"
)

// Write encodes m as OBJ. Every face refers to the point and the normal with
// the same index and to a single dummy texture coordinate.
func Write(w io.Writer, m *sweep.Mesh) error {
	if err := m.Check(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, p := range m.Points {
		fmt.Fprintf(bw, "v %s %s %s\n", formatFloat(p[0]), formatFloat(p[1]), formatFloat(p[2]))
	}
	for _, n := range m.Normals {
		fmt.Fprintf(bw, "vn %s %s %s\n", formatFloat(n[0]), formatFloat(n[1]), formatFloat(n[2]))
	}
	fmt.Fprintln(bw, "vt 0 0 0")
	for _, f := range m.Faces {
		a, b, c := f[0]+1, f[1]+1, f[2]+1
		fmt.Fprintf(bw, "f %d/1/%d %d/1/%d %d/1/%d\n", a, a, b, b, c, c)
	}

	return bw.Flush()
}

func formatFloat(f float64) string {
	if f == 0 {
		// no "-0"
		return "0"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Read decodes an OBJ stream into a mesh. Points and normals must come in
// pairs with matching indices, as Write produces them; texture
// coordinates, groups and material statements are skipped.
func Read(r io.Reader) (*sweep.Mesh, error) {
	var (
		m    sweep.Mesh
		line int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v", "vn":
			v, err := parseVec(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			if fields[0] == "v" {
				m.Points = append(m.Points, v)
			} else {
				m.Normals = append(m.Normals, v)
			}
		case "f":
			face, err := parseFace(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			m.Faces = append(m.Faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if err := m.Check(); err != nil {
		return nil, err
	}
	return &m, nil
}

func parseVec(fields []string) (v vec3.T, err error) {
	if len(fields) < 3 {
		return v, fmt.Errorf("expected 3 coordinates, got %d", len(fields))
	}
	for i := range v {
		if v[i], err = strconv.ParseFloat(fields[i], 64); err != nil {
			return v, err
		}
	}
	return v, nil
}

// parseFace accepts "a", "a/t", "a//n" and "a/t/n" references and keeps
// only the point index.
func parseFace(fields []string) (face sweep.Tri, err error) {
	if len(fields) != 3 {
		return face, errors.New("only triangular faces are supported")
	}
	for i, f := range fields {
		ref, _, _ := strings.Cut(f, "/")
		idx, err := strconv.Atoi(ref)
		if err != nil {
			return face, err
		}
		if idx < 1 {
			return face, fmt.Errorf("invalid point index %d", idx)
		}
		face[i] = idx - 1
	}
	return face, nil
}
