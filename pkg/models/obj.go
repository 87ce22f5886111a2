package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/glyph/pkg/math3d"
)

// ParseError describes a malformed line in a Wavefront OBJ file.
type ParseError struct {
	Line int // 1-based line number
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadOBJ reads a Wavefront OBJ file.
func LoadOBJ(path string) (*RawMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	mesh.Name = filepath.Base(path)
	return mesh, nil
}

// ParseOBJ parses the geometry of a Wavefront OBJ stream.
//
// Only vertex positions ("v") and faces ("f") are read; other statements
// are ignored. Face indices are 1-based, or negative to count back from the
// most recent vertex. Quads split into two triangles and larger polygons
// are fanned around their first vertex.
func ParseOBJ(r io.Reader) (*RawMesh, error) {
	mesh := &RawMesh{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseVertex(fields[1:])
			if err != nil {
				err.Line = line
				return nil, err
			}
			mesh.Positions = append(mesh.Positions, p)
		case "f":
			idx, err := parseFace(fields[1:], len(mesh.Positions))
			if err != nil {
				err.Line = line
				return nil, err
			}
			for i := 1; i+1 < len(idx); i++ {
				mesh.Faces = append(mesh.Faces, [3]int{idx[0], idx[i], idx[i+1]})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	return mesh, nil
}

// parseVertex reads "x y z". Anything after z, such as a w or an "r g b"
// vertex color, is ignored.
func parseVertex(args []string) (math3d.Vec3, *ParseError) {
	if len(args) < 3 {
		return math3d.Vec3{}, &ParseError{Msg: fmt.Sprintf("vertex needs 3 coordinates, got %d", len(args))}
	}
	var c [3]float32
	for i := range c {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return math3d.Vec3{}, &ParseError{Msg: fmt.Sprintf("bad coordinate %q", args[i]), Err: err}
		}
		c[i] = float32(f)
	}
	return math3d.V3(c[0], c[1], c[2]), nil
}

// parseFace resolves each "v", "v/vt", "v//vn" or "v/vt/vn" reference to a
// 0-based vertex index.
func parseFace(args []string, nverts int) ([]int, *ParseError) {
	if len(args) < 3 {
		return nil, &ParseError{Msg: fmt.Sprintf("face needs at least 3 vertices, got %d", len(args))}
	}
	idx := make([]int, len(args))
	for i, a := range args {
		ref, _, _ := strings.Cut(a, "/")
		n, err := strconv.Atoi(ref)
		if err != nil {
			return nil, &ParseError{Msg: fmt.Sprintf("bad vertex index %q", ref), Err: err}
		}
		switch {
		case n == 0:
			return nil, &ParseError{Msg: "vertex index 0 is invalid, indices start at 1"}
		case n > 0:
			n--
		default:
			n += nverts
		}
		if n < 0 || n >= nverts {
			return nil, &ParseError{Msg: fmt.Sprintf("vertex index %s out of range (have %d vertices)", ref, nverts)}
		}
		idx[i] = n
	}
	return idx, nil
}
