package obj

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Mesh is the result of loading an obj file: geometry expanded per face
// corner, ready for GPU upload. Positions, Normals and Indices are always
// the same length, and Indices is always the identity sequence 0..N-1 -
// corners are duplicated rather than welded, so every triangle owns its
// three slots. Consumers that want shared vertices need a different loader.
// A Mesh is never mutated after Load returns and is safe for concurrent
// read-only use.
type Mesh struct {
	Positions [][3]float32 `json:"positions"`
	Normals   [][3]float32 `json:"normals"`
	Indices   []uint32     `json:"indices"`
}

// ParseError describes a malformed obj record. Line is 1-based, Field is
// the offending token.
type ParseError struct {
	Line   int
	Field  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("obj parse error on line %v: %s (%q)", e.Line, e.Reason, e.Field)
}

// Load reads an obj mesh from path. Only "v", "vn" and "f" records are
// parsed, everything else (comments, "vt", "g", "usemtl", ...) is skipped.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open mesh %q", path)
	}
	defer f.Close()
	return LoadFromReader(f)
}

type corner struct {
	position [3]float32
	normal   [3]float32
}

// LoadFromReader parses an obj mesh from r in a single pass.
func LoadFromReader(r io.Reader) (*Mesh, error) {
	var rawVertices, rawNormals [][3]float32
	mesh := &Mesh{}

	scanner := bufio.NewScanner(r)
	// a face line may carry arbitrarily many corners, do not let the
	// default 64KB token limit fail the load
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVec3(line, fields[1:])
			if err != nil {
				return nil, err
			}
			rawVertices = append(rawVertices, v)
		case "vn":
			vn, err := parseVec3(line, fields[1:])
			if err != nil {
				return nil, err
			}
			rawNormals = append(rawNormals, vn)
		case "f":
			corners := make([]corner, len(fields)-1)
			for i, token := range fields[1:] {
				c, err := parseCorner(line, token, rawVertices, rawNormals)
				if err != nil {
					return nil, err
				}
				corners[i] = c
			}
			if len(corners) < 3 {
				return nil, &ParseError{Line: line, Field: fields[0],
					Reason: fmt.Sprintf("face with %v corners", len(corners))}
			}
			// Fan triangulation from the first corner. Faces are assumed
			// convex, winding order is preserved.
			for i := 1; i+1 < len(corners); i++ {
				mesh.appendTriangle(corners[0], corners[i], corners[i+1])
			}
		default:
			// comment or unsupported record type
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "Failed to read mesh")
	}

	mesh.Indices = make([]uint32, len(mesh.Positions))
	for i := range mesh.Indices {
		mesh.Indices[i] = uint32(i)
	}
	return mesh, nil
}

func (m *Mesh) appendTriangle(a, b, c corner) {
	m.Positions = append(m.Positions, a.position, b.position, c.position)
	m.Normals = append(m.Normals, a.normal, b.normal, c.normal)
}

func parseVec3(line int, fields []string) ([3]float32, error) {
	var v [3]float32
	if len(fields) < 3 {
		return v, &ParseError{Line: line, Field: strings.Join(fields, " "),
			Reason: fmt.Sprintf("expected 3 components, got %v", len(fields))}
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return v, &ParseError{Line: line, Field: fields[i], Reason: "invalid float"}
		}
		v[i] = float32(f)
	}
	return v, nil
}

// parseCorner resolves one "vertex/texture/normal" face token. The first
// slash-delimited field is the vertex index and the LAST field is the
// normal index, so the two-field "vertex/texcoord" form resolves its
// texcoord as a normal. The tool this loader replaces behaved the same
// way, and its output is the reference.
func parseCorner(line int, token string, vertices, normals [][3]float32) (corner, error) {
	parts := strings.Split(token, "/")

	vi, err := strconv.Atoi(parts[0])
	if err != nil {
		return corner{}, &ParseError{Line: line, Field: token, Reason: "invalid vertex index"}
	}
	ni, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return corner{}, &ParseError{Line: line, Field: token, Reason: "invalid normal index"}
	}

	if vi < 1 || vi > len(vertices) {
		return corner{}, &ParseError{Line: line, Field: token,
			Reason: fmt.Sprintf("vertex index %v out of range [1..%v]", vi, len(vertices))}
	}
	if ni < 1 || ni > len(normals) {
		return corner{}, &ParseError{Line: line, Field: token,
			Reason: fmt.Sprintf("normal index %v out of range [1..%v]", ni, len(normals))}
	}
	return corner{position: vertices[vi-1], normal: normals[ni-1]}, nil
}
