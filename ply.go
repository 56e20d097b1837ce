package goslice3d

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// ASCII PLY input/output. Texture coordinates travel as the per-vertex s/t
// (or u/v) properties; normals as nx/ny/nz. Faces with more than three
// vertices are fan-triangulated on load.

func LoadMeshFromPLYFile(fileName string) (*TriangleMesh, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open PLY file %s: %w", fileName, err)
	}
	defer file.Close()

	mesh, err := LoadMeshFromPLY(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing PLY file %s: %w", fileName, err)
	}
	return mesh, nil
}

func LoadMeshFromPLY(reader io.Reader) (*TriangleMesh, error) {
	scanner := bufio.NewScanner(reader)

	var vertexCount, faceCount int
	var vertexProps []string
	currentElement := ""

	// Parse the header, remembering the vertex property order.
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "element":
			if len(parts) == 3 {
				currentElement = parts[1]
				if parts[1] == "vertex" {
					vertexCount, _ = strconv.Atoi(parts[2])
				} else if parts[1] == "face" {
					faceCount, _ = strconv.Atoi(parts[2])
				}
			}
		case "property":
			if currentElement == "vertex" && len(parts) >= 3 && parts[1] != "list" {
				vertexProps = append(vertexProps, parts[len(parts)-1])
			}
		case "end_header":
			goto endHeaderLoop
		}
	}
endHeaderLoop:

	propIndex := func(names ...string) int {
		for i, p := range vertexProps {
			for _, n := range names {
				if p == n {
					return i
				}
			}
		}
		return -1
	}
	xi, yi, zi := propIndex("x"), propIndex("y"), propIndex("z")
	if xi < 0 || yi < 0 || zi < 0 {
		return nil, fmt.Errorf("PLY vertex element is missing x/y/z properties")
	}
	si, ti := propIndex("s", "u"), propIndex("t", "v")
	nxi, nyi, nzi := propIndex("nx"), propIndex("ny"), propIndex("nz")
	hasUV := si >= 0 && ti >= 0
	hasNormal := nxi >= 0 && nyi >= 0 && nzi >= 0

	mesh := &TriangleMesh{
		Vertices: make([]mgl64.Vec3, 0, vertexCount),
		UVs:      make([]mgl64.Vec2, 0, vertexCount),
	}
	if hasNormal {
		mesh.Normals = make([]mgl64.Vec3, 0, vertexCount)
	}

	for i := 0; i < vertexCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected end of file while reading vertices")
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) < len(vertexProps) {
			return nil, fmt.Errorf("invalid vertex data on line %d", i)
		}
		vals := make([]float64, len(vertexProps))
		for c := range vals {
			v, err := strconv.ParseFloat(parts[c], 64)
			if err != nil {
				return nil, fmt.Errorf("could not parse vertex value '%s': %w", parts[c], err)
			}
			vals[c] = v
		}

		mesh.Vertices = append(mesh.Vertices, mgl64.Vec3{vals[xi], vals[yi], vals[zi]})
		if hasUV {
			mesh.UVs = append(mesh.UVs, mgl64.Vec2{vals[si], vals[ti]})
		} else {
			mesh.UVs = append(mesh.UVs, mgl64.Vec2{})
		}
		if hasNormal {
			mesh.Normals = append(mesh.Normals, mgl64.Vec3{vals[nxi], vals[nyi], vals[nzi]})
		}
	}

	for i := 0; i < faceCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected end of file while reading faces")
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			return nil, fmt.Errorf("invalid face data on line %d", i)
		}
		numFaceVerts, _ := strconv.Atoi(parts[0])
		if numFaceVerts < 3 || len(parts) < numFaceVerts+1 {
			return nil, fmt.Errorf("invalid face data on line %d", i)
		}

		indices := make([]int, numFaceVerts)
		for j := 0; j < numFaceVerts; j++ {
			idx, err := strconv.Atoi(parts[j+1])
			if err != nil || idx < 0 || idx >= len(mesh.Vertices) {
				return nil, fmt.Errorf("invalid vertex index '%s' on face %d", parts[j+1], i)
			}
			indices[j] = idx
		}
		for j := 1; j < numFaceVerts-1; j++ {
			mesh.Indices = append(mesh.Indices, indices[0], indices[j], indices[j+1])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from PLY source: %w", err)
	}

	if !hasNormal {
		RecomputeSmoothNormals(mesh)
	}
	return mesh, nil
}

func SaveMeshToPLYFile(mesh *TriangleMesh, fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create PLY file %s: %w", fileName, err)
	}
	defer file.Close()

	if err := WriteMeshToPLY(file, mesh); err != nil {
		return fmt.Errorf("error writing PLY file %s: %w", fileName, err)
	}
	return nil
}

func WriteMeshToPLY(w io.Writer, mesh *TriangleMesh) error {
	writer := bufio.NewWriter(w)

	hasNormal := len(mesh.Normals) == len(mesh.Vertices)

	_, _ = fmt.Fprintln(writer, "ply")
	_, _ = fmt.Fprintln(writer, "format ascii 1.0")
	_, _ = fmt.Fprintln(writer, "comment Generated by goslice3d")
	_, _ = fmt.Fprintf(writer, "element vertex %d\n", len(mesh.Vertices))
	_, _ = fmt.Fprintln(writer, "property float x")
	_, _ = fmt.Fprintln(writer, "property float y")
	_, _ = fmt.Fprintln(writer, "property float z")
	if hasNormal {
		_, _ = fmt.Fprintln(writer, "property float nx")
		_, _ = fmt.Fprintln(writer, "property float ny")
		_, _ = fmt.Fprintln(writer, "property float nz")
	}
	_, _ = fmt.Fprintln(writer, "property float s")
	_, _ = fmt.Fprintln(writer, "property float t")
	_, _ = fmt.Fprintf(writer, "element face %d\n", mesh.TriangleCount())
	_, _ = fmt.Fprintln(writer, "property list uchar int vertex_indices")
	_, _ = fmt.Fprintln(writer, "end_header")

	for i, v := range mesh.Vertices {
		_, _ = fmt.Fprintf(writer, "%g %g %g", v[0], v[1], v[2])
		if hasNormal {
			n := mesh.Normals[i]
			_, _ = fmt.Fprintf(writer, " %g %g %g", n[0], n[1], n[2])
		}
		uv := mgl64.Vec2{}
		if i < len(mesh.UVs) {
			uv = mesh.UVs[i]
		}
		_, _ = fmt.Fprintf(writer, " %g %g\n", uv[0], uv[1])
	}

	for i := 0; i < mesh.TriangleCount(); i++ {
		_, _ = fmt.Fprintf(writer, "3 %d %d %d\n",
			mesh.Indices[i*3], mesh.Indices[i*3+1], mesh.Indices[i*3+2])
	}

	return writer.Flush()
}
