// Package io reads and writes meshes in Wavefront OBJ format.
package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"mesh-generator/core"
	"mesh-generator/math"
	"mesh-generator/scene"
)

// SaveOBJ writes m to path and its material to a .mtl file next to it.
func SaveOBJ(path string, m *scene.Mesh) error {
	mtlPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".mtl"

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create OBJ file: %w", err)
	}
	defer f.Close()
	if err := WriteOBJ(f, m, filepath.Base(mtlPath)); err != nil {
		return err
	}

	mf, err := os.Create(mtlPath)
	if err != nil {
		return fmt.Errorf("create MTL file: %w", err)
	}
	defer mf.Close()
	return WriteMTL(mf, m)
}

// WriteOBJ writes every surface of m as its own group. Triangle surfaces
// become faces, line surfaces become "l" records. mtllib is referenced when
// non-empty.
func WriteOBJ(out io.Writer, m *scene.Mesh, mtllib string) error {
	w := bufio.NewWriter(out)

	fmt.Fprintf(w, "# %s: %d vertices, %d triangles\n", m.Name, m.VertexCount(), m.TriangleCount())
	if mtllib != "" {
		fmt.Fprintf(w, "mtllib %s\n", mtllib)
	}
	fmt.Fprintf(w, "o %s\n", objName(m.Name))

	var base uint32
	for si, s := range m.Surfaces {
		if s.VertexCount() == 0 {
			continue
		}
		fmt.Fprintf(w, "g surface%d\n", si)
		if mtllib != "" {
			fmt.Fprintf(w, "usemtl %s\n", materialName(m))
		}
		if m.Shading == scene.ShadingFlat {
			fmt.Fprintln(w, "s off")
		} else {
			fmt.Fprintln(w, "s 1")
		}

		for _, v := range s.Vertices {
			fmt.Fprintf(w, "v %f %f %f\n", v.Position.X, v.Position.Y, v.Position.Z)
		}
		for _, v := range s.Vertices {
			fmt.Fprintf(w, "vt %f %f\n", v.UV.X, v.UV.Y)
		}

		// OBJ indices are 1-based and global across groups.
		if s.Primitive == scene.PrimitiveLines {
			for i := 0; i+1 < len(s.Indices); i += 2 {
				a, b := base+s.Indices[i]+1, base+s.Indices[i+1]+1
				fmt.Fprintf(w, "l %d/%d %d/%d\n", a, a, b, b)
			}
		} else {
			for _, v := range s.Vertices {
				fmt.Fprintf(w, "vn %f %f %f\n", v.Normal.X, v.Normal.Y, v.Normal.Z)
			}
			for i := 0; i+2 < len(s.Indices); i += 3 {
				a := base + s.Indices[i] + 1
				b := base + s.Indices[i+1] + 1
				c := base + s.Indices[i+2] + 1
				fmt.Fprintf(w, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
			}
		}
		base += uint32(s.VertexCount())
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write OBJ: %w", err)
	}
	return nil
}

// WriteMTL writes the mesh material. Unlit materials use illumination
// model 0 (color only).
func WriteMTL(out io.Writer, m *scene.Mesh) error {
	w := bufio.NewWriter(out)
	mat := m.Material
	if mat == nil {
		mat = scene.DefaultMaterial()
	}

	fmt.Fprintf(w, "newmtl %s\n", materialName(m))
	fmt.Fprintf(w, "Ka %f %f %f\n", mat.Ambient.R, mat.Ambient.G, mat.Ambient.B)
	fmt.Fprintf(w, "Kd %f %f %f\n", mat.Diffuse.R, mat.Diffuse.G, mat.Diffuse.B)
	fmt.Fprintf(w, "d %f\n", mat.Diffuse.A)
	if mat.Lighting {
		fmt.Fprintln(w, "illum 1")
	} else {
		fmt.Fprintln(w, "illum 0")
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write MTL: %w", err)
	}
	return nil
}

func materialName(m *scene.Mesh) string {
	if m.Material != nil && m.Material.Name != "" {
		return objName(m.Material.Name)
	}
	return "default"
}

// objName replaces whitespace, which OBJ statements cannot carry.
func objName(s string) string {
	if s == "" {
		return "mesh"
	}
	return strings.Join(strings.Fields(s), "_")
}

// LoadOBJ parses a Wavefront .obj file into a mesh with one surface per
// object or group. Faces are fan-triangulated. Normals are recomputed when
// the file carries none.
func LoadOBJ(path string) (*scene.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open OBJ file: %w", err)
	}
	defer f.Close()

	mesh, err := ReadOBJ(f, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if mesh.Name == "" {
		mesh.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return mesh, nil
}

// ReadOBJ parses OBJ text. Material libraries are resolved relative to dir;
// a missing library is not an error.
func ReadOBJ(r io.Reader, dir string) (*scene.Mesh, error) {
	mesh := scene.NewMesh("")

	var (
		positions []math.Vec3
		normals   []math.Vec3
		uvs       []math.Vec2
		hasNormal bool
		materials map[string]*scene.Material
	)

	var cur *scene.Surface
	vertexMap := make(map[string]uint32) // "v/vt/vn" -> vertex index in cur
	surface := func(prim scene.PrimitiveType) *scene.Surface {
		if cur == nil || (cur.VertexCount() > 0 && cur.Primitive != prim) {
			cur = mesh.CreateSurface()
			cur.Primitive = prim
			vertexMap = make(map[string]uint32)
		}
		if cur.VertexCount() == 0 {
			cur.Primitive = prim
		}
		return cur
	}
	lookup := func(s *scene.Surface, spec string) (uint32, error) {
		if idx, ok := vertexMap[spec]; ok {
			return idx, nil
		}
		v, withNormal, err := parseFaceVertex(spec, positions, normals, uvs)
		if err != nil {
			return 0, err
		}
		hasNormal = hasNormal || withNormal
		s.Vertices = append(s.Vertices, v)
		idx := uint32(len(s.Vertices) - 1)
		vertexMap[spec] = idx
		return idx, nil
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		parts := strings.Fields(text)

		switch parts[0] {
		case "v":
			p, err := parseFloats(parts[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			positions = append(positions, math.NewVec3(p[0], p[1], p[2]))
		case "vn":
			p, err := parseFloats(parts[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			normals = append(normals, math.NewVec3(p[0], p[1], p[2]))
		case "vt":
			p, err := parseFloats(parts[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			uvs = append(uvs, math.NewVec2(p[0], p[1]))
		case "f", "l":
			prim := scene.PrimitiveTriangles
			if parts[0] == "l" {
				prim = scene.PrimitiveLines
			}
			s := surface(prim)
			idx := make([]uint32, 0, len(parts)-1)
			for _, spec := range parts[1:] {
				i, err := lookup(s, spec)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				idx = append(idx, i)
			}
			if prim == scene.PrimitiveLines {
				for i := 1; i < len(idx); i++ {
					s.Indices = append(s.Indices, idx[i-1], idx[i])
				}
			} else {
				for i := 2; i < len(idx); i++ {
					s.Indices = append(s.Indices, idx[0], idx[i-1], idx[i])
				}
			}
		case "o":
			if len(parts) > 1 && mesh.Name == "" {
				mesh.Name = parts[1]
			}
		case "g":
			// New group, new surface; keep empty ones out.
			if cur != nil && cur.VertexCount() > 0 {
				cur = nil
			}
		case "s":
			if len(parts) > 1 && parts[1] == "off" {
				mesh.SetShading(scene.ShadingFlat)
			}
		case "mtllib":
			if len(parts) > 1 && dir != "" {
				mtls, err := LoadMTL(filepath.Join(dir, parts[1]))
				if err == nil {
					materials = mtls
				}
			}
		case "usemtl":
			if mat, ok := materials[strings.Join(parts[1:], " ")]; ok {
				mesh.Material = mat
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Drop a trailing empty surface left by a final "g".
	kept := mesh.Surfaces[:0]
	for _, s := range mesh.Surfaces {
		if s.VertexCount() > 0 {
			kept = append(kept, s)
		}
	}
	mesh.Surfaces = kept
	if mesh.IsEmpty() {
		return nil, fmt.Errorf("no mesh data found in OBJ file")
	}

	mesh.RebuildIndexBuffer()
	if !hasNormal {
		mesh.RecomputeNormals()
	}
	return mesh, nil
}

// LoadMTL parses a Wavefront .mtl material file.
func LoadMTL(path string) (map[string]*scene.Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	result := make(map[string]*scene.Material)
	var current *scene.Material

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 || strings.HasPrefix(parts[0], "#") {
			continue
		}

		switch parts[0] {
		case "newmtl":
			if len(parts) > 1 {
				current = scene.DefaultMaterial()
				current.Name = strings.Join(parts[1:], " ")
				result[current.Name] = current
			}
		case "Kd", "Ka":
			if current == nil {
				continue
			}
			if rgb, err := parseFloats(parts[1:], 3); err == nil {
				c := core.Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 1}
				if parts[0] == "Kd" {
					c.A = current.Diffuse.A
					current.Diffuse = c
				} else {
					current.Ambient = c
				}
			}
		case "d", "Tr":
			if current == nil {
				continue
			}
			if d, err := parseFloats(parts[1:], 1); err == nil {
				if parts[0] == "Tr" {
					d[0] = 1 - d[0]
				}
				current.Diffuse.A = d[0]
			}
		case "illum":
			if current != nil && len(parts) > 1 {
				current.Lighting = parts[1] != "0"
			}
		}
	}

	return result, scanner.Err()
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

// resolveIndex turns a 1-based or negative OBJ index into a slice index.
func resolveIndex(field string, n int) (int, error) {
	idx, err := strconv.Atoi(field)
	if err != nil {
		return 0, err
	}
	if idx < 0 {
		idx = n + idx + 1
	}
	if idx <= 0 || idx > n {
		return 0, fmt.Errorf("index %s out of range (%d entries)", field, n)
	}
	return idx - 1, nil
}

// parseFaceVertex parses an OBJ vertex reference like "v", "v/vt", "v//vn"
// or "v/vt/vn".
func parseFaceVertex(spec string, positions, normals []math.Vec3, uvs []math.Vec2) (core.Vertex, bool, error) {
	v := core.Vertex{Color: core.ColorWhite}
	parts := strings.Split(spec, "/")

	i, err := resolveIndex(parts[0], len(positions))
	if err != nil {
		return v, false, fmt.Errorf("position: %w", err)
	}
	v.Position = positions[i]

	if len(parts) >= 2 && parts[1] != "" {
		i, err := resolveIndex(parts[1], len(uvs))
		if err != nil {
			return v, false, fmt.Errorf("texcoord: %w", err)
		}
		v.UV = uvs[i]
	}

	withNormal := false
	if len(parts) >= 3 && parts[2] != "" {
		i, err := resolveIndex(parts[2], len(normals))
		if err != nil {
			return v, false, fmt.Errorf("normal: %w", err)
		}
		v.Normal = normals[i]
		withNormal = true
	}

	return v, withNormal, nil
}
