package scene

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"mesh-generator/math"
)

// ExportGLTF converts a mesh into a glTF document holding one node and one
// glTF mesh, with a primitive and a material per non-empty surface. The
// first texture of a surface is embedded as a PNG base color map.
func ExportGLTF(m *Mesh) (*gltf.Document, error) {
	doc := gltf.NewDocument()
	mat := m.Material
	if mat == nil {
		mat = DefaultMaterial()
	}

	gm := &gltf.Mesh{Name: m.Name}
	for si, s := range m.Surfaces {
		if len(s.Vertices) == 0 {
			continue
		}

		pos := make([][3]float32, len(s.Vertices))
		nrm := make([][3]float32, len(s.Vertices))
		uvs := make([][2]float32, len(s.Vertices))
		cols := make([][4]uint8, len(s.Vertices))
		for i, v := range s.Vertices {
			pos[i] = v.Position.Array()
			nrm[i] = v.Normal.Array()
			uvs[i] = v.UV.Array()
			cols[i] = v.Color.RGBA8()
		}

		attrs := map[string]int{
			"POSITION":   modeler.WritePosition(doc, pos),
			"TEXCOORD_0": modeler.WriteTextureCoord(doc, uvs),
			"COLOR_0":    modeler.WriteColor(doc, cols),
		}
		mode := gltf.PrimitiveTriangles
		if s.Primitive == PrimitiveLines {
			mode = gltf.PrimitiveLines
		} else {
			attrs["NORMAL"] = modeler.WriteNormal(doc, nrm)
		}

		var idx int
		if s.Format == IndexUint16 && len(s.Vertices) <= 0xFFFF {
			idx = modeler.WriteIndices(doc, s.Indices16())
		} else {
			idx = modeler.WriteIndices(doc, s.Indices)
		}

		matIdx, err := exportMaterial(doc, mat, s, fmt.Sprintf("%s_%d", m.Name, si))
		if err != nil {
			return nil, fmt.Errorf("surface %d: %w", si, err)
		}

		gm.Primitives = append(gm.Primitives, &gltf.Primitive{
			Indices:    gltf.Index(idx),
			Attributes: attrs,
			Mode:       mode,
			Material:   gltf.Index(matIdx),
		})
	}

	doc.Meshes = append(doc.Meshes, gm)
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: m.Name, Mesh: gltf.Index(0)})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc, nil
}

func exportMaterial(doc *gltf.Document, mat *Material, s *Surface, name string) (int, error) {
	d := mat.Diffuse
	gmat := &gltf.Material{
		Name: name,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{float64(d.R), float64(d.G), float64(d.B), float64(d.A)},
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(1),
		},
		DoubleSided: !mat.BackfaceCulling,
	}
	if !mat.Lighting {
		// Unlit surfaces carry their color in COLOR_0; keep the factor neutral.
		gmat.PBRMetallicRoughness.BaseColorFactor = &[4]float64{1, 1, 1, 1}
	}

	if len(s.Textures) > 0 && s.Textures[0] != nil {
		tex := s.Textures[0]
		var buf bytes.Buffer
		if err := png.Encode(&buf, tex.Image()); err != nil {
			return 0, fmt.Errorf("encode texture %q: %w", tex.Name, err)
		}
		imgIdx, err := modeler.WriteImage(doc, filepath.Base(tex.Name), "image/png", &buf)
		if err != nil {
			return 0, fmt.Errorf("write texture %q: %w", tex.Name, err)
		}
		doc.Textures = append(doc.Textures, &gltf.Texture{Source: gltf.Index(imgIdx)})
		gmat.PBRMetallicRoughness.BaseColorTexture = &gltf.TextureInfo{Index: len(doc.Textures) - 1}
	}

	doc.Materials = append(doc.Materials, gmat)
	return len(doc.Materials) - 1, nil
}

// SaveGLTF writes the mesh to path. A .glb extension selects the binary
// container; anything else writes JSON with the buffer embedded.
func SaveGLTF(m *Mesh, path string) error {
	doc, err := ExportGLTF(m)
	if err != nil {
		return fmt.Errorf("gltf export %q: %w", m.Name, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		err = gltf.SaveBinary(doc, path)
	} else {
		for _, b := range doc.Buffers {
			b.EmbeddedResource()
		}
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return fmt.Errorf("gltf save %q: %w", path, err)
	}
	return nil
}

// LoadGLTF opens a .glb or .gltf file and folds every primitive of every
// glTF mesh into one Mesh, one surface per primitive. Missing normals are
// recomputed with gouraud shading.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if len(doc.Meshes) > 0 && doc.Meshes[0].Name != "" {
		name = doc.Meshes[0].Name
	}
	m := NewMesh(name)

	missingNormals := false
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			s, hasNormals, err := loadGLTFPrimitive(doc, prim)
			if err != nil {
				return nil, fmt.Errorf("gltf %q: mesh %d prim %d: %w", path, mi, pi, err)
			}
			if !hasNormals && s.Primitive == PrimitiveTriangles {
				missingNormals = true
			}
			if tex := primitiveTexture(doc, prim); tex != nil {
				s.AddTexture(tex)
			}
			m.Surfaces = append(m.Surfaces, s)
		}
	}

	m.RebuildIndexBuffer()
	if missingNormals {
		m.RecomputeNormals()
	}
	return m, nil
}

// loadGLTFPrimitive converts one glTF mesh primitive into a Surface.
func loadGLTFPrimitive(doc *gltf.Document, prim *gltf.Primitive) (*Surface, bool, error) {
	s := newSurface()
	switch prim.Mode {
	case gltf.PrimitiveTriangles:
	case gltf.PrimitiveLines:
		s.Primitive = PrimitiveLines
	default:
		return nil, false, fmt.Errorf("unsupported primitive mode %d", prim.Mode)
	}

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, false, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, false, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	for i, p := range positions {
		var uv math.Vec2
		if i < len(uvs) {
			uv = math.Vec2{X: uvs[i][0], Y: uvs[i][1]}
		}
		s.AddVertex(math.Vec3{X: p[0], Y: p[1], Z: p[2]}, uv)
		if i < len(normals) {
			n := normals[i]
			s.Vertices[i].Normal = math.Vec3{X: n[0], Y: n[1], Z: n[2]}
		}
	}

	if prim.Indices != nil {
		s.Indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, false, fmt.Errorf("indices: %w", err)
		}
	} else {
		s.Indices = make([]uint32, len(positions))
		for i := range s.Indices {
			s.Indices[i] = uint32(i)
		}
	}
	for _, idx := range s.Indices {
		if int(idx) >= len(s.Vertices) {
			return nil, false, fmt.Errorf("index %d out of range (%d vertices)", idx, len(s.Vertices))
		}
	}
	s.SetIndexOffset(uint32(len(s.Vertices)))
	return s, len(normals) == len(positions), nil
}

// primitiveTexture decodes the base color image of a primitive's material
// when it is stored inside the document. Failures are ignored.
func primitiveTexture(doc *gltf.Document, prim *gltf.Primitive) *Texture {
	if prim.Material == nil || *prim.Material >= len(doc.Materials) {
		return nil
	}
	pbr := doc.Materials[*prim.Material].PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorTexture == nil {
		return nil
	}
	ti := pbr.BaseColorTexture.Index
	if ti >= len(doc.Textures) || doc.Textures[ti].Source == nil {
		return nil
	}
	img := doc.Images[*doc.Textures[ti].Source]
	if img.BufferView == nil {
		return nil
	}
	raw, err := modeler.ReadBufferView(doc, doc.BufferViews[*img.BufferView])
	if err != nil {
		return nil
	}
	tex, err := decodeImageBytes(img.Name, raw)
	if err != nil {
		return nil
	}
	return tex
}

// decodeImageBytes decodes an encoded image into an RGBA8 Texture.
func decodeImageBytes(name string, data []byte) (*Texture, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return NewTextureFromImage(name, img), nil
}
