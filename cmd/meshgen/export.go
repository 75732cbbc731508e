package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	meshio "mesh-generator/io"
	"mesh-generator/scene"
)

// saveMesh writes m to path, picking the format from the extension.
func saveMesh(m *scene.Mesh, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb", ".gltf":
		err = scene.SaveGLTF(m, path)
	case ".obj":
		err = meshio.SaveOBJ(path, m)
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
	if err != nil {
		return err
	}

	st := m.Stats()
	slog.Info("mesh written",
		"path", path,
		"vertices", st.Vertices,
		"triangles", st.Triangles,
		"lines", st.Lines,
	)
	return nil
}

// loadMesh reads a previously exported mesh.
func loadMesh(path string) (*scene.Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb", ".gltf":
		return scene.LoadGLTF(path)
	case ".obj":
		return meshio.LoadOBJ(path)
	}
	return nil, fmt.Errorf("unsupported mesh format %q", filepath.Ext(path))
}
