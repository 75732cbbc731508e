package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"

	"mesh-generator/config"
	"mesh-generator/core"
	"mesh-generator/generator"
	"mesh-generator/internal/opengl"
	"mesh-generator/scene"
)

func newViewCmd(root *rootOptions) *cobra.Command {
	f := &meshFlags{}

	cmd := &cobra.Command{
		Use:   "view <shape|preset|mesh file>",
		Short: "Open a preview window",
		Long: "Preview a built-in shape, a supershape preset or a saved .glb, .gltf or .obj file.\n" +
			"Drag with the left mouse button to orbit, scroll to zoom, W toggles wireframe, Esc quits.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := viewSource(root.gen, f.spec, args[0])
			if err != nil {
				return err
			}
			return preview(m)
		},
	}
	fl := cmd.Flags()
	fl.IntVarP(&f.spec.Segments, "segments", "s", 0, "segment count (0 uses the shape default)")
	fl.Float32VarP(&f.spec.Radius, "radius", "r", 0, "main radius (0 uses the default)")
	fl.BoolVar(&f.spec.Flat, "flat", false, "flat shading")
	fl.BoolVar(&f.spec.Dynamic, "dynamic", false, "tessellate the teapot from its bezier patches")
	return cmd
}

// viewSource resolves arg as a mesh file, a shape or a supershape preset,
// in that order.
func viewSource(gen *generator.Generator, spec config.MeshSpec, arg string) (*scene.Mesh, error) {
	switch filepath.Ext(arg) {
	case ".glb", ".gltf", ".obj", ".GLB", ".GLTF", ".OBJ":
		return loadMesh(arg)
	}
	if _, err := generator.ParseKind(arg); err == nil {
		spec.Shape = arg
		return buildMesh(gen, spec, ".")
	}
	if _, err := generator.ParsePreset(arg); err == nil {
		spec.SuperShape = arg
		return buildMesh(gen, spec, ".")
	}
	return nil, fmt.Errorf("%q is neither a mesh file, a shape nor a preset", arg)
}

func preview(m *scene.Mesh) error {
	wc := core.DefaultWindowConfig()
	wc.Title = "meshgen - " + m.Name
	window, err := core.NewWindow(wc)
	if err != nil {
		return err
	}
	defer window.Destroy()

	r, err := opengl.NewRenderer()
	if err != nil {
		return err
	}
	defer r.Destroy()

	cam := scene.NewOrbitCamera(m.Bounds().Center(), 3, 0.8, float32(wc.Width)/float32(wc.Height))
	cam.FrameBounds(m.Bounds())

	size := m.Bounds().Size()
	gridSize := max(size.X, size.Z) * 2
	if gridSize <= 0 {
		gridSize = 2
	}
	grid := scene.CreateGrid(gridSize, 10)

	window.SetScrollCallback(func(_, yoff float64) {
		cam.Zoom(-float32(yoff) * cam.Distance * 0.1)
	})
	window.SetKeyCallback(func(key glfw.Key) {
		switch key {
		case glfw.KeyEscape:
			window.Handle.SetShouldClose(true)
		case glfw.KeyW:
			r.Wireframe = !r.Wireframe
		}
	})

	st := m.Stats()
	slog.Info("previewing", "mesh", m.Name, "surfaces", st.Surfaces,
		"vertices", st.Vertices, "triangles", st.Triangles)

	var lastX, lastY float64
	dragging := false
	background := core.Color{R: 0.12, G: 0.12, B: 0.14, A: 1}

	for !window.ShouldClose() {
		if window.IsMouseButtonPressed(glfw.MouseButtonLeft) {
			x, y := window.GetCursorPos()
			if dragging {
				cam.Orbit(-float32(x-lastX)*0.01, float32(y-lastY)*0.01)
			}
			lastX, lastY = x, y
			dragging = true
		} else {
			dragging = false
		}

		fw, fh := window.GetFramebufferSize()
		r.SetViewport(fw, fh)
		cam.UpdateAspectRatio(float32(fw), float32(fh))

		r.BeginFrame(background)
		if m.Order == scene.OrderBackground {
			r.DrawMesh(m, cam)
			r.DrawMesh(grid, cam)
		} else {
			r.DrawMesh(grid, cam)
			r.DrawMesh(m, cam)
		}

		window.SwapBuffers()
		window.PollEvents()
	}

	r.ReleaseMesh(m)
	r.ReleaseMesh(grid)
	return nil
}
