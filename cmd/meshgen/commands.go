package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mesh-generator/config"
	"mesh-generator/generator"
	"mesh-generator/scene"
)

func newShapesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List built-in shapes and supershape presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SHAPE\tSEGMENTS\tSHADING")
			for _, k := range generator.Kinds() {
				shading := "smooth"
				if k.ForcesFlatShading() {
					shading = "flat"
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", k, k.DefaultSegments(), shading)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "SUPERSHAPE PRESET")
			for _, p := range generator.Presets() {
				fmt.Fprintln(w, p)
			}
			return w.Flush()
		},
	}
}

// meshFlags are the construction flags shared by the single-mesh commands.
type meshFlags struct {
	spec   config.MeshSpec
	output string
}

func (f *meshFlags) register(cmd *cobra.Command, withShapeFlags bool) {
	fl := cmd.Flags()
	fl.StringVarP(&f.output, "output", "o", "", "output file (.glb, .gltf or .obj)")
	fl.IntVarP(&f.spec.Segments, "segments", "s", 0, "segment count (0 uses the shape default)")
	fl.BoolVar(&f.spec.Flat, "flat", false, "flat shading")
	_ = cmd.MarkFlagRequired("output")
	if !withShapeFlags {
		return
	}
	fl.Float32VarP(&f.spec.Radius, "radius", "r", 0, "main radius (0 uses the default)")
	fl.Float32Var(&f.spec.OuterRadius, "outer", 0, "secondary radius for torus, pipe and disk")
	fl.BoolVar(&f.spec.NoCap, "no-cap", false, "leave open ends uncapped")
	fl.BoolVar(&f.spec.Dynamic, "dynamic", false, "tessellate the teapot from its bezier patches")
	fl.Float32Var(&f.spec.RotationDegree, "rotation-degree", 0, "spiral sweep in degrees")
	fl.Float32Var(&f.spec.RotationDistance, "rotation-distance", 0, "spiral rise per sweep")
}

// run validates the flags and writes the resulting mesh.
func (f *meshFlags) run(gen *generator.Generator, baseDir string) error {
	f.spec.Format = formatOf(f.output)
	if err := f.spec.Validate(); err != nil {
		return err
	}
	m, err := buildMesh(gen, f.spec, baseDir)
	if err != nil {
		return err
	}
	return saveMesh(m, f.output)
}

func formatOf(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return ""
	}
	return strings.ToLower(ext[1:])
}

func newGenCmd(root *rootOptions) *cobra.Command {
	f := &meshFlags{}
	var turn []float32

	cmd := &cobra.Command{
		Use:   "gen <shape>",
		Short: "Generate a built-in shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.spec.Shape = args[0]
			f.spec.Name = args[0]
			if len(turn) != 0 && len(turn) != 3 {
				return fmt.Errorf("--turn takes three angles, got %d", len(turn))
			}
			copy(f.spec.Turn[:], turn)
			return f.run(root.gen, ".")
		},
	}
	f.register(cmd, true)
	cmd.Flags().Float32SliceVar(&turn, "turn", nil, "euler rotation in degrees applied after generation (x,y,z)")
	return cmd
}

func newSuperShapeCmd(root *rootOptions) *cobra.Command {
	f := &meshFlags{}

	cmd := &cobra.Command{
		Use:   "supershape <preset>",
		Short: "Generate a supershape from a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.spec.SuperShape = args[0]
			f.spec.Name = args[0]
			return f.run(root.gen, ".")
		},
	}
	f.register(cmd, false)
	cmd.Flags().Uint64Var(&f.spec.Seed, "seed", 0, "random seed for the random preset (0 picks one)")
	return cmd
}

func newHeightFieldCmd(root *rootOptions) *cobra.Command {
	f := &meshFlags{}

	cmd := &cobra.Command{
		Use:   "heightfield <image>",
		Short: "Generate a terrain grid from a height map image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.spec.HeightMap = args[0]
			f.spec.Name = "heightfield"
			return f.run(root.gen, ".")
		},
	}
	f.register(cmd, false)
	return cmd
}

func newSkyBoxCmd(root *rootOptions) *cobra.Command {
	var (
		radius float32
		output string
	)

	cmd := &cobra.Command{
		Use:   "skybox <front> <back> <top> <bottom> <right> <left>",
		Short: "Build a textured sky box from six images",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			var textures [6]*scene.Texture
			for i, path := range args {
				tex, err := scene.LoadTexture(path)
				if err != nil {
					return err
				}
				textures[i] = tex
			}
			return saveMesh(root.gen.SkyBox(textures, radius), output)
		},
	}
	cmd.Flags().Float32VarP(&radius, "radius", "r", 50, "half edge length of the box")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.glb, .gltf or .obj)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newBatchCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <job.toml|job.yaml|job.json>",
		Short: "Generate every mesh listed in a job file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flag("log-level").Changed {
				lvl, _ := job.Level()
				setupLogging(lvl)
				root.gen = generator.New()
			}
			return runBatch(cmd.Context(), root.gen, job, filepath.Dir(args[0]))
		},
	}
}
