package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"mesh-generator/config"
	"mesh-generator/generator"
)

// runBatch builds the job's meshes on up to job.Workers goroutines. Each
// mesh is independent, so the first failure cancels the rest.
func runBatch(ctx context.Context, gen *generator.Generator, job *config.Job, baseDir string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(job.Workers)

	for _, spec := range job.Meshes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := buildMesh(gen, spec, baseDir)
			if err != nil {
				return fmt.Errorf("mesh %q: %w", spec.Name, err)
			}
			if err := saveMesh(m, job.OutputPath(spec)); err != nil {
				return fmt.Errorf("mesh %q: %w", spec.Name, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("batch finished",
		"meshes", len(job.Meshes),
		"workers", job.Workers,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
