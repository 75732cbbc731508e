// Command meshgen builds procedural meshes and writes them as glTF or OBJ.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"mesh-generator/generator"
)

type rootOptions struct {
	logLevel string
	gen      *generator.Generator
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "meshgen",
		Short:         "Procedural mesh generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(opts.logLevel)); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			setupLogging(lvl)
			opts.gen = generator.New(generator.WithLogger(slog.Default()))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newShapesCmd(),
		newGenCmd(opts),
		newSuperShapeCmd(opts),
		newHeightFieldCmd(opts),
		newSkyBoxCmd(opts),
		newBatchCmd(opts),
		newViewCmd(opts),
	)
	return cmd
}

func setupLogging(lvl slog.Level) {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "meshgen:", err)
		os.Exit(1)
	}
}
