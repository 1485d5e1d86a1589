package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/ambient-particles/internal/term"
)

func newTermCmd(a *app) *cobra.Command {
	var fps int

	cmd := &cobra.Command{
		Use:   "term",
		Short: "Show the particles in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if fps > 0 {
				cfg.Terminal.FPS = fps
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return term.Run(ctx, term.Options{Config: cfg, Rand: newRand(0), Log: a.log})
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 0, "Frames per second (overrides config)")
	return cmd
}
