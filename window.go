package main

import (
	"github.com/spf13/cobra"

	"github.com/iburimskiy/ambient-particles/internal/game"
)

type windowFlags struct {
	soundtrack     string
	pickSoundtrack bool
	volume         float64
	noOverlay      bool
	width          int
	height         int
}

func newWindowCmd(a *app) *cobra.Command {
	flags := &windowFlags{}

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Show the particles in a desktop window (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if flags.soundtrack != "" {
				cfg.Soundtrack.Path = flags.soundtrack
			}
			if cmd.Flags().Changed("volume") {
				cfg.Soundtrack.Volume = flags.volume
			}
			if flags.noOverlay {
				cfg.Overlay.Enabled = false
			}
			if flags.width > 0 {
				cfg.Window.Width = flags.width
			}
			if flags.height > 0 {
				cfg.Window.Height = flags.height
			}

			a.log.WithFields(map[string]any{
				"theme":     cfg.Particles.Theme,
				"intensity": cfg.Particles.Intensity,
				"count":     cfg.Particles.Count,
			}).Info("opening window")

			return game.Run(game.Options{
				Config:         cfg,
				Rand:           newRand(0),
				Log:            a.log,
				PickSoundtrack: flags.pickSoundtrack,
			})
		},
	}

	cmd.Flags().StringVar(&flags.soundtrack, "soundtrack", "", "Loop a .wav, .mp3 or .flac file")
	cmd.Flags().BoolVar(&flags.pickSoundtrack, "pick-soundtrack", false, "Choose the soundtrack with a file dialog")
	cmd.Flags().Float64Var(&flags.volume, "volume", 0, "Soundtrack volume in halvings (0 = source level, -1 = half)")
	cmd.Flags().BoolVar(&flags.noOverlay, "no-overlay", false, "Hide the drifting decorations")
	cmd.Flags().IntVar(&flags.width, "width", 0, "Window width")
	cmd.Flags().IntVar(&flags.height, "height", 0, "Window height")

	return cmd
}
