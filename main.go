package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/ambient-particles/internal/config"
	"github.com/iburimskiy/ambient-particles/internal/logger"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logJSON    bool

	count     int
	theme     string
	intensity string
}

type app struct {
	flags rootFlags
	log   *logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "ambient-particles",
		Short:         "SpellAcademia ambient particle renderer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logger.Options{
				Level:         a.flags.logLevel,
				HumanReadable: !a.flags.logJSON,
				Writer:        cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			a.log = log
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.flags.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&a.flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.BoolVar(&a.flags.logJSON, "log-json", false, "Write logs as JSON")
	pf.IntVarP(&a.flags.count, "count", "n", 0, "Number of particles (overrides config)")
	pf.StringVarP(&a.flags.theme, "theme", "t", "", "Theme: golden, mystical, dark, rainbow, house")
	pf.StringVarP(&a.flags.intensity, "intensity", "i", "", "Intensity: light, medium, heavy")

	windowCmd := newWindowCmd(a)
	cmd.RunE = windowCmd.RunE
	cmd.Flags().AddFlagSet(windowCmd.Flags())

	cmd.AddCommand(windowCmd)
	cmd.AddCommand(newTermCmd(a))
	cmd.AddCommand(newRenderCmd(a))
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig reads the config file and applies command-line overrides.
func (a *app) loadConfig() (config.Config, error) {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if a.flags.count != 0 {
		cfg.Particles.Count = a.flags.count
	}
	if a.flags.theme != "" {
		cfg.Particles.Theme = a.flags.theme
	}
	if a.flags.intensity != "" {
		cfg.Particles.Intensity = a.flags.intensity
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
