package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/iburimskiy/ambient-particles/internal/ambient"
	"github.com/iburimskiy/ambient-particles/internal/theme"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List themes and intensity presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			styled := term.IsTerminal(int(os.Stdout.Fd()))
			return printThemes(cmd.OutOrStdout(), styled)
		},
	}
}

var themeNameStyle = lipgloss.NewStyle().Bold(true).Width(10)

func printThemes(w io.Writer, styled bool) error {
	for _, name := range theme.Names() {
		palette, _ := theme.Resolve(name, theme.Medium, ambient.DefaultPalette, nil)
		label := string(name)
		if name == theme.House {
			label += "*"
		}
		if styled {
			if _, err := fmt.Fprintf(w, "%s %s\n", themeNameStyle.Render(label), swatches(palette)); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%-10s %s\n", label, strings.Join(palette, " ")); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "* house uses house_colors when set, otherwise the palette"); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%-10s %6s %5s %8s\n", "intensity", "speed", "size", "opacity"); err != nil {
		return err
	}
	for _, level := range theme.Intensities() {
		m := theme.ResolveMotion(level)
		if _, err := fmt.Fprintf(w, "%-10s %6.1f %5.0f %8.1f\n", level, m.Speed, m.Size, m.Opacity); err != nil {
			return err
		}
	}
	return nil
}

func swatches(palette theme.Palette) string {
	parts := make([]string, 0, len(palette))
	for _, hex := range palette {
		parts = append(parts, lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("   "))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
