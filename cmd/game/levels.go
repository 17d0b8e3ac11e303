package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the loaded levels",
	Long: `Shows every level found in the config source with its entity counts.

Examples:
  cyberguard levels
  cyberguard levels --config ./configs`,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	loader, err := newLoader()
	if err != nil {
		return err
	}
	levels, err := loader.LoadLevels()
	if err != nil {
		return fmt.Errorf("failed to load levels: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Levels from %s:\n\n", loader.BasePath())
	fmt.Fprintf(out, "  %-3s  %-28s  %-9s  %-7s  %-7s  %s\n", "#", "Name", "Platforms", "Enemies", "Hazards", "Items")
	fmt.Fprintf(out, "  %-3s  %-28s  %-9s  %-7s  %-7s  %s\n", "-", "----", "---------", "-------", "-------", "-----")

	for _, n := range levels.Numbers() {
		lvl, _ := levels.Lookup(n)
		platforms := len(lvl.Platforms) + len(lvl.MovingPlatforms) +
			len(lvl.FallingPlatforms) + len(lvl.DisappearingPlatforms)
		hazards := len(lvl.Spikes) + len(lvl.Chasers)
		fmt.Fprintf(out, "  %-3d  %-28s  %-9d  %-7d  %-7d  %d\n",
			n, lvl.Name, platforms, len(lvl.Enemies), hazards, len(lvl.Collectibles))
	}
	return nil
}
