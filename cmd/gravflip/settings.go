package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravflip/internal/config"
	"github.com/vovakirdan/gravflip/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	Long: `Show the saved settings.

Keys:
  mute      true or false
  volume    0.0 to 1.0
  frontend  tui or window
  pilot     name recorded on replays

Examples:
  gravflip settings
  gravflip settings set frontend window
  gravflip settings set volume 0.5`,
	Run: runSettings,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	Run:   runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettings(_ *cobra.Command, _ []string) {
	sm := settings.Open(config.AppName, logger)
	s := sm.Settings()

	fmt.Printf("  mute      %v\n", s.Muted)
	fmt.Printf("  volume    %.2f\n", s.Volume)
	fmt.Printf("  frontend  %s\n", s.Frontend)
	fmt.Printf("  pilot     %s\n", s.Pilot)
	if !sm.Persistent() {
		fmt.Println()
		fmt.Println("Settings storage is unavailable; these are defaults.")
	}
}

func runSettingsSet(_ *cobra.Command, args []string) {
	sm := settings.Open(config.AppName, logger)
	if err := applySetting(sm, args[0], args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := sm.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s = %s\n", args[0], args[1])
}

func applySetting(sm *settings.Manager, key, value string) error {
	switch key {
	case "mute":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("mute: %w", err)
		}
		sm.SetMuted(b)
	case "volume":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("volume: %w", err)
		}
		sm.SetVolume(v)
	case "frontend":
		return sm.SetFrontend(value)
	case "pilot":
		sm.SetPilot(value)
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}
