// Command soundfield plays short sounds positioned at the eight compass
// points around the listener, driven from a terminal UI or a MIDI pad.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	soundfield "github.com/shaban/soundfield"
	"github.com/shaban/soundfield/assets"
	"github.com/shaban/soundfield/internal/midictl"
	"github.com/shaban/soundfield/internal/ui"
	"github.com/shaban/soundfield/session"
)

var (
	flagAssets   string
	flagSound    string
	flagDistance float64
	flagMIDI     bool
	flagMIDIPort string
)

var rootCmd = &cobra.Command{
	Use:   "soundfield",
	Short: "Spatialized compass audio demo",
	Long: `Soundfield builds a spatial render graph on the system output device and
plays a chosen sound at any of the eight compass points around the listener.
Directions are triggered from the terminal (keys 1-8 or n/e/s/w) or, with
--midi, from eight consecutive notes on a MIDI input.`,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&flagAssets, "assets", "sounds", "directory scanned for playable audio files")
	rootCmd.Flags().StringVar(&flagSound, "sound", "", "asset name to play (first scanned asset when empty)")
	rootCmd.Flags().Float64Var(&flagDistance, "distance", 1.0, "source distance from the listener")
	rootCmd.Flags().BoolVar(&flagMIDI, "midi", false, "trigger compass points from MIDI note input")
	rootCmd.Flags().StringVar(&flagMIDIPort, "midi-port", "", "MIDI input port name (first available when empty)")
}

func run(cmd *cobra.Command, args []string) error {
	// Degraded-path errors go to stderr; stdout belongs to the TUI.
	handler := soundfield.NewLoggingErrorHandler(nil, func(err error) {
		fmt.Fprintln(os.Stderr, "soundfield:", err)
	})

	sess := session.Configure(handler)
	defer sess.Shutdown()
	if !sess.Spatial {
		fmt.Fprintf(cmd.ErrOrStderr(), "output device %q is not spatial-capable, panning may be degraded\n", sess.DeviceName)
	}

	catalog, err := assets.Scan(flagAssets, func(path string, err error) {
		fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: %v\n", path, err)
	})
	if err != nil {
		return fmt.Errorf("scanning assets: %w", err)
	}
	if catalog.Len() == 0 {
		return fmt.Errorf("no playable audio files in %s", flagAssets)
	}

	sound := flagSound
	if sound == "" {
		sound = catalog.Names()[0]
	} else if _, err := catalog.Lookup(sound); err != nil {
		return err
	}

	graph, err := soundfield.BuildGraph(soundfield.DefaultGraphSpec())
	if err != nil {
		return fmt.Errorf("building render graph: %w", err)
	}
	defer graph.Close()

	manager := soundfield.NewManager(graph, catalog, handler)
	defer manager.Close()

	if flagMIDI {
		trigger, err := midictl.Listen(flagMIDIPort, midictl.DefaultBaseNote, manager, sound, flagDistance, handler)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "midi input disabled: %v\n", err)
		} else {
			defer trigger.Close()
		}
	}

	program := tea.NewProgram(ui.New(manager, sound, flagDistance), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
