package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathway/internal/printer"
	"github.com/abhisek/pathway/internal/roadmap"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "List learning tracks with completion",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.sess.Load(cmd.Context()); err != nil {
			return printer.Error("Could not fetch the roadmap", err.Error(),
				"Check that the provider is reachable: pathway serve",
				"Set provider.base_url in config.yaml or pass --provider-url")
		}
		printTracks(d.sess.Board())
		return nil
	},
}

func printTracks(board *roadmap.Board) {
	tracks := board.Tracks()
	if len(tracks) == 0 {
		printer.Info("No tracks found.\n")
		return
	}

	printer.Heading("%-30s  %9s  %s\n", "Track", "Completed", "Progress")
	printer.Dim("%s\n", strings.Repeat("─", 64))
	for _, track := range tracks {
		st := board.Stats(track)
		name := track
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		printer.Info("%-30s  %9s  %s\n", name,
			fmt.Sprintf("%d/%d", st.Completed, st.Total), textBar(st.Percent(), 20))
	}
	t := board.Totals()
	printer.Dim("\n%d of %d steps completed\n", t.Completed, t.Total)
}

// textBar renders a plain progress bar for a 0..1 fraction.
func textBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	filled = max(0, min(filled, width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
