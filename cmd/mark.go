package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathway/internal/printer"
	"github.com/abhisek/pathway/internal/provider"
	"github.com/abhisek/pathway/internal/roadmap"
)

var markCmd = &cobra.Command{
	Use:   "mark <step-id>",
	Short: "Mark a step complete (or incomplete with --undo)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		undo, _ := cmd.Flags().GetBool("undo")
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid step id %q: must be a positive integer", args[0])
		}

		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.sess.Load(cmd.Context()); err != nil {
			return printer.Error("Could not fetch the roadmap", err.Error())
		}
		n, ok := d.sess.Board().Get(id)
		if !ok {
			return printer.Error(fmt.Sprintf("Step %d is not on the roadmap", id), "",
				"Find step ids with: pathway show <track>")
		}

		res := d.sess.SetProgress(cmd.Context(), id, !undo)
		if !res.OK() {
			return printer.Error(fmt.Sprintf("Could not save progress for %q", n.Label),
				res.Err.Error(), progressHint(res.Err))
		}

		if undo {
			printer.Success("%s marked incomplete\n", n.Label)
		} else {
			printer.Success("%s marked complete\n", n.Label)
		}
		st := d.sess.Board().Stats(n.TrackKey())
		printer.Dim("%s: %d/%d completed\n", n.TrackKey(), st.Completed, st.Total)
		return nil
	},
}

func init() {
	markCmd.Flags().Bool("undo", false, "Mark the step incomplete instead")
}

// progressHint suggests a fix for a failed write.
func progressHint(err error) string {
	var unavailable *provider.ErrUnavailable
	switch {
	case errors.As(err, &unavailable):
		return "The provider is unreachable. Is it running? Try: pathway serve"
	case provider.StatusCode(err) == 401:
		return "The session was rejected. Set provider.session_token or PATHWAY_SESSION_TOKEN."
	case errors.Is(err, roadmap.ErrNodeNotFound), provider.StatusCode(err) == 404:
		return "The provider does not know this step. Reload the roadmap and try again."
	default:
		return "Run with --log-level debug and check the log file for details."
	}
}
