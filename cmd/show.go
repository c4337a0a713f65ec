package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathway/internal/printer"
	"github.com/abhisek/pathway/internal/roadmap"
)

var showCmd = &cobra.Command{
	Use:   "show <track>",
	Short: "Print one track as a nested list or a tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view, _ := cmd.Flags().GetString("view")
		sortBy, _ := cmd.Flags().GetString("sort")

		sortFn, err := parseSort(sortBy)
		if err != nil {
			return err
		}
		if view != "list" && view != "tree" {
			return fmt.Errorf("invalid view %q: must be list or tree", view)
		}

		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.sess.Load(cmd.Context()); err != nil {
			return printer.Error("Could not fetch the roadmap", err.Error())
		}

		track := strings.TrimSpace(args[0])
		nodes := roadmap.SortTree(d.sess.Board().Tree(track), sortFn)
		if len(nodes) == 0 {
			return printer.Error(fmt.Sprintf("No steps for track %q", track), "",
				"List the available tracks: pathway tracks")
		}

		st := d.sess.Board().Stats(track)
		printer.Heading("%s  (%d/%d)\n\n", track, st.Completed, st.Total)
		if view == "tree" {
			printTree(nodes)
		} else {
			printList(nodes)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().String("view", "list", "Layout: list or tree")
	showCmd.Flags().String("sort", "order", "Sibling order: order or unfinished")
}

func parseSort(s string) (func([]roadmap.Node) []roadmap.Node, error) {
	switch s {
	case "", "order":
		return roadmap.SortByOrder, nil
	case "unfinished":
		return roadmap.SortCompletedLast, nil
	default:
		return nil, fmt.Errorf("invalid sort %q: must be order or unfinished", s)
	}
}

func printList(nodes []roadmap.Node) {
	for _, it := range roadmap.Flatten(nodes) {
		indent := strings.Repeat("    ", it.Depth)
		if it.Completed {
			printer.Success("%s%s  [%d]  %s\n", indent, it.Label, it.ID, roadmap.StatusCompleted)
		} else {
			printer.Info("%s• %s  [%d]  → %s\n", indent, it.Label, it.ID, it.Action)
		}
		if it.Description != "" {
			printer.Dim("%s  %s\n", indent, it.Description)
		}
		if it.ShowProgress {
			printer.Dim("%s  %s %d%%\n", indent, textBar(float64(it.Percent)/100, 20), it.Percent)
		}
	}
}

func printTree(nodes []roadmap.Node) {
	for _, r := range roadmap.TreeRows(nodes) {
		printer.Dim("%s", r.Prefix)
		if r.Completed {
			printer.Success("%s  [%d]  %s\n", r.Label, r.ID, r.Status)
		} else {
			printer.Info("%s  [%d]  [ %s ]\n", r.Label, r.ID, r.Status)
		}
	}
}
