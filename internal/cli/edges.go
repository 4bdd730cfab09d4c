package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dashlayout/pkg/geom"
)

// edgesCommand creates the edges command listing what an item can snap to.
func (c *CLI) edgesCommand() *cobra.Command {
	var (
		replay  bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "edges [scene.toml] [item]",
		Short: "List the sibling edges an item can snap to",
		Long: `List the visible edge segments of an item's siblings.

Edges of a sibling are cut where a sibling with a strictly higher priority
covers them. Use --replay to run the scene's gestures first.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdges(cmd.OutOrStdout(), args[0], args[1], replay, jsonOut)
		},
	}

	cmd.Flags().BoolVar(&replay, "replay", false, "replay the scene's gestures first")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print edges as JSON")

	return cmd
}

func (c *CLI) runEdges(w io.Writer, path, name string, replay, jsonOut bool) error {
	l, _, err := c.buildScene(path, replay)
	if err != nil {
		return err
	}
	e, err := l.MustLookup(name)
	if err != nil {
		return err
	}
	edges := l.Engine.VisibleEdges(e.ID)

	if jsonOut {
		if edges == nil {
			edges = []geom.Edge{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(edges)
	}

	fmt.Fprintln(w, StyleTitle.Render("Visible edges of "+name))
	printKeyValue(w, "container", e.Board.Name)
	printKeyValue(w, "rect", formatRect(e.Box.BoundingRectangle()))
	printKeyValue(w, "snap", fmt.Sprintf("%s r=%g", e.Box.SnapMode(), e.Box.SnapRadius()))
	fmt.Fprintln(w)

	if len(edges) == 0 {
		printInfo(w, "no siblings to snap to")
		return nil
	}
	rows := make([][]string, 0, len(edges))
	for _, edge := range edges {
		rows = append(rows, []string{
			edge.Side.String(),
			edge.Beginning.String(),
			edge.Ending.String(),
			edge.SnapMode.String(),
			fmt.Sprint(edge.SnapRadius),
		})
	}
	fmt.Fprintln(w, renderTable([]string{"Side", "From", "To", "Snap", "Radius"}, rows, nil))
	return nil
}
