package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dashlayout/pkg/errors"
	"github.com/matzehuels/dashlayout/pkg/geom"
	"github.com/matzehuels/dashlayout/pkg/layout"
	"github.com/matzehuels/dashlayout/pkg/scene"
)

// simulateOpts holds the flags of the simulate command.
type simulateOpts struct {
	output string // snapshot TOML path
	json   bool   // print steps and snapshot as JSON
	steps  bool   // print every preview step, not only gesture ends
}

// simulateReport is the JSON form of a simulation.
type simulateReport struct {
	Steps []scene.Step `json:"steps"`
	Scene *scene.Scene `json:"scene"`
}

// simulateCommand creates the simulate command that replays scripted gestures.
func (c *CLI) simulateCommand() *cobra.Command {
	var opts simulateOpts

	cmd := &cobra.Command{
		Use:   "simulate [scene.toml]",
		Short: "Replay a scene's gestures and print the resulting layout",
		Long: `Replay the gestures scripted in a scene file and print every step and
the final placement of every item.

Each gesture lists pointer offsets from where it started. Every move but the
last is a live preview; the last one ends the gesture and persists the
result. Use --out to save the final placement as a new scene file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSimulate(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "write the final placement as a scene file")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print steps and final scene as JSON")
	cmd.Flags().BoolVar(&opts.steps, "steps", false, "include preview steps, not only gesture ends")

	return cmd
}

func (c *CLI) runSimulate(w io.Writer, path string, opts simulateOpts) error {
	prog := newProgress(c.Logger)
	l, steps, err := c.buildScene(path, true)
	if err != nil {
		return err
	}
	snapshot := l.Snapshot()
	prog.done(fmt.Sprintf("Replayed %s", plural(countGestures(steps), "gesture")))

	if opts.output != "" {
		if err := writeScene(opts.output, snapshot); err != nil {
			return err
		}
	}

	if opts.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(simulateReport{Steps: steps, Scene: snapshot})
	}

	fmt.Fprintln(w, StyleTitle.Render("Simulation"))
	printDetail(w, "%s", path)
	printSceneStats(w, len(snapshot.Containers), countItems(snapshot), countGestures(steps))
	fmt.Fprintln(w)

	if len(steps) == 0 {
		printWarning(w, "no gestures in scene, showing the initial placement")
	} else {
		shown := steps
		if !opts.steps {
			shown = finalSteps(steps)
		}
		fmt.Fprintln(w, stepTable(shown))
	}
	fmt.Fprintln(w, placementTable(snapshot))

	if opts.output != "" {
		printSuccess(w, "Saved final placement")
		printFile(w, opts.output)
	} else {
		printNextStep(w, "Save the result", fmt.Sprintf("%s simulate %s --out result.toml", appName, path))
	}
	return nil
}

// writeScene writes sc as TOML to path.
func writeScene(path string, sc *scene.Scene) error {
	data, err := sc.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}

func stepTable(steps []scene.Step) string {
	rows := make([][]string, 0, len(steps))
	for _, s := range steps {
		rows = append(rows, []string{
			fmt.Sprint(s.Gesture + 1),
			s.Item,
			string(s.Kind),
			stepLabel(s),
			s.Result.Offset.String(),
			s.Result.Snap.String(),
			formatRect(s.Result.Rect),
			formatPercent(s.Result.Position, s.Result.Size),
			fmt.Sprint(s.Priority),
		})
	}
	return renderTable(
		[]string{"#", "Item", "Kind", "Step", "Offset", "Snap", "Rect", "Percent", "Z"},
		rows,
		func(row int) bool { return !steps[row].Result.Snap.IsZero() },
	)
}

func placementTable(sc *scene.Scene) string {
	var rows [][]string
	for _, c := range sc.Containers {
		bounds := geom.Rect(0, 0, c.Width, c.Height)
		for _, it := range c.Items {
			r := it.Bounds()
			rows = append(rows, []string{
				c.Name,
				it.Name,
				formatRect(r),
				formatPercent(percentOf(bounds, r)),
				fmt.Sprint(it.Priority),
			})
		}
	}
	return renderTable([]string{"Container", "Item", "Rect", "Percent", "Z"}, rows, nil)
}

func stepLabel(s scene.Step) string {
	switch {
	case s.Kind == scene.KindActivate:
		return "raise"
	case s.Final:
		return "end"
	default:
		return fmt.Sprintf("move %d", s.Move+1)
	}
}

// finalSteps keeps the steps that ended a gesture.
func finalSteps(steps []scene.Step) []scene.Step {
	var out []scene.Step
	for _, s := range steps {
		if s.Final {
			out = append(out, s)
		}
	}
	return out
}

func countGestures(steps []scene.Step) int {
	return len(finalSteps(steps))
}

func countItems(sc *scene.Scene) int {
	n := 0
	for _, c := range sc.Containers {
		n += len(c.Items)
	}
	return n
}

func formatRect(r geom.Rectangle) string {
	return fmt.Sprintf("%g,%g %g×%g", r.Left(), r.Top(), r.Width(), r.Height())
}

func formatPercent(p geom.Point, s geom.Size) string {
	return fmt.Sprintf("%g%%,%g%% %g%%×%g%%", p.X, p.Y, s.Width, s.Height)
}

// percentOf returns r's position and size in percent of container.
func percentOf(container, r geom.Rectangle) (geom.Point, geom.Size) {
	return layout.PercentageCoordinates(container, r.TopLeft), layout.PercentageSize(container, r.Size())
}
