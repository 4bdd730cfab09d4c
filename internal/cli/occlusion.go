package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dashlayout/pkg/errors"
	"github.com/matzehuels/dashlayout/pkg/render/occlusion"
)

// Output formats of the occlusion command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPDF = "pdf"
	formatPNG = "png"

	defaultPNGScale = 2.0
)

// occlusionOpts holds the flags of the occlusion command.
type occlusionOpts struct {
	output   string // output file; "-" or empty DOT output prints to stdout
	format   string // dot, svg, pdf or png
	detailed bool   // add rectangles to node labels
	replay   bool   // run the scene's gestures first
}

// occlusionCommand creates the occlusion command that draws which items
// hide which edges.
func (c *CLI) occlusionCommand() *cobra.Command {
	opts := occlusionOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "occlusion [scene.toml]",
		Short: "Draw which items cover the edges of which siblings",
		Long: `Draw the occlusion graph of a scene: one cluster per container, one node
per item and an arrow from every item to each lower-priority sibling whose
edge lines it touches. Bold arrows mark edges that are actually hidden.

DOT output is printed to stdout unless --out is given. SVG is rendered with
Graphviz; PDF and PNG additionally need rsvg-convert.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return c.runOcclusion(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "output file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg, pdf, png")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show item rectangles in labels")
	cmd.Flags().BoolVar(&opts.replay, "replay", false, "replay the scene's gestures first")

	return cmd
}

func validateFormat(f string) error {
	switch f {
	case formatDOT, formatSVG, formatPDF, formatPNG:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (must be dot, svg, pdf or png)", f)
}

func (c *CLI) runOcclusion(ctx context.Context, out, status io.Writer, path string, opts occlusionOpts) error {
	l, _, err := c.buildScene(path, opts.replay)
	if err != nil {
		return err
	}
	graphs := occlusion.FromLayout(l)
	dot := occlusion.ToDOT(graphs, occlusion.Options{Detailed: opts.detailed})

	if opts.format == formatDOT && (opts.output == "" || opts.output == "-") {
		_, err := io.WriteString(out, dot)
		return err
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + "-occlusion." + opts.format
	}

	spinner := newSpinner(ctx, status, fmt.Sprintf("Rendering %s...", opts.format))
	spinner.Start()
	data, err := renderOcclusion(ctx, dot, opts.format)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", output)
	}
	c.Logger.Debug("occlusion graph written", "path", output, "bytes", len(data))
	printSuccess(out, "Rendered occlusion graph of %s", plural(len(graphs), "container"))
	printFile(out, output)
	return nil
}

func renderOcclusion(ctx context.Context, dot, format string) ([]byte, error) {
	switch format {
	case formatSVG:
		return occlusion.RenderSVG(ctx, dot)
	case formatPDF:
		return occlusion.RenderPDF(ctx, dot)
	case formatPNG:
		return occlusion.RenderPNG(ctx, dot, defaultPNGScale)
	default:
		return []byte(dot), nil
	}
}
