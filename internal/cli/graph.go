package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/wordnet/pkg/errors"
	graphio "github.com/matzehuels/wordnet/pkg/io"
	"github.com/matzehuels/wordnet/pkg/render/nodelink"
)

// Output formats of the graph command, chosen by file extension.
const (
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatJSON = "json"
)

// graphCommand renders the shortest ancestral path of two nouns.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "graph NOUN1 NOUN2",
		Short: "Render the shortest ancestral path between two nouns",
		Long: `Renders the shortest ancestral path between two nouns as Graphviz DOT,
SVG or JSON. The format follows the extension of --output unless --format
is given; without --output DOT is written to standard output.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := nounPair(args)
			if err != nil {
				return err
			}
			if format == "" {
				format = formatFor(output)
			}
			if format != formatDOT && format != formatSVG && format != formatJSON {
				return errs.New(errs.ErrCodeInvalidInput, "unknown format %q (want dot, svg or json)", format)
			}

			wn, err := c.loadLexicon(cmd.Context())
			if err != nil {
				return err
			}
			p, err := wn.Path(a, b)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			switch format {
			case formatJSON:
				err = graphio.WritePathJSON(p, &buf, func(v int) string {
					s, _ := wn.Synset(v)
					return s
				})
			case formatSVG:
				var svg []byte
				svg, err = nodelink.RenderSVG(cmd.Context(), nodelink.ToDOT(p, nodelink.Options{Label: wn.Synset, Detailed: detailed}))
				buf.Write(svg)
			default:
				buf.WriteString(nodelink.ToDOT(p, nodelink.Options{Label: wn.Synset, Detailed: detailed}))
			}
			if err != nil {
				return err
			}

			if output == "" {
				_, err := io.Copy(cmd.OutOrStdout(), &buf)
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return errs.Wrap(errs.ErrCodeInternal, err, "write %s", output)
			}
			printSuccess(cmd.ErrOrStderr(), "Rendered path of length %d", p.Length)
			printFile(cmd.ErrOrStderr(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.dot, .svg or .json)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: dot, svg or json")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "prefix labels with synset ids")
	return cmd
}

// formatFor picks the output format from a file extension, defaulting to DOT.
func formatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return formatSVG
	case ".json":
		return formatJSON
	default:
		return formatDOT
	}
}
