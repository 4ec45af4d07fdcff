package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	graphio "github.com/matzehuels/wordnet/pkg/io"
	"github.com/matzehuels/wordnet/pkg/sca"
)

// ancestorCommand answers vertex-pair queries over a digraph file.
func (c *CLI) ancestorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ancestor DIGRAPH",
		Short: "Answer shortest-common-ancestor queries over a digraph",
		Long: `Reads a digraph in text format (vertex count, edge count, then one "v w"
pair per edge) from DIGRAPH, then reads "v w" vertex pairs from standard
input and prints the length of their shortest ancestral path and its
ancestor. Both are -1 when the vertices share no ancestor.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			g, err := graphio.ImportDigraph(args[0])
			if err != nil {
				return err
			}
			logger.Debug("read digraph", "vertices", g.V(), "edges", g.E())

			engine, err := sca.New(g)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return graphio.ReadPairs(cmd.Context(), cmd.InOrStdin(), func(v, w int) error {
				length, err := engine.Length(v, w)
				if err != nil {
					return err
				}
				ancestor, err := engine.Ancestor(v, w)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "length = %d, ancestor = %d\n", length, ancestor)
				return nil
			})
		},
	}
}
