package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// statsCommand prints the size and shape of the lexicon.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print lexicon size and check that the taxonomy is a rooted DAG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wn, err := c.loadLexicon(cmd.Context())
			if err != nil {
				return err
			}
			g := wn.Graph()
			out := cmd.OutOrStdout()

			printKeyValue(out, "synsets", strconv.Itoa(wn.SynsetCount()))
			printKeyValue(out, "nouns", strconv.Itoa(wn.NounCount()))
			printKeyValue(out, "hypernyms", strconv.Itoa(g.E()))

			roots := g.Roots()
			names := make([]string, 0, len(roots))
			for _, r := range roots {
				text, err := wn.Synset(r)
				if err != nil {
					return err
				}
				names = append(names, fmt.Sprintf("%d %s", r, text))
			}
			printKeyValue(out, "roots", strings.Join(names, "; "))

			if cycle := g.Cycle(); cycle != nil {
				printKeyValue(out, "cycle", strings.Trim(fmt.Sprint(cycle), "[]"))
			}
			printKeyValue(out, "rooted DAG", strconv.FormatBool(g.IsRootedDAG()))
			return nil
		},
	}
}
