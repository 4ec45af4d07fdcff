package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/wordnet/pkg/errors"
	"github.com/matzehuels/wordnet/pkg/outcast"
)

// outcastCommand finds the outcast of each input list.
func (c *CLI) outcastCommand() *cobra.Command {
	var scores bool

	cmd := &cobra.Command{
		Use:   "outcast [FILE...]",
		Short: "Find the noun least related to the others",
		Long: `Reads whitespace-separated nouns from each FILE, or from standard input
when no file is given, and prints the list with the outcast marked as *noun*.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := readLists(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			wn, err := c.loadLexicon(cmd.Context())
			if err != nil {
				return err
			}
			o, err := outcast.New(wn, outcast.WithParallelism(c.cfg.Outcast.Parallelism))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, l := range lists {
				res, err := o.Rank(cmd.Context(), l.nouns)
				if err != nil {
					return errs.Wrap(errs.GetCode(err), err, "%s", l.name)
				}
				if len(lists) > 1 {
					fmt.Fprintln(out, StyleDim.Render(l.name+":"))
				}
				fmt.Fprintln(out, markOutcast(l.nouns, res.Outcast))
				if scores {
					sums := make([]int, len(res.Scores))
					for i, s := range res.Scores {
						sums[i] = s.Sum
					}
					fmt.Fprintln(out, renderScores(l.nouns, sums, res.Index))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&scores, "scores", "s", false, "show the distance sum of every noun")
	return cmd
}

type nounList struct {
	name  string
	nouns []string
}

// readLists reads one noun list per file, or one from stdin.
func readLists(stdin io.Reader, files []string) ([]nounList, error) {
	if len(files) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "read stdin")
		}
		return []nounList{{name: "stdin", nouns: strings.Fields(string(data))}}, nil
	}

	lists := make([]nounList, 0, len(files))
	for _, f := range files {
		if err := errs.ValidatePath(f); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(f)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "read %s", f)
			}
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "read %s", f)
		}
		lists = append(lists, nounList{name: f, nouns: strings.Fields(string(data))})
	}
	return lists, nil
}

// markOutcast joins nouns with every occurrence of the outcast wrapped in
// asterisks.
func markOutcast(nouns []string, odd string) string {
	var b bytes.Buffer
	for i, n := range nouns {
		if i > 0 {
			b.WriteByte(' ')
		}
		if n == odd {
			b.WriteString(StyleHighlight.Render("*" + n + "*"))
		} else {
			b.WriteString(n)
		}
	}
	return b.String()
}
