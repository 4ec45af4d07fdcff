package cli

import (
	"fmt"
	"io"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordnet/pkg/wordnet"
)

// nounsCommand lists, counts or interactively browses the nouns.
func (c *CLI) nounsCommand() *cobra.Command {
	var count, interactive bool

	cmd := &cobra.Command{
		Use:   "nouns",
		Short: "List the nouns of the lexicon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wn, err := c.loadLexicon(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if count {
				fmt.Fprintln(out, wn.NounCount())
				return nil
			}

			nouns := slices.Sorted(wn.Nouns())
			if !interactive {
				for _, n := range nouns {
					fmt.Fprintln(out, n)
				}
				return nil
			}

			final, err := tea.NewProgram(NewNounListModel(nouns), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if sel := final.(NounListModel).Selected; sel != "" {
				return printSynsets(out, wn, sel)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&count, "count", "c", false, "print only the number of nouns")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick a noun and show its synsets")
	return cmd
}

// printSynsets prints every synset containing noun with its gloss.
func printSynsets(w io.Writer, wn *wordnet.WordNet, noun string) error {
	ids, err := wn.Synsets(noun)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, StyleTitle.Render(noun))
	for _, id := range ids {
		text, err := wn.Synset(id)
		if err != nil {
			return err
		}
		gloss, err := wn.Gloss(id)
		if err != nil {
			return err
		}
		printKeyValue(w, fmt.Sprintf("%d", id), text)
		if gloss != "" {
			printDetail(w, "%s", gloss)
		}
	}
	return nil
}
