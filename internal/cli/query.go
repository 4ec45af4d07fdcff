package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordnet/pkg/sca"
)

// isNounCommand reports whether each argument is a noun.
func (c *CLI) isNounCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "isnoun WORD...",
		Short: "Check whether words are nouns",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wn, err := c.loadLexicon(cmd.Context())
			if err != nil {
				return err
			}
			for _, word := range args {
				ok, err := wn.IsNoun(word)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%t\n", word, ok)
			}
			return nil
		},
	}
}

// scaCommand prints the shortest common ancestor synset of two nouns.
func (c *CLI) scaCommand() *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "sca NOUN1 NOUN2",
		Short: "Print the shortest common ancestor of two nouns",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := nounPair(args)
			if err != nil {
				return err
			}
			wn, err := c.loadLexicon(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if !explain {
				anc, err := wn.SCA(a, b)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, anc)
				return nil
			}

			p, err := wn.Path(a, b)
			if err != nil {
				return err
			}
			if !p.Found() {
				return nil
			}
			for _, kv := range []struct {
				key string
				id  int
			}{{a, p.V}, {b, p.W}, {"ancestor", p.Ancestor}} {
				text, err := wn.Synset(kv.id)
				if err != nil {
					return err
				}
				printKeyValue(out, kv.key, fmt.Sprintf("%d %s", kv.id, text))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "show which synsets of each noun were joined")
	return cmd
}

// distanceCommand prints the distance between two nouns.
func (c *CLI) distanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "distance NOUN1 NOUN2",
		Short: "Print the semantic distance between two nouns",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := nounPair(args)
			if err != nil {
				return err
			}
			wn, err := c.loadLexicon(cmd.Context())
			if err != nil {
				return err
			}
			d, err := wn.Distance(a, b)
			if err != nil {
				return err
			}
			if d == sca.None {
				printInfo(cmd.ErrOrStderr(), "%s and %s share no ancestor", a, b)
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
}
