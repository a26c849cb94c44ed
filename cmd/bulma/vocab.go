package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/bulma"
	"github.com/pthm/bulma/lib/audit"
)

func newVocabCmd() *cobra.Command {
	var (
		plain bool
		width int
	)

	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "List every class token the components can emit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := bulma.Vocabulary()
			out := cmd.OutOrStdout()
			if plain {
				for _, t := range tokens {
					fmt.Fprintln(out, t)
				}
				return nil
			}
			return audit.WriteVocabulary(out, tokens, width)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "One token per line")
	cmd.Flags().IntVar(&width, "width", 100, "Terminal width for the column layout")

	return cmd
}
