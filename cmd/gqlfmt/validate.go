package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/krotik/gqlfront/internal/cliutil"
	"github.com/krotik/gqlfront/parser"
)

// newValidateCmd checks that its inputs are syntactically well-formed
// GraphQL documents. This is deliberately shallow: schema/type validation
// is explicitly out of scope for the language front-end (spec.md §1), so
// "valid" here means only "the parser accepted it".
func newValidateCmd() *cobra.Command {
	var maxTokens int

	cmd := &cobra.Command{
		Use:   "validate [paths...]",
		Short: "Check that GraphQL documents parse without syntax errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := cliutil.GraphQLFiles(args)
			if err != nil {
				return err
			}

			opts := parser.Options{MaxTokens: maxTokens}
			failed := 0

			for _, path := range files {
				if _, err := parseFile(path, opts); err != nil {
					fmt.Printf("%s: %v\n", path, err)
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed to parse", failed, len(files))
			}
			fmt.Printf("%d files OK\n", len(files))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "abort parsing a document after this many tokens (0 = unbounded)")
	return cmd
}
