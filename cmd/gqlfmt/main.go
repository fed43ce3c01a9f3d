/*
Command gqlfmt is the thin external collaborator spec.md §1 carves out of
the language front-end's own scope ("top-level convenience entry points"):
a cobra command tree over the parser/printer/visitor packages, the way
termfx-morfx's demo/cmd wires cobra over its own core package. It owns
process exit codes, file I/O and structured logging; none of that reaches
the core packages themselves.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/krotik/gqlfront/internal/docstore"
)

var (
	logger *zap.Logger
	store  *docstore.Store

	cacheSize int
	verbose   bool
)

func main() {
	root := &cobra.Command{
		Use:   "gqlfmt",
		Short: "Format, validate and inspect GraphQL documents",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if verbose {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}
			if err != nil {
				return err
			}

			store, err = docstore.New(cacheSize)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Sync()
		},
	}

	root.PersistentFlags().IntVar(&cacheSize, "cache-size", docstore.DefaultSize, "parsed-document cache entries kept per run")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newFormatCmd(), newValidateCmd(), newASTCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
