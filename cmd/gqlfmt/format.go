package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/krotik/gqlfront/internal/cliutil"
	"github.com/krotik/gqlfront/parser"
	"github.com/krotik/gqlfront/printer"
)

func newFormatCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "format [paths...]",
		Short: "Print GraphQL documents in canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := cliutil.GraphQLFiles(args)
			if err != nil {
				return err
			}

			opts := parser.Options{}
			failed := 0

			for _, path := range files {
				doc, err := parseFile(path, opts)
				if err != nil {
					failed++
					continue
				}

				out := printer.Print(doc) + "\n"

				if !write {
					fmt.Print(out)
					continue
				}

				if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
					logger.Error("write failed", zap.String("file", path), zap.Error(cliutil.WrapWriteFile(path, err)))
					failed++
					continue
				}
				logger.Info("formatted", zap.String("file", path))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed to format", failed, len(files))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write result back to each file instead of stdout")
	return cmd
}
