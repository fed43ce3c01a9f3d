package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/krotik/gqlfront/ast"
	"github.com/krotik/gqlfront/internal/cliutil"
	"github.com/krotik/gqlfront/parser"
	"github.com/krotik/gqlfront/printer"
	"github.com/krotik/gqlfront/visitor"
)

// newASTCmd dumps an indented Kind tree for each document, using the
// visitor package's generic walk rather than a bespoke recursive printer.
func newASTCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast [paths...]",
		Short: "Print the parsed AST shape of GraphQL documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := cliutil.GraphQLFiles(args)
			if err != nil {
				return err
			}

			failed := 0
			for _, path := range files {
				doc, err := parseFile(path, parser.Options{})
				if err != nil {
					failed++
					continue
				}
				fmt.Printf("%s\n%s\n", path, dumpTree(doc))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed to parse", failed, len(files))
			}
			return nil
		},
	}

	return cmd
}

func dumpTree(doc *ast.Document) string {
	var b strings.Builder

	v := &visitor.Visitor{
		Enter: func(node ast.Node, key interface{}, parent ast.Node, path []interface{}, ancestors []ast.Node) (visitor.Result, error) {
			depth := len(path)
			fmt.Fprintf(&b, "%s%s%s\n", strings.Repeat("  ", depth), node.Kind(), leafLabel(node))
			return visitor.Continue(), nil
		},
	}

	if _, err := visitor.Visit(doc, v); err != nil {
		return b.String()
	}
	return b.String()
}

// leafLabel renders a compact literal for childless value/name nodes, which
// dumpTree appends to that node's own Kind line.
func leafLabel(node ast.Node) string {
	switch node.(type) {
	case *ast.Name, *ast.IntValue, *ast.FloatValue, *ast.StringValue,
		*ast.BooleanValue, *ast.NullValue, *ast.EnumValue:
		return " " + printer.Print(node)
	default:
		return ""
	}
}
