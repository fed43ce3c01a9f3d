package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/krotik/gqlfront/ast"
	"github.com/krotik/gqlfront/internal/cliutil"
	"github.com/krotik/gqlfront/internal/docstore"
	"github.com/krotik/gqlfront/parser"
	"github.com/krotik/gqlfront/source"
)

// optsTag renders parser.Options into a stable cache-key component; two
// invocations parsing identical bytes under different options must not
// collide in the docstore.
func optsTag(opts parser.Options) string {
	return fmt.Sprintf("%+v", opts)
}

// parseFile reads path, consulting store for an already-parsed document
// under the same options before invoking the parser. The cache key folds in
// path as well as opts: two files with byte-identical bodies still parse to
// distinct Documents, since each Document's Loc.Source.Name is the path it
// was read from.
func parseFile(path string, opts parser.Options) (*ast.Document, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, cliutil.WrapReadFile(path, err)
	}

	key := docstore.Key(string(body), path+"\x00"+optsTag(opts))
	if doc, ok := store.Get(key); ok {
		logger.Debug("cache hit", zap.String("file", path))
		return doc, nil
	}

	doc, parseErr := parser.ParseDocument(source.New(string(body), path, nil), opts)
	if parseErr != nil {
		logger.Info("parse failed", zap.String("file", path), zap.Error(parseErr))
		return nil, parseErr
	}

	store.Put(key, doc)
	logger.Debug("cache miss", zap.String("file", path))
	return doc, nil
}
