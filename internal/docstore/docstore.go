/*
Package docstore caches parsed ast.Document values by source text so a
single cmd/gqlfmt run that is handed the same file more than once does not
re-run the lexer and parser on unchanged input. Each run builds its own
Store and runs one subcommand, so nothing is shared between subcommands. It is deliberately dumb: callers own parsing, docstore only
remembers the last result for a given key.

Grounded on the hashicorp/golang-lru dependency declared by
roderm-graphql-go-tools's execution module go.mod; that pack never shows a
call site for it, so the cache key/size policy here is our own, built
against the library's v0.5.4 API.
*/
package docstore

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru"

	"github.com/krotik/gqlfront/ast"
	"github.com/krotik/gqlfront/internal/invariant"
)

// DefaultSize is the number of documents kept per Store when the caller
// does not pick one.
const DefaultSize = 256

// Store is an LRU cache of parsed documents keyed by a hash of their source
// text plus a caller-supplied tag (cmd/gqlfmt's tag holds the file path and
// the parse options, so the same text under two paths or two Options values
// gives different cache entries).
type Store struct {
	cache *lru.Cache
}

// New builds a Store holding at most size entries. size <= 0 uses
// DefaultSize.
func New(size int) (*Store, error) {
	if size <= 0 {
		size = DefaultSize
	}
	// lru.New only errors for size <= 0, already excluded above.
	c, err := lru.New(size)
	invariant.Ok(err)
	return &Store{cache: c}, nil
}

// Key derives a cache key from a document's body and a stable caller tag
// (cmd/gqlfmt's parseFile passes the file path and a rendering of
// parser.Options, path + "\x00" + optsTag(opts)).
func Key(body, optsTag string) string {
	h := sha256.Sum256([]byte(optsTag + "\x00" + body))
	return hex.EncodeToString(h[:])
}

// Get returns the cached document for key, if any.
func (s *Store) Get(key string) (*ast.Document, bool) {
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	doc, ok := v.(*ast.Document)
	return doc, ok
}

// Put records doc under key, evicting the least recently used entry if the
// store is full.
func (s *Store) Put(key string, doc *ast.Document) {
	s.cache.Add(key, doc)
}

// Len reports the number of documents currently cached.
func (s *Store) Len() int {
	return s.cache.Len()
}
