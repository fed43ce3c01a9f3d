/*
Package cliutil holds the small pieces of ambient plumbing cmd/gqlfmt needs
that don't belong in the language front-end itself: error annotation for
file I/O failures (the core's own syntax/invariant errors stay
*gqlerror.Error, never wrapped here) and the file-discovery walk the format/
validate/ast subcommands share.
*/
package cliutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// WrapReadFile annotates a file-read failure with the path, the way
// termfx-morfx and roderm-graphql-go-tools use github.com/pkg/errors at
// their own CLI/tooling boundaries rather than on parse errors.
func WrapReadFile(path string, err error) error {
	return errors.Wrapf(err, "reading %s", path)
}

// WrapWriteFile annotates a file-write failure with the path.
func WrapWriteFile(path string, err error) error {
	return errors.Wrapf(err, "writing %s", path)
}

// GraphQLFiles walks roots collecting every *.graphql/*.gql file, the way a
// formatter CLI discovers its input set. A root that is itself a file is
// returned as-is regardless of extension.
func GraphQLFiles(roots []string) ([]string, error) {
	var files []string

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, errors.Wrapf(err, "stat %s", root)
		}

		if !info.IsDir() {
			files = append(files, root)
			continue
		}

		err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if ext == ".graphql" || ext == ".gql" {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "walking %s", root)
		}
	}

	return files, nil
}
