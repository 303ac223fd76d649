// Package fs provides filesystem-backed loading and export of topic pages.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/docshelf"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional collection configuration file at the root
// of a content directory.
const ConfigFileName = "shelf.yml"

// markdownExts lists the file extensions treated as topic pages.
var markdownExts = map[string]bool{
	".md":       true,
	".markdown": true,
}

// Ensure Loader implements docshelf.Loader at compile time.
var _ docshelf.Loader = (*Loader)(nil)

// Loader implements docshelf.Loader on an afero filesystem.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a Loader reading from fsys. Pass afero.NewOsFs() for the
// real filesystem.
func NewLoader(fsys afero.Fs) *Loader {
	return &Loader{fs: fsys}
}

// LoadDir returns the markdown files under dir in lexical path order.
func (l *Loader) LoadDir(ctx context.Context, dir string, filter *docshelf.PathFilter) ([]*docshelf.SourceFile, error) {
	var files []*docshelf.SourceFile

	err := afero.Walk(l.fs, dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		name := info.Name()
		if info.IsDir() {
			if p != dir && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") || !markdownExts[strings.ToLower(filepath.Ext(name))] {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		relPath := filepath.ToSlash(rel)
		if !filter.Match(relPath) {
			return nil
		}

		raw, err := afero.ReadFile(l.fs, p)
		if err != nil {
			return err
		}
		files = append(files, &docshelf.SourceFile{Path: relPath, Raw: raw})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, docshelf.Errorf(docshelf.EINVALID, "no topic pages found in %s", dir)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	return files, nil
}

// LoadConfig reads the optional shelf.yml collection configuration.
func (l *Loader) LoadConfig(ctx context.Context, dir string) (*docshelf.CollectionConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := afero.ReadFile(l.fs, filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, docshelf.Errorf(docshelf.ENOTFOUND, "no %s in %s", ConfigFileName, dir)
		}
		return nil, err
	}

	var config docshelf.CollectionConfig
	if err := yaml.Unmarshal(raw, &config); err != nil {
		return nil, docshelf.Errorf(docshelf.EINVALID, "invalid %s: %v", ConfigFileName, err)
	}

	return &config, nil
}
