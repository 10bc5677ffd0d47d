package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DirResult pairs one file's parse outcome with its path. Err is set
// when the file could not be read at all; parse problems live in the
// result's Bag.
type DirResult struct {
	Path   string
	Result *ParseResult
	Err    error
}

// ParseDir walks dir recursively and parses every .rb file, fanning the
// work out over GOMAXPROCS workers. Results come back sorted by path.
// The walk stops early when ctx is cancelled.
func ParseDir(ctx context.Context, dir string, cfg Config) ([]DirResult, error) {
	paths, err := ListRubyFiles(dir)
	if err != nil {
		return nil, err
	}

	results := make([]DirResult, 0, len(paths))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Parse(path, cfg)
			mu.Lock()
			results = append(results, DirResult{Path: path, Result: res, Err: err})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

// ListRubyFiles walks dir recursively and returns every .rb file in
// walk order, skipping hidden directories.
func ListRubyFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == ".rb" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
