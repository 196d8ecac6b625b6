// Package discovery collects the Python source files named by the target
// arguments, applying the ignore list. It is the only component that
// touches the filesystem tree.
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"
)

// DefaultIgnore lists the path-segment patterns skipped during traversal.
var DefaultIgnore = []string{
	"__pycache__",
	".git",
	"venv",
	".venv",
	"node_modules",
	".tox",
	".pytest_cache",
	".mypy_cache",
	".ruff_cache",
	"dist",
	"build",
	"*.egg-info",
}

type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Collector walks target paths for Python files.
type Collector struct {
	ignore []compiledPattern
}

// NewCollector compiles the ignore patterns. Patterns match individual
// path segments (directory or file names), not whole paths.
func NewCollector(ignorePatterns []string) (*Collector, error) {
	c := &Collector{}
	for _, p := range ignorePatterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		c.ignore = append(c.ignore, compiledPattern{pattern: p, glob: g})
	}
	return c, nil
}

// Collect returns the Python files under the targets, sorted by path.
// A target that does not exist is a fatal error, reported before any
// parsing begins. File targets are taken as-is when they are Python files;
// directory targets are walked with the ignore list applied.
func (c *Collector) Collect(targets []string) ([]string, error) {
	files := []string{}

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, fmt.Errorf("path does not exist: %s", target)
		}

		if !info.IsDir() {
			if isPythonFile(target) {
				files = append(files, target)
			}
			continue
		}

		err = filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != target && c.ignored(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if !c.ignored(d.Name()) && isPythonFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk directory %s: %w", target, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

func (c *Collector) ignored(name string) bool {
	for _, cp := range c.ignore {
		if cp.glob.Match(name) {
			return true
		}
	}
	return false
}

func isPythonFile(path string) bool {
	return filepath.Ext(path) == ".py"
}
