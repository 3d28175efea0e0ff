package run

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
)

func (c *Controller) searchFiles() ([]string, error) {
	if len(c.param.FilePaths) != 0 {
		return c.param.FilePaths, nil
	}
	if len(c.cfg.Files) > 0 {
		return c.searchFilesByConfig()
	}
	return c.searchPythonFiles()
}

func (c *Controller) searchFilesByConfig() ([]string, error) {
	return c.walk(func(filePath string) bool {
		for _, file := range c.cfg.Files {
			if file.Match(filePath) {
				return true
			}
		}
		return false
	})
}

// searchPythonFiles is the default target discovery when neither
// positional arguments nor a files configuration are given.
func (c *Controller) searchPythonFiles() ([]string, error) {
	return c.walk(func(filePath string) bool {
		return strings.HasSuffix(filePath, ".py")
	})
}

// walk collects files under the working directory whose relative path
// matches. io/fs rejects rooted paths, so the walk runs over a
// filesystem re-rooted at the working directory.
func (c *Controller) walk(match func(filePath string) bool) ([]string, error) {
	files := []string{}
	base := afero.NewBasePathFs(c.fs, c.param.PWD)
	if err := fs.WalkDir(afero.NewIOFS(base), ".", func(p string, dirEntry fs.DirEntry, e error) error {
		if e != nil {
			return nil //nolint:nilerr
		}
		if dirEntry.IsDir() {
			// ignore directory
			return nil
		}
		if match(p) {
			files = append(files, p)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("walk the working directory: %w", err)
	}
	return files, nil
}
