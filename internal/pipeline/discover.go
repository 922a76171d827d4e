package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Discover walks root and collects files whose extension matches ext
// (case-insensitive) and whose immediate parent directory is named
// figureDir, at any depth: the equivalent of the glob "**/figures/*.png".
// Unreadable subdirectories are skipped. Paths are returned sorted
// lexicographically for deterministic processing order.
func Discover(root, figureDir, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path != root && d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ext) {
			return nil
		}
		if filepath.Base(filepath.Dir(path)) != figureDir {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
