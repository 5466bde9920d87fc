package service

import (
	"io/fs"
	"path/filepath"
	"sort"
)

// Discover walks inputRoot and returns the relative path of every
// regular file, sorted lexicographically so job order and flatten
// collision numbering are reproducible across runs. Hidden files are
// included; symlinks are skipped and never followed, whether they point
// at files or directories. Extension filtering happens later: files of
// unknown type still become (failed) jobs so the report accounts for
// them.
func Discover(inputRoot string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(inputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(inputRoot, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
