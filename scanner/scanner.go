// Package scanner finds text files and feeds them line by line to a
// document filter.
package scanner

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// maxLineSize bounds a single line. Longer lines fail the scan of their file.
const maxLineSize = 1024 * 1024

// Line is one line of a scanned file, without its line terminator.
type Line struct {
	Path string
	Num  int
	Text string
}

type Scanner struct {
	extensions []string
}

// New returns a scanner that keeps files with one of the given extensions
// (".txt", ".log") when walking directories. With no extensions every file
// is kept.
func New(extensions ...string) *Scanner {
	return &Scanner{extensions: extensions}
}

// Files expands paths into a sorted list of files. Directories are walked
// recursively and filtered by extension; a path naming a file is always kept.
func (s *Scanner) Files(paths ...string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("error accessing %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && s.isTargetFile(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("error walking directory %s: %w", root, err)
		}
	}

	slices.Sort(files)
	return files, nil
}

// Lines calls fn for every line of r in order and stops at the first error
// fn returns. name is copied into each Line.Path.
func Lines(name string, r io.Reader, fn func(Line) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	num := 0
	for sc.Scan() {
		num++
		if err := fn(Line{Path: name, Num: num, Text: sc.Text()}); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	return nil
}

// File opens path and passes its lines to fn.
func File(path string, fn func(Line) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Lines(path, f, fn)
}

func (s *Scanner) isTargetFile(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}
	return slices.Contains(s.extensions, filepath.Ext(path))
}
