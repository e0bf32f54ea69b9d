package roster

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/boyter/gocodewalker"
	f "github.com/multimediallc/namegroups/pkg/functional"
	"github.com/multimediallc/namegroups/pkg/people"
	"github.com/sirupsen/logrus"
)

// Discover walks root and returns the files whose root-relative, slash
// separated path matches one of include and none of ignore. Hidden files and
// anything excluded by .gitignore are skipped.
func Discover(root string, include []string, ignore []string) ([]string, error) {
	if rootStat, err := os.Stat(root); err != nil || !rootStat.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}
	for _, pattern := range slices.Concat(include, ignore) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern: %s", pattern)
		}
	}

	fileListQueue := make(chan *gocodewalker.File, 100)

	walker := gocodewalker.NewFileWalker(root, fileListQueue)
	walker.ExcludeDirectory = []string{".git"}

	errChan := make(chan error)

	go func() {
		err := walker.Start()
		errChan <- err
		close(errChan)
	}()

	files := make([]string, 0)
	var relErr error
	for file := range fileListQueue {
		// keep draining so the walker can finish
		if relErr != nil {
			continue
		}
		rel, err := relativeSlash(root, file.Location)
		if err != nil {
			relErr = err
			continue
		}
		if matchAny(include, rel) && !matchAny(ignore, rel) {
			files = append(files, file.Location)
		}
	}

	if err := <-errChan; err != nil {
		return nil, fmt.Errorf("error walking %s: %w", root, err)
	}
	if relErr != nil {
		return nil, relErr
	}
	slices.Sort(files)
	return files, nil
}

// relativeSlash returns location relative to root with slash separators,
// the form include and ignore patterns are matched against.
func relativeSlash(root, location string) (string, error) {
	rel, err := filepath.Rel(root, location)
	if err != nil {
		return "", fmt.Errorf("resolving %s against %s: %w", location, root, err)
	}
	return filepath.ToSlash(rel), nil
}

func matchAny(patterns []string, name string) bool {
	return slices.ContainsFunc(patterns, func(pattern string) bool {
		match, err := doublestar.Match(pattern, name)
		return err == nil && match
	})
}

// Load parses every file in paths and concatenates the records in path order.
// Paths are compared after filepath.Clean, so a file named twice, even with
// different spellings, is read once at its first position.
func Load(paths []string, logger logrus.FieldLogger) ([]*people.Person, error) {
	records := make([]*people.Person, 0)
	for _, path := range f.RemoveDuplicates(f.Map(paths, filepath.Clean)) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading roster %s: %w", path, err)
		}
		parsed, err := Parse(path, data)
		if err != nil {
			return nil, err
		}
		logger.WithField("file", path).Debugf("loaded %d records", len(parsed))
		records = append(records, parsed...)
	}
	return records, nil
}
