package fsbrowse

import (
	"os"

	gitignore "github.com/monochromegane/go-gitignore"
)

// SearchOption represents options for search operations
type SearchOption func(*searchOptions)

type searchOptions struct {
	caseSensitive bool
	limitResults  int
	ignoreFile    string

	ignore gitignore.IgnoreMatcher
}

// defaultSearchOptions returns default search options
func defaultSearchOptions() *searchOptions {
	return &searchOptions{
		caseSensitive: false,
		limitResults:  -1, // No limit
	}
}

func newSearchOptions(options []SearchOption) *searchOptions {
	opts := defaultSearchOptions()
	for _, opt := range options {
		opt(opts)
	}
	return opts
}

// WithCaseSensitive sets case sensitivity for pattern searches
func WithCaseSensitive(sensitive bool) SearchOption {
	return func(opts *searchOptions) {
		opts.caseSensitive = sensitive
	}
}

// WithLimitResults limits the number of results returned
func WithLimitResults(limit int) SearchOption {
	return func(opts *searchOptions) {
		opts.limitResults = limit
	}
}

// WithIgnoreFile excludes entries matched by a gitignore-style file.
// Patterns are relative to the search root. Ignored folders are not descended into.
func WithIgnoreFile(path string) SearchOption {
	return func(opts *searchOptions) {
		opts.ignoreFile = path
	}
}

// prepare loads the ignore file for root. It runs before any traversal so
// a missing file is reported as a bad argument.
func (opts *searchOptions) prepare(root string) error {
	if opts.ignoreFile == "" {
		return nil
	}

	if _, err := os.Stat(opts.ignoreFile); err != nil {
		return newInvalidArgument("ignore_file", opts.ignoreFile, err.Error())
	}

	matcher, err := gitignore.NewGitIgnore(opts.ignoreFile, root)
	if err != nil {
		return newInvalidArgument("ignore_file", opts.ignoreFile, err.Error())
	}

	opts.ignore = matcher
	return nil
}

func (opts *searchOptions) ignored(path string, isFolder bool) bool {
	return opts.ignore != nil && opts.ignore.Match(path, isFolder)
}

func (opts *searchOptions) limitReached(found int) bool {
	return opts.limitResults > 0 && found >= opts.limitResults
}
