package fsbrowse

import (
	"io"
	"log/slog"
	"path/filepath"
)

// WalkAction tells the walker how to continue after visiting an entry
type WalkAction int

const (
	// WalkContinue descends into folders and moves on to the next entry
	WalkContinue WalkAction = iota
	// WalkSkip does not descend into the visited folder
	WalkSkip
	// WalkStop ends the walk
	WalkStop
)

// VisitFunc is called for every entry reached by Walk
type VisitFunc func(entry DirectoryEntry, fullPath string) WalkAction

// Searcher runs the search strategies against injected filesystem
// collaborators. It keeps no state between searches.
type Searcher struct {
	lister        DirectoryLister
	detector      ReparsePointDetector
	sizer         ByteCounter
	histogram     ExtensionHistogram
	folders       SpecialFolderProvider
	logger        *slog.Logger
	strictReparse bool
}

// SearcherOption configures a Searcher
type SearcherOption func(*Searcher)

// NewSearcher creates a Searcher backed by the local filesystem unless
// collaborators are replaced through options
func NewSearcher(options ...SearcherOption) *Searcher {
	fsys := OSFileSystem{}
	s := &Searcher{
		lister:   fsys,
		detector: fsys,
		sizer:    fsys,
		folders:  fsys,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range options {
		opt(s)
	}

	if s.histogram == nil {
		s.histogram = s
	}

	return s
}

// WithLister sets the directory lister
func WithLister(lister DirectoryLister) SearcherOption {
	return func(s *Searcher) {
		s.lister = lister
	}
}

// WithReparseDetector sets the reparse point detector
func WithReparseDetector(detector ReparsePointDetector) SearcherOption {
	return func(s *Searcher) {
		s.detector = detector
	}
}

// WithByteCounter sets the file size source
func WithByteCounter(sizer ByteCounter) SearcherOption {
	return func(s *Searcher) {
		s.sizer = sizer
	}
}

// WithHistogram sets the extension histogram used to prune extension searches
func WithHistogram(histogram ExtensionHistogram) SearcherOption {
	return func(s *Searcher) {
		s.histogram = histogram
	}
}

// WithSpecialFolders sets the provider of Desktop/Documents/Downloads
func WithSpecialFolders(folders SpecialFolderProvider) SearcherOption {
	return func(s *Searcher) {
		s.folders = folders
	}
}

// WithLogger sets the logger skipped subtrees are reported to
func WithLogger(logger *slog.Logger) SearcherOption {
	return func(s *Searcher) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStrictReparse skips entries whose reparse status cannot be determined.
// By default such entries are treated as regular entries.
func WithStrictReparse() SearcherOption {
	return func(s *Searcher) {
		s.strictReparse = true
	}
}

// Walk visits every entry under root in depth-first pre-order, never
// entering reparse points. Directories that cannot be listed are skipped
// and returned as warnings.
func (s *Searcher) Walk(root string, visit VisitFunc) []Warning {
	result := &Result{}
	s.walk(root, defaultSearchOptions(), result, visit)
	return result.Warnings
}

type pendingEntry struct {
	entry DirectoryEntry
	path  string
}

// walk keeps pending entries on an explicit stack instead of recursing, so
// tree depth does not grow the call stack. Children are pushed in reverse
// so they pop in listing order, which gives the same pre-order a recursive
// descent would.
func (s *Searcher) walk(root string, opts *searchOptions, result *Result, visit VisitFunc) {
	var stack []pendingEntry

	expand := func(dir string) {
		entries, err := s.lister.ListDirectory(dir)
		if err != nil {
			kind, wrapped := classifyError(dir, err)
			result.warn(dir, kind, wrapped)
			s.logger.Debug("skipping directory",
				slog.String("path", dir),
				slog.String("kind", string(kind)),
				slog.Any("error", err))
			return
		}

		for i := len(entries) - 1; i >= 0; i-- {
			stack = append(stack, pendingEntry{
				entry: entries[i],
				path:  filepath.Join(dir, entries[i].Name),
			})
		}
	}

	expand(root)
	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.skipReparsePoint(next.path, result) {
			continue
		}
		if opts.ignored(next.path, next.entry.IsFolder()) {
			continue
		}

		switch visit(next.entry, next.path) {
		case WalkStop:
			return
		case WalkSkip:
			continue
		}

		if next.entry.IsFolder() {
			expand(next.path)
		}
	}
}

func (s *Searcher) skipReparsePoint(path string, result *Result) bool {
	reparse, err := s.detector.IsReparsePoint(path)
	if err != nil {
		result.warn(path, WarningReparseCheck, newReparseCheck(path, err))
		s.logger.Debug("reparse check failed",
			slog.String("path", path),
			slog.Bool("skipped", s.strictReparse),
			slog.Any("error", err))
		return s.strictReparse
	}

	if reparse {
		s.logger.Debug("skipping reparse point", slog.String("path", path))
	}
	return reparse
}
