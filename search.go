package fsbrowse

import (
	"log/slog"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

const bytesPerMB = 1024 * 1024

var systemExtensions = map[string]struct{}{
	".exe": {},
	".dll": {},
	".sys": {},
}

// FindByPattern finds files under root by shell-style pattern using the
// local filesystem
func FindByPattern(root, pattern string, options ...SearchOption) (*Result, error) {
	return NewSearcher().FindByPattern(root, pattern, options...)
}

// FindByExtensions finds files under root by extension using the local filesystem
func FindByExtensions(root string, extensions []string, options ...SearchOption) (*Result, error) {
	return NewSearcher().FindByExtensions(root, extensions, options...)
}

// FindLargeFiles finds files of at least minSizeMB megabytes using the local filesystem
func FindLargeFiles(root string, minSizeMB float64, options ...SearchOption) (*Result, error) {
	return NewSearcher().FindLargeFiles(root, minSizeMB, options...)
}

// FindSystemFiles finds executables and drivers in the special folders and root
func FindSystemFiles(root string, options ...SearchOption) (*Result, error) {
	return NewSearcher().FindSystemFiles(root, options...)
}

// FindByPattern finds files whose name matches a shell-style pattern.
// Matching is case-insensitive unless WithCaseSensitive(true) is given.
// Folders are never matched, only descended into.
func (s *Searcher) FindByPattern(root, pattern string, options ...SearchOption) (*Result, error) {
	opts := newSearchOptions(options)

	glob, err := CompileGlob(pattern, opts.caseSensitive)
	if err != nil {
		return nil, err
	}
	if err := opts.prepare(root); err != nil {
		return nil, err
	}

	result := &Result{}
	s.walk(root, opts, result, func(entry DirectoryEntry, fullPath string) WalkAction {
		if entry.IsFolder() || !glob.Match(entry.Name) {
			return WalkContinue
		}

		result.Matches = append(result.Matches, SearchMatch{
			Path:      fullPath,
			Name:      entry.Name,
			Extension: strings.ToLower(extension(entry.Name)),
		})
		if opts.limitReached(len(result.Matches)) {
			return WalkStop
		}
		return WalkContinue
	})

	return result, nil
}

// FindByExtensions finds files whose extension is in the requested set.
// Extensions are compared lower-case with a leading dot, so "txt" and ".TXT"
// request the same files. A root that cannot be listed gives an empty result.
func (s *Searcher) FindByExtensions(root string, extensions []string, options ...SearchOption) (*Result, error) {
	opts := newSearchOptions(options)

	wanted := NormalizeExtensions(extensions)
	if len(wanted) == 0 {
		return nil, newInvalidArgument("extensions", strings.Join(extensions, ","), "no extensions given")
	}
	if err := opts.prepare(root); err != nil {
		return nil, err
	}

	result := &Result{}
	if _, err := s.lister.ListDirectory(root); err != nil {
		kind, wrapped := classifyError(root, err)
		result.warn(root, kind, wrapped)
		return result, nil
	}

	set := make(map[string]struct{}, len(wanted))
	for _, ext := range wanted {
		set[ext] = struct{}{}
	}

	// Extensions the histogram never saw cannot match. The histogram is only
	// an optimisation, so the walk goes ahead unpruned when it fails.
	stats, err := s.histogram.Histogram(root)
	if err != nil {
		s.logger.Debug("extension histogram unavailable",
			slog.String("root", root),
			slog.Any("error", err))
	} else {
		for ext := range set {
			if stats[ext].Count == 0 {
				delete(set, ext)
			}
		}
	}
	if len(set) == 0 {
		return result, nil
	}

	s.walk(root, opts, result, func(entry DirectoryEntry, fullPath string) WalkAction {
		if entry.IsFolder() {
			return WalkContinue
		}

		ext := strings.ToLower(extension(entry.Name))
		if _, ok := set[ext]; !ok {
			return WalkContinue
		}

		result.Matches = append(result.Matches, SearchMatch{
			Path:      fullPath,
			Name:      entry.Name,
			Extension: ext,
		})
		if opts.limitReached(len(result.Matches)) {
			return WalkStop
		}
		return WalkContinue
	})

	return result, nil
}

// FindLargeFiles finds files whose size is at least minSizeMB megabytes
// (1 MB = 1024*1024 bytes). The boundary is inclusive.
func (s *Searcher) FindLargeFiles(root string, minSizeMB float64, options ...SearchOption) (*Result, error) {
	opts := newSearchOptions(options)

	if err := checkMinSize(minSizeMB); err != nil {
		return nil, err
	}
	if err := opts.prepare(root); err != nil {
		return nil, err
	}

	threshold := minSizeMB * bytesPerMB
	result := &Result{}
	s.walk(root, opts, result, func(entry DirectoryEntry, fullPath string) WalkAction {
		if entry.IsFolder() {
			return WalkContinue
		}

		size, err := s.sizer.ByteCount(fullPath)
		if err != nil {
			result.warn(fullPath, WarningFileSize, newStatFile(fullPath, err))
			return WalkContinue
		}
		if float64(size) < threshold {
			return WalkContinue
		}

		result.Matches = append(result.Matches, SearchMatch{
			Path:      fullPath,
			Name:      entry.Name,
			SizeBytes: size,
			SizeMB:    float64(size) / bytesPerMB,
			Extension: strings.ToLower(extension(entry.Name)),
			HasSize:   true,
		})
		if opts.limitReached(len(result.Matches)) {
			return WalkStop
		}
		return WalkContinue
	})

	return result, nil
}

// FindSystemFiles looks for .exe, .dll and .sys files directly inside the
// Desktop, Documents and Downloads folders and root. It does not recurse.
// Folders that are missing or unreadable are skipped.
func (s *Searcher) FindSystemFiles(root string, options ...SearchOption) (*Result, error) {
	opts := newSearchOptions(options)

	folders := s.folders.SpecialFolders()
	dirs := []string{
		folders[FolderDesktop],
		folders[FolderDocuments],
		folders[FolderDownloads],
		root,
	}

	result := &Result{}
	scanned := make(map[string]struct{}, len(dirs))
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		key := filepath.Clean(dir)
		if _, ok := scanned[key]; ok {
			continue
		}
		scanned[key] = struct{}{}

		entries, err := s.lister.ListDirectory(dir)
		if err != nil {
			kind, wrapped := classifyError(dir, err)
			result.warn(dir, kind, wrapped)
			continue
		}

		for _, entry := range entries {
			if entry.IsFolder() {
				continue
			}

			ext := strings.ToLower(extension(entry.Name))
			if _, ok := systemExtensions[ext]; !ok {
				continue
			}

			result.Matches = append(result.Matches, SearchMatch{
				Path:      filepath.Join(dir, entry.Name),
				Name:      entry.Name,
				Extension: ext,
			})
			if opts.limitReached(len(result.Matches)) {
				return result, nil
			}
		}
	}

	return result, nil
}

// Histogram counts files and bytes per extension under root. Files whose
// size cannot be read are counted with zero bytes.
func (s *Searcher) Histogram(root string) (ExtensionStats, error) {
	if _, err := s.lister.ListDirectory(root); err != nil {
		return nil, ErrAnalyzeDirectory.
			SetError(err).
			SetData(pathErrorContext{
				Path:  root,
				Error: err,
			})
	}

	stats := make(ExtensionStats)
	result := &Result{}
	s.walk(root, defaultSearchOptions(), result, func(entry DirectoryEntry, fullPath string) WalkAction {
		if entry.IsFolder() {
			return WalkContinue
		}

		ext := strings.ToLower(extension(entry.Name))
		stat := stats[ext]
		stat.Count++
		if size, err := s.sizer.ByteCount(fullPath); err == nil {
			stat.TotalBytes += size
		}
		stats[ext] = stat
		return WalkContinue
	})

	return stats, nil
}

// DirectoryStats counts files and folders under root and finds the largest file
func (s *Searcher) DirectoryStats(root string) *DirectoryStats {
	stats := &DirectoryStats{Path: root}
	result := &Result{}
	s.walk(root, defaultSearchOptions(), result, func(entry DirectoryEntry, fullPath string) WalkAction {
		if entry.IsFolder() {
			stats.Folders++
			return WalkContinue
		}

		stats.Files++
		size, err := s.sizer.ByteCount(fullPath)
		if err != nil {
			result.warn(fullPath, WarningFileSize, newStatFile(fullPath, err))
			return WalkContinue
		}

		stats.TotalBytes += size
		if stats.Largest == nil || size > stats.Largest.SizeBytes {
			stats.Largest = &SearchMatch{
				Path:      fullPath,
				Name:      entry.Name,
				SizeBytes: size,
				SizeMB:    float64(size) / bytesPerMB,
				Extension: strings.ToLower(extension(entry.Name)),
				HasSize:   true,
			}
		}
		return WalkContinue
	})

	stats.Warnings = result.Warnings
	return stats
}

// NormalizeExtensions trims, lower-cases and dot-prefixes extensions,
// dropping blanks and duplicates while keeping the first-seen order
func NormalizeExtensions(extensions []string) []string {
	seen := make(map[string]struct{}, len(extensions))
	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		normalized = append(normalized, ext)
	}
	return normalized
}

// ParseExtensions splits a comma-separated extension list
func ParseExtensions(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	return NormalizeExtensions(strings.Split(input, ","))
}

// ParseMinSize parses a minimum size in megabytes
func ParseMinSize(input string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, newInvalidArgument("min_size_mb", input, "not a number")
	}

	if err := checkMinSize(value); err != nil {
		return 0, err
	}
	return value, nil
}

func checkMinSize(minSizeMB float64) error {
	if math.IsNaN(minSizeMB) || math.IsInf(minSizeMB, 0) || minSizeMB < 0 {
		return newInvalidArgument("min_size_mb", strconv.FormatFloat(minSizeMB, 'f', -1, 64), "must be a non-negative number")
	}
	return nil
}
