package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/boostgo/fsbrowse"
	"github.com/boostgo/fsbrowse/internal/config"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// presenter renders results as a table or as json/yaml documents
type presenter struct {
	w      io.Writer
	format string

	header *color.Color
	folder *color.Color
	warn   *color.Color
	ok     *color.Color
	bad    *color.Color
}

func newPresenter(w io.Writer, format string) *presenter {
	return &presenter{
		w:      w,
		format: format,
		header: color.New(color.FgCyan, color.Bold),
		folder: color.New(color.FgBlue, color.Bold),
		warn:   color.New(color.FgYellow),
		ok:     color.New(color.FgGreen),
		bad:    color.New(color.FgRed),
	}
}

type warningView struct {
	Path  string               `json:"path" yaml:"path"`
	Kind  fsbrowse.WarningKind `json:"kind" yaml:"kind"`
	Error string               `json:"error,omitempty" yaml:"error,omitempty"`
}

func warningViews(warnings []fsbrowse.Warning) []warningView {
	views := make([]warningView, 0, len(warnings))
	for _, w := range warnings {
		view := warningView{Path: w.Path, Kind: w.Kind}
		if w.Err != nil {
			view.Error = w.Err.Error()
		}
		views = append(views, view)
	}
	return views
}

type statsView struct {
	Path       string                `json:"path" yaml:"path"`
	Files      uint64                `json:"files" yaml:"files"`
	Folders    uint64                `json:"folders" yaml:"folders"`
	TotalBytes uint64                `json:"total_bytes" yaml:"total_bytes"`
	Largest    *fsbrowse.SearchMatch `json:"largest,omitempty" yaml:"largest,omitempty"`
	Warnings   []warningView         `json:"warnings" yaml:"warnings"`
}

// document writes v as json or yaml. It reports false for the table format.
func (p *presenter) document(v any) (bool, error) {
	switch p.format {
	case config.FormatJSON:
		encoder := json.NewEncoder(p.w)
		encoder.SetIndent("", "  ")
		return true, encoder.Encode(v)
	case config.FormatYAML:
		encoder := yaml.NewEncoder(p.w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return true, err
		}
		return true, encoder.Close()
	}
	return false, nil
}

// Matches renders search results with name, size and path columns
func (p *presenter) Matches(result *fsbrowse.Result) error {
	done, err := p.document(struct {
		Matches  []fsbrowse.SearchMatch `json:"matches" yaml:"matches"`
		Warnings []warningView          `json:"warnings" yaml:"warnings"`
	}{
		Matches:  result.Matches,
		Warnings: warningViews(result.Warnings),
	})
	if done {
		return err
	}

	p.header.Fprintf(p.w, "%-40s %12s  %s\n", "NAME", "SIZE", "PATH")
	for _, match := range result.Matches {
		size := "-"
		if match.HasSize {
			size = fsbrowse.FormatSize(match.SizeBytes)
		}
		fmt.Fprintf(p.w, "%-40s %12s  %s\n", match.Name, size, match.Path)
	}

	fmt.Fprintf(p.w, "\n%d match(es)\n", len(result.Matches))
	p.warnings(result.Warnings)
	return nil
}

// Entries renders a directory listing, folders first
func (p *presenter) Entries(dir string, entries []fsbrowse.DirectoryEntry) error {
	sorted := make([]fsbrowse.DirectoryEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].IsFolder() != sorted[j].IsFolder() {
			return sorted[i].IsFolder()
		}
		return sorted[i].Name < sorted[j].Name
	})

	done, err := p.document(struct {
		Path    string                    `json:"path" yaml:"path"`
		Entries []fsbrowse.DirectoryEntry `json:"entries" yaml:"entries"`
	}{
		Path:    dir,
		Entries: sorted,
	})
	if done {
		return err
	}

	p.header.Fprintf(p.w, "%s\n", dir)
	for _, entry := range sorted {
		if entry.IsFolder() {
			p.folder.Fprintf(p.w, "  %s/\n", entry.Name)
			continue
		}
		fmt.Fprintf(p.w, "  %s\n", entry.Name)
	}
	return nil
}

// Stats renders the totals of a directory tree
func (p *presenter) Stats(stats *fsbrowse.DirectoryStats) error {
	done, err := p.document(statsView{
		Path:       stats.Path,
		Files:      stats.Files,
		Folders:    stats.Folders,
		TotalBytes: stats.TotalBytes,
		Largest:    stats.Largest,
		Warnings:   warningViews(stats.Warnings),
	})
	if done {
		return err
	}

	p.header.Fprintf(p.w, "=== %s ===\n", stats.Path)
	fmt.Fprintf(p.w, "Files:   %d\n", stats.Files)
	fmt.Fprintf(p.w, "Folders: %d\n", stats.Folders)
	fmt.Fprintf(p.w, "Size:    %s\n", fsbrowse.FormatSize(stats.TotalBytes))
	if stats.Largest != nil {
		fmt.Fprintf(p.w, "Largest: %s (%s)\n", stats.Largest.Path, fsbrowse.FormatSize(stats.Largest.SizeBytes))
	}
	p.warnings(stats.Warnings)
	return nil
}

// Types renders the per-extension histogram, largest total first
func (p *presenter) Types(stats fsbrowse.ExtensionStats) error {
	done, err := p.document(stats)
	if done {
		return err
	}

	extensions := make([]string, 0, len(stats))
	for ext := range stats {
		extensions = append(extensions, ext)
	}
	sort.Slice(extensions, func(i, j int) bool {
		a, b := stats[extensions[i]], stats[extensions[j]]
		if a.TotalBytes != b.TotalBytes {
			return a.TotalBytes > b.TotalBytes
		}
		return extensions[i] < extensions[j]
	})

	p.header.Fprintf(p.w, "%-16s %8s %12s\n", "EXTENSION", "FILES", "SIZE")
	for _, ext := range extensions {
		label := ext
		if label == "" {
			label = "(none)"
		}
		stat := stats[ext]
		fmt.Fprintf(p.w, "%-16s %8d %12s\n", label, stat.Count, fsbrowse.FormatSize(stat.TotalBytes))
	}
	return nil
}

// Validation renders a path check
func (p *presenter) Validation(path string, result fsbrowse.PathValidationResult) error {
	done, err := p.document(struct {
		Path                          string `json:"path" yaml:"path"`
		fsbrowse.PathValidationResult `yaml:",inline"`
	}{
		Path:                 path,
		PathValidationResult: result,
	})
	if done {
		return err
	}

	if result.Valid {
		p.ok.Fprintf(p.w, "VALID   ")
	} else {
		p.bad.Fprintf(p.w, "INVALID ")
	}
	fmt.Fprintf(p.w, "%s: %s\n", path, result.Reason)
	return nil
}

func (p *presenter) warnings(warnings []fsbrowse.Warning) {
	if len(warnings) == 0 {
		return
	}

	p.warn.Fprintf(p.w, "%d path(s) skipped:\n", len(warnings))
	for _, w := range warnings {
		p.warn.Fprintf(p.w, "  [%s] %s\n", w.Kind, w.Path)
	}
}
