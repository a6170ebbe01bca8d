package fsbrowse

// EntryType tells files and folders apart in a directory listing
type EntryType int

const (
	EntryFile EntryType = iota
	EntryFolder
)

func (t EntryType) String() string {
	if t == EntryFolder {
		return "folder"
	}
	return "file"
}

// MarshalText writes the type as "file" or "folder"
func (t EntryType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// DirectoryEntry represents one immediate child of a listed directory
type DirectoryEntry struct {
	Name string    `json:"name" yaml:"name"`
	Type EntryType `json:"type" yaml:"type"`
}

// IsFolder reports whether the entry is a folder
func (e DirectoryEntry) IsFolder() bool {
	return e.Type == EntryFolder
}

// SearchMatch represents a file found by one of the search strategies
type SearchMatch struct {
	Path      string  `json:"path" yaml:"path"`
	Name      string  `json:"name" yaml:"name"`
	SizeBytes uint64  `json:"size_bytes,omitempty" yaml:"size_bytes,omitempty"`
	SizeMB    float64 `json:"size_mb,omitempty" yaml:"size_mb,omitempty"`
	Extension string  `json:"extension,omitempty" yaml:"extension,omitempty"`
	HasSize   bool    `json:"-" yaml:"-"`
}

// WarningKind classifies a subtree that was skipped during a search
type WarningKind string

const (
	WarningAccessDenied WarningKind = "access_denied"
	WarningPathNotFound WarningKind = "path_not_found"
	WarningIO           WarningKind = "io"
	WarningReparseCheck WarningKind = "reparse_check"
	WarningFileSize     WarningKind = "file_size"
)

// Warning records a path that contributed no results because it could not be read
type Warning struct {
	Path string      `json:"path" yaml:"path"`
	Kind WarningKind `json:"kind" yaml:"kind"`
	Err  error       `json:"-" yaml:"-"`
}

// Result is the outcome of one search: matches in discovery order plus
// the subtrees that were skipped along the way
type Result struct {
	Matches  []SearchMatch `json:"matches" yaml:"matches"`
	Warnings []Warning     `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Paths returns the absolute paths of all matches
func (r *Result) Paths() []string {
	paths := make([]string, 0, len(r.Matches))
	for _, match := range r.Matches {
		paths = append(paths, match.Path)
	}
	return paths
}

func (r *Result) warn(path string, kind WarningKind, err error) {
	r.Warnings = append(r.Warnings, Warning{
		Path: path,
		Kind: kind,
		Err:  err,
	})
}

// ExtensionStat holds the count and total size of files sharing an extension
type ExtensionStat struct {
	Count      uint64 `json:"count" yaml:"count"`
	TotalBytes uint64 `json:"total_bytes" yaml:"total_bytes"`
}

// ExtensionStats maps a lower-case, dot-prefixed extension to its stats.
// Files without an extension are counted under the empty key.
type ExtensionStats map[string]ExtensionStat

// DirectoryStats represents aggregated information about a directory tree
type DirectoryStats struct {
	Path       string       `json:"path" yaml:"path"`
	Files      uint64       `json:"files" yaml:"files"`
	Folders    uint64       `json:"folders" yaml:"folders"`
	TotalBytes uint64       `json:"total_bytes" yaml:"total_bytes"`
	Largest    *SearchMatch `json:"largest,omitempty" yaml:"largest,omitempty"`
	Warnings   []Warning    `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}
