package fsbrowse

// DirectoryLister returns the immediate children of a directory.
// The order of the returned entries is the order searches report matches in.
type DirectoryLister interface {
	ListDirectory(path string) ([]DirectoryEntry, error)
}

// ReparsePointDetector reports whether a path is a symbolic link, junction
// or other reparse point that must not be descended into
type ReparsePointDetector interface {
	IsReparsePoint(path string) (bool, error)
}

// ByteCounter returns the size of a file in bytes
type ByteCounter interface {
	ByteCount(path string) (uint64, error)
}

// ExtensionHistogram counts files and bytes per extension under a root
type ExtensionHistogram interface {
	Histogram(root string) (ExtensionStats, error)
}

// SpecialFolderProvider maps well-known folder names (Desktop, Documents,
// Downloads) to their location on this machine
type SpecialFolderProvider interface {
	SpecialFolders() map[string]string
}

const (
	FolderDesktop   = "Desktop"
	FolderDocuments = "Documents"
	FolderDownloads = "Downloads"
)

var (
	_ DirectoryLister       = OSFileSystem{}
	_ ReparsePointDetector  = OSFileSystem{}
	_ ByteCounter           = OSFileSystem{}
	_ SpecialFolderProvider = OSFileSystem{}
	_ ExtensionHistogram    = (*Searcher)(nil)
)
