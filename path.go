package fsbrowse

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// NormalizePath rewrites a Windows path to use backslashes only, collapses
// repeated separators and drops a trailing separator unless the path is a
// drive root. A leading UNC "\\" is kept.
func NormalizePath(path string) string {
	path = strings.ReplaceAll(path, "/", `\`)

	unc := strings.HasPrefix(path, `\\`)
	path = collapseSeparators(path)
	if unc {
		path = `\` + path
	}

	if len(path) > 1 && strings.HasSuffix(path, `\`) && !isDriveRoot(path) && path != `\\` {
		path = strings.TrimRight(path, `\`)
	}

	return path
}

// ParentPath returns the parent of a Windows path. The parent of a drive
// root is the drive root itself, and a bare drive becomes its root ("C:\").
func ParentPath(path string) string {
	path = NormalizePath(path)
	if isDriveRoot(path) {
		return path
	}

	i := strings.LastIndexByte(path, '\\')
	if i < 0 {
		if hasDrivePrefix(path) {
			return path[:2] + `\`
		}
		return ""
	}

	parent := path[:i]
	switch {
	case parent == "":
		return `\`
	case len(parent) == 2 && hasDrivePrefix(parent):
		return parent + `\`
	}
	return parent
}

func isDriveRoot(path string) bool {
	return len(path) == 3 && hasDrivePrefix(path) && path[2] == '\\'
}

// FormatSize renders a byte count with binary units (KiB, MiB, GiB)
func FormatSize(bytes uint64) string {
	return humanize.IBytes(bytes)
}
