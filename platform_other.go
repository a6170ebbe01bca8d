//go:build !windows

package fsbrowse

import (
	"os"
	"path/filepath"
)

// IsReparsePoint treats symbolic links as reparse points
func (OSFileSystem) IsReparsePoint(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return false, err
	}

	return info.Mode()&os.ModeSymlink != 0, nil
}

// SpecialFolders maps the well-known folders to their usual place in the
// home directory
func (OSFileSystem) SpecialFolders() map[string]string {
	home, err := os.UserHomeDir()
	if err != nil {
		return map[string]string{}
	}

	return map[string]string{
		FolderDesktop:   filepath.Join(home, FolderDesktop),
		FolderDocuments: filepath.Join(home, FolderDocuments),
		FolderDownloads: filepath.Join(home, FolderDownloads),
	}
}
