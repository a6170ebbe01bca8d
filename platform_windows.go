//go:build windows

package fsbrowse

import (
	"golang.org/x/sys/windows"
)

// IsReparsePoint checks FILE_ATTRIBUTE_REPARSE_POINT, which covers symbolic
// links, junctions and mount points alike
func (OSFileSystem) IsReparsePoint(path string) (bool, error) {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, err
	}

	attrs, err := windows.GetFileAttributes(name)
	if err != nil {
		return false, err
	}

	return attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0, nil
}

var knownFolders = map[string]*windows.KNOWNFOLDERID{
	FolderDesktop:   windows.FOLDERID_Desktop,
	FolderDocuments: windows.FOLDERID_Documents,
	FolderDownloads: windows.FOLDERID_Downloads,
}

// SpecialFolders resolves the shell known folders of the current user.
// Folders that cannot be resolved are left out.
func (OSFileSystem) SpecialFolders() map[string]string {
	folders := make(map[string]string, len(knownFolders))
	for name, id := range knownFolders {
		path, err := windows.KnownFolderPath(id, windows.KF_FLAG_DEFAULT)
		if err != nil || path == "" {
			continue
		}
		folders[name] = path
	}

	return folders
}
