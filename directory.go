package fsbrowse

import (
	"os"
	"path/filepath"
)

// OSFileSystem implements the search collaborators on top of the local
// filesystem
type OSFileSystem struct{}

// ListDirectory reads the whole directory before returning so no handle
// stays open while the caller descends
func (OSFileSystem) ListDirectory(path string) ([]DirectoryEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	result := make([]DirectoryEntry, 0, len(entries))
	for _, entry := range entries {
		entryType := EntryFile
		if entry.IsDir() {
			entryType = EntryFolder
		}

		result = append(result, DirectoryEntry{
			Name: entry.Name(),
			Type: entryType,
		})
	}

	return result, nil
}

func DirectoryExist(path string) bool {
	stat, _ := os.Stat(path)
	if stat == nil {
		return false
	}

	return stat.IsDir()
}

// ListDirectory returns the immediate entries of a directory
func ListDirectory(path string) ([]DirectoryEntry, error) {
	if !DirectoryExist(path) {
		return nil, newDirectoryNotExist(path)
	}

	entries, err := OSFileSystem{}.ListDirectory(path)
	if err != nil {
		return nil, ErrReadDirectory.
			SetError(err).
			SetData(pathErrorContext{
				Path:  path,
				Error: err,
			})
	}

	return entries, nil
}

// AnalyzeFileTypes returns per-extension file counts and sizes for a tree
func AnalyzeFileTypes(root string) (ExtensionStats, error) {
	if err := checkDirectory(root); err != nil {
		return nil, err
	}

	return NewSearcher().Histogram(root)
}

// GetDirectoryStats returns file and folder counts and sizes for a tree
func GetDirectoryStats(root string) (*DirectoryStats, error) {
	if err := checkDirectory(root); err != nil {
		return nil, err
	}

	return NewSearcher().DirectoryStats(root), nil
}

func checkDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return newDirectoryNotExist(path)
		}
		_, wrapped := classifyError(path, err)
		return wrapped
	}

	if !info.IsDir() {
		return newNotDirectory(path)
	}

	return nil
}

// MoveDown resolves a subdirectory of current. The joined path is validated
// before it is touched, and it has to be an existing directory.
func MoveDown(current, name string) (string, error) {
	target := filepath.Join(current, name)
	if err := ValidatePath(target); err != nil {
		return current, err
	}

	if !DirectoryExist(target) {
		return current, newDirectoryNotExist(target)
	}

	return target, nil
}
