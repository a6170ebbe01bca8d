package fsbrowse

import (
	"os"
	"strings"
)

func FileExist(path string) bool {
	stat, _ := os.Stat(path)
	if stat == nil {
		return false
	}

	return !stat.IsDir()
}

// ByteCount returns the size of the file at path
func (OSFileSystem) ByteCount(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}

	if info.IsDir() {
		return 0, newNotDirectory(path)
	}

	return uint64(info.Size()), nil
}

// FileInfo represents file information
type FileInfo struct {
	Path         string `json:"path" yaml:"path"`
	Name         string `json:"name" yaml:"name"`
	Size         uint64 `json:"size" yaml:"size"`
	Extension    string `json:"extension,omitempty" yaml:"extension,omitempty"`
	ModTime      string `json:"mod_time" yaml:"mod_time"`
	IsDir        bool   `json:"is_dir" yaml:"is_dir"`
	ReparsePoint bool   `json:"reparse_point,omitempty" yaml:"reparse_point,omitempty"`
}

// GetFileInfo returns detailed file information without following links
func GetFileInfo(path string) (*FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, newStatFile(path, err)
	}

	reparse, _ := OSFileSystem{}.IsReparsePoint(path)

	fileInfo := &FileInfo{
		Path:         path,
		Name:         info.Name(),
		ModTime:      info.ModTime().Format("2006-01-02 15:04:05"),
		IsDir:        info.IsDir(),
		ReparsePoint: reparse,
	}
	if !info.IsDir() {
		fileInfo.Size = uint64(info.Size())
		fileInfo.Extension = strings.ToLower(extension(info.Name()))
	}

	return fileInfo, nil
}
