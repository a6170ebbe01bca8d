package fsbrowse

import (
	"errors"
	"io/fs"

	"github.com/boostgo/errorx"
)

var (
	ErrInvalidArgument = errorx.New("fsbrowse.search.invalid_argument")
	ErrInvalidPattern  = errorx.New("fsbrowse.search.invalid_pattern")
	ErrInvalidPath     = errorx.New("fsbrowse.path.invalid")

	ErrAccessDenied      = errorx.New("fsbrowse.fs.access_denied")
	ErrPathNotFound      = errorx.New("fsbrowse.fs.path_not_found")
	ErrStatFile          = errorx.New("fsbrowse.file.stat")
	ErrReparseCheck      = errorx.New("fsbrowse.file.reparse_check")
	ErrReadDirectory     = errorx.New("fsbrowse.directory.read")
	ErrDirectoryNotExist = errorx.New("fsbrowse.directory.not_exist")
	ErrNotDirectory      = errorx.New("fsbrowse.directory.not_directory")
	ErrAnalyzeDirectory  = errorx.New("fsbrowse.directory.analyze")
)

type pathErrorContext struct {
	Path  string `json:"path"`
	Error error  `json:"error"`
}

type argumentErrorContext struct {
	Argument string `json:"argument"`
	Value    string `json:"value"`
	Reason   string `json:"reason"`
}

func newInvalidArgument(argument, value, reason string) error {
	return ErrInvalidArgument.
		SetData(argumentErrorContext{
			Argument: argument,
			Value:    value,
			Reason:   reason,
		})
}

func newInvalidPattern(pattern string, err error) error {
	return ErrInvalidPattern.
		SetError(err).
		SetData(struct {
			Pattern string `json:"pattern"`
			Error   error  `json:"error"`
		}{
			Pattern: pattern,
			Error:   err,
		})
}

func newDirectoryNotExist(path string) error {
	return ErrDirectoryNotExist.
		SetData(pathErrorContext{
			Path:  path,
			Error: fs.ErrNotExist,
		})
}

func newNotDirectory(path string) error {
	return ErrNotDirectory.
		SetData(pathErrorContext{
			Path:  path,
			Error: nil,
		})
}

func newStatFile(path string, err error) error {
	return ErrStatFile.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newReparseCheck(path string, err error) error {
	return ErrReparseCheck.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

// classifyError maps a raw filesystem error to a warning kind and the
// matching errorx code.
func classifyError(path string, err error) (WarningKind, error) {
	ctx := pathErrorContext{
		Path:  path,
		Error: err,
	}

	switch {
	case errors.Is(err, fs.ErrPermission):
		return WarningAccessDenied, ErrAccessDenied.SetError(err).SetData(ctx)
	case errors.Is(err, fs.ErrNotExist):
		return WarningPathNotFound, ErrPathNotFound.SetError(err).SetData(ctx)
	default:
		return WarningIO, ErrReadDirectory.SetError(err).SetData(ctx)
	}
}
