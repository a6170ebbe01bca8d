package fsbrowse

import (
	"io/fs"
	"path/filepath"
)

// fakeFS is an in-memory filesystem implementing every search collaborator
type fakeFS struct {
	dirs       map[string][]DirectoryEntry
	sizes      map[string]uint64
	reparse    map[string]bool
	listErr    map[string]error
	reparseErr map[string]error
	sizeErr    map[string]error
	folders    map[string]string

	listed []string
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		dirs:       make(map[string][]DirectoryEntry),
		sizes:      make(map[string]uint64),
		reparse:    make(map[string]bool),
		listErr:    make(map[string]error),
		reparseErr: make(map[string]error),
		sizeErr:    make(map[string]error),
		folders:    make(map[string]string),
	}
}

func (f *fakeFS) file(path string, size uint64) *fakeFS {
	f.addEntry(path, EntryFile)
	f.sizes[path] = size
	return f
}

func (f *fakeFS) dir(path string) *fakeFS {
	f.addEntry(path, EntryFolder)
	if _, ok := f.dirs[path]; !ok {
		f.dirs[path] = []DirectoryEntry{}
	}
	return f
}

func (f *fakeFS) root(path string) *fakeFS {
	if _, ok := f.dirs[path]; !ok {
		f.dirs[path] = []DirectoryEntry{}
	}
	return f
}

func (f *fakeFS) addEntry(path string, entryType EntryType) {
	parent := filepath.Dir(path)
	if _, ok := f.dirs[parent]; !ok {
		f.dirs[parent] = []DirectoryEntry{}
	}
	f.dirs[parent] = append(f.dirs[parent], DirectoryEntry{
		Name: filepath.Base(path),
		Type: entryType,
	})
}

func (f *fakeFS) ListDirectory(path string) ([]DirectoryEntry, error) {
	f.listed = append(f.listed, path)
	if err, ok := f.listErr[path]; ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: err}
	}

	entries, ok := f.dirs[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	out := make([]DirectoryEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (f *fakeFS) IsReparsePoint(path string) (bool, error) {
	if err, ok := f.reparseErr[path]; ok {
		return false, err
	}
	return f.reparse[path], nil
}

func (f *fakeFS) ByteCount(path string) (uint64, error) {
	if err, ok := f.sizeErr[path]; ok {
		return 0, err
	}
	size, ok := f.sizes[path]
	if !ok {
		return 0, fs.ErrNotExist
	}
	return size, nil
}

func (f *fakeFS) SpecialFolders() map[string]string {
	return f.folders
}

func (f *fakeFS) searcher(options ...SearcherOption) *Searcher {
	base := []SearcherOption{
		WithLister(f),
		WithReparseDetector(f),
		WithByteCounter(f),
		WithSpecialFolders(f),
	}
	return NewSearcher(append(base, options...)...)
}

func (f *fakeFS) listedCount(path string) int {
	count := 0
	for _, p := range f.listed {
		if p == path {
			count++
		}
	}
	return count
}

type stubHistogram struct {
	stats ExtensionStats
	err   error
	calls int
}

func (h *stubHistogram) Histogram(string) (ExtensionStats, error) {
	h.calls++
	return h.stats, h.err
}

// cycleTree builds root/a.txt, root/sub/b.TXT and root/sub/link, a reparse
// point whose listing is the root again
func cycleTree() *fakeFS {
	root := "root"
	f := newFakeFS().root(root)
	f.file(filepath.Join(root, "a.txt"), 10)
	f.dir(filepath.Join(root, "sub"))
	f.file(filepath.Join(root, "sub", "b.TXT"), 20)
	f.dir(filepath.Join(root, "sub", "link"))

	link := filepath.Join(root, "sub", "link")
	f.reparse[link] = true
	f.dirs[link] = f.dirs[root]
	return f
}
