package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// setupTree creates a.txt, big.bin (1 MiB), sub/b.TXT and sub/tool.exe
func setupTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))

	files := map[string]int{
		"a.txt":                          10,
		"big.bin":                        1024 * 1024,
		filepath.Join("sub", "b.TXT"):    20,
		filepath.Join("sub", "tool.exe"): 5,
	}
	for rel, size := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, rel), make([]byte, size), 0644))
	}

	return root
}

// run executes the root command with args and returns what it wrote to stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

type matchesDoc struct {
	Matches []struct {
		Name      string `json:"name" yaml:"name"`
		Path      string `json:"path" yaml:"path"`
		SizeBytes uint64 `json:"size_bytes" yaml:"size_bytes"`
	} `json:"matches" yaml:"matches"`
	Warnings []struct {
		Path string `json:"path" yaml:"path"`
		Kind string `json:"kind" yaml:"kind"`
	} `json:"warnings" yaml:"warnings"`
}

func (d matchesDoc) names() []string {
	names := make([]string, 0, len(d.Matches))
	for _, m := range d.Matches {
		names = append(names, m.Name)
	}
	return names
}

func TestFindPattern(t *testing.T) {
	root := setupTree(t)

	t.Run("CaseInsensitiveJSON", func(t *testing.T) {
		out, err := run(t, "find", "pattern", "*.txt", "--root", root, "--format", "json")
		require.NoError(t, err)

		var doc matchesDoc
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		assert.ElementsMatch(t, []string{"a.txt", "b.TXT"}, doc.names())
		assert.Empty(t, doc.Warnings)
	})

	t.Run("CaseSensitive", func(t *testing.T) {
		out, err := run(t, "find", "pattern", "*.TXT", "-C", root, "--format", "json", "--case-sensitive")
		require.NoError(t, err)

		var doc matchesDoc
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		assert.Equal(t, []string{"b.TXT"}, doc.names())
	})

	t.Run("Limit", func(t *testing.T) {
		out, err := run(t, "find", "pattern", "*", "-C", root, "--format", "json", "--limit", "1")
		require.NoError(t, err)

		var doc matchesDoc
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		assert.Len(t, doc.Matches, 1)
	})

	t.Run("IgnoreFile", func(t *testing.T) {
		ignore := filepath.Join(t.TempDir(), "ignore")
		require.NoError(t, os.WriteFile(ignore, []byte("sub/\n"), 0644))

		out, err := run(t, "find", "pattern", "*.txt", "-C", root, "--format", "json", "--ignore-file", ignore)
		require.NoError(t, err)

		var doc matchesDoc
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		assert.Equal(t, []string{"a.txt"}, doc.names())
	})

	t.Run("MissingIgnoreFile", func(t *testing.T) {
		_, err := run(t, "find", "pattern", "*.txt", "-C", root, "--ignore-file", filepath.Join(root, "nope"))
		assert.Error(t, err)
	})

	t.Run("MissingRootIsWarning", func(t *testing.T) {
		out, err := run(t, "find", "pattern", "*", "-C", filepath.Join(root, "missing"), "--format", "json")
		require.NoError(t, err)

		var doc matchesDoc
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		assert.Empty(t, doc.Matches)
		require.Len(t, doc.Warnings, 1)
		assert.Equal(t, "path_not_found", doc.Warnings[0].Kind)
	})
}

func TestFindExt(t *testing.T) {
	root := setupTree(t)

	out, err := run(t, "find", "ext", "TXT,.exe", "-C", root, "--format", "yaml")
	require.NoError(t, err)

	var doc matchesDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.ElementsMatch(t, []string{"a.txt", "b.TXT", "tool.exe"}, doc.names())

	_, err = run(t, "find", "ext", " , ", "-C", root)
	assert.Error(t, err)
}

func TestFindLarge(t *testing.T) {
	root := setupTree(t)

	t.Run("Table", func(t *testing.T) {
		out, err := run(t, "find", "large", "1", "-C", root, "--no-color")
		require.NoError(t, err)

		assert.Contains(t, out, "big.bin")
		assert.Contains(t, out, "1.0 MiB")
		assert.Contains(t, out, "1 match(es)")
		assert.NotContains(t, out, "a.txt")
	})

	t.Run("BadSize", func(t *testing.T) {
		for _, size := range []string{"abc", "-1", "NaN"} {
			_, err := run(t, "find", "large", "-C", root, "--", size)
			assert.Error(t, err, size)
		}
	})
}

func TestFindSystem(t *testing.T) {
	root := setupTree(t)
	sub := filepath.Join(root, "sub")

	out, err := run(t, "find", "system", "-C", sub, "--format", "json")
	require.NoError(t, err)

	var doc matchesDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	paths := make([]string, 0, len(doc.Matches))
	for _, m := range doc.Matches {
		paths = append(paths, m.Path)
	}
	assert.Contains(t, paths, filepath.Join(sub, "tool.exe"))
}

func TestList(t *testing.T) {
	root := setupTree(t)

	out, err := run(t, "ls", root, "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Entries []struct {
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Entries, 3)
	assert.Equal(t, "sub", doc.Entries[0].Name)
	assert.Equal(t, "folder", doc.Entries[0].Type)
	assert.Equal(t, "file", doc.Entries[1].Type)

	_, err = run(t, "ls", filepath.Join(root, "missing"))
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	root := setupTree(t)

	out, err := run(t, "stats", "-C", root, "--format", "yaml")
	require.NoError(t, err)

	var doc struct {
		Files      uint64 `yaml:"files"`
		Folders    uint64 `yaml:"folders"`
		TotalBytes uint64 `yaml:"total_bytes"`
		Largest    struct {
			Name string `yaml:"name"`
		} `yaml:"largest"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, uint64(4), doc.Files)
	assert.Equal(t, uint64(1), doc.Folders)
	assert.Equal(t, uint64(1024*1024+35), doc.TotalBytes)
	assert.Equal(t, "big.bin", doc.Largest.Name)

	_, err = run(t, "stats", filepath.Join(root, "missing"))
	assert.Error(t, err)
}

func TestTypes(t *testing.T) {
	root := setupTree(t)

	out, err := run(t, "types", root, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, ".txt")
	assert.Contains(t, out, ".bin")

	out, err = run(t, "types", root, "--format", "json")
	require.NoError(t, err)

	var doc map[string]struct {
		Count      uint64 `json:"count"`
		TotalBytes uint64 `json:"total_bytes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, uint64(2), doc[".txt"].Count)
	assert.Equal(t, uint64(30), doc[".txt"].TotalBytes)
}

func TestValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		out, err := run(t, "validate", `C:\Users\docs\file.txt`, "--no-color")
		require.NoError(t, err)
		assert.Contains(t, out, "VALID")
		assert.Contains(t, out, "path is valid")
	})

	t.Run("ReservedName", func(t *testing.T) {
		out, err := run(t, "validate", `C:\Users\NUL.txt`, "--format", "json")
		require.Error(t, err)

		var doc struct {
			Path      string `json:"path"`
			Valid     bool   `json:"valid"`
			Reason    string `json:"reason"`
			Violation string `json:"violation"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		assert.False(t, doc.Valid)
		assert.Equal(t, "reserved_name", doc.Violation)
		assert.Contains(t, doc.Reason, "NUL.txt")
	})
}

func TestConfigErrors(t *testing.T) {
	_, err := run(t, "ls", ".", "--format", "xml")
	assert.Error(t, err)

	cfg := filepath.Join(t.TempDir(), "fsbrowse.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("format: json\n"), 0644))

	out, err := run(t, "validate", "file.txt", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, `"valid": true`)
}
