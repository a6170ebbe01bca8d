package fsbrowse

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Violation names the Windows naming rule a path broke
type Violation string

const (
	ViolationNone              Violation = ""
	ViolationInvalidColonUsage Violation = "invalid_colon_usage"
	ViolationForbiddenChar     Violation = "forbidden_character"
	ViolationReservedName      Violation = "reserved_name"
	ViolationTrailingChar      Violation = "invalid_trailing_character"
	ViolationPathTooLong       Violation = "path_too_long"
	ViolationMalformedSep      Violation = "malformed_separators"
)

const (
	longPathPrefix = `\\?\`

	MaxPathLength     = 260
	MaxLongPathLength = 32767

	forbiddenChars = `<>:"|?*`
)

var reservedNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {}, "COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {}, "LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// PathValidationResult is the outcome of a syntactic path check
type PathValidationResult struct {
	Valid     bool      `json:"valid" yaml:"valid"`
	Reason    string    `json:"reason" yaml:"reason"`
	Violation Violation `json:"violation,omitempty" yaml:"violation,omitempty"`
	Detail    string    `json:"detail,omitempty" yaml:"detail,omitempty"`
}

func invalid(violation Violation, detail, reason string) PathValidationResult {
	return PathValidationResult{
		Valid:     false,
		Reason:    reason,
		Violation: violation,
		Detail:    detail,
	}
}

// Validate checks a path against the Windows naming rules.
// It never touches the filesystem: a path may be valid before it exists.
// Checks run in a fixed order and the first violation is reported.
func Validate(path string) PathValidationResult {
	remaining := path
	isLong := strings.HasPrefix(remaining, longPathPrefix)
	if isLong {
		remaining = remaining[len(longPathPrefix):]
	}

	if hasDrivePrefix(remaining) {
		remaining = remaining[2:]
	}
	if strings.ContainsRune(remaining, ':') {
		return invalid(ViolationInvalidColonUsage, ":",
			"colon is only allowed as a drive designator (C:)")
	}

	if i := strings.IndexAny(remaining, forbiddenChars); i >= 0 {
		char := string(remaining[i])
		return invalid(ViolationForbiddenChar, char,
			fmt.Sprintf("path contains forbidden character '%s'", char))
	}

	components := splitComponents(remaining)
	for _, component := range components {
		if isReservedName(component) {
			return invalid(ViolationReservedName, component,
				fmt.Sprintf("reserved name used: %s", component))
		}
	}

	for _, component := range components {
		if component == "." || component == ".." {
			continue
		}
		if strings.HasSuffix(component, ".") || strings.HasSuffix(component, " ") {
			return invalid(ViolationTrailingChar, component,
				"file name cannot end with a dot or a space")
		}
	}

	limit := MaxPathLength
	if isLong {
		limit = MaxLongPathLength
	}
	if utf8.RuneCountInString(path) > limit {
		return invalid(ViolationPathTooLong, "",
			fmt.Sprintf("path is longer than %d characters", limit))
	}

	if hasDoubledSeparator(collapseSeparators(remaining)) {
		return invalid(ViolationMalformedSep, "",
			"path contains malformed separators")
	}

	return PathValidationResult{
		Valid:  true,
		Reason: "path is valid",
	}
}

// ValidatePath is Validate returning an error for invalid paths
func ValidatePath(path string) error {
	result := Validate(path)
	if result.Valid {
		return nil
	}

	return ErrInvalidPath.
		SetData(struct {
			Path      string    `json:"path"`
			Violation Violation `json:"violation"`
			Reason    string    `json:"reason"`
		}{
			Path:      path,
			Violation: result.Violation,
			Reason:    result.Reason,
		})
}

func hasDrivePrefix(path string) bool {
	if len(path) < 2 || path[1] != ':' {
		return false
	}
	c := path[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSeparator(c byte) bool {
	return c == '\\' || c == '/'
}

func splitComponents(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '\\' || r == '/'
	})
}

func isReservedName(component string) bool {
	_, ok := reservedNames[strings.ToUpper(stem(component))]
	return ok
}

// collapseSeparators squeezes runs of the same separator into one
func collapseSeparators(path string) string {
	var b strings.Builder
	b.Grow(len(path))
	for i := 0; i < len(path); i++ {
		if i > 0 && isSeparator(path[i]) && path[i] == path[i-1] {
			continue
		}
		b.WriteByte(path[i])
	}
	return b.String()
}

func hasDoubledSeparator(path string) bool {
	for i := 1; i < len(path); i++ {
		if isSeparator(path[i]) && isSeparator(path[i-1]) {
			return true
		}
	}
	return false
}

// stem returns a file name without its extension. Leading dots belong to
// the name, so ".profile" has no extension.
func stem(name string) string {
	return name[:len(name)-len(extension(name))]
}

// extension returns the suffix starting at the last dot, ignoring dots
// that only lead the name
func extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || strings.Trim(name[:i], ".") == "" {
		return ""
	}
	return name[i:]
}
