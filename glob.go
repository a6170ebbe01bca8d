package fsbrowse

import (
	"fmt"
	"strings"
)

type globTokenKind int

const (
	globLiteral globTokenKind = iota
	globAnyOne
	globStar
	globClass
)

type runeRange struct {
	lo, hi rune
}

type charClass struct {
	negated bool
	ranges  []runeRange
}

func (c *charClass) matches(r rune) bool {
	for _, rr := range c.ranges {
		if r >= rr.lo && r <= rr.hi {
			return !c.negated
		}
	}
	return c.negated
}

type globToken struct {
	kind  globTokenKind
	char  rune
	class *charClass
}

// Glob is a compiled shell-style pattern anchored at both ends of a name.
//
//	?      exactly one character
//	*      zero or more characters
//	[...]  one character from the class; ranges (a-z) and negation ([!...] or [^...])
//
// An unterminated '[' is matched literally.
type Glob struct {
	pattern       string
	caseSensitive bool
	tokens        []globToken
}

// CompileGlob compiles pattern. In case-insensitive mode both the pattern
// and every matched name are lower-cased.
func CompileGlob(pattern string, caseSensitive bool) (*Glob, error) {
	if pattern == "" {
		return nil, newInvalidArgument("pattern", pattern, "pattern is empty")
	}

	source := pattern
	if !caseSensitive {
		source = strings.ToLower(source)
	}

	runes := []rune(source)
	tokens := make([]globToken, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '*':
			if n := len(tokens); n > 0 && tokens[n-1].kind == globStar {
				continue
			}
			tokens = append(tokens, globToken{kind: globStar})
		case '?':
			tokens = append(tokens, globToken{kind: globAnyOne})
		case '[':
			class, end, err := parseClass(runes, i)
			if err != nil {
				return nil, newInvalidPattern(pattern, err)
			}
			if class == nil {
				tokens = append(tokens, globToken{kind: globLiteral, char: '['})
				continue
			}
			tokens = append(tokens, globToken{kind: globClass, class: class})
			i = end
		default:
			tokens = append(tokens, globToken{kind: globLiteral, char: runes[i]})
		}
	}

	return &Glob{
		pattern:       pattern,
		caseSensitive: caseSensitive,
		tokens:        tokens,
	}, nil
}

// parseClass parses the class opening at runes[start]. It returns a nil
// class when the bracket is never closed.
func parseClass(runes []rune, start int) (*charClass, int, error) {
	class := &charClass{}
	j := start + 1
	if j < len(runes) && (runes[j] == '!' || runes[j] == '^') {
		class.negated = true
		j++
	}
	// a ']' right after the opening is a member
	if j < len(runes) && runes[j] == ']' {
		class.ranges = append(class.ranges, runeRange{lo: ']', hi: ']'})
		j++
	}

	for j < len(runes) && runes[j] != ']' {
		lo := runes[j]
		if j+2 < len(runes) && runes[j+1] == '-' && runes[j+2] != ']' {
			hi := runes[j+2]
			if hi < lo {
				return nil, 0, fmt.Errorf("bad character range %c-%c", lo, hi)
			}
			class.ranges = append(class.ranges, runeRange{lo: lo, hi: hi})
			j += 3
			continue
		}
		class.ranges = append(class.ranges, runeRange{lo: lo, hi: lo})
		j++
	}

	if j >= len(runes) {
		return nil, 0, nil
	}
	return class, j, nil
}

// Pattern returns the source pattern
func (g *Glob) Pattern() string {
	return g.pattern
}

// Match reports whether the whole name matches the pattern
func (g *Glob) Match(name string) bool {
	if !g.caseSensitive {
		name = strings.ToLower(name)
	}

	s := []rune(name)
	t := g.tokens
	si, ti := 0, 0
	starToken, starName := -1, 0

	for si < len(s) {
		if ti < len(t) {
			tok := t[ti]
			switch tok.kind {
			case globStar:
				starToken, starName = ti, si
				ti++
				continue
			case globAnyOne:
				si++
				ti++
				continue
			case globLiteral:
				if tok.char == s[si] {
					si++
					ti++
					continue
				}
			case globClass:
				if tok.class.matches(s[si]) {
					si++
					ti++
					continue
				}
			}
		}

		// backtrack: let the last star swallow one more character
		if starToken >= 0 {
			starName++
			si = starName
			ti = starToken + 1
			continue
		}
		return false
	}

	for ti < len(t) && t[ti].kind == globStar {
		ti++
	}
	return ti == len(t)
}
