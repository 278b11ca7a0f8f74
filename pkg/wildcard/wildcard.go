// Package wildcard matches names against shell-style patterns.
//
// Only two metacharacters are recognised: '*' matches any run of characters
// (including none) and '?' matches exactly one character. Everything else,
// including '/', '[' and '\', is literal. Matching is case-sensitive and
// works on Unicode code points.
package wildcard

// MatchAll is the pattern that matches every name.
const MatchAll = "*"

// Pattern is a compiled wildcard pattern. The zero value matches only the
// empty string.
type Pattern struct {
	src   string
	runes []rune
	all   bool
}

// Compile prepares pattern for repeated matching.
func Compile(pattern string) *Pattern {
	runes := []rune(pattern)
	all := len(runes) > 0
	for _, r := range runes {
		if r != '*' {
			all = false
			break
		}
	}
	return &Pattern{src: pattern, runes: runes, all: all}
}

// String returns the source pattern.
func (p *Pattern) String() string { return p.src }

// MatchesAll reports whether the pattern consists solely of stars.
func (p *Pattern) MatchesAll() bool { return p.all }

// Match reports whether name matches the whole pattern.
//
// Runs in O(len(pattern)*len(name)) worst case: on mismatch the matcher
// resumes from the most recent star, consuming one more character of name.
func (p *Pattern) Match(name string) bool {
	if p.all {
		return true
	}
	pat := p.runes
	str := []rune(name)

	pi, si := 0, 0
	star, mark := -1, 0
	for si < len(str) {
		switch {
		case pi < len(pat) && (pat[pi] == '?' || pat[pi] == str[si]):
			pi++
			si++
		case pi < len(pat) && pat[pi] == '*':
			star = pi
			mark = si
			pi++
		case star >= 0:
			pi = star + 1
			mark++
			si = mark
		default:
			return false
		}
	}
	for pi < len(pat) && pat[pi] == '*' {
		pi++
	}
	return pi == len(pat)
}

// Match compiles pattern and matches it against name.
func Match(pattern, name string) bool {
	return Compile(pattern).Match(name)
}

// IsMatchAll reports whether pattern is the literal default pattern "*".
// Patterns such as "**" match everything too but are not the default.
func IsMatchAll(pattern string) bool { return pattern == MatchAll }
