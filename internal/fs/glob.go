package fs

import (
	"fmt"

	"github.com/gobwas/glob"
)

// GlobMatcher hides names matching any of a set of shell-style patterns.
type GlobMatcher struct {
	patterns []string
	globs    []glob.Glob
}

// CompileGlobs compiles patterns such as "*.pyc" or "node_modules".
func CompileGlobs(patterns []string) (*GlobMatcher, error) {
	m := &GlobMatcher{
		patterns: make([]string, 0, len(patterns)),
		globs:    make([]glob.Glob, 0, len(patterns)),
	}
	for _, p := range patterns {
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid hide pattern %q: %w", p, err)
		}
		m.patterns = append(m.patterns, p)
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// Match reports whether name matches one of the patterns.
func (m *GlobMatcher) Match(name string) bool {
	if m == nil {
		return false
	}
	for _, g := range m.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Patterns returns the compiled patterns in their original form.
func (m *GlobMatcher) Patterns() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.patterns...)
}
