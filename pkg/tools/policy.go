package tools

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Policy decides which registered tools the gateway exposes. Tool
// names are matched against glob patterns ("*_note" covers get_note,
// create_note, and so on). Denied patterns take precedence over
// allowed ones, and an empty allowed list admits every tool that no
// denied pattern matches.
type Policy struct {
	readOnly        bool
	allowedPatterns []glob.Glob
	deniedPatterns  []glob.Glob
}

// NewPolicy compiles the pattern lists into a policy. readOnly
// additionally withholds every tool whose ReadOnly method reports
// false, regardless of patterns.
func NewPolicy(readOnly bool, allowed, denied []string) (*Policy, error) {
	p := &Policy{readOnly: readOnly}

	for _, pattern := range allowed {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid allowed pattern '%s': %w", pattern, err)
		}
		p.allowedPatterns = append(p.allowedPatterns, g)
	}

	for _, pattern := range denied {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid denied pattern '%s': %w", pattern, err)
		}
		p.deniedPatterns = append(p.deniedPatterns, g)
	}

	return p, nil
}

// ReadOnly reports whether the policy withholds writing tools.
func (p *Policy) ReadOnly() bool {
	return p.readOnly
}

// Allows reports whether the tool may be exposed to clients.
func (p *Policy) Allows(tool Tool) bool {
	if p.readOnly && !tool.ReadOnly() {
		return false
	}

	name := tool.Definition().Name

	// Denied patterns take precedence
	for _, pattern := range p.deniedPatterns {
		if pattern.Match(name) {
			return false
		}
	}

	// If no allowed patterns specified, allow all (except denied)
	if len(p.allowedPatterns) == 0 {
		return true
	}

	for _, pattern := range p.allowedPatterns {
		if pattern.Match(name) {
			return true
		}
	}

	return false
}
