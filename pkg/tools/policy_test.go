package tools

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTool struct {
	name     string
	readOnly bool
}

func (s stubTool) Definition() mcp.Tool {
	return mcp.NewTool(s.name)
}

func (s stubTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText("ok"), nil
}

func (s stubTool) ReadOnly() bool {
	return s.readOnly
}

func TestPolicyAllowsEverythingByDefault(t *testing.T) {
	policy, err := NewPolicy(false, nil, nil)
	require.NoError(t, err)

	assert.True(t, policy.Allows(stubTool{name: "list_notes", readOnly: true}))
	assert.True(t, policy.Allows(stubTool{name: "delete_note", readOnly: false}))
}

func TestPolicyReadOnlyWithholdsWriteTools(t *testing.T) {
	policy, err := NewPolicy(true, nil, nil)
	require.NoError(t, err)

	assert.True(t, policy.ReadOnly())
	assert.True(t, policy.Allows(stubTool{name: "list_notes", readOnly: true}))
	assert.True(t, policy.Allows(stubTool{name: "get_note", readOnly: true}))
	assert.False(t, policy.Allows(stubTool{name: "create_note", readOnly: false}))
	assert.False(t, policy.Allows(stubTool{name: "delete_note", readOnly: false}))
}

func TestPolicyPatterns(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		denied  []string
		tool    string
		want    bool
	}{
		{
			name: "empty allowed admits all",
			tool: "search_notes",
			want: true,
		},
		{
			name:    "allowed restricts to listed tools",
			allowed: []string{"list_notes", "get_note"},
			tool:    "create_note",
			want:    false,
		},
		{
			name:    "allowed admits listed tool",
			allowed: []string{"list_notes", "get_note"},
			tool:    "get_note",
			want:    true,
		},
		{
			name:    "allowed glob matches family",
			allowed: []string{"*_note"},
			tool:    "update_note",
			want:    true,
		},
		{
			name:    "allowed glob excludes non-matching",
			allowed: []string{"*_note"},
			tool:    "list_folders",
			want:    false,
		},
		{
			name:   "denied blocks tool",
			denied: []string{"delete_note"},
			tool:   "delete_note",
			want:   false,
		},
		{
			name:    "denied takes precedence over allowed",
			allowed: []string{"*"},
			denied:  []string{"delete_*"},
			tool:    "delete_note",
			want:    false,
		},
		{
			name:   "denied leaves other tools alone",
			denied: []string{"delete_note"},
			tool:   "update_note",
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, err := NewPolicy(false, tt.allowed, tt.denied)
			require.NoError(t, err)

			got := policy.Allows(stubTool{name: tt.tool, readOnly: false})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPolicyRejectsInvalidPattern(t *testing.T) {
	_, err := NewPolicy(false, []string{"["}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid allowed pattern")

	_, err = NewPolicy(false, nil, []string{"["})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid denied pattern")
}
