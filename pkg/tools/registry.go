package tools

import (
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/server"
)

// Registry collects the gateway's tools before they are installed on
// an MCP server.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
	order []string // registration order, keeps tools/list output stable
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry. Tool names must be unique;
// registering a name twice is a wiring bug and fails loudly.
func (r *Registry) Register(tool Tool) error {
	name := tool.Definition().Name
	if name == "" {
		return fmt.Errorf("tool has an empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %s already registered", name)
	}

	r.tools[name] = tool
	r.order = append(r.order, name)
	return nil
}

// Get retrieves a registered tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, ok := r.tools[name]
	return tool, ok
}

// Has checks if a tool is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.tools[name]
	return ok
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tools)
}

// List returns all registered tools in registration order.
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// Install adds every tool the policy admits to the server and returns
// the installed names in registration order. A nil policy installs
// everything.
func (r *Registry) Install(srv *server.MCPServer, policy *Policy) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	installed := make([]string, 0, len(r.order))
	for _, name := range r.order {
		tool := r.tools[name]
		if policy != nil && !policy.Allows(tool) {
			continue
		}
		srv.AddTool(tool.Definition(), tool.Handle)
		installed = append(installed, name)
	}
	return installed
}
