package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/gtz123456/Trip-Planner/internal/config"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/samber/lo"
)

// toolRuntime abstracts the external tool attached to a session.
type toolRuntime interface {
	Tools() []toolParam
	Call(ctx context.Context, name string, input json.RawMessage) (string, error)
	Close() error
}

// mcpRuntime runs a command-based MCP server as a child process scoped to one
// session and proxies tool calls to it over stdio.
type mcpRuntime struct {
	session *mcp.ClientSession
	tools   []toolParam
}

// newMCPRuntime spawns the tool server and performs the MCP handshake,
// advertising the credential through the configured environment variable.
// Any failure here means no runnable session is left behind.
func newMCPRuntime(ctx context.Context, cfg *config.ToolConfig, credential string) (*mcpRuntime, error) {
	cmd := exec.CommandContext(ctx, cfg.Command, cfg.Args...)
	cmd.Env = append(os.Environ(), fmt.Sprintf("%s=%s", cfg.EnvKey, credential))

	client := mcp.NewClient(&mcp.Implementation{Name: "trip-planner", Version: "0.1.0"}, nil)

	session, err := client.Connect(ctx, &mcp.CommandTransport{Command: cmd}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrToolRegistration, err)
	}

	list, err := session.ListTools(ctx, nil)
	if err != nil {
		session.Close()
		return nil, fmt.Errorf("%w: %v", ErrToolRegistration, err)
	}

	tools := lo.Map(list.Tools, func(t *mcp.Tool, _ int) toolParam {
		schema, err := json.Marshal(t.InputSchema)
		if err != nil {
			schema = json.RawMessage(`{"type":"object"}`)
		}
		return toolParam{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: schema,
		}
	})

	return &mcpRuntime{session: session, tools: tools}, nil
}

// Tools returns the tool definitions advertised by the server, converted to
// the model provider's tool parameter shape.
func (r *mcpRuntime) Tools() []toolParam {
	return r.tools
}

// Call invokes one tool and returns the flattened text of its result.
func (r *mcpRuntime) Call(ctx context.Context, name string, input json.RawMessage) (string, error) {
	var args map[string]any
	if len(input) > 0 {
		if err := json.Unmarshal(input, &args); err != nil {
			return "", fmt.Errorf("tool %s: invalid input: %w", name, err)
		}
	}

	result, err := r.session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		return "", fmt.Errorf("tool %s: %w", name, err)
	}

	text := flattenContent(result.Content)
	if result.IsError {
		if text == "" {
			text = "unknown tool error"
		}
		return "", fmt.Errorf("tool %s: %s", name, text)
	}

	return text, nil
}

// Close terminates the tool server process.
func (r *mcpRuntime) Close() error {
	return r.session.Close()
}

// flattenContent joins the text portions of an MCP tool result.
func flattenContent(content []mcp.Content) string {
	var parts []string
	for _, item := range content {
		if text, ok := item.(*mcp.TextContent); ok && text.Text != "" {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}
