package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	// EnvAgentBaseURL overrides the model provider base URL.
	EnvAgentBaseURL = "AGENT_BASE_URL"

	// EnvAgentModel overrides the model identifier used for planning tasks.
	EnvAgentModel = "AGENT_MODEL"

	// EnvAnthropicAPIKey supplies a server-side default model provider credential.
	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"

	// EnvFirecrawlAPIKey supplies a server-side default crawling tool credential.
	EnvFirecrawlAPIKey = "FIRECRAWL_API_KEY"
)

// ToolConfig describes the command-based crawling tool attached to every
// planning session.
type ToolConfig struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
	EnvKey  string   `toml:"env_key"`
	APIKey  string   `toml:"api_key"`
}

// AgentConfig contains model provider and task execution configuration.
type AgentConfig struct {
	BaseURL      string     `toml:"base_url"`
	Model        string     `toml:"model"`
	MaxTokens    int        `toml:"max_tokens"`
	MaxToolTurns int        `toml:"max_tool_turns"`
	APIKey       string     `toml:"api_key"`
	Tool         ToolConfig `toml:"tool"`
}

// Finalize applies defaults, loads environment overrides, and validates the agent configuration.
func (c *AgentConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AgentConfig) Merge(overlay *AgentConfig) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.MaxTokens != 0 {
		c.MaxTokens = overlay.MaxTokens
	}
	if overlay.MaxToolTurns != 0 {
		c.MaxToolTurns = overlay.MaxToolTurns
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Tool.Command != "" {
		c.Tool.Command = overlay.Tool.Command
	}
	if overlay.Tool.Args != nil {
		c.Tool.Args = overlay.Tool.Args
	}
	if overlay.Tool.EnvKey != "" {
		c.Tool.EnvKey = overlay.Tool.EnvKey
	}
	if overlay.Tool.APIKey != "" {
		c.Tool.APIKey = overlay.Tool.APIKey
	}
}

func (c *AgentConfig) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.anthropic.com"
	}
	if c.Model == "" {
		c.Model = "claude-3-5-haiku-20241022"
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 8192
	}
	if c.MaxToolTurns == 0 {
		c.MaxToolTurns = 8
	}
	if c.Tool.Command == "" {
		c.Tool.Command = "npx"
	}
	if c.Tool.Args == nil {
		c.Tool.Args = []string{"-y", "firecrawl-mcp"}
	}
	if c.Tool.EnvKey == "" {
		c.Tool.EnvKey = "FIRECRAWL_API_KEY"
	}
}

func (c *AgentConfig) loadEnv() {
	if v := os.Getenv(EnvAgentBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvAgentModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvAnthropicAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvFirecrawlAPIKey); v != "" {
		c.Tool.APIKey = v
	}
}

func (c *AgentConfig) validate() error {
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("invalid base_url: %s", c.BaseURL)
	}
	if c.MaxTokens < 1 {
		return fmt.Errorf("invalid max_tokens: %d", c.MaxTokens)
	}
	if c.MaxToolTurns < 1 {
		return fmt.Errorf("invalid max_tool_turns: %d", c.MaxToolTurns)
	}
	return nil
}
