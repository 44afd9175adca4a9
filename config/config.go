// Package config locates and loads the external tools configuration for cx.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nnnkkk7/claude-extend/types"
)

// EnvConfigPath names the environment variable holding an explicit config path.
const EnvConfigPath = "CLAUDE_EXTEND_CONFIG"

// rawConfig represents the top-level JSON structure of tools.json.
type rawConfig struct {
	Tools json.RawMessage `json:"tools"`
}

// DefaultConfigPaths returns the per-user config locations in lookup order.
func DefaultConfigPaths() []string {
	homeDir, _ := os.UserHomeDir()
	return []string{
		filepath.Join(homeDir, ".config", "claude-extend", "tools.json"),
		filepath.Join(homeDir, ".claude-extend", "tools.json"),
	}
}

// Locate returns the first existing config file, checking the
// CLAUDE_EXTEND_CONFIG environment variable before the per-user locations.
// Returns false when no config file exists.
func Locate() (string, bool) {
	var candidates []string
	if env := os.Getenv(EnvConfigPath); env != "" {
		candidates = append(candidates, env)
	}
	candidates = append(candidates, DefaultConfigPaths()...)

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// Load reads, validates and parses a tools config file.
// Tools are returned in the order they appear in the file.
func Load(path string) ([]types.Tool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse validates and parses tools config content.
func Parse(data []byte) ([]types.Tool, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return decodeTools(raw.Tools)
}

// decodeTools walks the "tools" object token by token so that the
// resulting slice keeps the key order of the file.
func decodeTools(raw json.RawMessage) ([]types.Tool, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse tools: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("failed to parse tools: expected an object")
	}

	tools := []types.Tool{}
	seen := make(map[string]bool)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse tools: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse tools: unexpected token %v", tok)
		}

		var tool types.Tool
		if err := dec.Decode(&tool); err != nil {
			return nil, fmt.Errorf("failed to parse tool %q: %w", key, err)
		}

		if tool.Name != key {
			return nil, fmt.Errorf("tool %q: name %q does not match its key", key, tool.Name)
		}
		if seen[key] {
			return nil, fmt.Errorf("tool %q is defined more than once", key)
		}
		if err := tool.Validate(); err != nil {
			return nil, err
		}

		seen[key] = true
		tools = append(tools, tool)
	}

	return tools, nil
}
