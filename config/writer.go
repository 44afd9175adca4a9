package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nnnkkk7/claude-extend/types"
)

// Backup creates a backup of the config file.
// Returns the path to the backup file.
// Backup filename format: {original}.backup.{YYYYMMDD-HHMMSS}
func Backup(configPath string) (string, error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		return "", fmt.Errorf("failed to read config for backup: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	backupPath := fmt.Sprintf("%s.backup.%s", configPath, timestamp)

	if err := os.WriteFile(backupPath, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	return backupPath, nil
}

// Marshal encodes tools as a tools.json document, keeping their order.
func Marshal(tools []types.Tool) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n  \"tools\": {")

	for i := range tools {
		if i > 0 {
			buf.WriteString(",")
		}

		key, err := json.Marshal(tools[i].Name)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal tool name: %w", err)
		}
		body, err := json.MarshalIndent(tools[i], "    ", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal tool %q: %w", tools[i].Name, err)
		}

		buf.WriteString("\n    ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(body)
	}

	if len(tools) > 0 {
		buf.WriteString("\n  ")
	}
	buf.WriteString("}\n}\n")
	return buf.Bytes(), nil
}

// WriteTools writes tools to configPath, creating parent directories.
// An existing file is backed up first; the returned backup path is empty
// when there was nothing to back up.
func WriteTools(configPath string, tools []types.Tool) (string, error) {
	content, err := Marshal(tools)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	var backupPath string
	if _, err := os.Stat(configPath); err == nil {
		backupPath, err = Backup(configPath)
		if err != nil {
			return "", fmt.Errorf("failed to create backup: %w", err)
		}
	}

	if err := atomicWrite(configPath, content); err != nil {
		return backupPath, fmt.Errorf("failed to write config: %w", err)
	}

	return backupPath, nil
}

// atomicWrite writes content to a file atomically using a temp file and rename.
func atomicWrite(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "cx-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(content); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
