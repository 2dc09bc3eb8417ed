package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultScriptDelay is the pause between startup script commands.
const DefaultScriptDelay = 500 * time.Millisecond

// Config holds all configurable vshell settings.
type Config struct {
	VFSPath       string `json:"vfs_path"` // reserved, not read by the shell
	LogFile       string `json:"log_file"`
	StartupScript string `json:"startup_script"`
	ScriptDelay   string `json:"script_delay"` // Go duration, e.g. "500ms"
	Username      string `json:"username"`     // override $USER
	Hostname      string `json:"hostname"`     // override os.Hostname
}

// Defaults returns sensible default configuration values.
func Defaults() Config {
	return Config{
		ScriptDelay: DefaultScriptDelay.String(),
	}
}

// Delay parses ScriptDelay. An empty value means the default.
func (c Config) Delay() (time.Duration, error) {
	if c.ScriptDelay == "" {
		return DefaultScriptDelay, nil
	}
	d, err := time.ParseDuration(c.ScriptDelay)
	if err != nil {
		return 0, fmt.Errorf("invalid script_delay %q: %w", c.ScriptDelay, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid script_delay %q: must not be negative", c.ScriptDelay)
	}
	return d, nil
}

// LoadGlobal reads ~/.config/vshell/config.json.
// Returns defaults if the file is absent.
func LoadGlobal() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(home, ".config", "vshell", "config.json")
	return loadFile(path, true)
}

// LoadProject reads .vshellconfig in the current working directory.
// Returns nil (no error) if the file is absent.
func LoadProject() (*Config, error) {
	return loadFile(".vshellconfig", false)
}

// loadFile reads and parses a JSON config file at path.
// If returnDefaults is true, returns defaults when the file is absent.
// If returnDefaults is false, returns nil when the file is absent.
func loadFile(path string, returnDefaults bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if returnDefaults {
				d := Defaults()
				return &d, nil
			}
			return nil, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &cfg, nil
}

// Merge combines global and project configs, with project taking precedence.
// Missing keys fall back to global, then defaults.
func Merge(global, project *Config) Config {
	result := Defaults()
	result.overlay(global)
	result.overlay(project)
	return result
}

// ApplyFlags overlays command-line values. Only non-empty values win,
// so unset flags keep the file or default value.
func (c *Config) ApplyFlags(flags Config) {
	c.overlay(&flags)
}

func (c *Config) overlay(o *Config) {
	if o == nil {
		return
	}
	if o.VFSPath != "" {
		c.VFSPath = o.VFSPath
	}
	if o.LogFile != "" {
		c.LogFile = o.LogFile
	}
	if o.StartupScript != "" {
		c.StartupScript = o.StartupScript
	}
	if o.ScriptDelay != "" {
		c.ScriptDelay = o.ScriptDelay
	}
	if o.Username != "" {
		c.Username = o.Username
	}
	if o.Hostname != "" {
		c.Hostname = o.Hostname
	}
}

// ParseError is returned when a config file exists but cannot be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "failed to parse config file " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
