// Package config loads the optional first.jsonc file that overrides
// FIRST's defaults: the base temp directory workspaces are allocated
// under, whether artifacts are retained by default, and the grace period
// the Orchestrator allows an outstanding child before an interrupt is
// escalated. Loading follows a JSONC-with-schema-validation pattern: parse
// with hujson, validate against an embedded JSON Schema, then unmarshal
// into a plain Go struct.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tailscale/hujson"
)

// FileName is the default config file name, resolved relative to the
// caller's working directory when no explicit path is given.
const FileName = "first.jsonc"

// Config holds FIRST's configurable defaults. Every field is optional;
// fields absent from the file keep the values from DefaultConfig.
type Config struct {
	// BaseDir overrides the parent directory workspaces are allocated
	// under; empty means os.TempDir().
	BaseDir string `json:"base_dir,omitempty"`

	// KeepArtifacts, if true, makes FIRST_KEEP_ARTIFACTS the default even
	// when the environment variable is unset.
	KeepArtifacts bool `json:"keep_artifacts,omitempty"`

	// InterruptGrace is how long the Orchestrator waits for an outstanding
	// child to exit on its own after a cancellation signal before it
	// force-kills the child.
	InterruptGrace time.Duration `json:"-"`

	// InterruptGraceRaw is the wire form of InterruptGrace, a Go duration
	// string such as "5s"; exported only for JSON (un)marshaling.
	InterruptGraceRaw string `json:"interrupt_grace,omitempty"`
}

// DefaultConfig returns FIRST's built-in defaults, used when no config file
// is found.
func DefaultConfig() Config {
	return Config{
		BaseDir:           "",
		KeepArtifacts:     false,
		InterruptGrace:    5 * time.Second,
		InterruptGraceRaw: "5s",
	}
}

// schema is the embedded JSON Schema every config document is validated
// against before being unmarshaled into Config.
const schema = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"base_dir": {"type": "string"},
		"keep_artifacts": {"type": "boolean"},
		"interrupt_grace": {"type": "string", "pattern": "^[0-9]+(ns|us|ms|s|m|h)$"}
	}
}`

// Load reads and validates the config file at path. A missing file is not
// an error: Load returns DefaultConfig.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s is not valid JSONC: %w", path, err)
	}

	if err := validate(standardized); err != nil {
		return Config{}, fmt.Errorf("config: %s failed schema validation: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.InterruptGraceRaw != "" {
		d, err := time.ParseDuration(cfg.InterruptGraceRaw)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: interrupt_grace: %w", path, err)
		}
		cfg.InterruptGrace = d
	}

	return cfg, nil
}

// LoadDefault looks for FileName in dir and loads it, or returns
// DefaultConfig if it does not exist.
func LoadDefault(dir string) (Config, error) {
	return Load(filepath.Join(dir, FileName))
}

func validate(document []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("first-config.json", strings.NewReader(schema)); err != nil {
		return err
	}
	compiled, err := compiler.Compile("first-config.json")
	if err != nil {
		return err
	}

	var decoded any
	if err := json.NewDecoder(bytes.NewReader(document)).Decode(&decoded); err != nil {
		return fmt.Errorf("not valid JSON: %w", err)
	}

	return compiled.Validate(decoded)
}
