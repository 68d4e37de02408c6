package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/vrange/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "vrange.json"

	// DefaultAddr is the default inspector listen address.
	DefaultAddr = "localhost:7070"

	// DefaultMetricsPath is where the inspector exposes Prometheus metrics.
	DefaultMetricsPath = "/metrics"

	// DefaultMaxDepth mirrors the renderer's default resolve depth.
	DefaultMaxDepth = 256

	// DefaultSnapshotDir is where snapshots are written when no bucket is set.
	DefaultSnapshotDir = "snapshots"
)

// Environment variables that override file settings.
const (
	EnvAddr     = "VRANGE_ADDR"
	EnvLogLevel = "VRANGE_LOG_LEVEL"
)

// Config represents vrange.json.
type Config struct {
	// Inspect configures the inspector server.
	Inspect InspectConfig `json:"inspect,omitempty"`

	// Log configures logging.
	Log LogConfig `json:"log,omitempty"`

	// Render configures the renderer.
	Render RenderConfig `json:"render,omitempty"`

	// Snapshot configures where serialized documents are stored.
	Snapshot SnapshotConfig `json:"snapshot,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// InspectConfig contains inspector server settings.
type InspectConfig struct {
	// Addr is the listen address, e.g. "localhost:7070".
	Addr string `json:"addr,omitempty"`

	// MetricsPath is the route serving Prometheus metrics.
	MetricsPath string `json:"metricsPath,omitempty"`

	// StreamBuffer is the number of records buffered per websocket client.
	StreamBuffer int `json:"streamBuffer,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// RenderConfig contains renderer settings.
type RenderConfig struct {
	// MaxDepth bounds component resolution.
	MaxDepth int `json:"maxDepth,omitempty"`
}

// SnapshotConfig selects the snapshot store. A non-empty Bucket selects S3.
type SnapshotConfig struct {
	Dir      string `json:"dir,omitempty"`
	Bucket   string `json:"bucket,omitempty"`
	Prefix   string `json:"prefix,omitempty"`
	Region   string `json:"region,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Inspect: InspectConfig{
			Addr:         DefaultAddr,
			MetricsPath:  DefaultMetricsPath,
			StreamBuffer: 64,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Render: RenderConfig{
			MaxDepth: DefaultMaxDepth,
		},
		Snapshot: SnapshotConfig{
			Dir:    DefaultSnapshotDir,
			Region: "us-east-1",
		},
	}
}

// Load reads vrange.json from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E201").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " or run without --config to use defaults")
		}
		return nil, errors.New("E202").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E202").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// LoadOrDefault loads vrange.json from dir, falling back to defaults when
// the file does not exist. Environment overrides are applied either way.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if err != nil {
		if errors.Code(err) != "E201" {
			return nil, err
		}
		cfg = New()
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E202").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E202").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// ApplyEnv overrides settings from VRANGE_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvAddr); v != "" {
		c.Inspect.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	d := New()
	if c.Inspect.Addr == "" {
		c.Inspect.Addr = d.Inspect.Addr
	}
	if c.Inspect.MetricsPath == "" {
		c.Inspect.MetricsPath = d.Inspect.MetricsPath
	}
	if c.Inspect.StreamBuffer == 0 {
		c.Inspect.StreamBuffer = d.Inspect.StreamBuffer
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
	if c.Render.MaxDepth == 0 {
		c.Render.MaxDepth = d.Render.MaxDepth
	}
	if c.Snapshot.Dir == "" {
		c.Snapshot.Dir = d.Snapshot.Dir
	}
	if c.Snapshot.Region == "" {
		c.Snapshot.Region = d.Snapshot.Region
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("E203").
			WithDetailf("log.format %q is not text or json", c.Log.Format)
	}
	if c.Render.MaxDepth < 1 {
		return errors.New("E203").
			WithDetailf("render.maxDepth must be positive, got %d", c.Render.MaxDepth)
	}
	if c.Inspect.StreamBuffer < 1 {
		return errors.New("E203").
			WithDetailf("inspect.streamBuffer must be positive, got %d", c.Inspect.StreamBuffer)
	}
	if !strings.HasPrefix(c.Inspect.MetricsPath, "/") {
		return errors.New("E203").
			WithDetailf("inspect.metricsPath %q must start with /", c.Inspect.MetricsPath)
	}
	return nil
}

// SlogLevel parses Log.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, errors.New("E203").
			WithDetail(fmt.Sprintf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	return level, nil
}

// UseS3 reports whether snapshots go to S3.
func (c *Config) UseS3() bool {
	return c.Snapshot.Bucket != ""
}
