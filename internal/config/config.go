package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/logsviewer/logsviewer/internal/errors"
	"github.com/logsviewer/logsviewer/pkg/routes"
)

const (
	// JSONFileName is the name of the JSON configuration file.
	JSONFileName = "logsviewer.json"

	// TOMLFileName is the name of the TOML configuration file.
	TOMLFileName = "logsviewer.toml"

	// DefaultPort is the default server port.
	DefaultPort = 8080

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultFocusDelay is how long after a navigation focus moves to the
	// primary content container.
	DefaultFocusDelay = "50ms"

	// DefaultFocusTarget is the id of the primary content container.
	DefaultFocusTarget = "primary-app-container"

	// DefaultNotFoundTitle is the document title of the fallback view.
	DefaultNotFoundTitle = "404 Page Not Found"
)

// Environment overrides.
const (
	EnvHost     = "LOGSVIEWER_HOST"
	EnvPort     = "LOGSVIEWER_PORT"
	EnvLogLevel = "LOGSVIEWER_LOG_LEVEL"
)

// Config represents the complete LogsViewer configuration.
type Config struct {
	// Name is the application name shown in logs.
	Name string `json:"name,omitempty" toml:"name,omitempty"`

	// Server contains HTTP and session settings.
	Server ServerConfig `json:"server" toml:"server"`

	// Navigation contains route table and side-effect settings.
	Navigation NavigationConfig `json:"navigation" toml:"navigation"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics" toml:"metrics"`

	// Tracing contains OpenTelemetry settings.
	Tracing TracingConfig `json:"tracing" toml:"tracing"`

	// Log contains logging settings.
	Log LogConfig `json:"log" toml:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty" toml:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty" toml:"port,omitempty"`

	// ReadTimeout is how long a live session may stay silent (e.g., "60s").
	ReadTimeout string `json:"readTimeout,omitempty" toml:"read_timeout,omitempty"`

	// WriteTimeout bounds a single frame write.
	WriteTimeout string `json:"writeTimeout,omitempty" toml:"write_timeout,omitempty"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout string `json:"shutdownTimeout,omitempty" toml:"shutdown_timeout,omitempty"`

	// MaxSessions limits concurrent live sessions (0 = unlimited).
	MaxSessions int `json:"maxSessions,omitempty" toml:"max_sessions,omitempty"`
}

// NavigationConfig contains navigation pipeline settings.
type NavigationConfig struct {
	// FocusDelay is the delay before focus retargeting (e.g., "50ms").
	FocusDelay string `json:"focusDelay,omitempty" toml:"focus_delay,omitempty"`

	// FocusTarget is the id of the container that receives focus.
	FocusTarget string `json:"focusTarget,omitempty" toml:"focus_target,omitempty"`

	// NotFoundTitle is the title applied when no route matches.
	NotFoundTitle string `json:"notFoundTitle,omitempty" toml:"not_found_title,omitempty"`

	// DuplicatePaths is "reject" (fail at startup) or "first-match".
	DuplicatePaths string `json:"duplicatePaths,omitempty" toml:"duplicate_paths,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled exposes navigation metrics and the scrape endpoint.
	Enabled bool `json:"enabled" toml:"enabled"`

	// Namespace is the metrics namespace.
	Namespace string `json:"namespace,omitempty" toml:"namespace,omitempty"`

	// Path is the scrape endpoint path.
	Path string `json:"path,omitempty" toml:"path,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	// Enabled wraps every navigation in a span.
	Enabled bool `json:"enabled" toml:"enabled"`

	// TracerName is the name of the tracer.
	TracerName string `json:"tracerName,omitempty" toml:"tracer_name,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `json:"level,omitempty" toml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" toml:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Name: "logsviewer",
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			ReadTimeout:     "60s",
			WriteTimeout:    "10s",
			ShutdownTimeout: "15s",
		},
		Navigation: NavigationConfig{
			FocusDelay:     DefaultFocusDelay,
			FocusTarget:    DefaultFocusTarget,
			NotFoundTitle:  DefaultNotFoundTitle,
			DuplicatePaths: routes.DuplicateReject.String(),
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "logsviewer",
			Path:      "/metrics",
		},
		Tracing: TracingConfig{
			TracerName: "logsviewer",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from the specified directory. It looks for
// logsviewer.json first, then logsviewer.toml.
func Load(dir string) (*Config, error) {
	for _, name := range []string{JSONFileName, TOMLFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E100").
		WithDetail("No " + JSONFileName + " or " + TOMLFileName + " found in " + dir).
		WithSuggestion("Run 'logsviewer serve' without --config to use defaults")
}

// LoadFile reads configuration from the specified file path. The format is
// chosen by extension.
func LoadFile(path string) (*Config, error) {
	unmarshal, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").WithDetail(path + " does not exist")
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := New()
	if err := unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check the file syntax")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	cfg.loadEnv()

	return cfg, nil
}

func decoderFor(path string) (func([]byte, any) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Unmarshal, nil
	case ".toml":
		return toml.Unmarshal, nil
	default:
		return nil, errors.New("E105").WithDetail("unsupported file " + filepath.Base(path))
	}
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path in the format
// implied by its extension.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	case ".toml":
		data, err = toml.Marshal(c)
	default:
		return errors.New("E105").WithDetail("unsupported file " + filepath.Base(path))
	}
	if err != nil {
		return errors.New("E107").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E107").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	d := New()

	if c.Name == "" {
		c.Name = d.Name
	}
	if c.Server.Host == "" {
		c.Server.Host = d.Server.Host
	}
	if c.Server.Port == 0 {
		c.Server.Port = d.Server.Port
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = d.Server.ReadTimeout
	}
	if c.Server.WriteTimeout == "" {
		c.Server.WriteTimeout = d.Server.WriteTimeout
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = d.Server.ShutdownTimeout
	}

	if c.Navigation.FocusDelay == "" {
		c.Navigation.FocusDelay = d.Navigation.FocusDelay
	}
	if c.Navigation.FocusTarget == "" {
		c.Navigation.FocusTarget = d.Navigation.FocusTarget
	}
	if c.Navigation.NotFoundTitle == "" {
		c.Navigation.NotFoundTitle = d.Navigation.NotFoundTitle
	}
	if c.Navigation.DuplicatePaths == "" {
		c.Navigation.DuplicatePaths = d.Navigation.DuplicatePaths
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = d.Metrics.Namespace
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = d.Metrics.Path
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = d.Tracing.TracerName
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
}

// loadEnv applies environment overrides.
func (c *Config) loadEnv() {
	if v := os.Getenv(EnvHost); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E102").
			WithDetailf("Port must be between 0 and 65535, got %d", c.Server.Port)
	}

	durations := map[string]string{
		"server.readTimeout":     c.Server.ReadTimeout,
		"server.writeTimeout":    c.Server.WriteTimeout,
		"server.shutdownTimeout": c.Server.ShutdownTimeout,
		"navigation.focusDelay":  c.Navigation.FocusDelay,
	}
	for field, value := range durations {
		d, err := time.ParseDuration(value)
		if err != nil || d < 0 {
			return errors.New("E103").WithDetailf("%s: %q is not a valid duration", field, value)
		}
	}

	if _, err := routes.ParseDuplicatePolicy(c.Navigation.DuplicatePaths); err != nil {
		return errors.New("E104").Wrap(err)
	}

	if _, ok := logLevels[strings.ToLower(c.Log.Level)]; !ok {
		return errors.New("E106").WithDetailf("unknown level %q", c.Log.Level)
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		return errors.New("E106").WithDetailf("unknown format %q", c.Log.Format)
	}
	return nil
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// FocusDelay returns the parsed focus retargeting delay.
func (c *Config) FocusDelay() time.Duration {
	return parseDuration(c.Navigation.FocusDelay)
}

// ReadTimeout returns the parsed session read timeout.
func (c *Config) ReadTimeout() time.Duration {
	return parseDuration(c.Server.ReadTimeout)
}

// WriteTimeout returns the parsed frame write timeout.
func (c *Config) WriteTimeout() time.Duration {
	return parseDuration(c.Server.WriteTimeout)
}

// ShutdownTimeout returns the parsed graceful shutdown timeout.
func (c *Config) ShutdownTimeout() time.Duration {
	return parseDuration(c.Server.ShutdownTimeout)
}

// DuplicatePolicy returns the route table duplicate path policy.
// Invalid values fall back to rejecting duplicates.
func (c *Config) DuplicatePolicy() routes.DuplicatePolicy {
	p, err := routes.ParseDuplicatePolicy(c.Navigation.DuplicatePaths)
	if err != nil {
		return routes.DuplicateReject
	}
	return p
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// LogLevel returns the slog level for the configured level name.
func (c *Config) LogLevel() slog.Level {
	if l, ok := logLevels[strings.ToLower(c.Log.Level)]; ok {
		return l
	}
	return slog.LevelInfo
}

func parseDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}
