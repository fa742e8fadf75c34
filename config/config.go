package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation error in field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	if len(errs) == 0 {
		return "no validation errors"
	}

	var messages []string
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

func (errs ValidationErrors) HasErrors() bool {
	return len(errs) > 0
}

// Environment variables that override file values
const (
	EnvHost        = "SNIPPETS_HOST"
	EnvPort        = "SNIPPETS_PORT"
	EnvRouter      = "SNIPPETS_ROUTER"
	EnvLogLevel    = "SNIPPETS_LOG_LEVEL"
	EnvLogFormat   = "SNIPPETS_LOG_FORMAT"
	EnvDatabaseURL = "SNIPPETS_DATABASE_URL"
)

var (
	ValidRouters    = []string{"nethttp", "chi", "gin", "echo", "fiber"}
	ValidLogLevels  = []string{"trace", "debug", "info", "warn", "error"}
	ValidLogFormats = []string{"console", "json"}
	ValidFormats    = []string{"json", "yaml", "markdown"}
)

// ConfigLoadOptions provides options for loading configuration
type ConfigLoadOptions struct {
	Path              string
	EnvFile           string
	AllowMissing      bool
	ValidateStructure bool
	ApplyDefaults     bool
	Quiet             bool
}

// DefaultLoadOptions returns sensible defaults for config loading
func DefaultLoadOptions() ConfigLoadOptions {
	return ConfigLoadOptions{
		Path:              "snippets.yaml",
		EnvFile:           ".env",
		AllowMissing:      true,
		ValidateStructure: true,
		ApplyDefaults:     true,
		Quiet:             false,
	}
}

// ConfigManager handles configuration loading, validation, and management
type ConfigManager struct {
	options ConfigLoadOptions
}

// NewConfigManager creates a new configuration manager
func NewConfigManager(options ConfigLoadOptions) *ConfigManager {
	return &ConfigManager{
		options: options,
	}
}

// LoadConfig loads and validates the configuration
func (cm *ConfigManager) LoadConfig() (*Config, error) {
	return cm.LoadConfigFromPath(cm.options.Path)
}

// LoadConfigFromPath loads configuration from a specific path. The format is
// chosen by extension: .toml is TOML, anything else YAML.
func (cm *ConfigManager) LoadConfigFromPath(path string) (*Config, error) {
	if err := cm.loadEnvFile(); err != nil {
		return nil, err
	}

	var config Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if !cm.options.AllowMissing {
			return nil, fmt.Errorf("configuration file not found: %s\n\nRun 'snippets config init' to create one", path)
		}
		if !cm.options.Quiet {
			fmt.Printf("⚠️  Configuration file not found at %s, using defaults\n", path)
		}
		config = *DefaultConfig()
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %s: %w", path, err)
		}
		if err := Unmarshal(path, data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %s: %w\n\nPlease check your syntax", path, err)
		}
	}

	if err := applyEnv(&config); err != nil {
		return nil, err
	}

	if cm.options.ApplyDefaults {
		ApplyDefaults(&config)
	}

	if cm.options.ValidateStructure {
		if errs := Validate(&config); errs.HasErrors() {
			return nil, fmt.Errorf("configuration validation failed:\n%s", formatValidationErrors(errs))
		}
	}

	return &config, nil
}

func (cm *ConfigManager) loadEnvFile() error {
	if cm.options.EnvFile == "" {
		return nil
	}
	// godotenv never overrides variables that are already set
	if err := godotenv.Load(cm.options.EnvFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", cm.options.EnvFile, err)
	}
	return nil
}

// Unmarshal decodes data as TOML or YAML depending on the path's extension.
func Unmarshal(path string, data []byte, config *Config) error {
	if isTOML(path) {
		return toml.Unmarshal(data, config)
	}
	return yaml.Unmarshal(data, config)
}

// Marshal encodes config as TOML or YAML depending on the path's extension.
func Marshal(path string, config *Config) ([]byte, error) {
	if isTOML(path) {
		return toml.Marshal(config)
	}
	return yaml.Marshal(config)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func applyEnv(config *Config) error {
	if v := os.Getenv(EnvHost); v != "" {
		config.Server.Host = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		config.Server.Port = port
	}
	if v := os.Getenv(EnvRouter); v != "" {
		config.Server.Router = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		config.Log.Format = v
	}
	if v := os.Getenv(EnvDatabaseURL); v != "" {
		config.Publish.DatabaseURL = v
	}
	return nil
}

// Validate performs comprehensive validation on the configuration
func Validate(config *Config) ValidationErrors {
	var errors ValidationErrors

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   "server.port",
			Value:   config.Server.Port,
			Message: "port must be between 1 and 65535",
		})
	}

	if !contains(ValidRouters, config.Server.Router) {
		errors = append(errors, ValidationError{
			Field:   "server.router",
			Value:   config.Server.Router,
			Message: fmt.Sprintf("unsupported router '%s', valid options are: %s", config.Server.Router, strings.Join(ValidRouters, ", ")),
		})
	}

	errors = append(errors, ValidatePrefixes(config.Server)...)

	if !contains(ValidLogLevels, config.Log.Level) {
		errors = append(errors, ValidationError{
			Field:   "log.level",
			Value:   config.Log.Level,
			Message: fmt.Sprintf("unsupported log level '%s', valid options are: %s", config.Log.Level, strings.Join(ValidLogLevels, ", ")),
		})
	}

	if !contains(ValidLogFormats, config.Log.Format) {
		errors = append(errors, ValidationError{
			Field:   "log.format",
			Value:   config.Log.Format,
			Message: fmt.Sprintf("unsupported log format '%s', valid options are: %s", config.Log.Format, strings.Join(ValidLogFormats, ", ")),
		})
	}

	if config.Export.Dir == "" {
		errors = append(errors, ValidationError{
			Field:   "export.dir",
			Value:   config.Export.Dir,
			Message: "export directory cannot be empty",
		})
	}

	for _, format := range config.Export.Formats {
		if !contains(ValidFormats, format) {
			errors = append(errors, ValidationError{
				Field:   "export.formats",
				Value:   format,
				Message: fmt.Sprintf("unsupported export format '%s', valid options are: %s", format, strings.Join(ValidFormats, ", ")),
			})
		}
	}

	if config.Publish.Table == "" {
		errors = append(errors, ValidationError{
			Field:   "publish.table",
			Value:   config.Publish.Table,
			Message: "publish table cannot be empty",
		})
	}

	return errors
}

// ApplyDefaults sets default values for missing configuration fields
func ApplyDefaults(config *Config) {
	defaults := DefaultConfig()

	if config.Server.Host == "" {
		config.Server.Host = defaults.Server.Host
	}
	if config.Server.Port == 0 {
		config.Server.Port = defaults.Server.Port
	}
	if config.Server.Router == "" {
		config.Server.Router = defaults.Server.Router
	}
	if config.Server.APIPrefix == "" {
		config.Server.APIPrefix = defaults.Server.APIPrefix
	}
	if config.Server.SnippetPrefix == "" {
		config.Server.SnippetPrefix = defaults.Server.SnippetPrefix
	}
	if config.Server.DocsPrefix == "" {
		config.Server.DocsPrefix = defaults.Server.DocsPrefix
	}
	if config.Log.Level == "" {
		config.Log.Level = defaults.Log.Level
	}
	if config.Log.Format == "" {
		config.Log.Format = defaults.Log.Format
	}
	if config.Export.Dir == "" {
		config.Export.Dir = defaults.Export.Dir
	}
	if len(config.Export.Formats) == 0 {
		config.Export.Formats = defaults.Export.Formats
	}
	if config.Publish.Table == "" {
		config.Publish.Table = defaults.Publish.Table
	}
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:          "localhost",
			Port:          3000,
			Router:        "nethttp",
			APIPrefix:     "/api",
			SnippetPrefix: "/snippets",
			DocsPrefix:    "/docs",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Export: ExportConfig{
			Dir:     "dist/snippets",
			Formats: []string{"json", "yaml", "markdown"},
		},
		Publish: PublishConfig{
			Table: "snippets",
		},
	}
}

func formatValidationErrors(errors ValidationErrors) string {
	var lines []string
	for i, err := range errors {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, err.Error()))
	}
	return strings.Join(lines, "\n")
}

// ValidateConfigFile validates a configuration file without applying defaults
func ValidateConfigFile(path string) error {
	cm := NewConfigManager(ConfigLoadOptions{
		Path:              path,
		AllowMissing:      false,
		ValidateStructure: true,
		ApplyDefaults:     false,
		Quiet:             true,
	})

	_, err := cm.LoadConfigFromPath(path)
	return err
}

// ConfigInfo contains summary information about a configuration
type ConfigInfo struct {
	Path     string
	Address  string
	Router   string
	APIURL   string
	LogLevel string
	Formats  []string
	Publish  bool
}

// Info summarises config for display
func Info(path string, config *Config) *ConfigInfo {
	absPath, _ := filepath.Abs(path)
	return &ConfigInfo{
		Path:     absPath,
		Address:  config.Server.Address(),
		Router:   config.Server.Router,
		APIURL:   fmt.Sprintf("http://%s%s", config.Server.Address(), config.Server.APIPrefix),
		LogLevel: config.Log.Level,
		Formats:  config.Export.Formats,
		Publish:  config.Publish.DatabaseURL != "",
	}
}

// String returns a formatted string representation of config info
func (info *ConfigInfo) String() string {
	var lines []string
	lines = append(lines, "📋 Configuration Summary")
	lines = append(lines, fmt.Sprintf("   Path: %s", info.Path))
	lines = append(lines, fmt.Sprintf("   Address: %s", info.Address))
	lines = append(lines, fmt.Sprintf("   Router: %s", info.Router))
	lines = append(lines, fmt.Sprintf("   API: %s", info.APIURL))
	lines = append(lines, fmt.Sprintf("   Log level: %s", info.LogLevel))
	lines = append(lines, fmt.Sprintf("   Export formats: %s", strings.Join(info.Formats, ", ")))
	if info.Publish {
		lines = append(lines, "   Publish: postgres")
	}

	return strings.Join(lines, "\n")
}

// LoadConfig loads configuration using default options
func LoadConfig() (*Config, error) {
	cm := NewConfigManager(DefaultLoadOptions())
	return cm.LoadConfig()
}

// ValidatePrefixes checks that the API, snippet and docs prefixes are
// well formed and disjoint.
func ValidatePrefixes(server ServerConfig) ValidationErrors {
	var errs ValidationErrors

	prefixes := map[string]string{
		"server.api_prefix":     server.APIPrefix,
		"server.snippet_prefix": server.SnippetPrefix,
		"server.docs_prefix":    server.DocsPrefix,
	}
	// Prefixes must be disjoint: the API prefix also hosts the OpenAPI
	// document, schemas and docs UI, and nested routes collide on some routers.
	var checked []string
	for _, field := range []string{"server.api_prefix", "server.snippet_prefix", "server.docs_prefix"} {
		prefix := prefixes[field]
		if !strings.HasPrefix(prefix, "/") || prefix == "/" {
			errs = append(errs, ValidationError{
				Field:   field,
				Value:   prefix,
				Message: "prefix must start with '/' and name a path segment",
			})
			continue
		}
		for _, other := range checked {
			if msg := prefixConflict(prefix, prefixes[other], other); msg != "" {
				errs = append(errs, ValidationError{
					Field:   field,
					Value:   prefix,
					Message: msg,
				})
				break
			}
		}
		checked = append(checked, field)
	}

	return errs
}

var dsnPassword = regexp.MustCompile(`(password\s*=\s*)('(?:[^'\\]|\\.)*'|\S+)`)

// RedactDatabaseURL hides the password of a postgres URL or keyword/value
// connection string so it can be printed.
func RedactDatabaseURL(databaseURL string) string {
	if databaseURL == "" {
		return ""
	}
	if u, err := url.Parse(databaseURL); err == nil && u.Scheme != "" && u.Host != "" {
		redacted := u.Redacted()
		if q := u.Query(); q.Has("password") {
			q.Set("password", "xxxxx")
			ru, _ := url.Parse(redacted)
			ru.RawQuery = q.Encode()
			redacted = ru.String()
		}
		return redacted
	}
	return dsnPassword.ReplaceAllString(databaseURL, "${1}xxxxx")
}

// Redacted returns a copy of config that is safe to print
func Redacted(config *Config) *Config {
	c := *config
	c.Publish.DatabaseURL = RedactDatabaseURL(config.Publish.DatabaseURL)
	return &c
}

// prefixConflict describes how prefix overlaps the prefix configured for
// otherField, or returns "" when the two are disjoint.
func prefixConflict(prefix, other, otherField string) string {
	a := strings.TrimSuffix(prefix, "/")
	b := strings.TrimSuffix(other, "/")
	switch {
	case a == b:
		return fmt.Sprintf("prefix is already used by %s", otherField)
	case strings.HasPrefix(a, b+"/"):
		return fmt.Sprintf("prefix is nested under %s (%s)", otherField, other)
	case strings.HasPrefix(b, a+"/"):
		return fmt.Sprintf("prefix contains %s (%s)", otherField, other)
	}
	return ""
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

type Config struct {
	Server  ServerConfig  `yaml:"server" toml:"server"`
	Log     LogConfig     `yaml:"log" toml:"log"`
	Export  ExportConfig  `yaml:"export" toml:"export"`
	Publish PublishConfig `yaml:"publish" toml:"publish"`
}

type ServerConfig struct {
	Host          string `yaml:"host" toml:"host"`
	Port          int    `yaml:"port" toml:"port"`
	Router        string `yaml:"router" toml:"router"`                 // nethttp, chi, gin, echo, fiber
	APIPrefix     string `yaml:"api_prefix" toml:"api_prefix"`         // huma operations
	SnippetPrefix string `yaml:"snippet_prefix" toml:"snippet_prefix"` // raw snippet text
	DocsPrefix    string `yaml:"docs_prefix" toml:"docs_prefix"`       // rendered HTML pages
}

// Address is the host:port the server listens on
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // console or json
}

type ExportConfig struct {
	Dir     string   `yaml:"dir" toml:"dir"`
	Formats []string `yaml:"formats" toml:"formats"`
}

type PublishConfig struct {
	DatabaseURL string `yaml:"database_url,omitempty" toml:"database_url,omitempty"`
	Table       string `yaml:"table" toml:"table"`
}
