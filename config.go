// FILE: config.go
package logcore

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/lixenwraith/config"
	"github.com/pelletier/go-toml/v2"
)

// Default sink targets
const (
	SinkStderr = "stderr"
	SinkStdout = "stdout"
	SinkNone   = "none"
)

// configPrefix is the table the settings live under in a TOML file
const configPrefix = "logcore."

// Config holds all core configuration values
type Config struct {
	// Queue
	QueueCapacity        int64 `toml:"queue_capacity"`          // Records held before the oldest is evicted
	SevereFlushTimeoutMs int64 `toml:"severe_flush_timeout_ms"` // Producer wait after error/fatal records, 0 disables

	// Default sink, registered by Start when no sink exists
	DefaultSink     string `toml:"default_sink"`   // "stderr", "stdout" or "none"
	DefaultLevel    string `toml:"default_level"`  // Minimum level of the default sink
	DefaultFormat   string `toml:"default_format"` // "standard", "console", "json" or "terminal"
	TimestampFormat string `toml:"timestamp_format"`

	// Owned file sink, disabled when FilePath is empty
	FilePath      string `toml:"file_path"`
	FileLevel     string `toml:"file_level"`
	FileKeep      int64  `toml:"file_keep"`        // Numbered backups kept on rotation
	FileMaxSizeMB int64  `toml:"file_max_size_mb"` // >0 switches to size-based rotation

	// Heartbeat
	HeartbeatIntervalS int64 `toml:"heartbeat_interval_s"` // 0 disables

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"` // Report sink failures to stderr
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	QueueCapacity:        1024,
	SevereFlushTimeoutMs: 3000,

	DefaultSink:     SinkStderr,
	DefaultLevel:    "info",
	DefaultFormat:   FormatStandard,
	TimestampFormat: DefaultTimestampFormat,

	FilePath:      "",
	FileLevel:     "trace",
	FileKeep:      5,
	FileMaxSizeMB: 0,

	HeartbeatIntervalS: 0,

	InternalErrorsToStderr: true,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from the [logcore] table of a TOML file.
// A missing file yields the defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()

	if err := loader.RegisterStruct(configPrefix, *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}

	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, configPrefix, cfg); err != nil {
		return nil, fmtErrorf("failed to extract config values: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides keyed by toml tag
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmtErrorf("failed to apply overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue
		}

		if err := setFieldValue(v.Field(i), val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides to the Config struct
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	fieldMap := make(map[string]reflect.Value, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if tomlTag := t.Field(i).Tag.Get("toml"); tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		case float64:
			// Number literals decoded into any
			if v != float64(int64(v)) {
				return fmt.Errorf("expected integer, got %v", v)
			}
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// Validate checks every setting and reports all problems at once
func (c *Config) Validate() error {
	var errs []error

	if c.QueueCapacity <= 0 {
		errs = append(errs, configErrorf("queue_capacity must be positive: %d", c.QueueCapacity))
	}
	if c.SevereFlushTimeoutMs < 0 {
		errs = append(errs, configErrorf("severe_flush_timeout_ms cannot be negative: %d", c.SevereFlushTimeoutMs))
	}

	switch c.DefaultSink {
	case SinkStderr, SinkStdout, SinkNone:
	default:
		errs = append(errs, configErrorf("invalid default_sink: '%s' (use stderr, stdout, or none)", c.DefaultSink))
	}
	if _, err := ParseLevel(c.DefaultLevel); err != nil {
		errs = append(errs, configErrorf("invalid default_level: '%s'", c.DefaultLevel))
	}
	switch c.DefaultFormat {
	case FormatStandard, FormatConsole, FormatJSON, FormatTerminal:
	default:
		errs = append(errs, configErrorf("invalid default_format: '%s' (use standard, console, json, or terminal)", c.DefaultFormat))
	}
	if strings.TrimSpace(c.TimestampFormat) == "" {
		errs = append(errs, configErrorf("timestamp_format cannot be empty"))
	}

	if c.FilePath != "" {
		if _, err := ParseLevel(c.FileLevel); err != nil {
			errs = append(errs, configErrorf("invalid file_level: '%s'", c.FileLevel))
		}
	}
	if c.FileKeep < 0 {
		errs = append(errs, configErrorf("file_keep cannot be negative: %d", c.FileKeep))
	}
	if c.FileMaxSizeMB < 0 {
		errs = append(errs, configErrorf("file_max_size_mb cannot be negative: %d", c.FileMaxSizeMB))
	}
	if c.HeartbeatIntervalS < 0 {
		errs = append(errs, configErrorf("heartbeat_interval_s cannot be negative: %d", c.HeartbeatIntervalS))
	}

	return combineConfigErrors(errs)
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// SevereFlushTimeout is the producer wait applied after error and fatal records
func (c *Config) SevereFlushTimeout() time.Duration {
	return time.Duration(c.SevereFlushTimeoutMs) * time.Millisecond
}

// WriteTOML writes the configuration as a [logcore] table
func (c *Config) WriteTOML(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(map[string]*Config{strings.TrimSuffix(configPrefix, "."): c}); err != nil {
		return fmtErrorf("failed to encode config: %w", err)
	}
	return nil
}
