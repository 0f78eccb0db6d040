// FILE: override.go
package logcore

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverride applies string key-value overrides to the core's current configuration.
// Each override should be in the format "key=value". The core must be inactive.
//
// Example:
//
//	core, _ := logcore.New(nil)
//	err := core.ApplyOverride(
//	    "queue_capacity=4096",
//	    "default_level=debug",
//	    "file_path=/var/log/app/app.log",
//	)
func (c *Core) ApplyOverride(overrides ...string) error {
	cfg := c.getConfig().Clone()

	var errors []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errors = append(errors, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return combineConfigErrors(errors)
	}

	return c.ApplyConfig(cfg)
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var sb strings.Builder
	sb.WriteString("logcore: multiple configuration errors:")
	for i, err := range errors {
		errMsg := strings.TrimPrefix(err.Error(), "logcore: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, sb.String())
}

// applyConfigField applies a single key-value override to a Config.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	// Queue
	case "queue_capacity":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for queue_capacity '%s': %w", value, err)
		}
		cfg.QueueCapacity = intVal
	case "severe_flush_timeout_ms":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for severe_flush_timeout_ms '%s': %w", value, err)
		}
		cfg.SevereFlushTimeoutMs = intVal

	// Default sink
	case "default_sink":
		cfg.DefaultSink = value
	case "default_level":
		if _, err := ParseLevel(value); err != nil {
			return fmtErrorf("invalid level value '%s': %w", value, err)
		}
		cfg.DefaultLevel = value
	case "default_format":
		cfg.DefaultFormat = value
	case "timestamp_format":
		cfg.TimestampFormat = value

	// File sink
	case "file_path":
		cfg.FilePath = value
	case "file_level":
		if _, err := ParseLevel(value); err != nil {
			return fmtErrorf("invalid level value '%s': %w", value, err)
		}
		cfg.FileLevel = value
	case "file_keep":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for file_keep '%s': %w", value, err)
		}
		cfg.FileKeep = intVal
	case "file_max_size_mb":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for file_max_size_mb '%s': %w", value, err)
		}
		cfg.FileMaxSizeMB = intVal

	// Heartbeat
	case "heartbeat_interval_s":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for heartbeat_interval_s '%s': %w", value, err)
		}
		cfg.HeartbeatIntervalS = intVal

	// Internal error handling
	case "internal_errors_to_stderr":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for internal_errors_to_stderr '%s': %w", value, err)
		}
		cfg.InternalErrorsToStderr = boolVal

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}
