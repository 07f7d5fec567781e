// Package config reads the environment variables that configure the
// image-asset command.
//
//   - IMAGE_ASSET_LOG_LEVEL: logrus level name, or a boolean for debug
//   - IMAGE_ASSET_AUTO_ORIENT: apply EXIF orientation on load (default true)
//   - IMAGE_ASSET_MAX_FILE_BYTES: size cap for file loads (default 256 MiB)
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultMaxFileBytes is the file size cap used when none is configured.
const DefaultMaxFileBytes int64 = 256 << 20

// Var returns the value of an environment variable with surrounding space
// and quotes removed.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// LogLevel returns the configured log level.
// Configurable via IMAGE_ASSET_LOG_LEVEL
// Default: info
func LogLevel() logrus.Level {
	s := Var("IMAGE_ASSET_LOG_LEVEL")
	if s == "" {
		return logrus.InfoLevel
	}
	if level, err := logrus.ParseLevel(s); err == nil {
		return level
	}
	if b, err := strconv.ParseBool(s); err == nil {
		if b {
			return logrus.DebugLevel
		}
		return logrus.InfoLevel
	}

	logrus.WithFields(logrus.Fields{"key": "IMAGE_ASSET_LOG_LEVEL", "value": s}).
		Warn("invalid environment variable, using default")
	return logrus.InfoLevel
}

// BoolWithDefault returns a reader for a boolean variable. An unparsable
// value counts as true.
func BoolWithDefault(key string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(key); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// Int64 returns a reader for a non-negative integer variable.
func Int64(key string, defaultValue int64) func() int64 {
	return func() int64 {
		if s := Var(key); s != "" {
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil || n < 0 {
				logrus.WithFields(logrus.Fields{"key": key, "value": s, "default": defaultValue}).
					Warn("invalid environment variable, using default")
				return defaultValue
			}
			return n
		}
		return defaultValue
	}
}

var autoOrient = BoolWithDefault("IMAGE_ASSET_AUTO_ORIENT")

// AutoOrient reports whether loads apply EXIF orientation.
// Configurable via IMAGE_ASSET_AUTO_ORIENT
// Default: true
func AutoOrient() bool {
	return autoOrient(true)
}

// MaxFileBytes is the size cap for file loads. Zero disables the cap.
// Configurable via IMAGE_ASSET_MAX_FILE_BYTES
var MaxFileBytes = Int64("IMAGE_ASSET_MAX_FILE_BYTES", DefaultMaxFileBytes)

// EnvVar is one configuration variable with its current value.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every configuration variable keyed by name.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"IMAGE_ASSET_LOG_LEVEL":      {"IMAGE_ASSET_LOG_LEVEL", LogLevel(), "Log level name, or a boolean to enable debug logging"},
		"IMAGE_ASSET_AUTO_ORIENT":    {"IMAGE_ASSET_AUTO_ORIENT", AutoOrient(), "Apply EXIF orientation when loading (default true)"},
		"IMAGE_ASSET_MAX_FILE_BYTES": {"IMAGE_ASSET_MAX_FILE_BYTES", MaxFileBytes(), "Maximum size of an image file in bytes, 0 for no limit"},
	}
}
