// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds settings for the web article fetch.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with the request. Empty keeps
	// the Go default.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries is the number of retries on HTTP 429. Zero disables retry.
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// TranscriptConfig holds settings for transcript retrieval.
type TranscriptConfig struct {
	// Languages is the ordered language preference list. The first language
	// with an available transcript wins.
	Languages []string `json:"languages" yaml:"languages" mapstructure:"languages"`
}

// OutputConfig holds settings for the output writer.
type OutputConfig struct {
	// Dir overrides the directory outputs are written to.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a zerolog level name: debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// ReportConfig holds settings for the end-of-run resource report.
type ReportConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
}

// Config groups all settings for a conversion run.
type Config struct {
	HTTP       HTTPConfig       `json:"http" yaml:"http" mapstructure:"http"`
	Transcript TranscriptConfig `json:"transcript" yaml:"transcript" mapstructure:"transcript"`
	Output     OutputConfig     `json:"output" yaml:"output" mapstructure:"output"`
	Log        LogConfig        `json:"log" yaml:"log" mapstructure:"log"`
	Report     ReportConfig     `json:"report" yaml:"report" mapstructure:"report"`
}

// DefaultLanguages is the transcript language preference used when none is
// configured.
var DefaultLanguages = []string{"en", "en-US", "de"}

// DefaultConfig returns the configuration used when no file, environment
// variable, or flag overrides a setting.
func DefaultConfig() Config {
	return Config{
		Transcript: TranscriptConfig{Languages: append([]string(nil), DefaultLanguages...)},
		Log:        LogConfig{Level: "warn"},
		Report:     ReportConfig{Enabled: true},
	}
}
