// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/gpt-convert/pkg/types"
)

const (
	configName = "gpt-convert"
	envPrefix  = "GPT_CONVERT"
)

// flagKeys maps command-line flags to the config keys they override.
var flagKeys = map[string]string{
	"output-dir": "output.dir",
	"log-level":  "log.level",
}

// loadConfig resolves the run configuration from, in increasing priority:
// defaults, the config file, .env and process environment variables, and
// flags. cfgFile names an explicit config file; when empty the file is
// looked up as ./gpt-convert.yaml or ~/.config/gpt-convert/gpt-convert.yaml.
func loadConfig(v *viper.Viper, cfgFile string, flags *pflag.FlagSet) (types.Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	def := types.DefaultConfig()
	v.SetDefault("http.timeout", def.HTTP.Timeout)
	v.SetDefault("http.user_agent", def.HTTP.UserAgent)
	v.SetDefault("http.max_retries", def.HTTP.MaxRetries)
	v.SetDefault("transcript.languages", def.Transcript.Languages)
	v.SetDefault("output.dir", def.Output.Dir)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("report.enabled", def.Report.Enabled)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return types.Config{}, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if len(cfg.Transcript.Languages) == 0 {
		cfg.Transcript.Languages = def.Transcript.Languages
	}
	return cfg, nil
}
