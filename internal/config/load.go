package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var defineFlagsOnce sync.Once

// Load loads configuration from multiple sources with the following precedence:
// 1. Command line flags
// 2. Environment variables
// 3. Config file
// 4. Default values
func Load() (*Config, error) {
	v := viper.New()

	// Defaults (lowest priority)
	setDefaults(v)

	// --- Flags ---
	defineFlags()
	if !pflag.Parsed() {
		pflag.Parse()
	}

	// --- Config file ---
	cfgPath, _ := pflag.CommandLine.GetString("config")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.SetConfigName("pluralize")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/pluralize/")
		v.AddConfigPath("$HOME/.pluralize")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if cfgPath != "" {
			return nil, fmt.Errorf("failed to read config file %q: %w", cfgPath, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// --- Environment variables ---
	// Canonical keys: dot + snake_case
	// Env vars: PLURALIZE_INFLECT_COUNT
	v.SetEnvPrefix("PLURALIZE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// --- Flags binding (highest priority) ---
	bindChangedFlagsToViper(v)

	// --- Unmarshal (strict) ---
	var cfg Config
	if err := v.UnmarshalExact(
		&cfg,
		viper.DecodeHook(mapstructure.StringToSliceHookFunc(",")),
	); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers default values using canonical dotted keys.
func setDefaults(v *viper.Viper) {
	v.SetDefault("inflect.count", 2)
	v.SetDefault("inflect.inclusive", false)
	v.SetDefault("inflect.singular", false)
	v.SetDefault("inflect.classify", false)
	v.SetDefault("inflect.rules_file", "")
	v.SetDefault("inflect.uncountable", []string{})
	v.SetDefault("output.format", "text")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// bindChangedFlagsToViper copies only explicitly-set flags into Viper,
// preserving precedence: flags > env > file > defaults.
func bindChangedFlagsToViper(v *viper.Viper) {
	pflag.CommandLine.Visit(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "version" {
			return
		}

		switch f.Value.Type() {
		case "string":
			val, _ := pflag.CommandLine.GetString(f.Name)
			v.Set(f.Name, val)
		case "int":
			val, _ := pflag.CommandLine.GetInt(f.Name)
			v.Set(f.Name, val)
		case "bool":
			val, _ := pflag.CommandLine.GetBool(f.Name)
			v.Set(f.Name, val)
		case "stringSlice":
			val, _ := pflag.CommandLine.GetStringSlice(f.Name)
			v.Set(f.Name, val)
		default:
			v.Set(f.Name, f.Value.String())
		}
	})
}

// defineFlags defines all command line flags using canonical snake_case keys.
func defineFlags() {
	defineFlagsOnce.Do(func() {
		pflag.String("config", "", "Path to config file")

		// Inflection flags
		pflag.Int("inflect.count", 2, "Count to inflect for (1 or -1 singularizes)")
		pflag.Bool("inflect.inclusive", false, "Prefix results with the count")
		pflag.Bool("inflect.singular", false, "Singularize instead of pluralizing")
		pflag.Bool("inflect.classify", false, "Report plural/singular classification instead of transforming")
		pflag.String("inflect.rules_file", "", "Path to YAML file of custom inflection rules")
		pflag.StringSlice("inflect.uncountable", nil, "Additional uncountable words (comma-separated)")

		// Output flags
		pflag.String("output.format", "", "Output format (text, json)")

		// Logging flags
		pflag.String("logging.level", "", "Log level (debug, info, warn, error)")
		pflag.String("logging.format", "", "Log format (text, json)")
	})
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
