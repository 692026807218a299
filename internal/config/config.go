// Package config loads CLI configuration from files, env vars, and
// flags, and validates it.
package config

// Config holds the application configuration.
type Config struct {
	Inflect InflectConfig `mapstructure:"inflect"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// InflectConfig holds inflection parameters.
type InflectConfig struct {
	// Count selects the target form: abs(1) singularizes, anything
	// else pluralizes.
	Count int `mapstructure:"count"`

	// Inclusive prefixes the count to each result ("5 tests").
	Inclusive bool `mapstructure:"inclusive"`

	// Singular forces singularization regardless of Count.
	Singular bool `mapstructure:"singular"`

	// Classify reports whether each word is plural/singular instead of
	// transforming it.
	Classify bool `mapstructure:"classify"`

	// RulesFile points at a YAML file of custom rules applied on top of
	// the defaults.
	RulesFile string `mapstructure:"rules_file"`

	// Uncountable lists additional uncountable words.
	Uncountable []string `mapstructure:"uncountable"`
}

// OutputConfig holds result formatting parameters.
type OutputConfig struct {
	Format string `mapstructure:"format"` // text, json
}

// LoggingConfig holds logging parameters.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text, json
}
