package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pluralize"
	"pluralize/internal/config"
	"pluralize/internal/logging"
)

func testConfig() *config.Config {
	return &config.Config{
		Inflect: config.InflectConfig{Count: 2},
		Output:  config.OutputConfig{Format: "text"},
		Logging: config.LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestRenderWord(t *testing.T) {
	eng := pluralize.New()

	tests := []struct {
		name     string
		mutate   func(*config.Config)
		word     string
		expected string
	}{
		{
			name:     "default plural",
			mutate:   func(*config.Config) {},
			word:     "test",
			expected: "tests",
		},
		{
			name:     "singular mode",
			mutate:   func(c *config.Config) { c.Inflect.Singular = true },
			word:     "tests",
			expected: "test",
		},
		{
			name:     "count one",
			mutate:   func(c *config.Config) { c.Inflect.Count = 1 },
			word:     "tests",
			expected: "test",
		},
		{
			name:     "inclusive count",
			mutate:   func(c *config.Config) { c.Inflect.Count = 5; c.Inflect.Inclusive = true },
			word:     "test",
			expected: "5 tests",
		},
		{
			name:     "json output",
			mutate:   func(c *config.Config) { c.Output.Format = "json" },
			word:     "test",
			expected: `{"word":"test","result":"tests"}`,
		},
		{
			name:     "classify text",
			mutate:   func(c *config.Config) { c.Inflect.Classify = true },
			word:     "tests",
			expected: "tests: plural=true singular=false",
		},
		{
			name: "classify json",
			mutate: func(c *config.Config) {
				c.Inflect.Classify = true
				c.Output.Format = "json"
			},
			word:     "tests",
			expected: `{"word":"tests","plural":true,"singular":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)

			line, err := renderWord(eng, cfg, tt.word)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, line)
		})
	}
}

func TestBuildEngineUncountables(t *testing.T) {
	cfg := testConfig()
	cfg.Inflect.Uncountable = []string{"paper", "ink"}

	logger := logging.NewLogger(logging.Config{Level: "error", Format: "text"})
	eng, err := buildEngine(cfg, logger)
	require.NoError(t, err)

	assert.Equal(t, "paper", eng.Plural("paper"))
	assert.Equal(t, "ink", eng.Plural("ink"))
	assert.Equal(t, "tests", eng.Plural("test"))
}

func TestGatherWordsFromArgs(t *testing.T) {
	words, err := gatherWords([]string{"cat", "dog"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog"}, words)
}
