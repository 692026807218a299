package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"pluralize"
	"pluralize/internal/config"
	"pluralize/internal/logging"
	"pluralize/internal/rulefile"

	"github.com/spf13/pflag"
	"golang.org/x/term"
)

var (
	// Version is set at build time via -ldflags "-X main.Version=...".
	Version = "dev"
	Commit  = "none"
)

func main() {
	if err := run(); err != nil {
		slog.Error("pluralize error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	pflag.Bool("version", false, "Print version and exit")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if showVersion, _ := pflag.CommandLine.GetBool("version"); showVersion {
		fmt.Printf("pluralize %s (%s)\n", Version, Commit)
		return nil
	}

	validationResult := cfg.Validate()
	for _, warn := range validationResult.Warnings {
		slog.Warn("configuration warning",
			slog.String("field", warn.Field),
			slog.String("message", warn.Message),
			slog.String("hint", warn.Hint),
		)
	}
	if validationResult.HasErrors() {
		for _, err := range validationResult.Errors {
			slog.Error("configuration error",
				slog.String("field", err.Field),
				slog.String("message", err.Message),
				slog.String("hint", err.Hint),
			)
		}
		return fmt.Errorf("configuration validation failed")
	}

	logger := logging.NewLogger(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	eng, err := buildEngine(cfg, logger)
	if err != nil {
		return err
	}

	words, err := gatherWords(pflag.Args(), os.Stdin)
	if err != nil {
		return err
	}
	logger.Debug("inflecting words", slog.Int("count", len(words)))

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for _, word := range words {
		line, err := renderWord(eng, cfg, word)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

// buildEngine seeds an engine and layers the configured customizations
// on top: rules file first, then ad-hoc uncountables.
func buildEngine(cfg *config.Config, logger *logging.Logger) (*pluralize.Engine, error) {
	eng := pluralize.New()

	if cfg.Inflect.RulesFile != "" {
		if err := rulefile.LoadAndApply(cfg.Inflect.RulesFile, eng); err != nil {
			return nil, fmt.Errorf("failed to apply rules file: %w", err)
		}
		logger.Debug("custom rules applied", slog.String("path", cfg.Inflect.RulesFile))
	}

	for _, word := range cfg.Inflect.Uncountable {
		if err := eng.AddUncountableRule(pluralize.Literal(word)); err != nil {
			return nil, fmt.Errorf("failed to register uncountable %q: %w", word, err)
		}
	}
	return eng, nil
}

// gatherWords returns the words to inflect: positional arguments if any,
// otherwise one word per line from stdin when input is piped in.
func gatherWords(args []string, stdin *os.File) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if term.IsTerminal(int(stdin.Fd())) {
		return nil, fmt.Errorf("no words given: pass them as arguments or pipe them on stdin")
	}

	var words []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read words from stdin: %w", err)
	}
	return words, nil
}

// classification is the JSON shape of a --classify result.
type classification struct {
	Word     string `json:"word"`
	Plural   bool   `json:"plural"`
	Singular bool   `json:"singular"`
}

// inflection is the JSON shape of a transform result.
type inflection struct {
	Word   string `json:"word"`
	Result string `json:"result"`
}

// renderWord produces one output line for word according to the
// configured mode and format.
func renderWord(eng *pluralize.Engine, cfg *config.Config, word string) (string, error) {
	if cfg.Inflect.Classify {
		c := classification{
			Word:     word,
			Plural:   eng.IsPlural(word),
			Singular: eng.IsSingular(word),
		}
		if cfg.Output.Format == "json" {
			return marshalLine(c)
		}
		return fmt.Sprintf("%s: plural=%t singular=%t", c.Word, c.Plural, c.Singular), nil
	}

	count := cfg.Inflect.Count
	if cfg.Inflect.Singular {
		count = 1
	}
	result := eng.Pluralize(word, count, cfg.Inflect.Inclusive)

	if cfg.Output.Format == "json" {
		return marshalLine(inflection{Word: word, Result: result})
	}
	return result, nil
}

func marshalLine(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data), nil
}
