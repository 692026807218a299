// Package rulefile loads custom inflection rules from YAML documents
// and applies them on top of an engine's defaults.
package rulefile

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"pluralize"
)

// File is the decoded form of a custom rules document.
type File struct {
	Irregulars          []Irregular `mapstructure:"irregulars"`
	Uncountables        []string    `mapstructure:"uncountables"`
	UncountablePatterns []string    `mapstructure:"uncountable_patterns"`
	PluralRules         []Rule      `mapstructure:"plural_rules"`
	SingularRules       []Rule      `mapstructure:"singular_rules"`
}

// Irregular is an exact singular/plural pair.
type Irregular struct {
	Singular string `mapstructure:"singular"`
	Plural   string `mapstructure:"plural"`
}

// Rule carries either a regex pattern or a whole-word literal, plus the
// replacement template. Exactly one of Pattern and Literal must be set.
type Rule struct {
	Pattern     string `mapstructure:"pattern"`
	Literal     string `mapstructure:"literal"`
	Replacement string `mapstructure:"replacement"`
}

func (r Rule) rulePattern(section string, index int) (pluralize.RulePattern, error) {
	switch {
	case r.Pattern != "" && r.Literal != "":
		return pluralize.RulePattern{}, fmt.Errorf("%s[%d]: pattern and literal are mutually exclusive", section, index)
	case r.Pattern != "":
		return pluralize.Pattern(r.Pattern), nil
	case r.Literal != "":
		return pluralize.Literal(r.Literal), nil
	default:
		return pluralize.RulePattern{}, fmt.Errorf("%s[%d]: pattern or literal is required", section, index)
	}
}

// Load reads and decodes a rules file. Unknown keys are rejected so
// typos surface instead of silently dropping rules.
func Load(path string) (*File, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read rules file %q: %w", path, err)
	}

	var f File
	if err := v.UnmarshalExact(&f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rules file %q: %w", path, err)
	}
	return &f, nil
}

// Apply registers the file's rules on eng in document order: irregulars,
// uncountable words, uncountable patterns, plural rules, then singular
// rules. The first invalid entry aborts with a section-qualified error;
// sections already applied stay applied.
func (f *File) Apply(eng *pluralize.Engine) error {
	for i, ir := range f.Irregulars {
		if ir.Singular == "" || ir.Plural == "" {
			return fmt.Errorf("irregulars[%d]: singular and plural are both required", i)
		}
		eng.AddIrregularRule(ir.Singular, ir.Plural)
	}

	for _, word := range f.Uncountables {
		if err := eng.AddUncountableRule(pluralize.Literal(word)); err != nil {
			return fmt.Errorf("uncountables: %w", err)
		}
	}
	for i, expr := range f.UncountablePatterns {
		if err := eng.AddUncountableRule(pluralize.Pattern(expr)); err != nil {
			return fmt.Errorf("uncountable_patterns[%d]: %w", i, err)
		}
	}

	for i, r := range f.PluralRules {
		pattern, err := r.rulePattern("plural_rules", i)
		if err != nil {
			return err
		}
		if err := eng.AddPluralRule(pattern, r.Replacement); err != nil {
			return fmt.Errorf("plural_rules[%d]: %w", i, err)
		}
	}
	for i, r := range f.SingularRules {
		pattern, err := r.rulePattern("singular_rules", i)
		if err != nil {
			return err
		}
		if err := eng.AddSingularRule(pattern, r.Replacement); err != nil {
			return fmt.Errorf("singular_rules[%d]: %w", i, err)
		}
	}
	return nil
}

// LoadAndApply is the common path for callers that do not need the
// decoded form.
func LoadAndApply(path string, eng *pluralize.Engine) error {
	f, err := Load(path)
	if err != nil {
		return err
	}
	return f.Apply(eng)
}
