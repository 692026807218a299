package pluralize

import "sync"

var (
	defaultEngine *Engine
	defaultOnce   sync.Once
)

// Default returns the process-wide Engine shared by the package-level
// functions, creating it on first use.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = New()
	})
	return defaultEngine
}

// Plural returns the plural form of word using the default Engine.
func Plural(word string) string { return Default().Plural(word) }

// Singular returns the singular form of word using the default Engine.
func Singular(word string) string { return Default().Singular(word) }

// IsPlural reports whether word is already plural per the default Engine.
func IsPlural(word string) bool { return Default().IsPlural(word) }

// IsSingular reports whether word is already singular per the default
// Engine.
func IsSingular(word string) bool { return Default().IsSingular(word) }

// Pluralize inflects word for count using the default Engine.
func Pluralize(word string, count int, inclusive bool) string {
	return Default().Pluralize(word, count, inclusive)
}

// Singularize is shorthand for Pluralize(word, 1, inclusive) on the
// default Engine.
func Singularize(word string, inclusive bool) string {
	return Default().Singularize(word, inclusive)
}

// AddPluralRule appends a pluralization rule to the default Engine.
func AddPluralRule(pattern RulePattern, replacement string) error {
	return Default().AddPluralRule(pattern, replacement)
}

// AddSingularRule appends a singularization rule to the default Engine.
func AddSingularRule(pattern RulePattern, replacement string) error {
	return Default().AddSingularRule(pattern, replacement)
}

// AddUncountableRule marks a word or pattern uncountable on the default
// Engine.
func AddUncountableRule(pattern RulePattern) error {
	return Default().AddUncountableRule(pattern)
}

// AddIrregularRule registers an irregular pair on the default Engine.
func AddIrregularRule(singular, plural string) {
	Default().AddIrregularRule(singular, plural)
}

// ResetRules restores the default Engine to its seed ruleset.
func ResetRules() { Default().Reset() }
