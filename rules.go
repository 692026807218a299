package pluralize

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidRulePattern is returned when a rule is registered with a
// pattern that is neither a usable literal word nor a compilable regular
// expression. Registration never mutates engine state before this check
// passes.
var ErrInvalidRulePattern = errors.New("invalid rule pattern")

type patternKind int

const (
	patternNone patternKind = iota
	patternLiteral
	patternRegexp
)

// RulePattern identifies the word form a rule applies to. Construct one
// with Literal or Pattern; the zero value is rejected at registration
// time with ErrInvalidRulePattern.
type RulePattern struct {
	kind patternKind
	expr string
}

// Literal returns a RulePattern matching exactly the given word,
// case-insensitively. The word is anchored (^word$) before being
// compiled as a regular expression.
func Literal(word string) RulePattern {
	return RulePattern{kind: patternLiteral, expr: word}
}

// Pattern returns a RulePattern built from regular expression source.
// The expression is compiled case-insensitively once, at registration.
func Pattern(expr string) RulePattern {
	return RulePattern{kind: patternRegexp, expr: expr}
}

// compile resolves the pattern into its single internal regex
// representation.
func (p RulePattern) compile() (*regexp.Regexp, error) {
	var src string
	switch p.kind {
	case patternLiteral:
		src = "(?i)^" + p.expr + "$"
	case patternRegexp:
		src = "(?i)" + p.expr
	default:
		return nil, fmt.Errorf("%w: not constructed with Literal or Pattern", ErrInvalidRulePattern)
	}

	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRulePattern, err)
	}
	return re, nil
}

// rule pairs a compiled pattern with its replacement template. Templates
// reference capture groups as $0 (whole match) through $9.
type rule struct {
	re   *regexp.Regexp
	repl string
}

// AddPluralRule appends a pluralization rule. Rules registered later are
// tried first, so additions override the defaults.
func (e *Engine) AddPluralRule(pattern RulePattern, replacement string) error {
	re, err := pattern.compile()
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.pluralRules = append(e.pluralRules, rule{re: re, repl: replacement})
	return nil
}

// AddSingularRule appends a singularization rule. Rules registered later
// are tried first, so additions override the defaults.
func (e *Engine) AddSingularRule(pattern RulePattern, replacement string) error {
	re, err := pattern.compile()
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.singularRules = append(e.singularRules, rule{re: re, repl: replacement})
	return nil
}

// AddUncountableRule marks a word or pattern as having no distinct
// plural form. A Literal is added to the exact-word set. A Pattern is
// added to the uncountable pattern set and additionally registered as an
// identity ($0) rule on both rule sequences, so pattern-based
// uncountability also participates in rule precedence.
func (e *Engine) AddUncountableRule(pattern RulePattern) error {
	switch pattern.kind {
	case patternLiteral:
		e.mu.Lock()
		defer e.mu.Unlock()
		e.uncountables[strings.ToLower(pattern.expr)] = struct{}{}
		return nil

	case patternRegexp:
		re, err := pattern.compile()
		if err != nil {
			return err
		}
		e.mu.Lock()
		defer e.mu.Unlock()
		e.uncountablePatterns = append(e.uncountablePatterns, re)
		e.pluralRules = append(e.pluralRules, rule{re: re, repl: "$0"})
		e.singularRules = append(e.singularRules, rule{re: re, repl: "$0"})
		return nil

	default:
		return fmt.Errorf("%w: not constructed with Literal or Pattern", ErrInvalidRulePattern)
	}
}

// AddIrregularRule registers an exact singular/plural pair that bypasses
// the pattern rules entirely. Re-registering a word overwrites the
// earlier pair.
func (e *Engine) AddIrregularRule(singular, plural string) {
	singular = strings.ToLower(singular)
	plural = strings.ToLower(plural)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.irregularSingles[singular] = plural
	e.irregularPlurals[plural] = singular
}
