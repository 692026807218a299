package pluralize

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Engine holds a mutable ruleset: ordered plural and singular pattern
// rules, an uncountable word/pattern set, and irregular word maps.
// Construct one with New; the zero value has no rules and inflects
// nothing.
//
// All methods are safe for concurrent use. A single lock guards the four
// state containers so a matching pass never observes a half-registered
// rule.
type Engine struct {
	mu sync.RWMutex

	pluralRules   []rule
	singularRules []rule

	uncountables        map[string]struct{}
	uncountablePatterns []*regexp.Regexp

	irregularSingles map[string]string
	irregularPlurals map[string]string
}

// New returns an Engine seeded with the default English ruleset.
func New() *Engine {
	e := &Engine{}
	e.seed()
	return e
}

// Plural returns the plural form of word, preserving its casing style.
// Words with no applicable rule are returned unchanged.
func (e *Engine) Plural(word string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.transform(word, e.irregularSingles, e.irregularPlurals, e.pluralRules)
}

// Singular returns the singular form of word, preserving its casing
// style. Words with no applicable rule are returned unchanged.
func (e *Engine) Singular(word string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.transform(word, e.irregularPlurals, e.irregularSingles, e.singularRules)
}

// IsPlural reports whether word is already in plural form.
//
// This is a fixed-point heuristic, not a dictionary lookup: a word no
// rule recognizes is reported as already canonical, so uncountables and
// fabricated plurals outside the ruleset can be misclassified.
func (e *Engine) IsPlural(word string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.check(word, e.irregularSingles, e.irregularPlurals, e.pluralRules)
}

// IsSingular reports whether word is already in singular form. It shares
// the approximate nature of IsPlural.
func (e *Engine) IsSingular(word string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.check(word, e.irregularPlurals, e.irregularSingles, e.singularRules)
}

// Pluralize returns word inflected for count: the singular form when
// count is 1 or -1, the plural form otherwise. With inclusive, the count
// is prefixed to the result ("5 tests").
func (e *Engine) Pluralize(word string, count int, inclusive bool) string {
	var out string
	if count == 1 || count == -1 {
		out = e.Singular(word)
	} else {
		out = e.Plural(word)
	}
	if inclusive {
		return strconv.Itoa(count) + " " + out
	}
	return out
}

// Singularize is shorthand for Pluralize(word, 1, inclusive).
func (e *Engine) Singularize(word string, inclusive bool) string {
	return e.Pluralize(word, 1, inclusive)
}

// Reset discards every rule registered at runtime and restores the
// default seed tables. Callers must not hold references into the old
// ruleset across a Reset.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.seed()
}

// transform inflects word toward the form described by rules. Irregular
// words resolve through the maps before any pattern matching: keepMap
// holds words already in the target form, replaceMap holds their
// counterparts.
func (e *Engine) transform(word string, replaceMap, keepMap map[string]string, rules []rule) string {
	token := strings.ToLower(word)

	if _, ok := keepMap[token]; ok {
		return restoreCase(word, token)
	}
	if repl, ok := replaceMap[token]; ok {
		return restoreCase(word, repl)
	}
	return e.applyRules(token, word, rules)
}

// check reports whether word is already in the form produced by rules.
func (e *Engine) check(word string, replaceMap, keepMap map[string]string, rules []rule) bool {
	token := strings.ToLower(word)

	if _, ok := keepMap[token]; ok {
		return true
	}
	if _, ok := replaceMap[token]; ok {
		return false
	}
	return e.applyRules(token, token, rules) == token
}

// applyRules rewrites word with the most recently registered rule whose
// pattern matches it. Blank and uncountable tokens pass through
// unchanged, as does a word no rule matches.
func (e *Engine) applyRules(token, word string, rules []rule) string {
	if strings.TrimSpace(token) == "" {
		return word
	}
	if e.isUncountable(token) {
		return word
	}
	for i := len(rules) - 1; i >= 0; i-- {
		if rules[i].re.MatchString(word) {
			return rewrite(word, rules[i])
		}
	}
	return word
}

func (e *Engine) isUncountable(token string) bool {
	if _, ok := e.uncountables[token]; ok {
		return true
	}
	for _, re := range e.uncountablePatterns {
		if re.MatchString(token) {
			return true
		}
	}
	return false
}

// rewrite replaces every match of the rule's pattern in word with its
// interpolated template, restoring the casing of each matched substring
// onto its replacement. A zero-width match borrows its casing reference
// from the preceding character, or from a space when the match sits at
// the start of the word.
func rewrite(word string, r rule) string {
	matches := r.re.FindAllStringSubmatchIndex(word, -1)
	if matches == nil {
		return word
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		b.WriteString(word[last:start])

		ref := word[start:end]
		if ref == "" {
			if start > 0 {
				prev, _ := utf8.DecodeLastRuneInString(word[:start])
				ref = string(prev)
			} else {
				ref = " "
			}
		}
		b.WriteString(restoreCase(ref, interpolate(r.repl, word, m)))
		last = end
	}
	b.WriteString(word[last:])
	return b.String()
}

var groupRef = regexp.MustCompile(`\$(\d)`)

// interpolate substitutes $0 through $9 in the template with the
// corresponding capture group of the current match ($0 is the whole
// match). Group references are resolved here instead of through the
// regexp package's Expand so template semantics do not depend on
// engine-specific replacement syntax. Unmatched groups substitute the
// empty string.
func interpolate(template, word string, match []int) string {
	return groupRef.ReplaceAllStringFunc(template, func(ref string) string {
		n, _ := strconv.Atoi(ref[1:])
		if 2*n+1 >= len(match) {
			return ""
		}
		start, end := match[2*n], match[2*n+1]
		if start < 0 {
			return ""
		}
		return word[start:end]
	})
}

// restoreCase re-applies the casing style of reference onto candidate:
// all-lower, all-upper, or title case. Mixed or unrecognized patterns
// fall back to lowercase.
func restoreCase(reference, candidate string) string {
	if reference == candidate {
		return candidate
	}
	if reference == strings.ToLower(reference) {
		return strings.ToLower(candidate)
	}
	if reference == strings.ToUpper(reference) {
		return strings.ToUpper(candidate)
	}
	if first, _ := utf8.DecodeRuneInString(reference); unicode.IsUpper(first) {
		head, size := utf8.DecodeRuneInString(candidate)
		if size == 0 {
			return candidate
		}
		return string(unicode.ToUpper(head)) + candidate[size:]
	}
	return strings.ToLower(candidate)
}
