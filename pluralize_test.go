package pluralize

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlural(t *testing.T) {
	eng := New()

	tests := []struct {
		input    string
		expected string
	}{
		// Regular nouns.
		{"test", "tests"},
		{"day", "days"},
		{"category", "categories"},
		{"bus", "buses"},
		{"alias", "aliases"},
		{"status", "statuses"},
		{"hero", "heroes"},
		{"potato", "potatoes"},
		{"knife", "knives"},
		{"wolf", "wolves"},
		{"matrix", "matrices"},
		{"index", "indices"},
		{"analysis", "analyses"},
		{"woman", "women"},
		{"person", "people"},
		{"child", "children"},
		{"mouse", "mice"},
		// Irregular words.
		{"foot", "feet"},
		{"goose", "geese"},
		{"tooth", "teeth"},
		{"ox", "oxen"},
		{"quiz", "quizzes"},
		{"thief", "thieves"},
		{"i", "we"},
		// Already plural.
		{"tests", "tests"},
		{"children", "children"},
		{"feet", "feet"},
		{"we", "we"},
		// Uncountables.
		{"sheep", "sheep"},
		{"fish", "fish"},
		{"equipment", "equipment"},
		{"information", "information"},
		{"deer", "deer"},
		// Edge input.
		{"", ""},
		{"   ", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, eng.Plural(tt.input))
		})
	}
}

func TestSingular(t *testing.T) {
	eng := New()

	tests := []struct {
		input    string
		expected string
	}{
		{"tests", "test"},
		{"days", "day"},
		{"categories", "category"},
		{"buses", "bus"},
		{"statuses", "status"},
		{"knives", "knife"},
		{"wolves", "wolf"},
		{"matrices", "matrix"},
		{"indices", "index"},
		{"analyses", "analysis"},
		{"women", "woman"},
		{"people", "person"},
		{"children", "child"},
		{"mice", "mouse"},
		{"movies", "movie"},
		// Irregular words.
		{"feet", "foot"},
		{"geese", "goose"},
		{"teeth", "tooth"},
		{"oxen", "ox"},
		{"dice", "die"},
		{"we", "i"},
		// Already singular.
		{"test", "test"},
		{"child", "child"},
		{"foot", "foot"},
		// Uncountables.
		{"sheep", "sheep"},
		{"fish", "fish"},
		{"equipment", "equipment"},
		{"series", "series"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, eng.Singular(tt.input))
		})
	}
}

// Pluralizing a computed plural must be a fixed point, and singularizing
// it must return the original noun.
func TestRoundTrip(t *testing.T) {
	eng := New()

	words := []string{
		"test", "category", "bus", "knife", "matrix", "analysis",
		"person", "child", "mouse", "foot", "tooth", "hero",
	}

	for _, word := range words {
		t.Run(word, func(t *testing.T) {
			plural := eng.Plural(word)
			assert.Equal(t, plural, eng.Plural(plural), "plural should be idempotent")
			assert.Equal(t, word, eng.Singular(plural), "singular should invert plural")
		})
	}
}

func TestCaseRestoration(t *testing.T) {
	eng := New()

	tests := []struct {
		input    string
		expected string
	}{
		{"Test", "Tests"},
		{"TEST", "TESTS"},
		{"Alumnus", "Alumni"},
		{"ALUMNUS", "ALUMNI"},
		{"Foot", "Feet"},
		{"FOOT", "FEET"},
		{"Category", "Categories"},
		{"Sheep", "Sheep"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, eng.Plural(tt.input))
		})
	}
}

func TestPluralizeCount(t *testing.T) {
	eng := New()

	tests := []struct {
		name      string
		word      string
		count     int
		inclusive bool
		expected  string
	}{
		{"zero is plural", "test", 0, false, "tests"},
		{"one is singular", "test", 1, false, "test"},
		{"minus one is singular", "test", -1, false, "test"},
		{"many is plural", "test", 5, false, "tests"},
		{"inclusive one", "test", 1, true, "1 test"},
		{"inclusive many", "test", 5, true, "5 tests"},
		{"inclusive zero", "test", 0, true, "0 tests"},
		{"singular input with many", "tests", 5, false, "tests"},
		{"plural input with one", "tests", 1, false, "test"},
		{"non-ascii passthrough", "蘋果", 2, true, "2 蘋果"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, eng.Pluralize(tt.word, tt.count, tt.inclusive))
		})
	}
}

func TestSingularize(t *testing.T) {
	eng := New()

	assert.Equal(t, "test", eng.Singularize("tests", false))
	assert.Equal(t, "1 test", eng.Singularize("tests", true))
}

func TestIsPluralIsSingular(t *testing.T) {
	eng := New()

	tests := []struct {
		word       string
		isPlural   bool
		isSingular bool
	}{
		{"tests", true, false},
		{"test", false, true},
		{"feet", true, false},
		{"foot", false, true},
		{"people", true, false},
		{"person", false, true},
		{"we", true, false},
		{"i", false, true},
		// Uncountables are fixed points for both directions.
		{"sheep", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.isPlural, eng.IsPlural(tt.word), "IsPlural")
			assert.Equal(t, tt.isSingular, eng.IsSingular(tt.word), "IsSingular")
		})
	}
}

// The consistency property from the engine contract: a computed plural
// tests plural, a computed singular tests singular.
func TestIsPluralIsSingularConsistency(t *testing.T) {
	eng := New()

	words := []string{"test", "category", "bus", "matrix", "person", "child"}
	for _, word := range words {
		t.Run(word, func(t *testing.T) {
			assert.True(t, eng.IsPlural(eng.Plural(word)))
			assert.True(t, eng.IsSingular(eng.Singular(eng.Plural(word))))
		})
	}
}

func TestRestoreCase(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		candidate string
		expected  string
	}{
		{"exact equality", "tests", "tests", "tests"},
		{"lowercase reference", "test", "TESTS", "tests"},
		{"uppercase reference", "TEST", "tests", "TESTS"},
		{"title reference", "Test", "tests", "Tests"},
		{"mixed reference falls back to lower", "tEsT", "TESTS", "tests"},
		{"single uppercase letter", "T", "s", "S"},
		{"space reference", " ", "s", "s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, restoreCase(tt.reference, tt.candidate))
		})
	}
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		template string
		word     string
		expected string
	}{
		{"whole match", `(?i)eaux$`, "$0", "beaux", "eaux"},
		{"single group", `(?i)(x|ch)$`, "$1es", "box", "xes"},
		{"two groups", `(?i)(bo)(x)$`, "$1$2es", "box", "boxes"},
		{"unmatched group is empty", `(?i)(?:(a)|(b))$`, "$1$2c", "b", "bc"},
		{"out of range group is empty", `(?i)x$`, "$1y", "box", "y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexp.MustCompile(tt.pattern)
			m := re.FindStringSubmatchIndex(tt.word)
			assert.NotNil(t, m)
			assert.Equal(t, tt.expected, interpolate(tt.template, tt.word, m))
		})
	}
}

// Concurrent lookups racing registration must not corrupt the ruleset.
// Run with -race.
func TestConcurrentAccess(t *testing.T) {
	eng := New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = eng.Plural("test")
				_ = eng.Singular("tests")
				_ = eng.IsPlural("tests")
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = eng.AddPluralRule(Pattern(`gex$`), "gexii")
				eng.AddIrregularRule("octopus", "octopodes")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, "regexii", eng.Plural("regex"))
	eng.Reset()
	assert.Equal(t, "regexes", eng.Plural("regex"))
}
