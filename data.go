package pluralize

import (
	"regexp"
	"strings"
)

// Default seed tables. Rule tables are ordered lowest priority first;
// matching walks them in reverse, so later entries win. The compiled
// forms are built once at package init and shared between engines
// (regexp.Regexp is safe for concurrent use).

// irregularSeed holds {singular, plural} pairs that bypass the pattern
// rules. Where several singulars share a plural ("he"/"she" -> "they"),
// the last pair listed wins the plural-to-singular direction.
var irregularSeed = [][2]string{
	// Pronouns.
	{"I", "we"},
	{"me", "us"},
	{"he", "they"},
	{"she", "they"},
	{"them", "them"},
	{"myself", "ourselves"},
	{"yourself", "yourselves"},
	{"itself", "themselves"},
	{"herself", "themselves"},
	{"himself", "themselves"},
	{"themself", "themselves"},
	{"is", "are"},
	{"was", "were"},
	{"has", "have"},
	{"this", "these"},
	{"that", "those"},
	{"my", "our"},
	{"its", "their"},
	{"his", "their"},
	{"her", "their"},
	// Words ending in a consonant and `o`.
	{"echo", "echoes"},
	{"dingo", "dingoes"},
	{"volcano", "volcanoes"},
	{"tornado", "tornadoes"},
	{"torpedo", "torpedoes"},
	// Ends with `us`.
	{"genus", "genera"},
	{"viscus", "viscera"},
	// Ends with `ma`.
	{"stigma", "stigmata"},
	{"stoma", "stomata"},
	{"dogma", "dogmata"},
	{"lemma", "lemmata"},
	{"schema", "schemata"},
	{"anathema", "anathemata"},
	// Other irregular words.
	{"ox", "oxen"},
	{"axe", "axes"},
	{"die", "dice"},
	{"yes", "yeses"},
	{"foot", "feet"},
	{"eave", "eaves"},
	{"goose", "geese"},
	{"tooth", "teeth"},
	{"quiz", "quizzes"},
	{"human", "humans"},
	{"proof", "proofs"},
	{"carve", "carves"},
	{"valve", "valves"},
	{"looey", "looies"},
	{"thief", "thieves"},
	{"groove", "grooves"},
	{"pickaxe", "pickaxes"},
	{"passerby", "passersby"},
	{"canvas", "canvases"},
}

// pluralSeed holds {pattern, replacement} pluralization rules, lowest
// priority first. The catch-all append-s rule sits at the bottom; the
// non-ASCII passthrough just above it keeps the engine from mangling
// words outside the Latin script.
var pluralSeed = [][2]string{
	{`s?$`, "s"},
	{`[^\x00-\x7F]$`, "$0"},
	{`([^aeiou]ese)$`, "$1"},
	{`(ax|test)is$`, "$1es"},
	{`(alias|[^aou]us|t[lm]as|gas|ris)$`, "$1es"},
	{`(e[mn]u)s?$`, "$1s"},
	{`([^l]ias|[aeiou]las|[ejzr]as|[iu]am)$`, "$1"},
	{`(alumn|syllab|vir|radi|nucle|fung|cact|stimul|termin|bacill|foc|uter|loc|strat)(?:us|i)$`, "$1i"},
	{`(alumn|alg|vertebr)(?:a|ae)$`, "$1ae"},
	{`(seraph|cherub)(?:im)?$`, "$1im"},
	{`(her|at|gr)o$`, "$1oes"},
	{`(agend|addend|millenni|dat|extrem|bacteri|desiderat|strat|candelabr|errat|ov|symposi|curricul|automat|quor)(?:a|um)$`, "$1a"},
	{`(apheli|hyperbat|periheli|asyndet|noumen|phenomen|criteri|organ|prolegomen|hedr|automat)(?:a|on)$`, "$1a"},
	{`sis$`, "ses"},
	{`(?:(kni|wi|li)fe|(ar|l|ea|eo|oa|hoo)f)$`, "$1$2ves"},
	{`([^aeiouy]|qu)y$`, "$1ies"},
	{`([^ch][ieo][ln])ey$`, "$1ies"},
	{`(x|ch|ss|sh|zz)$`, "$1es"},
	{`(matr|cod|mur|sil|vert|ind|append)(?:ix|ex)$`, "$1ices"},
	{`\b((?:tit)?m|l)(?:ice|ouse)$`, "$1ice"},
	{`(pe)(?:rson|ople)$`, "$1ople"},
	{`(child)(?:ren)?$`, "$1ren"},
	{`eaux$`, "$0"},
	{`m[ae]n$`, "men"},
	{`^thou$`, "you"},
}

// singularSeed holds {pattern, replacement} singularization rules,
// lowest priority first.
var singularSeed = [][2]string{
	{`s$`, ""},
	{`(ss)$`, "$1"},
	{`(wi|kni|(?:after|half|high|low|mid|non|night|[^\w]|^)li)ves$`, "$1fe"},
	{`(ar|(?:wo|[ae])l|[eo][ao])ves$`, "$1f"},
	{`ies$`, "y"},
	{`(dg|ss|ois|lk|ok|wn|mb|th|ch|ec|oal|is|ck|ix|sser|ts|wb)ies$`, "$1ie"},
	{`\b(l|(?:neck|cross)?t|coll|faer|food|gen|goon|group|hipp|junk|vegg|(?:pork)?p|charl|calor|cut)ies$`, "$1ie"},
	{`\b(mon|smil)ies$`, "$1ey"},
	{`\b((?:tit)?m|l)ice$`, "$1ouse"},
	{`(seraph|cherub)im$`, "$1"},
	{`(x|ch|ss|sh|zz|tto|go|cho|alias|[^aou]us|t[lm]as|gas|(?:her|at|gr)o|[aeiou]ris)(?:es)?$`, "$1"},
	{`(analy|diagno|parenthe|progno|synop|the|empha|cri|ne)(?:sis|ses)$`, "$1sis"},
	{`(movie|twelve|abuse|e[mn]u)s$`, "$1"},
	{`(test)(?:is|es)$`, "$1is"},
	{`(alumn|syllab|vir|radi|nucle|fung|cact|stimul|termin|bacill|foc|uter|loc|strat)(?:us|i)$`, "$1us"},
	{`(agend|addend|millenni|dat|extrem|bacteri|desiderat|strat|candelabr|errat|ov|symposi|curricul|quor)a$`, "$1um"},
	{`(apheli|hyperbat|periheli|asyndet|noumen|phenomen|criteri|organ|prolegomen|hedr|automat)a$`, "$1on"},
	{`(alumn|alg|vertebr)ae$`, "$1a"},
	{`(cod|mur|sil|vert|ind)ices$`, "$1ex"},
	{`(matr|append)ices$`, "$1ix"},
	{`(pe)(rson|ople)$`, "$1rson"},
	{`(child)ren$`, "$1"},
	{`(eau)x?$`, "$1"},
	{`men$`, "man"},
}

// uncountableWordSeed lists words with no distinct plural form, matched
// by exact lowercase membership.
var uncountableWordSeed = []string{
	"adulthood", "advice", "agenda", "aid", "aircraft", "alcohol", "ammo",
	"analytics", "anime", "athletics", "audio", "bison", "blood", "bream",
	"buffalo", "butter", "carp", "cash", "chassis", "chess", "clothing",
	"cod", "commerce", "cooperation", "corps", "debris", "diabetes",
	"digestion", "elk", "energy", "equipment", "excretion", "expertise",
	"firmware", "flounder", "fun", "gallows", "garbage", "graffiti",
	"hardware", "headquarters", "health", "herpes", "highjinks",
	"homework", "housework", "information", "jeans", "justice", "kudos",
	"labour", "literature", "machinery", "mackerel", "mail", "media",
	"mews", "moose", "music", "mud", "manga", "news", "only", "personnel",
	"pike", "plankton", "pliers", "police", "pollution", "premises",
	"rain", "research", "rice", "salmon", "scissors", "series", "sewage",
	"shambles", "shrimp", "software", "staff", "swine", "tennis",
	"traffic", "transportation", "trout", "tuna", "wealth", "welfare",
	"whiting", "wildebeest", "wildlife", "you",
}

// uncountablePatternSeed lists uncountable word families by suffix
// pattern. Each also becomes an identity rule on both rule sequences,
// mirroring runtime pattern registration.
var uncountablePatternSeed = []string{
	`pok[eé]mon$`,
	`[^aeiou]ese$`,
	`deer$`,
	`fish$`,
	`measles$`,
	`o[iu]s$`,
	`pox$`,
	`sheep$`,
}

var (
	seedPluralRules      []rule
	seedSingularRules    []rule
	seedUncountableRegex []*regexp.Regexp
)

func init() {
	seedPluralRules = compileSeedRules(pluralSeed)
	seedSingularRules = compileSeedRules(singularSeed)
	for _, expr := range uncountablePatternSeed {
		seedUncountableRegex = append(seedUncountableRegex, regexp.MustCompile("(?i)"+expr))
	}
}

func compileSeedRules(seed [][2]string) []rule {
	rules := make([]rule, 0, len(seed))
	for _, r := range seed {
		rules = append(rules, rule{re: regexp.MustCompile("(?i)" + r[0]), repl: r[1]})
	}
	return rules
}

// seed (re)initializes the four state containers from the default
// tables: irregulars, plural rules, singular rules, then uncountables.
// Callers hold the write lock or own the engine exclusively.
func (e *Engine) seed() {
	e.irregularSingles = make(map[string]string, len(irregularSeed))
	e.irregularPlurals = make(map[string]string, len(irregularSeed))
	for _, pair := range irregularSeed {
		single, plural := strings.ToLower(pair[0]), strings.ToLower(pair[1])
		e.irregularSingles[single] = plural
		e.irregularPlurals[plural] = single
	}

	e.pluralRules = make([]rule, 0, len(seedPluralRules)+len(seedUncountableRegex))
	e.pluralRules = append(e.pluralRules, seedPluralRules...)
	e.singularRules = make([]rule, 0, len(seedSingularRules)+len(seedUncountableRegex))
	e.singularRules = append(e.singularRules, seedSingularRules...)

	e.uncountables = make(map[string]struct{}, len(uncountableWordSeed))
	for _, word := range uncountableWordSeed {
		e.uncountables[word] = struct{}{}
	}

	e.uncountablePatterns = make([]*regexp.Regexp, 0, len(seedUncountableRegex))
	for _, re := range seedUncountableRegex {
		e.uncountablePatterns = append(e.uncountablePatterns, re)
		e.pluralRules = append(e.pluralRules, rule{re: re, repl: "$0"})
		e.singularRules = append(e.singularRules, rule{re: re, repl: "$0"})
	}
}
