// Package pluralize converts English nouns between singular and plural
// form using an ordered, overridable set of pattern rules plus fixed-word
// exceptions.
//
// The package-level functions share a process-wide Engine:
//
//	pluralize.Plural("bus")            // "buses"
//	pluralize.Singular("feet")         // "foot"
//	pluralize.Pluralize("test", 5, true) // "5 tests"
//
// Callers that need isolated rulesets construct their own Engine:
//
//	eng := pluralize.New()
//	eng.AddIrregularRule("octopus", "octopodes")
//	eng.Plural("octopus") // "octopodes"
//
// Rules registered later take precedence over earlier ones, so additions
// override the built-in defaults without any insertion-position
// management. Reset restores the default ruleset.
package pluralize
