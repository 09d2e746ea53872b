// Package pattern provides bidirectional string patterns built from
// format-like templates such as "/users/{id}/{0}".
//
// A Pattern compiles its template into an anchored regular expression in
// which every placeholder becomes a named capture group. Parse runs that
// expression against a subject string and returns the captured values,
// coerced by per-placeholder Transformers. Replace goes the other way and
// renders a concrete string from values using the same template.
//
// # Placeholders
//
// A placeholder is "{TOKEN}" where TOKEN is either "0", a positive integer
// (positional) or an identifier (named):
//
//	0 | [_a-zA-Z1-9][_a-zA-Z0-9]*
//
// Everything else in the template is literal text, including regular
// expression metacharacters. A "{" immediately preceded by another "{" never
// starts a placeholder, so "{{a}}" matches the literal text "{{a}}".
//
// Positional values end up in Result.Args ordered by ascending index, named
// values end up in Result.Kwargs. Tokens must be unique within a pattern.
// A token is positional only when strconv.Atoi accepts it, so "1_0" and
// integers too large for an int are named.
//
// # Matching
//
// Each placeholder matches Config.DefaultMatch unless Pattern.Matches holds an
// override for its token:
//
//	p := pattern.New("{0}{1}{a}")
//	p.Matches["a"] = `[0-9]{2}`
//	res, _ := p.Parse("123456") // Args ["1", "234"], Kwargs {a: "56"}
//
// The default ".+?" is lazy, so adjacent placeholders consume one character
// each until the last one. PathConfig restricts placeholders to a single path
// segment and URLConfig additionally accepts a trailing query string.
//
// The default suffix "$" matches only at the very end of the subject. A
// trailing "\n" is not skipped, so "a{x}" does not match "ab\n"; trim the
// subject first when reading lines.
//
// # Auxiliary groups
//
// Named groups that do not come from placeholder substitution (for example
// the "query" group added by URLConfig) are handed to the AuxHandler
// registered under the group name in Pattern.Handlers.
//
// # Concurrency
//
// The compiled expression is rebuilt on every Regex and Parse call, so
// changes to Matches, Transformers and Handlers apply to the next call. A
// Pattern is safe for concurrent Parse, Regex and Replace calls as long as
// none of those maps is mutated at the same time; writers must synchronize
// externally.
package pattern
