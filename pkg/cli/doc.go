// Package cli provides the command-line interface for patternctl.
//
// Commands:
//   - regex: Print the regular expression a pattern compiles to
//   - parse: Parse one input against a pattern built from flags
//   - replace: Render a pattern from positional and named values
//   - match: Parse inputs against a pattern-set file, first match wins
//   - validate: Load, schema-check and compile a pattern-set file
//   - transformers: List the builtin transformer names
//   - version: Show version information
//
// Global flags:
//   - --json: Machine-readable output on stdout
//   - --log-level, --log-format: Diagnostics on stderr (log/slog)
//   - --log-file: Append a JSON copy of the logs to a file
//
// Usage:
//
//	patternctl regex --kind path '/users/{id}' --match 'id=[0-9]+'
//	patternctl parse '{0}-{name}' 'abc-def'
//	patternctl parse --kind url '/search/{term}' '/search/go?page=2' --json
//	patternctl replace '{0:>5}|{name!r}' --arg 7 --set name=x
//	patternctl match -c patterns.yaml /users/42/profile
//	patternctl validate -c patterns.yaml
package cli
