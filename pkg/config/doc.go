// Package config loads pattern sets from YAML or JSON files.
//
// A pattern-set file names its patterns and, for each one, the preset,
// override expressions and transformer specs to use:
//
//	version: "1"
//	include:
//	  - "routes/**/*.yaml"
//	patterns:
//	  - name: user
//	    pattern: "/users/{id}/{0}"
//	    kind: path
//	    matches:
//	      id: "[0-9]+"
//	    transformers:
//	      id: int
//	      "0": upper
//
// Documents are validated against an embedded JSON Schema before decoding.
// Include globs support "**" and are resolved relative to the including
// file; every file is read at most once.
//
// Build turns a loaded File into a Set, which tries its patterns in order:
//
//	f, err := config.LoadFromFile("patterns.yaml")
//	if err != nil {
//	    return err
//	}
//	set, err := config.Build(f, nil, logger)
//	if err != nil {
//	    return err
//	}
//	name, res, err := set.Match("/users/12/profile")
package config
