// Package transform provides named Transformers for patterns defined in
// configuration files.
//
// A transformer spec is either the name of a registered transformer or one of
// two parameterized forms:
//
//	int                          builtin or registered name
//	expr:int(value) * 2          expr-lang expression, "value" is the capture
//	jsonpath:$.user.id           parse the capture as JSON, return the first match
package transform

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/google/uuid"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/getmockd/pattern/pkg/pattern"
)

// Spec prefixes for parameterized transformers.
const (
	PrefixExpr     = "expr:"
	PrefixJSONPath = "jsonpath:"
)

// Errors returned while resolving or running transformers.
var (
	ErrUnknownTransformer = errors.New("unknown transformer")
	ErrInvalidSpec        = errors.New("invalid transformer spec")
	ErrNoJSONPathMatch    = errors.New("jsonpath matched nothing")
)

// Registry maps transformer names to implementations. It is safe for
// concurrent use.
type Registry struct {
	mu       sync.RWMutex
	funcs    map[string]pattern.Transformer
	programs map[string]*vm.Program
}

// NewRegistry creates a registry holding the builtin transformers.
func NewRegistry() *Registry {
	r := &Registry{
		funcs:    make(map[string]pattern.Transformer),
		programs: make(map[string]*vm.Program),
	}
	for name, fn := range builtins() {
		r.funcs[name] = fn
	}
	return r
}

func builtins() map[string]pattern.Transformer {
	return map[string]pattern.Transformer{
		"str": pattern.Identity,
		"int": func(raw string) (any, error) {
			return strconv.Atoi(raw)
		},
		"float": func(raw string) (any, error) {
			return strconv.ParseFloat(raw, 64)
		},
		"bool": func(raw string) (any, error) {
			return strconv.ParseBool(raw)
		},
		"upper": func(raw string) (any, error) {
			return strings.ToUpper(raw), nil
		},
		"lower": func(raw string) (any, error) {
			return strings.ToLower(raw), nil
		},
		"title": func(raw string) (any, error) {
			// A Caser keeps state between calls, so each call gets its own.
			return cases.Title(language.English).String(raw), nil
		},
		"uuid": func(raw string) (any, error) {
			return uuid.Parse(raw)
		},
		"json": func(raw string) (any, error) {
			return oj.ParseString(raw)
		},
	}
}

// Register adds or replaces the transformer stored under name.
func (r *Registry) Register(name string, fn pattern.Transformer) error {
	if name == "" || strings.Contains(name, ":") {
		return fmt.Errorf("%w: name %q", ErrInvalidSpec, name)
	}
	if fn == nil {
		return fmt.Errorf("%w: nil transformer for %q", ErrInvalidSpec, name)
	}
	r.mu.Lock()
	r.funcs[name] = fn
	r.mu.Unlock()
	return nil
}

// Lookup returns the transformer registered under name.
func (r *Registry) Lookup(name string) (pattern.Transformer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.funcs))
}

// Resolve turns a spec into a Transformer. Parameterized specs are compiled
// once; errors in them are reported here rather than at parse time.
func (r *Registry) Resolve(spec string) (pattern.Transformer, error) {
	switch {
	case strings.HasPrefix(spec, PrefixExpr):
		return r.resolveExpr(strings.TrimPrefix(spec, PrefixExpr))
	case strings.HasPrefix(spec, PrefixJSONPath):
		return resolveJSONPath(strings.TrimPrefix(spec, PrefixJSONPath))
	}

	fn, ok := r.Lookup(spec)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransformer, spec)
	}
	return fn, nil
}

// exprEnv is the environment expressions are compiled against.
func exprEnv(value string) map[string]any {
	return map[string]any{"value": value}
}

func (r *Registry) resolveExpr(code string) (pattern.Transformer, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidSpec)
	}
	program, err := r.compileExpr(code)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %w", ErrInvalidSpec, code, err)
	}
	return func(raw string) (any, error) {
		out, err := expr.Run(program, exprEnv(raw))
		if err != nil {
			return nil, fmt.Errorf("eval %q: %w", code, err)
		}
		return out, nil
	}, nil
}

func (r *Registry) compileExpr(code string) (*vm.Program, error) {
	r.mu.RLock()
	if program, ok := r.programs[code]; ok {
		r.mu.RUnlock()
		return program, nil
	}
	r.mu.RUnlock()

	program, err := expr.Compile(code, expr.Env(exprEnv("")))
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if existing, ok := r.programs[code]; ok {
		r.mu.Unlock()
		return existing, nil
	}
	r.programs[code] = program
	r.mu.Unlock()

	return program, nil
}

func resolveJSONPath(path string) (pattern.Transformer, error) {
	x, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("%w: jsonpath %q: %w", ErrInvalidSpec, path, err)
	}
	return func(raw string) (any, error) {
		data, err := oj.ParseString(raw)
		if err != nil {
			return nil, err
		}
		results := x.Get(data)
		if len(results) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoJSONPathMatch, path)
		}
		return results[0], nil
	}, nil
}
