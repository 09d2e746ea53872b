package pattern

// Transformer coerces the raw text captured for a placeholder.
// An error returned by a Transformer aborts Parse and is returned unchanged.
type Transformer func(raw string) (any, error)

// Identity returns the captured text as is.
func Identity(raw string) (any, error) { return raw, nil }

// AuxHandler interprets an auxiliary capture group. It receives the raw
// captured text and the positional and named values collected so far and may
// modify either map.
type AuxHandler func(value string, args map[int]any, kwargs map[string]any) error

// Transformers holds the per-placeholder coercion functions of a Pattern.
// Tokens without an entry are passed through Identity.
type Transformers struct {
	Positional map[int]Transformer
	Named      map[string]Transformer
}

func (t Transformers) positional(i int) Transformer {
	if fn, ok := t.Positional[i]; ok && fn != nil {
		return fn
	}
	return Identity
}

func (t Transformers) named(name string) Transformer {
	if fn, ok := t.Named[name]; ok && fn != nil {
		return fn
	}
	return Identity
}

// Pattern is a compiled-on-demand template. The zero value is not usable;
// create patterns with New, NewPath or NewURL.
//
// Matches, Transformers and Handlers are plain maps owned by the Pattern.
// They may be changed between calls; see the package documentation for the
// concurrency rules.
type Pattern struct {
	// Matches maps a named token to the regular expression fragment used
	// instead of Config.DefaultMatch.
	Matches map[string]string

	// Transformers coerce captured text before it is stored in a Result.
	Transformers Transformers

	// Handlers maps an auxiliary group name to its AuxHandler.
	Handlers map[string]AuxHandler

	text   string
	config Config
}

// Option configures a Pattern at construction time.
type Option func(*Pattern)

// WithConfig replaces the DefaultConfig used by New.
func WithConfig(cfg Config) Option {
	return func(p *Pattern) {
		p.config = cfg
	}
}

// WithArgTransformers registers transformers for positional tokens: the i-th
// transformer applies to token {i}.
func WithArgTransformers(fns ...Transformer) Option {
	return func(p *Pattern) {
		for i, fn := range fns {
			p.Transformers.Positional[i] = fn
		}
	}
}

// WithTransformer registers a transformer for the named token name.
func WithTransformer(name string, fn Transformer) Option {
	return func(p *Pattern) {
		p.Transformers.Named[name] = fn
	}
}

// WithMatch sets the override expression for the named token name.
func WithMatch(name, expr string) Option {
	return func(p *Pattern) {
		p.Matches[name] = expr
	}
}

// WithHandler registers the handler for the auxiliary group name.
func WithHandler(name string, h AuxHandler) Option {
	return func(p *Pattern) {
		p.Handlers[name] = h
	}
}

// New creates a Pattern for the template text using DefaultConfig.
func New(text string, opts ...Option) *Pattern {
	p := &Pattern{
		Matches: make(map[string]string),
		Transformers: Transformers{
			Positional: make(map[int]Transformer),
			Named:      make(map[string]Transformer),
		},
		Handlers: make(map[string]AuxHandler),
		text:     text,
		config:   DefaultConfig(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// String returns the template text the Pattern was created with.
func (p *Pattern) String() string {
	return p.text
}

// Config returns the construction-time configuration.
func (p *Pattern) Config() Config {
	return p.config
}
