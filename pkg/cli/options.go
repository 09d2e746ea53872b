package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/pattern/pkg/cli/internal/flags"
	"github.com/getmockd/pattern/pkg/config"
	"github.com/getmockd/pattern/pkg/pattern"
	"github.com/getmockd/pattern/pkg/transform"
)

// patternFlags are the flags shared by commands that build a single pattern
// from the command line.
type patternFlags struct {
	kind         string
	defaultMatch string
	matches      flags.Pairs
	transformers flags.Pairs
}

func (f *patternFlags) register(cmd *cobra.Command, withTransformers bool) {
	cmd.Flags().StringVarP(&f.kind, "kind", "k", string(config.KindDefault), "Preset: default, path or url")
	cmd.Flags().StringVar(&f.defaultMatch, "default-match", "", "Expression for placeholders without --match")
	cmd.Flags().VarP(&f.matches, "match", "m", "Override expression as token=regex (repeatable)")
	if withTransformers {
		cmd.Flags().VarP(&f.transformers, "transform", "t", "Transformer as token=spec (repeatable)")
	}
}

// build creates the pattern for text the same way a pattern-set file entry
// with these settings would be built.
func (f *patternFlags) build(text string) (*pattern.Pattern, error) {
	matches, err := f.matches.Map()
	if err != nil {
		return nil, fmt.Errorf("--match: %w", err)
	}
	specs, err := f.transformers.Map()
	if err != nil {
		return nil, fmt.Errorf("--transform: %w", err)
	}

	pc := config.PatternConfig{
		Name:         text,
		Pattern:      text,
		Kind:         config.Kind(f.kind),
		DefaultMatch: f.defaultMatch,
		Matches:      matches,
		Transformers: specs,
	}
	p, err := pc.Build(transform.NewRegistry())
	if err != nil {
		return nil, err
	}
	logger.Debug("pattern built", "pattern", text, "kind", f.kind, "matches", len(matches), "transformers", len(specs))
	return p, nil
}
