package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/pattern/pkg/cli/internal/output"
	"github.com/getmockd/pattern/pkg/config"
	"github.com/getmockd/pattern/pkg/transform"
)

var (
	validateConfigFile string
	validatePrint      bool
)

// ValidateOutput is the JSON form of a successful validation.
type ValidateOutput struct {
	Valid    bool            `json:"valid"`
	Path     string          `json:"path"`
	Patterns []PatternStatus `json:"patterns"`
}

// PatternStatus describes one validated pattern.
type PatternStatus struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Pattern string `json:"pattern"`
	Regex   string `json:"regex"`
	Source  string `json:"source"`
}

var validateCmd = &cobra.Command{
	Use:   "validate --config FILE",
	Short: "Validate a pattern-set file without matching anything",
	Long: `Validate a pattern-set file.

This command checks:
  - YAML/JSON syntax
  - Schema validation (required fields, valid kinds)
  - Include globs and the files they reach
  - Transformer specs (names, expressions, JSONPaths)
  - That every pattern compiles and pattern names are unique`,
	Example: `  patternctl validate -c patterns.yaml
  patternctl validate -c patterns.yaml --print > merged.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := config.NewLoader(logger).Load(validateConfigFile)
		if err != nil {
			return err
		}
		set, err := config.Build(f, transform.NewRegistry(), logger)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if validatePrint {
			data, err := config.ToYAML(f)
			if err != nil {
				return err
			}
			_, err = w.Write(data)
			return err
		}

		out := ValidateOutput{Valid: true, Path: validateConfigFile, Patterns: make([]PatternStatus, 0, set.Len())}
		for _, pc := range f.Patterns {
			p, _ := set.Get(pc.Name)
			expr, _ := p.Regex()
			kind := pc.Kind
			if kind == "" {
				kind = config.KindDefault
			}
			out.Patterns = append(out.Patterns, PatternStatus{
				Name:    pc.Name,
				Kind:    string(kind),
				Pattern: pc.Pattern,
				Regex:   expr,
				Source:  pc.Source(),
			})
		}

		if jsonOutput {
			return output.JSON(w, out)
		}
		if len(out.Patterns) == 0 {
			output.Warn(cmd.ErrOrStderr(), "no patterns defined in %s", validateConfigFile)
		}
		fmt.Fprintf(w, "%s: valid (%d patterns)\n", validateConfigFile, len(out.Patterns))
		if len(out.Patterns) > 0 {
			tw := output.Table(w)
			fmt.Fprintln(tw, "NAME\tKIND\tPATTERN")
			for _, ps := range out.Patterns {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", ps.Name, ps.Kind, ps.Pattern)
			}
			return tw.Flush()
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateConfigFile, "config", "c", "", "Pattern-set file (YAML or JSON)")
	validateCmd.Flags().BoolVar(&validatePrint, "print", false, "Print the merged document as YAML")
	_ = validateCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(validateCmd)
}
