package cli

import (
	"fmt"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/getmockd/pattern/pkg/cli/internal/flags"
	"github.com/getmockd/pattern/pkg/cli/internal/output"
	"github.com/getmockd/pattern/pkg/pattern"
)

var (
	replaceArgs    flags.Values
	replaceSet     flags.Pairs
	replaceLiteral bool
)

var replaceCmd = &cobra.Command{
	Use:   "replace PATTERN",
	Short: "Render a pattern by substituting values for its placeholders",
	Long: `Render a pattern with positional values (--arg, in order) and named
values (--set name=value).

Placeholders accept a conversion and a format spec, e.g. {0:>5}, {n:05d},
{price:.2f} or {name!r}. Use {{ and }} for literal braces.

Values are strings unless --literal is given, in which case each value is
decoded as a JSON literal when possible (42, 1.5, true, "x").`,
	Example: `  patternctl replace '{0}-{name}' --arg 1 --set name=abc
  patternctl replace '{0:03d}' --arg 7 --literal`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		positional := make([]any, len(replaceArgs))
		for i, a := range replaceArgs {
			positional[i] = argValue(a)
		}

		pairs, err := replaceSet.Map()
		if err != nil {
			return fmt.Errorf("--set: %w", err)
		}
		named := make(map[string]any, len(pairs))
		for k, v := range pairs {
			named[k] = argValue(v)
		}

		rendered, err := pattern.New(args[0]).Replace(positional, named)
		if err != nil {
			return err
		}

		if jsonOutput {
			return output.JSON(cmd.OutOrStdout(), struct {
				Pattern string `json:"pattern"`
				Result  string `json:"result"`
			}{args[0], rendered})
		}
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	replaceCmd.Flags().VarP(&replaceArgs, "arg", "a", "Positional value (repeatable, in order)")
	replaceCmd.Flags().VarP(&replaceSet, "set", "s", "Named value as name=value (repeatable)")
	replaceCmd.Flags().BoolVar(&replaceLiteral, "literal", false, "Decode values as JSON literals")
	rootCmd.AddCommand(replaceCmd)
}

// argValue converts a command-line value according to --literal. Objects
// and arrays stay strings.
func argValue(s string) any {
	if !replaceLiteral {
		return s
	}
	v, err := oj.ParseString(s)
	if err != nil {
		return s
	}
	switch v.(type) {
	case map[string]any, []any:
		return s
	default:
		return v
	}
}
