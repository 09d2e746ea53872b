package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/getmockd/pattern/pkg/cli/internal/output"
	"github.com/getmockd/pattern/pkg/pattern"
	"github.com/getmockd/pattern/pkg/util"
)

// ResultOutput is the JSON form of a parse or match result.
type ResultOutput struct {
	Input   string         `json:"input"`
	Pattern string         `json:"pattern"`
	Name    string         `json:"name,omitempty"`
	Args    []any          `json:"args"`
	Kwargs  map[string]any `json:"kwargs"`
}

func newResultOutput(input string, p *pattern.Pattern, res *pattern.Result) ResultOutput {
	return ResultOutput{
		Input:   input,
		Pattern: p.String(),
		Args:    res.Args,
		Kwargs:  res.Kwargs,
	}
}

var (
	parseFlags  patternFlags
	parseSelect string
)

var parseCmd = &cobra.Command{
	Use:   "parse PATTERN INPUT",
	Short: "Parse a string against a pattern and print the captured values",
	Example: `  patternctl parse '{0}-{name}' 'abc-def'
  patternctl parse --kind path '/users/{id}' /users/42 --transform id=int --json
  patternctl parse --kind url '/search/{term}' '/search/go?page=2' --select '$.kwargs.query.page[0]'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, input := args[0], args[1]
		p, err := parseFlags.build(text)
		if err != nil {
			return err
		}

		res, err := p.Parse(input)
		if err != nil {
			logger.Debug("parse failed", "pattern", text, "input", util.Truncate(input, 0), "error", err)
			return err
		}
		logger.Info("parsed", "pattern", text, "args", len(res.Args), "kwargs", len(res.Kwargs))

		out := newResultOutput(input, p, res)
		if parseSelect != "" {
			return printSelected(cmd.OutOrStdout(), out, parseSelect)
		}
		if jsonOutput {
			return output.JSON(cmd.OutOrStdout(), out)
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.String())
		return nil
	},
}

func init() {
	parseFlags.register(parseCmd, true)
	parseCmd.Flags().StringVar(&parseSelect, "select", "", "JSONPath applied to the JSON result, e.g. $.kwargs.id")
	rootCmd.AddCommand(parseCmd)
}

// selectJSON evaluates a JSONPath against the JSON encoding of v.
func selectJSON(v any, path string) ([]any, error) {
	x, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("invalid --select path %q: %w", path, err)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	doc, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("decoding result: %w", err)
	}
	return x.Get(doc), nil
}

// printSelected writes every value selected by path, one JSON document per line.
func printSelected(w io.Writer, v any, path string) error {
	values, err := selectJSON(v, path)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("%w: %s", ErrSelectNoResult, path)
	}
	for _, sel := range values {
		data, err := json.Marshal(sel)
		if err != nil {
			return fmt.Errorf("encoding selection: %w", err)
		}
		fmt.Fprintln(w, string(data))
	}
	return nil
}
