package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getmockd/pattern/pkg/cli/internal/output"
	"github.com/getmockd/pattern/pkg/config"
	"github.com/getmockd/pattern/pkg/transform"
)

var (
	matchConfigFile string
	matchSelect     string
)

var matchCmd = &cobra.Command{
	Use:   "match --config FILE [INPUT...]",
	Short: "Find the first pattern of a pattern-set file that parses each input",
	Long: `Load a pattern-set file (YAML or JSON, includes resolved) and parse
each INPUT with its patterns in order. The first pattern that matches wins.

Without INPUT arguments, inputs are read from stdin, one per line.`,
	Example: `  patternctl match -c patterns.yaml /users/42/profile
  cat paths.txt | patternctl match -c patterns.yaml --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs := args
		if len(inputs) == 0 {
			lines, err := readLines(cmd)
			if err != nil {
				return err
			}
			inputs = lines
		}
		if len(inputs) == 0 {
			return ErrNoInput
		}

		set, err := loadSet(matchConfigFile)
		if err != nil {
			return err
		}

		results := make([]ResultOutput, 0, len(inputs))
		texts := make([]string, 0, len(inputs))
		for _, input := range inputs {
			name, res, err := set.Match(input)
			if err != nil {
				return err
			}
			p, _ := set.Get(name)
			out := newResultOutput(input, p, res)
			out.Name = name
			results = append(results, out)
			texts = append(texts, res.String())
		}

		w := cmd.OutOrStdout()
		if matchSelect != "" {
			for _, r := range results {
				if err := printSelected(w, r, matchSelect); err != nil {
					return err
				}
			}
			return nil
		}
		if jsonOutput {
			if len(results) == 1 {
				return output.JSON(w, results[0])
			}
			return output.JSON(w, results)
		}

		tw := output.Table(w)
		for i, r := range results {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Input, r.Name, texts[i])
		}
		return tw.Flush()
	},
}

func init() {
	matchCmd.Flags().StringVarP(&matchConfigFile, "config", "c", "", "Pattern-set file (YAML or JSON)")
	matchCmd.Flags().StringVar(&matchSelect, "select", "", "JSONPath applied to each JSON result")
	_ = matchCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(matchCmd)
}

// loadSet loads path with its includes and builds every pattern in it.
func loadSet(path string) (*config.Set, error) {
	f, err := config.NewLoader(logger).Load(path)
	if err != nil {
		return nil, err
	}
	set, err := config.Build(f, transform.NewRegistry(), logger)
	if err != nil {
		return nil, err
	}
	logger.Info("pattern set loaded", "path", path, "patterns", set.Len())
	return set, nil
}

func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	r := bufio.NewReader(cmd.InOrStdin())
	for {
		line, err := r.ReadString('\n')
		if line = strings.TrimRight(line, "\r\n"); line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	}
}
