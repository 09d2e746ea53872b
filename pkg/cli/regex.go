package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/pattern/pkg/cli/internal/output"
)

var regexFlags patternFlags

var regexCmd = &cobra.Command{
	Use:   "regex PATTERN",
	Short: "Print the regular expression a pattern compiles to",
	Example: `  patternctl regex '{0}-{name}'
  patternctl regex --kind path '/users/{id}' --match 'id=[0-9]+'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := regexFlags.build(args[0])
		if err != nil {
			return err
		}
		expr, err := p.Regex()
		if err != nil {
			return err
		}

		if jsonOutput {
			return output.JSON(cmd.OutOrStdout(), struct {
				Pattern string   `json:"pattern"`
				Regex   string   `json:"regex"`
				Tokens  []string `json:"tokens"`
			}{p.String(), expr, p.Tokens()})
		}
		fmt.Fprintln(cmd.OutOrStdout(), expr)
		return nil
	},
}

func init() {
	regexFlags.register(regexCmd, false)
	rootCmd.AddCommand(regexCmd)
}
