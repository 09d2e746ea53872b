package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/pattern/pkg/cli/internal/output"
	"github.com/getmockd/pattern/pkg/transform"
)

var transformersCmd = &cobra.Command{
	Use:   "transformers",
	Short: "List the transformer names usable in --transform and pattern-set files",
	Long: `List the builtin transformer names.

Besides these names a transformer spec may be
  expr:EXPRESSION   an expr-lang expression over "value", e.g. expr:int(value) * 2
  jsonpath:PATH     parse the capture as JSON and take the first match of PATH`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := transform.NewRegistry().Names()
		if jsonOutput {
			return output.JSON(cmd.OutOrStdout(), names)
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transformersCmd)
}
