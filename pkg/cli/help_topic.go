package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/pattern/pkg/cli/help"
)

var helpTopicCmd = &cobra.Command{
	Use:   "help [command|topic]",
	Short: "Show help for a command or topic",
	Long: `Show help for a command, or one of the topics:

` + help.ListTopics(),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if len(args) == 0 {
			return rootCmd.Help()
		}

		if !help.IsTopic(args[0]) {
			if target, _, err := rootCmd.Find(args); err == nil && target != rootCmd {
				return target.Help()
			}
		}

		content, err := help.GetTopic(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(w, content)
		return nil
	},
}

func init() {
	rootCmd.SetHelpCommand(helpTopicCmd)
}
