package cli

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "carbonlog",
		Short: "A personal carbon-footprint tracking CLI",
	}
	cmd.SetHelpFunc(styledHelpFunc())
	cmd.AddCommand(initCmd)
	cmd.AddCommand(addCmd)
	cmd.AddCommand(summaryCmd)
	cmd.AddCommand(historyCmd)
	cmd.AddCommand(exportCmd)
	cmd.AddCommand(suggestCmd)
	cmd.AddCommand(statusCmd)
	cmd.AddCommand(versionCmd)
	return cmd
}

func Execute() error {
	return newRootCmd().Execute()
}
