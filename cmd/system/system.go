package system

import "github.com/spf13/cobra"

// NewSystemCommand groups database bootstrap and tooling commands.
func NewSystemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "Database bootstrap and tooling commands",
	}

	cmd.AddCommand(
		NewInitCommand(),
		NewMigrateCommand(),
		NewGenDocsCommand(),
	)

	return cmd
}
