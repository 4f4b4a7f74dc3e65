package http

import "github.com/spf13/cobra"

// NewHTTPCommand groups commands that run the complaint API.
func NewHTTPCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Complaint API server commands",
	}

	cmd.AddCommand(NewStartCommand())

	return cmd
}
