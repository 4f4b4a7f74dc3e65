package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/Alijeyrad/complaintdesk/cmd/http"
	systemcmd "github.com/Alijeyrad/complaintdesk/cmd/system"
	workercmd "github.com/Alijeyrad/complaintdesk/cmd/worker"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "complaintdesk",
	Short: "Complaint intake and triage service.",
	Long: `complaintdesk accepts customer complaints over HTTP, lets administrators
filter, triage and resolve them, and notifies the team by email or NATS
when complaints arrive or change status.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
	rootCmd.AddCommand(workercmd.NewWorkerCommand())
}
