package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/complaintdesk/config"
	"github.com/Alijeyrad/complaintdesk/internal/repo"
	"github.com/Alijeyrad/complaintdesk/pkg/database"
)

func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the complaints table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}
			if cfg.StoreDriver() == config.DriverMemory {
				fmt.Println("Memory driver selected, nothing to migrate.")
				return nil
			}

			shared := database.NewShared(database.FromCentralConfig(cfg.Database))
			defer shared.Close()

			db, err := shared.Get()
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			if timeout <= 0 {
				timeout = 30 * time.Second
			}
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			fmt.Println("Running migrations.")
			if err := database.Migrate(ctx, db, &repo.Complaint{}); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			fmt.Println("Migrations completed successfully.")
			return nil
		},
	}

	return cmd
}
