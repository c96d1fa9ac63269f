package main

import (
	"github.com/spf13/cobra"

	"communityday/internal/repository/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()
		if err := postgres.Migrate(cmd.Context(), a.db); err != nil {
			return err
		}
		a.logger.Info("schema applied")
		return nil
	},
}
