package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"padelpoint/internal/domain/entity"
	"padelpoint/internal/infra/persistence/postgres"
	"padelpoint/internal/util"
)

// padelctl migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update every table",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot()
		if err != nil {
			return err
		}
		defer a.close()

		fmt.Println("Running migrations…")
		started := time.Now()
		if err := postgres.Migrate(cmd.Context(), a.db); err != nil {
			return err
		}
		a.logger.Info("Migrations applied", slog.String("took", util.FormatDuration(time.Since(started))))

		return nil
	},
}

// padelctl seed-roles
var seedRolesCmd = &cobra.Command{
	Use:   "seed-roles",
	Short: "Create the admin and user roles when missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot()
		if err != nil {
			return err
		}
		defer a.close()

		roles := postgres.NewRoleRepository(a.db)
		for _, name := range []string{entity.RoleNameAdmin, entity.RoleNameUser} {
			role, err := roles.EnsureExists(cmd.Context(), name)
			if err != nil {
				return err
			}
			a.logger.Info("Role ready", slog.Int64("id", role.ID), slog.String("name", role.Name))
		}

		return nil
	},
}
