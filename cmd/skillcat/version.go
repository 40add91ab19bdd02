package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justinpbarnett/skillcat/internal/logger"
	"github.com/justinpbarnett/skillcat/internal/ui/panels"
	"github.com/justinpbarnett/skillcat/internal/update"
)

func newVersionCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and check for a newer release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Printf("skillcat version %s\n", panels.Version)

			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if err := setupLogging(cfg, flags, false); err != nil {
				return err
			}
			defer logger.Sync()

			switch {
			case update.IsDevelopment(panels.Version):
				fmt.Println("Development build, update check skipped.")
				return nil
			case cfg.Update.Repo == "" || (cfg.Update.Check != nil && !*cfg.Update.Check):
				return nil
			}

			rel, err := update.CheckForUpdate(cmd.Context(), panels.Version, cfg.Update.Repo)
			if err != nil {
				fmt.Printf("Update check failed: %v\n", err)
				return nil
			}
			if rel != nil {
				fmt.Printf("Update available: v%s. Run \"skillcat update\" to install.\n", rel.Version)
			} else {
				fmt.Println("You are up to date.")
			}
			return nil
		},
	}
}

func newUpdateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Replace this binary with the latest release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if err := setupLogging(cfg, flags, false); err != nil {
				return err
			}
			defer logger.Sync()

			switch {
			case update.IsDevelopment(panels.Version):
				return update.ErrDevelopmentBuild
			case cfg.Update.Repo == "":
				return fmt.Errorf("update.repo is not configured")
			}

			rel, err := update.CheckForUpdate(cmd.Context(), panels.Version, cfg.Update.Repo)
			if err != nil {
				return err
			}
			if rel == nil {
				fmt.Printf("skillcat %s is already the latest version.\n", panels.Version)
				return nil
			}

			applied, err := update.Apply(cmd.Context(), panels.Version, cfg.Update.Repo)
			if err != nil {
				return err
			}
			fmt.Printf("Updated skillcat %s -> v%s\n", panels.Version, applied.Version)
			return nil
		},
	}
}
