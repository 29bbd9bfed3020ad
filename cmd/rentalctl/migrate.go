package main

import (
	"fmt"
	"path/filepath"

	"rental-marketplace/internal/infra/db"
	"rental-marketplace/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema migrations",
	}
	cmd.AddCommand(migrateUpCmd())
	return cmd
}

func migrateUpCmd() *cobra.Command {
	var (
		dir      string
		useAtlas bool
	)

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Long: `Applies every pending SQL file in --dir in lexical order.
With --atlas the directory is handed to the atlas CLI instead; it must then carry an atlas.sum
(run "atlas migrate hash --dir file://migrations" after editing migrations).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if useAtlas {
				return migrateWithAtlas(cmd, cfg.DB, dir)
			}

			pool, cleanup, err := db.Connect(cfg.DB)
			if err != nil {
				return err
			}
			defer cleanup()

			applied, err := db.MigrateUp(cmd.Context(), pool, dir)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Database is up to date")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s): %v\n", len(applied), applied)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "migrations", "directory holding *.sql migrations")
	cmd.Flags().BoolVar(&useAtlas, "atlas", false, "apply through the atlas CLI")
	return cmd
}

func migrateWithAtlas(cmd *cobra.Command, cfg config.DBConfig, dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return errors.Wrap(err, "invalid migrations dir")
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		return errors.Wrap(err, "failed to start atlas")
	}

	res, err := client.MigrateApply(cmd.Context(), &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildDSN(),
		DirURL: "file://" + abs,
	})
	if err != nil {
		return errors.Wrap(err, "atlas migrate apply failed")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s), now at version %s\n", len(res.Applied), res.Target)
	return nil
}
