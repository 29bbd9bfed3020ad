package main

import (
	"context"
	"fmt"

	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/infra/db"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/infra/uow"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/pkg/config"
	"rental-marketplace/internal/pkg/password"
	"rental-marketplace/internal/usecase/shared"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert bootstrap data",
	}
	cmd.AddCommand(seedAdminCmd())
	return cmd
}

// Admins cannot self-register, so the first one is created here.
func seedAdminCmd() *cobra.Command {
	var name, email, pass string

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Create an ADMIN account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := newAdmin(name, email, pass)
			if err != nil {
				return err
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			pool, cleanup, err := db.Connect(cfg.DB)
			if err != nil {
				return err
			}
			defer cleanup()

			unit := uow.NewPostgresUoW(pool, sqlc.New())
			err = unit.Within(cmd.Context(), func(ctx context.Context, tx shared.Tx) error {
				_, cerr := tx.Users().Create(ctx, tx.DB(), u)
				return cerr
			})
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errors.Newf("a user with email %s already exists", u.Email().Value())
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s (%s)\n", u.Email().Value(), u.ID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "Administrator", "display name")
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&pass, "password", "", "login password (min 8 characters)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newAdmin(name, email, pass string) (*user.User, error) {
	n, err := user.NewName(name)
	if err != nil {
		return nil, err
	}
	e, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}
	p, err := user.NewPassword(pass)
	if err != nil {
		return nil, err
	}
	hash, err := password.HashPassword(p.Value())
	if err != nil {
		return nil, err
	}
	return user.NewUser(n, e, hash, user.RoleAdmin, clock.NewRealClock().Now()), nil
}
