package main

import (
	"fmt"

	"github.com/linskybing/bugtrackr/internal/application"
	"github.com/linskybing/bugtrackr/internal/config/db"
	"github.com/linskybing/bugtrackr/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newCreateAdminCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account, or promote an existing user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFlags(cmd.Flags(), "name", "email", "password"); err != nil {
				return err
			}

			gdb, err := db.Open()
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			if err := db.Migrate(gdb); err != nil {
				return fmt.Errorf("migrate database: %w", err)
			}

			svc := application.NewUserService(repository.New(gdb))
			admin, err := svc.CreateAdmin(name, email, password)
			if err != nil {
				return err
			}
			log.Info().Str("user_id", admin.ID).Str("email", admin.Email).Msg("admin account ready")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "password (min 6 characters)")
	return cmd
}

// requireFlags fails when any named flag is unset or blank.
func requireFlags(fs *pflag.FlagSet, names ...string) error {
	for _, n := range names {
		f := fs.Lookup(n)
		if f == nil || f.Value.String() == "" {
			return fmt.Errorf("--%s is required", n)
		}
	}
	return nil
}
