package api

import (
	"github.com/scienceol/psat/pkg/middleware/db"
	"github.com/scienceol/psat/pkg/middleware/logger"
	"github.com/scienceol/psat/pkg/repo/antoine"
	"github.com/scienceol/psat/pkg/repo/migrate"
	"github.com/spf13/cobra"
)

func NewMigrate() *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:          "migrate",
		Long:         "Create the antoine coefficient table and optionally seed reference data",
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			initPostgres(cmd.Context())
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := migrate.Table(ctx); err != nil {
				return err
			}
			if !seed {
				return nil
			}
			coefs := antoine.NewBuiltin().All()
			if err := antoine.NewAntoineImpl().BatchCreateAntoineCoef(ctx, coefs); err != nil {
				return err
			}
			logger.Infof(ctx, "seeded %d antoine coefficient records", len(coefs))
			return nil
		},
		PostRunE: func(cmd *cobra.Command, _ []string) error {
			db.ClosePostgres(cmd.Context())
			return nil
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "insert the builtin reference coefficients")
	return cmd
}
