package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"portfolio/internal/database"
	"portfolio/internal/richtext"
	"portfolio/internal/source/static"
)

var noSeed bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the content schema in Postgres and seed it",
	Long: `migrate creates the Directus-shaped content tables (projects,
technologies, projects_technologies, home, site_settings) in the database
at database.url and inserts the built-in content into it. Rows that
already exist are left alone, so running it again changes nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if appConfig.Database.URL == "" {
			return errors.New("migrate needs database.url")
		}

		pool, err := database.Connect(ctx, appConfig.Database.URL, logger)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := database.RunMigrations(ctx, pool, logger); err != nil {
			return err
		}
		if noSeed {
			return nil
		}

		dataset, err := static.Load()
		if err != nil {
			return err
		}
		return database.Seed(ctx, pool, dataset, richtext.NewRenderer(), logger)
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&noSeed, "no-seed", false, "only create the schema")
	rootCmd.AddCommand(migrateCmd)
}
