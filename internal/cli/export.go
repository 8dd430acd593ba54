package cli

import (
	"github.com/spf13/cobra"

	"portfolio/internal/export"
	"portfolio/internal/web"
)

var outDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the site to static HTML",
	Long: `export resolves every page once, with the same backend and fallback
rules as serve, and writes the result as plain files ready for any static
host.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		pages, renderer, closeRepo, err := buildPages(ctx)
		if err != nil {
			return err
		}
		defer closeRepo()

		tmpl, err := web.Templates(renderer)
		if err != nil {
			return err
		}

		dir := outDir
		if dir == "" {
			dir = appConfig.Export.Dir
		}

		n, err := export.NewExporter(pages, tmpl, logger).Run(ctx, dir)
		if err != nil {
			return err
		}
		logger.Info().Str("dir", dir).Int("pages", n).Msg("site exported")
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default export.dir)")
	rootCmd.AddCommand(exportCmd)
}
