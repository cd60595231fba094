package commands

import (
	"log/slog"
	"os"

	"github.com/forshine-dev/shinebuilder/database/repositories"
	"github.com/forshine-dev/shinebuilder/services"
	"github.com/forshine-dev/shinebuilder/shared"
	"github.com/spf13/cobra"
)

func NewTaxonomyCommand() *cobra.Command {
	taxonomy := cobra.Command{
		Use:   "taxonomy",
		Short: "Manage the methodology taxonomy",
	}

	taxonomy.AddCommand(newTaxonomyImportCommand())
	return &taxonomy
}

func newTaxonomyImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Seed or update the taxonomy tree from a yaml document",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			shared.LoadConfig() // nolint
			database, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			doc, err := os.ReadFile(args[0])
			if err != nil {
				slog.Error("could not read taxonomy file", "file", args[0], "err", err)
				return
			}

			taxonomyService := services.NewTaxonomyService(repositories.NewTaxonomyRepository(database))

			written, err := taxonomyService.ImportYAML(doc)
			if err != nil {
				slog.Error("could not import taxonomy", "err", err)
				return
			}

			slog.Info("taxonomy imported", "nodes", written)
		},
	}
}
