package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/forshine-dev/shinebuilder/database/repositories"
	"github.com/forshine-dev/shinebuilder/export"
	"github.com/forshine-dev/shinebuilder/services"
	"github.com/forshine-dev/shinebuilder/shared"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func NewCoverageCommand() *cobra.Command {
	coverage := cobra.Command{
		Use:   "coverage",
		Short: "Compute the taxonomy coverage report",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			shared.LoadConfig() // nolint
			database, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			coverageService := services.NewCoverageService(
				repositories.NewTaxonomyRepository(database),
				repositories.NewAssetRepository(database),
			)

			report, err := coverageService.Report()
			if err != nil {
				slog.Error("could not compute coverage", "err", err)
				return
			}

			format, _ := cmd.Flags().GetString("format")
			if format != "" {
				rendered, err := export.Render(report, export.Format(format))
				if err != nil {
					slog.Error("could not render report", "err", err)
					return
				}
				fmt.Println(string(rendered))
				return
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Pillar", "Behaviors", "Covered", "Coverage"})
			for _, pillar := range report.PerPillar {
				tw.AppendRow(table.Row{pillar.Pillar, pillar.TotalBehaviors, pillar.CoveredBehaviors, fmt.Sprintf("%d%%", pillar.Coverage)})
			}
			tw.Render()

			if len(report.GlobalMissing) == 0 {
				fmt.Println("No gaps - every behavior is covered by validated content.")
				return
			}

			gaps := table.NewWriter()
			gaps.SetOutputMirror(os.Stdout)
			gaps.SetTitle(fmt.Sprintf("Gaps (%d)", report.TotalGaps))
			gaps.AppendHeader(table.Row{"Pillar", "Sub-component", "Competence", "Behavior"})
			for _, gap := range report.GlobalMissing {
				gaps.AppendRow(table.Row{gap.Pillar, gap.SubComponent, gap.Competence, gap.Behavior})
			}
			gaps.Render()
		},
	}

	coverage.Flags().String("format", "", "render the report instead of printing tables (markdown, html or json)")

	return &coverage
}
