package commands

import (
	"github.com/spf13/cobra"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
	"github.com/fin-tools/expense-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/expense-atlas/pkg/services/analytics"
)

type PivotCmd struct {
	file     string
	groups   []string
	reporter *export.Reporter
}

func NewPivotCmd(reporter *export.Reporter) *cobra.Command {
	pc := &PivotCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "pivot",
		Short: "Show category expenses broken down by group",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.file, "file", "", "Path to the transaction export (CSV or XLSX)")
	cmd.Flags().StringSliceVar(&pc.groups, "groups", nil, "Groups to compare")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("groups")

	return cmd
}

func (pc *PivotCmd) run(cmd *cobra.Command, args []string) error {
	txs, err := loadTransactions(cmd.Context(), pc.file)
	if err != nil {
		return err
	}

	pivot := analytics.BuildPivot(txs, pc.groups)
	report := newReport("Category Breakdown by Group", txs)

	for j, group := range pivot.Groups {
		section := domain.ReportSection{Title: group}
		for i, category := range pivot.Categories {
			section.Details = append(section.Details, domain.ReportDetail{
				Name:  category,
				Value: money(pivot.Cells[i][j]),
			})
		}
		report.Sections = append(report.Sections, section)
	}

	return pc.reporter.Handle(report)
}
