package commands

import (
	"github.com/spf13/cobra"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
	"github.com/fin-tools/expense-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/expense-atlas/pkg/services/analytics"
)

type DrillDownCmd struct {
	file     string
	category string
	group    string
	reporter *export.Reporter
}

func NewDrillDownCmd(reporter *export.Reporter) *cobra.Command {
	dc := &DrillDownCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "drilldown",
		Short: "List the transactions behind one category/group cell",
		RunE:  dc.run,
	}

	cmd.Flags().StringVar(&dc.file, "file", "", "Path to the transaction export (CSV or XLSX)")
	cmd.Flags().StringVar(&dc.category, "category", "", "Category to inspect")
	cmd.Flags().StringVar(&dc.group, "group", "", "Group to inspect")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("group")

	return cmd
}

func (dc *DrillDownCmd) run(cmd *cobra.Command, args []string) error {
	txs, err := loadTransactions(cmd.Context(), dc.file)
	if err != nil {
		return err
	}

	dd := analytics.DrillDown(txs, dc.category, dc.group)

	section := domain.ReportSection{
		Title:   dc.category + " / " + dc.group,
		Summary: map[string]interface{}{"Total": money(dd.Total)},
	}
	for _, row := range dd.Transactions {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        row.Date.Format("2006-01-02") + "  " + row.Title,
			Value:       money(row.Magnitude),
			Description: row.Note,
		})
	}

	report := newReport("Transaction Drill-down", txs)
	report.Sections = []domain.ReportSection{section}
	return dc.reporter.Handle(report)
}
