package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
	"github.com/fin-tools/expense-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/expense-atlas/pkg/services/analytics"
)

type GroupsCmd struct {
	file     string
	reporter *export.Reporter
}

func NewGroupsCmd(reporter *export.Reporter) *cobra.Command {
	gc := &GroupsCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "groups [group...]",
		Short: "List tag groups or summarize the named ones",
		RunE:  gc.run,
	}

	cmd.Flags().StringVar(&gc.file, "file", "", "Path to the transaction export (CSV or XLSX)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (gc *GroupsCmd) run(cmd *cobra.Command, args []string) error {
	txs, err := loadTransactions(cmd.Context(), gc.file)
	if err != nil {
		return err
	}

	report := newReport("Group Analysis", txs)

	if len(args) == 0 {
		section := domain.ReportSection{
			Title:   "Groups",
			Summary: map[string]interface{}{"Found": len(analytics.Groups(txs))},
		}
		for _, g := range analytics.Groups(txs) {
			section.Details = append(section.Details, domain.ReportDetail{Name: g})
		}
		report.Sections = []domain.ReportSection{section}
		return gc.reporter.Handle(report)
	}

	for _, group := range args {
		summary, err := analytics.SummarizeGroup(txs, group)
		if err != nil {
			return err
		}

		topCategory := "-"
		if summary.TopCategory != nil {
			topCategory = *summary.TopCategory
		}
		report.Sections = append(report.Sections, domain.ReportSection{
			Title: summary.Group,
			Summary: map[string]interface{}{
				"Total Spent":  money(summary.TotalSpent),
				"Duration":     fmt.Sprintf("%d days", summary.DurationDays),
				"Top Category": topCategory,
				"Transactions": summary.TransactionCount,
			},
		})
	}

	return gc.reporter.Handle(report)
}
