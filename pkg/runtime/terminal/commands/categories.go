package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
	"github.com/fin-tools/expense-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/expense-atlas/pkg/services/analytics"
)

type CategoriesCmd struct {
	file     string
	depth    int
	limit    int
	reporter *export.Reporter
}

func NewCategoriesCmd(reporter *export.Reporter) *cobra.Command {
	cc := &CategoriesCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show expense totals by category",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.file, "file", "", "Path to the transaction export (CSV or XLSX)")
	cmd.Flags().IntVar(&cc.depth, "depth", 1, "Breakdown depth: 1 for categories, 2 for subcategories")
	cmd.Flags().IntVar(&cc.limit, "limit", 0, "Show at most this many rows (0 for all)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (cc *CategoriesCmd) run(cmd *cobra.Command, args []string) error {
	txs, err := loadTransactions(cmd.Context(), cc.file)
	if err != nil {
		return err
	}

	var section domain.ReportSection
	switch cc.depth {
	case 1:
		section.Title = "Expenses by Category"
		for _, t := range analytics.CategoryTotals(txs) {
			section.Details = append(section.Details, domain.ReportDetail{
				Name:  t.Category,
				Value: money(t.Amount),
			})
		}
	case 2:
		section.Title = "Expenses by Category and Subcategory"
		for _, t := range analytics.SubcategoryTotals(txs) {
			section.Details = append(section.Details, domain.ReportDetail{
				Name:        t.Category,
				Value:       money(t.Amount),
				Description: t.Subcategory,
			})
		}
	default:
		return fmt.Errorf("unsupported depth %d, expected 1 or 2", cc.depth)
	}

	if cc.limit > 0 && len(section.Details) > cc.limit {
		section.Details = section.Details[:cc.limit]
	}

	report := newReport("Category Breakdown", txs)
	report.Sections = []domain.ReportSection{section}
	return cc.reporter.Handle(report)
}
