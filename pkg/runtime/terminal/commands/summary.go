package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
	"github.com/fin-tools/expense-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/expense-atlas/pkg/services/analytics"
)

type SummaryCmd struct {
	file     string
	reporter *export.Reporter
}

func NewSummaryCmd(reporter *export.Reporter) *cobra.Command {
	sc := &SummaryCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income, expenses and savings for the whole dataset",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.file, "file", "", "Path to the transaction export (CSV or XLSX)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (sc *SummaryCmd) run(cmd *cobra.Command, args []string) error {
	txs, err := loadTransactions(cmd.Context(), sc.file)
	if err != nil {
		return err
	}

	metrics := analytics.Summarize(txs)
	report := newReport("Expense Summary", txs)
	report.Sections = []domain.ReportSection{{
		Title: "Totals",
		Summary: map[string]interface{}{
			"Total Income":   money(metrics.TotalIncome),
			"Total Expenses": money(metrics.TotalExpenses),
			"Net Savings":    money(metrics.NetSavings),
			"Savings Rate":   fmt.Sprintf("%.1f%%", metrics.SavingsRate),
		},
	}}

	return sc.reporter.Handle(report)
}
