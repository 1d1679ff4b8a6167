package commands

import (
	"github.com/spf13/cobra"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
	"github.com/fin-tools/expense-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/expense-atlas/pkg/services/analytics"
)

type TrendCmd struct {
	file        string
	granularity string
	reporter    *export.Reporter
}

func NewTrendCmd(reporter *export.Reporter) *cobra.Command {
	tc := &TrendCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Show income vs expenses per period",
		RunE:  tc.run,
	}

	cmd.Flags().StringVar(&tc.file, "file", "", "Path to the transaction export (CSV or XLSX)")
	cmd.Flags().StringVar(&tc.granularity, "granularity", "monthly", "Period granularity (daily, weekly, monthly)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (tc *TrendCmd) run(cmd *cobra.Command, args []string) error {
	g, err := domain.ParseGranularity(tc.granularity)
	if err != nil {
		return err
	}

	txs, err := loadTransactions(cmd.Context(), tc.file)
	if err != nil {
		return err
	}

	points, err := analytics.PeriodTrend(txs, g)
	if err != nil {
		return err
	}

	section := domain.ReportSection{Title: "Income vs Expenses"}
	for _, p := range points {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        p.Period,
			Value:       money(p.Income),
			Description: "expenses " + money(p.Expense),
		})
	}

	report := newReport("Period Trend", txs)
	report.Sections = []domain.ReportSection{section}
	return tc.reporter.Handle(report)
}
