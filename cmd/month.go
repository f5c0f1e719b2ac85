package cmd

import (
	"fmt"
	"time"

	"daybook/internal/cli"
	"daybook/internal/ledger"
	"daybook/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagMonthMonth  string
	flagMonthOffset int
)

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Monthly finance summary",
	RunE:  runMonth,
}

func init() {
	monthCmd.Flags().StringVar(&flagMonthMonth, "month", "", "Month to show (YYYY-MM, default current)")
	monthCmd.Flags().IntVarP(&flagMonthOffset, "offset", "o", 0, "Months relative to the current one, e.g. -1")
	rootCmd.AddCommand(monthCmd)
}

func runMonth(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	snap, err := st.Load()
	if err != nil {
		return err
	}

	ref := time.Now().AddDate(0, flagMonthOffset, 0)
	if flagMonthMonth != "" {
		ref, err = time.Parse("2006-01", flagMonthMonth)
		if err != nil {
			return fmt.Errorf("parsing month %q: %w", flagMonthMonth, err)
		}
	}
	month, year := int(ref.Month()), ref.Year()

	sum := ledger.MonthlyAggregate(snap.Doc.Transactions, month, year)
	currency := cfg.General.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle(ref.Format("January 2006")))
	fmt.Println()

	balance := cli.FormatMoney(sum.Balance, currency)
	if sum.Balance.IsNegative() {
		balance = cli.ExpenseStyle.Render(balance)
	} else {
		balance = cli.IncomeStyle.Render(balance)
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"", "Amount"},
		Rows: [][]string{
			{"Income", cli.IncomeStyle.Render(cli.FormatMoney(sum.TotalIncome, currency))},
			{"Expenses", cli.ExpenseStyle.Render(cli.FormatMoney(sum.TotalExpense, currency))},
			{"Balance", balance},
			{"In funds", cli.FundStyle.Render(cli.FormatMoney(ledger.FundsTotal(snap.Doc.Funds), currency))},
		},
	}))

	series := ledger.DailyExpenseSeries(snap.Doc.Transactions, month, year)
	if hasSpend(series) {
		fmt.Println()
		fmt.Printf("  Daily spend  %s\n", cli.RenderSparkline(series))
	}

	recent := ledger.MonthTransactions(snap.Doc.Transactions, month, year)
	if len(recent) > 5 {
		recent = recent[:5]
	}
	if len(recent) > 0 {
		fmt.Println()
		rows := make([][]string, 0, len(recent))
		for _, t := range recent {
			name := "no category"
			if cat, ok := snap.Doc.FindCategory(t.CategoryID); ok {
				name = cat.Name
			}
			amount := cli.FormatSigned(t.Amount, t.Type == model.TypeIncome, currency)
			if t.Type == model.TypeIncome {
				amount = cli.IncomeStyle.Render(amount)
			} else {
				amount = cli.ExpenseStyle.Render(amount)
			}
			rows = append(rows, []string{t.Date, name, amount})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Recent",
			Headers: []string{"Date", "Category", "Amount"},
			Rows:    rows,
		}))
	}

	return nil
}

func hasSpend(series []float64) bool {
	for _, v := range series {
		if v > 0 {
			return true
		}
	}
	return false
}
