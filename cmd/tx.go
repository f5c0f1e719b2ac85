package cmd

import (
	"fmt"
	"strings"
	"time"

	"daybook/internal/cli"
	"daybook/internal/ledger"
	"daybook/internal/model"
	"daybook/internal/schedule"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagTxType     string
	flagTxAmount   string
	flagTxCategory string
	flagTxDate     string
	flagTxFund     string
	flagTxComment  string
	flagTxMonth    string
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Manage transactions",
}

var txAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction (interactive without --amount)",
	RunE:  runTxAdd,
}

var txListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a month's transactions",
	RunE:  runTxList,
}

var txRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a transaction (fund balances are not reversed)",
	Args:  cobra.ExactArgs(1),
	RunE:  runTxRm,
}

func init() {
	txAddCmd.Flags().StringVarP(&flagTxType, "type", "t", string(model.TypeExpense), "income or expense")
	txAddCmd.Flags().StringVarP(&flagTxAmount, "amount", "a", "", "Amount, e.g. 42.50")
	txAddCmd.Flags().StringVarP(&flagTxCategory, "category", "c", "", "Category name or id")
	txAddCmd.Flags().StringVar(&flagTxDate, "date", "", "Transaction date (YYYY-MM-DD, default today)")
	txAddCmd.Flags().StringVarP(&flagTxFund, "fund", "f", "", "Fund to withdraw an expense from (name or id)")
	txAddCmd.Flags().StringVarP(&flagTxComment, "comment", "m", "", "Comment")
	txListCmd.Flags().StringVar(&flagTxMonth, "month", "", "Month to list (YYYY-MM, default current)")

	txCmd.AddCommand(txAddCmd, txListCmd, txRmCmd)
	rootCmd.AddCommand(txCmd)
}

func runTxAdd(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	snap, err := st.Load()
	if err != nil {
		return err
	}
	doc := snap.Doc

	txn := model.Transaction{
		ID:        model.NewID("txn"),
		Type:      model.TransactionType(flagTxType),
		Comment:   flagTxComment,
		Date:      flagTxDate,
		CreatedAt: time.Now(),
	}
	if txn.Date == "" {
		txn.Date = schedule.DateKey(time.Now())
	}

	if flagTxAmount != "" {
		txn.Amount, err = decimal.NewFromString(flagTxAmount)
		if err != nil {
			return fmt.Errorf("parsing amount %q: %w", flagTxAmount, err)
		}
		if flagTxCategory != "" {
			cat, err := resolveCategory(doc.FinanceCategories, flagTxCategory)
			if err != nil {
				return err
			}
			txn.CategoryID = cat.ID
		}
		if flagTxFund != "" && txn.Type == model.TypeExpense {
			fund, err := resolveFund(doc.Funds, flagTxFund)
			if err != nil {
				return err
			}
			txn.FundID = fund.ID
		}
	} else if err := txForm(&txn, doc); err != nil {
		return err
	}

	if err := ledger.ValidateTransaction(txn, doc.FinanceCategories); err != nil {
		return err
	}
	if _, err := schedule.ParseDateKey(txn.Date); err != nil {
		return err
	}

	err = st.Update("tx.record", func(d model.Document) (model.Document, error) {
		d.Transactions, d.Funds = ledger.RecordTransaction(txn, d.Transactions, d.Funds)
		return d, nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Recorded %s %s (%s)\n",
		txn.Type,
		cli.FormatMoney(txn.Amount, cfg.General.Currency),
		cli.ShortID(txn.ID))
	return nil
}

func txForm(txn *model.Transaction, doc model.Document) error {
	var amountStr string

	fields := []huh.Field{
		huh.NewSelect[model.TransactionType]().
			Title("Type").
			Options(
				huh.NewOption("Expense", model.TypeExpense),
				huh.NewOption("Income", model.TypeIncome),
			).
			Value(&txn.Type),
		huh.NewInput().
			Title("Amount").
			Placeholder("0.00").
			Validate(func(s string) error {
				d, err := decimal.NewFromString(s)
				if err != nil {
					return fmt.Errorf("not a number")
				}
				if !d.IsPositive() {
					return fmt.Errorf("must be positive")
				}
				return nil
			}).
			Value(&amountStr),
		huh.NewSelect[string]().
			Title("Category").
			OptionsFunc(func() []huh.Option[string] {
				var opts []huh.Option[string]
				for _, c := range doc.FinanceCategories {
					if c.Type == txn.Type {
						opts = append(opts, huh.NewOption(c.Name, c.ID))
					}
				}
				return opts
			}, &txn.Type).
			Value(&txn.CategoryID),
		huh.NewInput().
			Title("Date").
			Validate(func(s string) error {
				_, err := schedule.ParseDateKey(s)
				return err
			}).
			Value(&txn.Date),
	}

	if len(doc.Funds) > 0 {
		fundOpts := []huh.Option[string]{huh.NewOption("No fund", "")}
		for _, f := range doc.Funds {
			fundOpts = append(fundOpts, huh.NewOption(f.Name, f.ID))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Withdraw from fund").
			Description("Only applies to expenses").
			Options(fundOpts...).
			Value(&txn.FundID))
	}

	fields = append(fields, huh.NewInput().
		Title("Comment").
		Value(&txn.Comment))

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return fmt.Errorf("parsing amount %q: %w", amountStr, err)
	}
	txn.Amount = amount
	if txn.Type != model.TypeExpense {
		txn.FundID = ""
	}
	return nil
}

func runTxList(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	snap, err := st.Load()
	if err != nil {
		return err
	}

	now := time.Now()
	month, year := int(now.Month()), now.Year()
	if flagTxMonth != "" {
		t, err := time.Parse("2006-01", flagTxMonth)
		if err != nil {
			return fmt.Errorf("parsing month %q: %w", flagTxMonth, err)
		}
		month, year = int(t.Month()), t.Year()
	}

	txns := ledger.MonthTransactions(snap.Doc.Transactions, month, year)
	if len(txns) == 0 {
		fmt.Println("  No transactions for this month.")
		return nil
	}

	rows := make([][]string, 0, len(txns))
	for _, t := range txns {
		name := "no category"
		if cat, ok := snap.Doc.FindCategory(t.CategoryID); ok {
			name = cat.Name
		}
		amount := cli.FormatSigned(t.Amount, t.Type == model.TypeIncome, cfg.General.Currency)
		if t.Type == model.TypeIncome {
			amount = cli.IncomeStyle.Render(amount)
		} else {
			amount = cli.ExpenseStyle.Render(amount)
		}
		rows = append(rows, []string{t.Date, name, cli.Truncate(t.Comment, 24), cli.ShortID(t.ID), amount})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Transactions %04d-%02d", year, month),
		Headers: []string{"Date", "Category", "Comment", "ID", "Amount"},
		Rows:    rows,
	}))
	return nil
}

func runTxRm(_ *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	return st.Update("tx.delete", func(doc model.Document) (model.Document, error) {
		id := ""
		for _, t := range doc.Transactions {
			if t.ID == args[0] || strings.HasPrefix(cli.ShortID(t.ID), args[0]) || strings.HasPrefix(t.ID, args[0]) {
				if id != "" {
					return doc, fmt.Errorf("multiple transactions match %q, be more specific", args[0])
				}
				id = t.ID
			}
		}
		if id == "" {
			return doc, fmt.Errorf("no transaction matches %q", args[0])
		}
		doc.Transactions = ledger.DeleteTransaction(id, doc.Transactions)
		fmt.Printf("  Deleted %s\n", cli.ShortID(id))
		return doc, nil
	})
}

func resolveCategory(categories []model.Category, ref string) (model.Category, error) {
	for _, c := range categories {
		if c.ID == ref || strings.EqualFold(c.Name, ref) {
			return c, nil
		}
	}
	return model.Category{}, fmt.Errorf("no category matches %q", ref)
}

func resolveFund(funds []model.Fund, ref string) (model.Fund, error) {
	for _, f := range funds {
		if f.ID == ref || strings.EqualFold(f.Name, ref) {
			return f, nil
		}
	}
	return model.Fund{}, fmt.Errorf("no fund matches %q", ref)
}
