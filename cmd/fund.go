package cmd

import (
	"fmt"
	"strings"
	"time"

	"daybook/internal/cli"
	"daybook/internal/ledger"
	"daybook/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagFundName  string
	flagFundRule  string
	flagFundValue string
)

var fundCmd = &cobra.Command{
	Use:   "fund",
	Short: "Manage savings funds",
}

var fundAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a fund (interactive without --name)",
	RunE:  runFundAdd,
}

var fundListCmd = &cobra.Command{
	Use:   "list",
	Short: "List funds and balances",
	RunE:  runFundList,
}

var fundRmCmd = &cobra.Command{
	Use:   "rm <name|id>",
	Short: "Delete a fund (transaction history keeps its reference)",
	Args:  cobra.ExactArgs(1),
	RunE:  runFundRm,
}

func init() {
	fundAddCmd.Flags().StringVarP(&flagFundName, "name", "n", "", "Fund name")
	fundAddCmd.Flags().StringVarP(&flagFundRule, "rule", "r", string(model.RulePercent), "Allocation rule: percent, fixed, or choice")
	fundAddCmd.Flags().StringVarP(&flagFundValue, "value", "v", "", "Rule value (percent or amount; omit for choice)")

	fundCmd.AddCommand(fundAddCmd, fundListCmd, fundRmCmd)
	rootCmd.AddCommand(fundCmd)
}

func runFundAdd(_ *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	f := model.Fund{
		ID:        model.NewID("fund"),
		Name:      strings.TrimSpace(flagFundName),
		Balance:   decimal.Zero,
		RuleType:  model.RuleType(flagFundRule),
		CreatedAt: time.Now(),
	}
	valueStr := flagFundValue

	if f.Name == "" {
		if err := fundForm(&f, &valueStr); err != nil {
			return err
		}
	}

	if f.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !f.RuleType.Valid() {
		return fmt.Errorf("unknown rule type %q", f.RuleType)
	}
	if f.RuleType != model.RuleChoice {
		if valueStr == "" {
			return fmt.Errorf("rule %q needs a value", f.RuleType)
		}
		v, err := decimal.NewFromString(valueStr)
		if err != nil {
			return fmt.Errorf("parsing rule value %q: %w", valueStr, err)
		}
		f.RuleValue = &v
	}

	err = st.Update("fund.save", func(doc model.Document) (model.Document, error) {
		doc.Funds = ledger.SaveFund(f, doc.Funds)
		return doc, nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Created fund %s (%s)\n", f.Name, f.RuleDescription())
	return nil
}

func fundForm(f *model.Fund, valueStr *string) error {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Placeholder("e.g. Emergency cushion").
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("name is required")
				}
				return nil
			}).
			Value(&f.Name),
		huh.NewSelect[model.RuleType]().
			Title("Allocation rule").
			Options(
				huh.NewOption("Percent of income", model.RulePercent),
				huh.NewOption("Fixed amount per income", model.RuleFixed),
				huh.NewOption("Manual only", model.RuleChoice),
			).
			Value(&f.RuleType),
		huh.NewInput().
			Title("Rule value").
			Placeholder("percent or amount, empty for manual").
			Validate(func(s string) error {
				if s == "" {
					return nil
				}
				_, err := decimal.NewFromString(s)
				return err
			}).
			Value(valueStr),
	)).Run()
}

func runFundList(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	snap, err := st.Load()
	if err != nil {
		return err
	}

	if len(snap.Doc.Funds) == 0 {
		fmt.Println("  No funds. Create one with `daybook fund add`.")
		return nil
	}

	rows := make([][]string, 0, len(snap.Doc.Funds))
	for _, f := range snap.Doc.Funds {
		rows = append(rows, []string{
			f.Name,
			f.RuleDescription(),
			cli.ShortID(f.ID),
			cli.FundStyle.Render(cli.FormatMoney(f.Balance, cfg.General.Currency)),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Funds",
		Headers: []string{"Name", "Rule", "ID", "Balance"},
		Rows:    rows,
	}))
	fmt.Printf("  Total in funds: %s\n",
		cli.FundStyle.Render(cli.FormatMoney(ledger.FundsTotal(snap.Doc.Funds), cfg.General.Currency)))
	return nil
}

func runFundRm(_ *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	return st.Update("fund.delete", func(doc model.Document) (model.Document, error) {
		f, err := resolveFund(doc.Funds, args[0])
		if err != nil {
			return doc, err
		}
		doc.Funds = ledger.DeleteFund(f.ID, doc.Funds)
		fmt.Printf("  Deleted fund %s\n", f.Name)
		return doc, nil
	})
}
