package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"daybook/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to daybook!")
	fmt.Println()

	// 1. Currency symbol
	fmt.Println("  1. Currency symbol")
	fmt.Printf("     Current: %s\n", cfg.General.Currency)
	fmt.Print("     > ")
	currency, _ := reader.ReadString('\n')
	currency = strings.TrimSpace(currency)
	if currency != "" {
		cfg.General.Currency = currency
	}
	fmt.Println()

	// 2. Data location
	fmt.Println("  2. Document database path")
	fmt.Printf("     Current: %s\n", config.DataPath(cfg))
	fmt.Print("     > ")
	path, _ := reader.ReadString('\n')
	path = strings.TrimSpace(path)
	if path != "" {
		cfg.General.DataPath = path
	}
	fmt.Println()

	// 3. Color output
	fmt.Println("  3. Colored output")
	fmt.Println("     (1) On [default]")
	fmt.Println("     (2) Off")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	cfg.Appearance.Color = strings.TrimSpace(choice) != "2"

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	// Opening the store seeds the default categories and funds.
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	snap, err := st.Load()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Printf("  Document ready: %d categories, %d funds\n",
		len(snap.Doc.FinanceCategories), len(snap.Doc.Funds))
	fmt.Println("  Run `daybook setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
