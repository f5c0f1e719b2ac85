package cmd

import (
	"fmt"
	"strconv"

	"daybook/internal/cli"

	"github.com/spf13/cobra"
)

var flagLogLimit int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent document revisions",
	RunE:  runLog,
}

func init() {
	logCmd.Flags().IntVarP(&flagLogLimit, "limit", "n", 20, "Number of revisions to show")
	rootCmd.AddCommand(logCmd)
}

func runLog(_ *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	entries, err := st.History(flagLogLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("  No revisions yet.")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{strconv.FormatInt(e.Revision, 10), e.Op, e.SavedAt})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Rev", "Operation", "Saved at"},
		Rows:    rows,
	}))
	return nil
}
