package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the document as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the document from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	path := "daybook.json"
	if len(args) > 0 {
		path = args[0]
	}
	if err := st.ExportJSON(path); err != nil {
		return err
	}
	fmt.Printf("  Exported to %s\n", path)
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.ImportJSON(args[0]); err != nil {
		return err
	}
	fmt.Printf("  Imported %s\n", args[0])
	return nil
}
