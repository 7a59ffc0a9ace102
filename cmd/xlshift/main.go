// Package main provides the CLI entry point for xlshift.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/javajack/xlshift"
	"github.com/spf13/cobra"
)

var (
	sheetName  string
	at         string
	outputPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlshift",
		Short: "Apply structural edits to xlsx files",
		Long: `xlshift inserts and deletes rows and columns in xlsx files,
relocating the surviving cells and recomputing each sheet's extent.`,
	}

	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", "", "Sheet to edit (default: first sheet)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: overwrite input)")

	rowWise, colWise := true, false
	edits := []*cobra.Command{
		editCommand("insert-row", "Insert a blank row", rowWise,
			func(s *xlshift.Sheet, i int) { s.InsertRow(i) }),
		editCommand("delete-row", "Delete a row", rowWise,
			func(s *xlshift.Sheet, i int) { s.DeleteRow(i) }),
		editCommand("insert-col", "Insert a blank column", colWise,
			func(s *xlshift.Sheet, i int) { s.InsertColumn(i) }),
		editCommand("delete-col", "Delete a column", colWise,
			func(s *xlshift.Sheet, i int) { s.DeleteColumn(i) }),
	}
	for _, cmd := range edits {
		cmd.Flags().StringVar(&at, "at", "", "Position: 1-based row number or column letters")
		_ = cmd.MarkFlagRequired("at")
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "extent [input.xlsx]",
		Short: "Print each sheet's populated extent",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtent,
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func editCommand(name, short string, rowWise bool, apply func(*xlshift.Sheet, int)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [input.xlsx]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]

			wb, err := xlshift.LoadFile(input)
			if err != nil {
				return err
			}

			sheet, err := resolveSheet(wb)
			if err != nil {
				return err
			}

			index, err := parseAt(at, rowWise)
			if err != nil {
				return err
			}

			apply(sheet, index)

			out := outputPath
			if out == "" {
				out = input
			}
			return wb.SaveFile(out)
		},
	}
}

func resolveSheet(wb *xlshift.Workbook) (*xlshift.Sheet, error) {
	if sheetName == "" {
		sheets := wb.Sheets()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		return sheets[0], nil
	}
	sheet := wb.Sheet(sheetName)
	if sheet == nil {
		return nil, fmt.Errorf("no sheet named %q", sheetName)
	}
	return sheet, nil
}

// parseAt converts the user-facing position (a 1-based row number for row
// edits, column letters for column edits) to a zero-based index.
func parseAt(s string, rowWise bool) (int, error) {
	if rowWise {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return 0, fmt.Errorf("invalid row number %q (want 1-based row)", s)
		}
		return n - 1, nil
	}
	col, err := xlshift.NameToCol(s)
	if err != nil {
		return 0, fmt.Errorf("invalid column %q (want letters like B or AA)", s)
	}
	return col, nil
}

func runExtent(cmd *cobra.Command, args []string) error {
	wb, err := xlshift.LoadFile(args[0])
	if err != nil {
		return err
	}
	for _, sheet := range wb.Sheets() {
		extent := sheet.Extent
		if extent == "" {
			extent = "(empty)"
		}
		fmt.Printf("%s: %s\n", sheet.Name, extent)
	}
	return nil
}
