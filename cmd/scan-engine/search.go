// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scan-engine/internal/search"
	"github.com/pdiddy/scan-engine/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [directory] [query]",
	Short: "Search OCR text outputs with a boolean keyword expression",
	Long: `Search evaluates a boolean keyword expression (AND, OR, NOT,
parentheses, quoted phrases) against every text file in the directory and
writes the names of matching files to --output, one per line.

Examples:

  scan-engine search texts/ 'alpha AND NOT gamma'
  scan-engine search texts/ '"invoice total" OR receipt' --output matches.txt`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	searchDir, queryExpr := args[0], args[1]

	output, _ := cmd.Flags().GetString("output")
	if !cmd.Flags().Changed("output") {
		if v := viper.GetString("search.output_file"); v != "" {
			output = v
		}
	}
	textExt, _ := cmd.Flags().GetString("text-ext")

	logger, err := loggerFromFlags(cmd)
	if err != nil {
		return err
	}

	cfg := types.SearchConfig{TextExt: textExt, OutputFile: output}
	matches, err := search.Run(searchDir, queryExpr, output, cfg, logger)
	if err != nil {
		return err
	}

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := search.WriteReport(reportPath, queryExpr, searchDir, matches); err != nil {
			return err
		}
	}

	fmt.Printf("%d file(s) matched, list written to %s\n", len(matches), output)
	return nil
}

func init() {
	searchCmd.Flags().String("output", "search_results.txt", "file the matching filenames are written to")
	searchCmd.Flags().String("text-ext", ".txt", "extension of corpus files")
	searchCmd.Flags().String("report", "", "also write a YAML report of the run to this path")

	rootCmd.AddCommand(searchCmd)
}
