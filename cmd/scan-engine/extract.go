// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scan-engine/internal/archive"
)

var extractCmd = &cobra.Command{
	Use:   "extract [archives...]",
	Short: "Extract zip archives into per-archive directories",
	Long: `Extract unpacks each named zip archive into a directory under --dest
named after the archive (extension stripped). A pre-existing directory is
reused; extraction is additive and never deletes files already present.
Entries that would escape their extraction directory are rejected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	dest, _ := cmd.Flags().GetString("dest")

	logger, err := loggerFromFlags(cmd)
	if err != nil {
		return err
	}

	for _, archivePath := range args {
		dir, err := archive.Extract(archivePath, dest, logger)
		if err != nil {
			return err
		}
		fmt.Printf("extracted: %s -> %s\n", archivePath, dir)
	}
	return nil
}

func init() {
	extractCmd.Flags().String("dest", ".", "directory under which extraction directories are created")

	rootCmd.AddCommand(extractCmd)
}
