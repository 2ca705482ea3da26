// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scan-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the scan-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "scan-engine",
	Short: "Batch OCR pipeline for archives of scanned documents",
	Long: `scan-engine batch-processes archives of scanned documents: it unpacks
zip archives, runs Tesseract OCR on the contained images, writes one text
file per image, and searches the resulting text corpus with boolean
keyword expressions.

Each pipeline stage is a subcommand: extract, ocr, search, and process
(the batch orchestrator that runs extract and ocr over a whole root
directory of archives).`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./scan-engine.yaml or ~/.config/scan-engine/config.yaml)")
	rootCmd.PersistentFlags().String("log-file", "scan-engine.log", "path of the pipeline log file")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scan-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scan-engine"))
		}
	}

	viper.SetEnvPrefix("SCAN_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
