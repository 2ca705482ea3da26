// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scan-engine/internal/logging"
	"github.com/pdiddy/scan-engine/pkg/types"
)

// loggerFromFlags builds the stage logger from --log-file, falling back
// to the config file's batch.log_file setting.
func loggerFromFlags(cmd *cobra.Command) (zerolog.Logger, error) {
	logFile, _ := cmd.Flags().GetString("log-file")
	if !cmd.Flags().Changed("log-file") {
		if v := viper.GetString("batch.log_file"); v != "" {
			logFile = v
		}
	}
	return logging.Setup(logFile)
}

// ocrConfigFromFlags assembles the recognition settings from flags with
// config-file fallbacks.
func ocrConfigFromFlags(cmd *cobra.Command) types.OCRConfig {
	langs, _ := cmd.Flags().GetStringSlice("lang")
	if len(langs) == 0 {
		langs = viper.GetStringSlice("ocr.languages")
	}
	exts, _ := cmd.Flags().GetStringSlice("image-ext")
	if len(exts) == 0 {
		exts = viper.GetStringSlice("ocr.image_exts")
	}
	timeout, _ := cmd.Flags().GetDuration("ocr-timeout")
	if !cmd.Flags().Changed("ocr-timeout") && viper.IsSet("ocr.timeout") {
		timeout = viper.GetDuration("ocr.timeout")
	}

	return types.OCRConfig{
		Languages: langs,
		ImageExts: exts,
		Timeout:   timeout,
	}
}
