// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the submission-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/submission-engine/internal/ux"
)

// version is set at build time via ldflags.
var version = "dev"

// bugFooter trails every fatal error. Reports must never include answer
// contents; the recipients are graded on the same assignment.
const bugFooter = "If you think you've found a bug in this tool, please report it to the course staff (but don't include any PS answers in the report)."

// rootCmd is the base command for the submission-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "submission-engine",
	Short: "Extract annotated answers from problem set notebooks",
	Long: `submission-engine turns an IPython problem set notebook into the
submission template the graders expect. The extract command scans the
notebook for annotated answer cells, tracks which problem and part each
one belongs to, confirms the result interactively, and writes
submission_template.txt; check runs the same scan without writing.`,

	// Errors get one styled reporting path in main; cobra must not
	// print its own copy.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./submission-engine.yaml or ~/.config/submission-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("submission-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "submission-engine"))
		}
	}

	viper.SetEnvPrefix("SUBMISSION_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ux.Styles.Error.Render(fmt.Sprintf("Error - %s.", err)))
		fmt.Fprintln(os.Stderr, bugFooter)
		os.Exit(1)
	}
}
