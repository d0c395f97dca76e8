// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var checkCmd = &cobra.Command{
	Use:   "check [notebook]",
	Short: "Scan a notebook and report its answers without writing anything",
	Long: `Check runs the same scan as extract and prints the answers it would
submit, then stops. Nothing is prompted and nothing is written; use it
while iterating on a problem set.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	markersFile, _ := cmd.Flags().GetString("markers")
	if markersFile == "" {
		markersFile = viper.GetString("markers")
	}

	out := cmd.OutOrStdout()
	answers, err := collectAnswers(args[0], markersFile)
	if err != nil {
		return reportScanFailure(out, err)
	}

	printAnswers(out, answers)
	fmt.Fprintf(out, "%d answer(s) found.\n", len(answers))
	return nil
}

func init() {
	checkCmd.Flags().String("markers", "", "YAML marker table replacing the built-in answer markers")

	rootCmd.AddCommand(checkCmd)
}
