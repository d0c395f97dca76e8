// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/submission-engine/internal/notebook"
	"github.com/pdiddy/submission-engine/internal/scan"
	"github.com/pdiddy/submission-engine/internal/submission"
	"github.com/pdiddy/submission-engine/internal/ux"
	"github.com/pdiddy/submission-engine/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [notebook]",
	Short: "Extract annotated answers into the submission template",
	Long: `Extract reads an IPython notebook, collects the cells annotated as
answers, shows them for confirmation, and writes submission_template.txt
in the current directory.

Answers are expected to be annotated with one of the following prefixes:
'%%sql' with '-- ANSWER' on the next line (multiline SQL),
'%sql /* ANSWER */' (single line SQL), '# ANSWER' on its own line
(Python), or 'ANSWER' (Markdown). A YAML file passed with --markers
replaces this table.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := extractConfig(cmd)
	prompter := NewStdioPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	return runExtraction(args[0], submission.DefaultPath, cfg, prompter, cmd.OutOrStdout())
}

// runExtraction drives the whole extract flow: scan the notebook, show the
// answers, confirm, gather the student identity, and write the template.
// A declined confirmation aborts quietly; nothing is written.
func runExtraction(nbPath, outPath string, cfg types.ExtractConfig, prompter Prompter, out io.Writer) error {
	answers, err := collectAnswers(nbPath, cfg.MarkersFile)
	if err != nil {
		return reportScanFailure(out, err)
	}

	printAnswers(out, answers)
	printVerifyBanner(out)

	if !cfg.AssumeYes {
		ok, err := prompter.Confirm("Were the above answers extracted correctly?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Aborting.")
			return nil
		}
	}

	student, err := gatherStudent(cfg, prompter)
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(outPath); statErr == nil && !cfg.AssumeYes {
		ok, err := prompter.Confirm(fmt.Sprintf("%s already exists. Do you want to overwrite it?", outPath))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Aborting.")
			return nil
		}
	}

	if err := submission.Write(outPath, student, answers); err != nil {
		return err
	}

	fmt.Fprintf(out, "Extracted answers to %s. You should verify that the output file is as you expect. Don't forget to submit!\n", outPath)
	return nil
}

// collectAnswers loads the notebook and scans it with the configured
// marker table.
func collectAnswers(nbPath, markersFile string) ([]types.Answer, error) {
	markers := scan.DefaultMarkers()
	if markersFile != "" {
		m, err := scan.LoadMarkers(markersFile)
		if err != nil {
			return nil, err
		}
		markers = m
	}

	cells, err := notebook.Read(nbPath)
	if err != nil {
		return nil, err
	}
	return scan.Collect(markers, cells)
}

// reportScanFailure prints the conflicting texts of a duplicate-answer
// violation before handing the error back; the error message alone would
// not show which cells collided. Missing answers get a pointer to the
// annotation format documented in the extract help.
func reportScanFailure(out io.Writer, err error) error {
	var dup *scan.DuplicateAnswerError
	if errors.As(err, &dup) {
		fmt.Fprintln(out, dup.First)
		fmt.Fprintf(out, "\n%s\n\n", ux.Styles.Muted.Render("and"))
		fmt.Fprintln(out, dup.Second)
		fmt.Fprintln(out)
	}
	var missing *scan.MissingAnswerError
	if errors.As(err, &missing) {
		return fmt.Errorf("%w. Run 'submission-engine extract --help' for instructions on how answers should be formatted to be detected", err)
	}
	return err
}

func printAnswers(out io.Writer, answers []types.Answer) {
	for _, a := range answers {
		fmt.Fprintln(out, ux.Styles.Muted.Render(a.Number+":"))
		fmt.Fprintln(out, a.Text)
		fmt.Fprintln(out)
	}
}

func printVerifyBanner(out io.Writer) {
	fmt.Fprintln(out, strings.Repeat("-", 10))
	fmt.Fprintln(out, "Please verify that all of your answers were extracted correctly above.",
		ux.Styles.Error.Render("NOTE: the TAs will not be responsible for debugging any errors in extraction by this script."))
}

// gatherStudent resolves the student identity from the config, falling
// back to interactive prompts for missing fields.
func gatherStudent(cfg types.ExtractConfig, prompter Prompter) (types.Student, error) {
	student := types.Student{Name: cfg.Name, SUNet: cfg.SUNet}
	if student.Name == "" {
		name, err := prompter.Input("Full name: ")
		if err != nil {
			return types.Student{}, err
		}
		student.Name = name
	}
	if student.SUNet == "" {
		sunet, err := prompter.Input("SUNet ID (NOT your student ID number!): ")
		if err != nil {
			return types.Student{}, err
		}
		student.SUNet = sunet
	}
	return student, nil
}

// extractConfig merges flag values over the viper config file.
func extractConfig(cmd *cobra.Command) types.ExtractConfig {
	cfg := types.ExtractConfig{
		Name:        viper.GetString("name"),
		SUNet:       viper.GetString("sunet"),
		MarkersFile: viper.GetString("markers"),
	}
	if v, _ := cmd.Flags().GetString("name"); v != "" {
		cfg.Name = v
	}
	if v, _ := cmd.Flags().GetString("sunet"); v != "" {
		cfg.SUNet = v
	}
	if v, _ := cmd.Flags().GetString("markers"); v != "" {
		cfg.MarkersFile = v
	}
	cfg.AssumeYes, _ = cmd.Flags().GetBool("yes")
	return cfg
}

func init() {
	extractCmd.Flags().String("name", "", "student full name (skips the prompt)")
	extractCmd.Flags().String("sunet", "", "SUNet ID (skips the prompt)")
	extractCmd.Flags().String("markers", "", "YAML marker table replacing the built-in answer markers")
	extractCmd.Flags().BoolP("yes", "y", false, "skip interactive confirmations")

	rootCmd.AddCommand(extractCmd)
}
