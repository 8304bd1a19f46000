// Package main provides the CLI entry point for resumedata.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/resumedata-go/pkg/resumedata"
	"github.com/ukaji3/resumedata-go/pkg/resumedata/output"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()

	rootCmd := &cobra.Command{
		Use:   "resumedata [workbook.xlsx]",
		Short: "Convert a résumé workbook into resume JSON",
		Long: `resumedata reads the text_blocks, entries, computer_science_skills,
languages and contact_info sheets of a résumé workbook and writes one
normalized JSON document for the résumé renderer.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Workbook = args[0]
			}
			return run(cmd, cfg)
		},
	}

	rootCmd.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output JSON file path")
	rootCmd.Flags().BoolVar(&cfg.Compact, "compact", false, "Write JSON without indentation")
	rootCmd.Flags().StringVar(&cfg.SheetsDir, "sheets-dir", "", "Directory for per-sheet raw JSON dumps")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log each sheet as it is read")

	return rootCmd
}

func run(cmd *cobra.Command, cfg *cmdConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	lgr := logrus.New()
	lgr.SetOutput(cmd.ErrOrStderr())
	if cfg.Verbose {
		lgr.SetLevel(logrus.DebugLevel)
	} else {
		lgr.SetLevel(logrus.WarnLevel)
	}

	opts := resumedata.DefaultOptions()
	opts.Logger = lgr.WithField("run_id", uuid.NewString())

	wb, err := resumedata.LoadWorkbook(cfg.Workbook, opts)
	if err != nil {
		return fmt.Errorf("load workbook: %w", err)
	}
	payload := resumedata.Assemble(wb, opts)

	jsonData, err := output.ToJSON(payload, !cfg.Compact)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if err := output.WriteFile(cfg.Output, jsonData); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if cfg.SheetsDir != "" {
		if err := writeSheetFiles(wb, cfg.SheetsDir, !cfg.Compact); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), summaryLine(cfg.Output, cfg.Workbook))
	return nil
}

func writeSheetFiles(wb *resumedata.Workbook, dir string, pretty bool) error {
	for _, name := range resumedata.RequiredSheets {
		jsonData, err := output.SheetToJSON(wb.Sheets[name], pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, name+".json")
		if err := output.WriteFile(filename, jsonData); err != nil {
			return err
		}
	}

	return nil
}
