package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Args:  cobra.MaximumNArgs(1),
	Short: "Analyze a resume file or pasted text",
	Long: `Runs the full analysis pipeline on one resume: extraction, skill
detection, ATS scoring, job matching and role-gap analysis. The result
is printed as JSON unless --verbose is set.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath string
	analyzeFile       string
	analyzeText       string
	analyzeUserID     string
	analyzeLocation   string
	analyzeAPIKey     string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to resume file (pdf, docx, doc, rtf or txt)")
	analyzeCmd.Flags().StringVar(&analyzeText, "text", "", "Pasted resume text (mutually exclusive with --file)")
	analyzeCmd.Flags().StringVarP(&analyzeUserID, "user", "u", "", "User id to persist the analysis under")
	analyzeCmd.Flags().StringVarP(&analyzeLocation, "location", "l", "", "Job-search location")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a human-readable summary instead of JSON")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 1 && analyzeFile == "" {
		analyzeFile = args[0]
	}
	if analyzeFile != "" && analyzeText != "" {
		return fmt.Errorf("--file and --text are mutually exclusive")
	}
	if analyzeFile == "" && analyzeText == "" {
		return fmt.Errorf("a resume file argument, --file, or --text is required")
	}

	cfg, err := resolveConfig(analyzeConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("location") {
		cfg.Location = analyzeLocation
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	ctx := context.Background()
	runner, cleanup, err := buildRunner(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	in := pipeline.Input{
		Text:     analyzeText,
		UserID:   analyzeUserID,
		Location: cfg.Location,
	}
	if analyzeFile != "" {
		data, err := os.ReadFile(analyzeFile)
		if err != nil {
			return fmt.Errorf("failed to read resume file: %w", err)
		}
		in.Data = data
		in.Filename = filepath.Base(analyzeFile)
	}

	result, err := runner.Run(ctx, in)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintAnalysis(result)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
