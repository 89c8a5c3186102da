package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/portfolio-composer/internal/observability"
	"github.com/jonathan/portfolio-composer/internal/scoring"
	"github.com/jonathan/portfolio-composer/internal/types"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score normalized content against a category",
	Long:  "Deterministically scores a list of normalized content records against a category's weight vector, producing a ScoredContent JSON sorted by final score.",
	RunE:  runScore,
}

var (
	scoreContents string
	scoreCategory string
	scoreOutput   string
	scoreVerbose  bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreContents, "contents", "c", "", "Path to input NormalizedContent JSON file (required)")
	scoreCmd.Flags().StringVar(&scoreCategory, "category", "", "Portfolio category (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output ScoredContent JSON file (required)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a scoring summary")

	if err := scoreCmd.MarkFlagRequired("contents"); err != nil {
		panic(fmt.Sprintf("failed to mark contents flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("category"); err != nil {
		panic(fmt.Sprintf("failed to mark category flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	// 1. Parse category
	category, err := types.ParseCategory(scoreCategory)
	if err != nil {
		return err
	}

	// 2. Load content list
	contents, err := loadContents(scoreContents)
	if err != nil {
		return err
	}

	// 3. Score
	scored := scoring.ScoreContentBatch(contents, category)

	// 4. Write output
	if err := writeJSONFile(scoreOutput, scored); err != nil {
		return err
	}

	if scoreVerbose {
		observability.NewPrinter(os.Stdout).PrintScoredContent(scored, category)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully scored %d items to %s\n", len(scored), scoreOutput)

	return nil
}

// loadContents reads and decodes a NormalizedContent list from a JSON file.
func loadContents(path string) ([]types.NormalizedContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read contents file %s: %w", path, err)
	}

	var contents []types.NormalizedContent
	if err := json.Unmarshal(data, &contents); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contents JSON: %w", err)
	}

	return contents, nil
}

// writeJSONFile marshals v with indentation and writes it, creating the
// output directory if needed.
func writeJSONFile(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	return nil
}
