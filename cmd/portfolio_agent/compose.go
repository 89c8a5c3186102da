package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/portfolio-composer/internal/composing"
	"github.com/jonathan/portfolio-composer/internal/config"
	"github.com/jonathan/portfolio-composer/internal/observability"
	"github.com/jonathan/portfolio-composer/internal/schemas"
	"github.com/jonathan/portfolio-composer/internal/scoring"
	"github.com/jonathan/portfolio-composer/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var composeCmd = &cobra.Command{
	Use:   "compose [contents.json...]",
	Short: "Compose a portfolio document from normalized content",
	Long: "Scores a list of normalized content records and assembles them into the fixed five-section portfolio document. " +
		"With a single input file the result goes to --out; with several input files each is composed concurrently into --out-dir.",
	Args: cobra.MinimumNArgs(1),
	RunE: runCompose,
}

var (
	composeCategory  string
	composeUserID    string
	composeTitle     string
	composeSubtitle  string
	composeOutput    string
	composeOutputDir string
	composeConfig    string
	composeScored    bool
	composeStrict    bool
	composeVerbose   bool
)

func init() {
	composeCmd.Flags().StringVar(&composeCategory, "category", "", "Portfolio category")
	composeCmd.Flags().StringVar(&composeUserID, "user-id", "", "User identifier stamped on the document")
	composeCmd.Flags().StringVar(&composeTitle, "title", "", "Portfolio title")
	composeCmd.Flags().StringVar(&composeSubtitle, "subtitle", "", "Portfolio subtitle")
	composeCmd.Flags().StringVarP(&composeOutput, "out", "o", "", "Path to output Portfolio JSON file (single input)")
	composeCmd.Flags().StringVar(&composeOutputDir, "out-dir", "", "Directory for output Portfolio JSON files (multiple inputs)")
	composeCmd.Flags().StringVar(&composeConfig, "config", "", "Path to JSON config file supplying flag defaults")
	composeCmd.Flags().BoolVar(&composeScored, "scored", false, "Treat inputs as pre-scored ScoredContent JSON")
	composeCmd.Flags().BoolVar(&composeStrict, "strict", false, "Fail on an empty content list instead of composing a skeleton")
	composeCmd.Flags().BoolVarP(&composeVerbose, "verbose", "v", false, "Print a composition summary")

	rootCmd.AddCommand(composeCmd)
}

func runCompose(_ *cobra.Command, args []string) error {
	// Merge config file defaults under explicit flags.
	if composeConfig != "" {
		cfg, err := config.LoadConfig(composeConfig)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		applyComposeConfig(cfg)
	}

	category, err := types.ParseCategory(composeCategory)
	if err != nil {
		return err
	}

	opts := composing.ComposeOptions{
		UserID:   composeUserID,
		Category: category,
		Title:    composeTitle,
		Subtitle: composeSubtitle,
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	if len(args) == 1 {
		if composeOutput == "" {
			return fmt.Errorf("--out is required for a single input file")
		}
		return composeOne(args[0], composeOutput, opts)
	}

	if composeOutputDir == "" {
		return fmt.Errorf("--out-dir is required for multiple input files")
	}
	if err := os.MkdirAll(composeOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", composeOutputDir, err)
	}

	// Each composition is independent and allocates its own state, so the
	// batch can fan out safely.
	var g errgroup.Group
	for _, input := range args {
		g.Go(func() error {
			output := filepath.Join(composeOutputDir, portfolioFileName(input))
			return composeOne(input, output, opts)
		})
	}
	return g.Wait()
}

// applyComposeConfig fills unset flags from a config file.
func applyComposeConfig(cfg *config.Config) {
	if composeCategory == "" {
		composeCategory = cfg.Category
	}
	if composeUserID == "" {
		composeUserID = cfg.UserID
	}
	if composeTitle == "" {
		composeTitle = cfg.Title
	}
	if composeSubtitle == "" {
		composeSubtitle = cfg.Subtitle
	}
	if !composeStrict {
		composeStrict = cfg.Strict
	}
	if !composeVerbose {
		composeVerbose = cfg.Verbose
	}
}

// portfolioFileName derives an output file name from an input path:
// content/alice.json becomes alice.portfolio.json.
func portfolioFileName(inputPath string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + ".portfolio.json"
}

// composeOne runs the full pipeline for one input file.
func composeOne(inputPath, outputPath string, opts composing.ComposeOptions) error {
	scored, err := loadScoredInput(inputPath, opts.Category)
	if err != nil {
		return err
	}

	compose := composing.Compose
	if composeStrict {
		compose = composing.ComposeStrict
	}

	portfolio, err := compose(scored, opts)
	if err != nil {
		return fmt.Errorf("failed to compose portfolio from %s: %w", inputPath, err)
	}

	if err := writeJSONFile(outputPath, portfolio); err != nil {
		return err
	}

	// Validate output against the wire contract schema (optional - non-fatal)
	schemaPath := schemas.ResolveSchemaPath(schemas.PortfolioSchemaPath)
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, outputPath); err != nil {
			// Output validation is a safety check, not a requirement
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
		}
	}

	if composeVerbose {
		observability.NewPrinter(os.Stdout).PrintPortfolio(portfolio)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully composed portfolio with %d sections to %s\n", len(portfolio.Sections), outputPath)

	return nil
}

// loadScoredInput reads one input file as either raw normalized content
// (scored here) or pre-scored content when --scored is set.
func loadScoredInput(path string, category types.Category) ([]types.ScoredContent, error) {
	if composeScored {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read scored contents file %s: %w", path, err)
		}
		var scored []types.ScoredContent
		if err := json.Unmarshal(data, &scored); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scored contents JSON: %w", err)
		}
		return scored, nil
	}

	contents, err := loadContents(path)
	if err != nil {
		return nil, err
	}
	return scoring.ScoreContentBatch(contents, category), nil
}
