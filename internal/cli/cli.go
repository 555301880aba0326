package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mhowell/gameflow/internal/chart"
	"github.com/mhowell/gameflow/internal/fetch"
	"github.com/mhowell/gameflow/internal/logger"
	"github.com/mhowell/gameflow/internal/pbp"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// TokenEnvVar names the environment variable holding the Datawrapper API
// token; publishing is skipped when it is unset.
const TokenEnvVar = "DATAWRAPPER_API_TOKEN"

var (
	flagURL     string
	flagFormat  string
	flagPublish bool
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gameflow",
		Short: "Extract box-score analytics and publish a game-flow chart",
		Long: `A CLI tool that extracts the line score, per-player stats, and
play-by-play score margin from a basketball-reference box-score page,
derives top scorers and the player of the game, and optionally publishes
a Datawrapper game-flow chart.`,
		RunE: runProcess,
	}

	cmd.Flags().StringVar(&flagURL, "url", "", "Box score URL (basketball-reference.com only)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagPublish, "publish", false, "Publish a Datawrapper game-flow chart")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.MarkFlagRequired("url")

	return cmd
}

// runProcess is the main command logic
func runProcess(cmd *cobra.Command, args []string) error {
	url := strings.TrimSpace(flagURL)
	if url == "" {
		return fmt.Errorf("--url is required")
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	fetcher := fetch.New()
	extractor := pbp.New(fetcher)

	report, err := BuildReport(fetcher, extractor, url)
	if err != nil {
		return fmt.Errorf("processing box score: %w", err)
	}

	if flagPublish {
		publishChart(report)
	}

	if err := WriteOutput(os.Stdout, report, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// publishChart runs the Datawrapper sequence for the report's margin series.
// Publish failures are reported but do not fail the run: the extraction
// results are still worth printing.
func publishChart(report *Report) {
	if len(report.MarginSeries) == 0 {
		logger.Warn("skipping chart publish: no margin series extracted", logger.Fields{
			"url": report.URL,
		})
		return
	}

	token := os.Getenv(TokenEnvVar)
	if token == "" {
		logger.Warn("skipping chart publish: API token not set", logger.Fields{
			"env": TokenEnvVar,
		})
		return
	}

	client := chart.NewClient(token)
	chartID, err := client.PublishSeries(report.MarginSeries, report.Team1, report.Team2)
	if err != nil {
		logger.Error("publishing chart", logger.Fields{"url": report.URL}, err)
		return
	}

	report.ChartURL = chart.PublicURL(chartID)
	report.ChartEmbed = chart.EmbedCode(chartID, chart.Title(report.Team1, report.Team2))
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
