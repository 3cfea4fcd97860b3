package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nwchess/report-scraper/internal/logger"
	"github.com/nwchess/report-scraper/internal/report"
	"github.com/nwchess/report-scraper/internal/scraper"
	"github.com/nwchess/report-scraper/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

const defaultDBPath = "chess_data.db"

var (
	flagFormat   string
	flagOutput   string
	flagScrapeDB string
	flagStoreDB  string
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report-scraper",
		Short: "Scrape and store plaintext chess tournament reports",
		Long: `A CLI tool that converts loosely structured plaintext tournament
report pages into normalized records: tournament metadata, per-section
player rosters, and per-round game outcomes.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newScrapeCmd())
	cmd.AddCommand(newStoreCmd())

	return cmd
}

func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape <url>",
		Short: "Fetch a tournament report page and parse it",
		Args:  cobra.ExactArgs(1),
		RunE:  runScrape,
	}

	cmd.Flags().StringVar(&flagFormat, "format", "json", "Output format: text or json")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Also write the report JSON to this file")
	cmd.Flags().StringVar(&flagScrapeDB, "db", "", "Store the parsed report into this SQLite database")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

func newStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store <json-file>...",
		Short: "Load previously scraped report JSON into a SQLite database",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runStore,
	}

	cmd.Flags().StringVar(&flagStoreDB, "db", envOr("REPORT_SCRAPER_DB", defaultDBPath), "SQLite database path (or env: REPORT_SCRAPER_DB)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runScrape fetches, parses, outputs, and optionally stores one report
func runScrape(cmd *cobra.Command, args []string) error {
	url := args[0]

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	logger.Debug("Fetching report", logger.Fields{"url": url})

	sc := scraper.New()
	start := time.Now()
	rpt, err := sc.FetchReport(url)
	if err != nil {
		return fmt.Errorf("fetching report: %w", err)
	}
	logger.RecordTiming("scrape.fetch", time.Since(start))
	logger.IncrCounter("scrape.reports")

	logger.Debug("Parsed report", logger.Fields{
		"tournament": rpt.Info.Name,
		"sections":   len(rpt.Sections),
	})

	if err := WriteOutput(os.Stdout, rpt, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if flagOutput != "" {
		if err := writeReportFile(rpt, flagOutput); err != nil {
			return err
		}
		logger.Info("Report saved", logger.Fields{"file": flagOutput})
	}

	if flagScrapeDB != "" {
		if err := storeReports(flagScrapeDB, rpt); err != nil {
			return err
		}
	}

	if flagVerbose {
		logger.Debug("Run metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})
	}

	return nil
}

// runStore loads report JSON files and persists them
func runStore(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	reports := make([]*report.Report, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		var rpt report.Report
		if err := json.Unmarshal(data, &rpt); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		reports = append(reports, &rpt)
	}

	return storeReports(flagStoreDB, reports...)
}

// storeReports persists reports into the database at dbPath
func storeReports(dbPath string, reports ...*report.Report) error {
	store, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	for _, rpt := range reports {
		start := time.Now()
		id, err := store.StoreReport(rpt)
		if err != nil {
			return fmt.Errorf("storing report %q: %w", rpt.Info.Name, err)
		}
		logger.RecordTiming("store.report", time.Since(start))
		logger.Info("Stored tournament", logger.Fields{
			"tournament":    rpt.Info.Name,
			"tournament_id": id,
			"sections":      len(rpt.Sections),
		})
	}

	return nil
}

// writeReportFile writes the report as indented JSON to path
func writeReportFile(rpt *report.Report, path string) error {
	data, err := json.MarshalIndent(rpt, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// envOr returns the environment variable's value, or fallback when the
// variable is unset or empty
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
