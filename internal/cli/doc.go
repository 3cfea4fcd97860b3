// Package cli implements the command-line interface for report-scraper.
//
// The cli package provides the Cobra-based CLI with two subcommands:
// scrape (fetch and parse a report page, emit text or JSON, optionally
// persist) and store (load report JSON files into a SQLite database).
// It coordinates the scraper, parse, report, and storage packages.
package cli
