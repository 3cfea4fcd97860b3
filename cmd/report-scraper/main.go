package main

import (
	"github.com/joho/godotenv"
	"github.com/nwchess/report-scraper/internal/cli"
)

func main() {
	// Optional .env supplies defaults such as REPORT_SCRAPER_DB;
	// a missing file is not an error
	_ = godotenv.Load()

	cli.Execute()
}
