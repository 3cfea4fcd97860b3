package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/nwchess/report-scraper/internal/report"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes the report in the specified format
func WriteOutput(w io.Writer, rpt *report.Report, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, rpt)
	case FormatText:
		return writeText(w, rpt)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the report as indented JSON
func writeJSON(w io.Writer, rpt *report.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rpt)
}

// writeText outputs the report as human-readable text
func writeText(w io.Writer, rpt *report.Report) error {
	if rpt.Info.Name != "" {
		fmt.Fprintln(w, rpt.Info.Name)
	} else {
		fmt.Fprintln(w, "(unnamed tournament)")
	}
	if rpt.Info.Date != "" {
		fmt.Fprintf(w, "Date: %s\n", rpt.Info.Date)
	}
	if rpt.Info.Address != "" {
		fmt.Fprintf(w, "Address: %s\n", rpt.Info.Address)
	}
	if rpt.Info.TD != "" {
		fmt.Fprintf(w, "TD: %s\n", rpt.Info.TD)
	}
	if rpt.URL != "" {
		fmt.Fprintf(w, "URL: %s\n", rpt.URL)
	}

	if len(rpt.Sections) == 0 {
		fmt.Fprintln(w, "\nNo sections found.")
		return nil
	}

	for _, section := range rpt.Sections {
		fmt.Fprintf(w, "\n%s (%d players):\n", section.Name, len(section.Results))
		for _, p := range section.Results {
			fmt.Fprintf(w, "  %s\n", formatPlayer(p))
		}
	}

	total := 0
	for _, section := range rpt.Sections {
		total += len(section.Results)
	}
	fmt.Fprintf(w, "\nTotal: %d players across %d sections\n", total, len(rpt.Sections))

	return nil
}

// formatPlayer renders one result row as a single line
func formatPlayer(p report.PlayerResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d. %s", p.Position, p.LastName)
	if p.FirstName != "" {
		fmt.Fprintf(&b, ", %s", p.FirstName)
	}
	fmt.Fprintf(&b, " [%s]", p.ExternalID)

	if p.StartRating != nil && p.EndRating != nil {
		fmt.Fprintf(&b, " %d->%d", *p.StartRating, *p.EndRating)
	} else if p.EndRating != nil {
		fmt.Fprintf(&b, " rating %d", *p.EndRating)
	}

	if len(p.Rounds) > 0 {
		codes := make([]string, 0, len(p.Rounds))
		for _, rd := range p.Rounds {
			codes = append(codes, rd.Code)
		}
		fmt.Fprintf(&b, " %s", strings.Join(codes, " "))
	}

	if p.TotalScore != nil {
		fmt.Fprintf(&b, " (%.1f)", *p.TotalScore)
	}

	return b.String()
}
