package parse

import (
	"regexp"
	"strings"

	"github.com/nwchess/report-scraper/internal/report"
)

// Pattern for dates like "Jun 14, 2025" as printed in report headings
var headingDatePattern = regexp.MustCompile(`[A-Za-z]{3}\s+\d{1,2},\s+\d{4}`)

// Pattern for the tournament director line, e.g. "TD: Johnson".
// Only a single alphabetic word is captured; multi-word director names
// are a known limitation of the report format.
var tdPattern = regexp.MustCompile(`TD:?\s+([A-Za-z]+)`)

// Heading extracts tournament metadata from the freeform heading block
// of a report page. It never fails: fields that cannot be located are
// simply left empty, and an empty input yields a zero TournamentInfo.
func Heading(headingText string) report.TournamentInfo {
	var info report.TournamentInfo

	lines := nonEmptyLines(headingText)
	if len(lines) == 0 {
		return info
	}

	// The first line carries the tournament name, and often the date
	// and address too. Date detection takes priority: the name never
	// includes the date fragment, and the address is only whatever
	// text remains after the date.
	first := lines[0]
	if loc := headingDatePattern.FindStringIndex(first); loc != nil {
		info.Date = first[loc[0]:loc[1]]
		info.Name = strings.TrimSpace(first[:loc[0]])
		if rest := strings.TrimSpace(first[loc[1]:]); rest != "" {
			info.Address = rest
		}
	} else {
		info.Name = first

		// No date in the first line; look for it in the rest
		for _, line := range lines[1:] {
			loc := headingDatePattern.FindStringIndex(line)
			if loc == nil {
				continue
			}
			info.Date = line[loc[0]:loc[1]]
			if rest := strings.TrimSpace(line[loc[1]:]); rest != "" {
				info.Address = rest
			}
			break
		}
	}

	// Address fallback: the first remaining line that is neither the
	// date line nor the director line
	if info.Address == "" {
		for _, line := range lines[1:] {
			if info.Date != "" && strings.Contains(line, info.Date) {
				continue
			}
			if strings.Contains(line, "TD:") {
				continue
			}
			info.Address = line
			break
		}
	}

	for _, line := range lines {
		if m := tdPattern.FindStringSubmatch(line); m != nil {
			info.TD = m[1]
			break
		}
	}

	return info
}

// nonEmptyLines splits text into trimmed lines, dropping blank ones
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
