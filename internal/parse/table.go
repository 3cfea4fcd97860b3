package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nwchess/report-scraper/internal/report"
)

// minRowTokens is the minimum token count for a viable player row
// (position through total)
const minRowTokens = 10

// Player IDs are exactly 8 uppercase letters or digits, e.g. "SHMJ995H"
var externalIDPattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

// roundColumn records where a round header token sits in the header
// line and the label it carries
type roundColumn struct {
	index int
	label string
}

// SectionTable parses one section's preformatted results block into
// player rows. The first line is the column header; every following
// non-empty line is attempted as a player row. Malformed or truncated
// lines are skipped individually, so a damaged row never aborts the
// section or desynchronizes its neighbors.
func SectionTable(tableText string) []report.PlayerResult {
	lines := strings.Split(strings.TrimSpace(tableText), "\n")
	results := []report.PlayerResult{}
	if len(lines) == 0 {
		return results
	}

	cols := roundColumns(lines[0])

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if row, ok := parseRow(strings.Fields(line), cols); ok {
			results = append(results, row)
		}
	}

	return results
}

// roundColumns scans a header line for round column tokens ("rd1",
// "rd12", ...) and returns them in printed order. Their count is the
// section's round count.
func roundColumns(header string) []roundColumn {
	var cols []roundColumn
	for i, tok := range strings.Fields(header) {
		if len(tok) > 2 && strings.HasPrefix(tok, "rd") && isDigits(tok[2:]) {
			cols = append(cols, roundColumn{index: i, label: tok})
		}
	}
	return cols
}

// parseRow converts one tokenized row into a PlayerResult. The second
// return value is false when the row lacks the mandatory position or
// external-ID anchor and must be dropped.
//
// The name field has no fixed width, so the row is anchored on the
// external-ID token: everything between the last-name token and the ID
// is the first name. After the ID, each optional numeric field is
// consumed with a try-parse that always advances the cursor past the
// tokens it inspected, keeping the positional round columns aligned
// even when an individual cell is garbled.
func parseRow(tokens []string, cols []roundColumn) (report.PlayerResult, bool) {
	if len(tokens) < minRowTokens {
		return report.PlayerResult{}, false
	}

	position, err := strconv.Atoi(tokens[0])
	if err != nil {
		return report.PlayerResult{}, false
	}

	idIndex := findAnchor(tokens)
	if idIndex < 2 {
		// No ID token, or no room left for a name before it
		return report.PlayerResult{}, false
	}

	row := report.PlayerResult{
		Position:   position,
		ExternalID: tokens[idIndex],
		LastName:   strings.TrimRight(tokens[1], ","),
		FirstName:  strings.Join(tokens[2:idIndex], " "),
	}

	cur := idIndex + 1
	row.StartRating, cur = takeInt(tokens, cur)
	row.EndRating, row.GamesPlayed, cur = takeRatingGames(tokens, cur)

	// Some reports print games played as a standalone trailing column
	if row.EndRating != nil && row.GamesPlayed == nil {
		if cur < len(tokens) && isDigits(tokens[cur]) {
			row.GamesPlayed, cur = takeInt(tokens, cur)
		}
	}

	// Round results are located purely by position relative to the
	// cursor; rounds past the end of the row are omitted
	row.Rounds = make([]report.RoundResult, 0, len(cols))
	for i, col := range cols {
		if cur+i < len(tokens) {
			row.Rounds = append(row.Rounds, report.RoundResult{
				Label: col.label,
				Code:  tokens[cur+i],
			})
		}
	}

	if totalIdx := cur + len(cols); totalIdx < len(tokens) {
		if total, err := strconv.ParseFloat(tokens[totalIdx], 64); err == nil {
			row.TotalScore = &total
		}
	}

	return row, true
}

// findAnchor returns the index of the first external-ID token after the
// position column, or -1 if the row has none
func findAnchor(tokens []string) int {
	for i := 1; i < len(tokens); i++ {
		if externalIDPattern.MatchString(tokens[i]) {
			return i
		}
	}
	return -1
}

// takeInt try-parses tokens[cur] as an integer. On success it returns
// the value and the advanced cursor; on failure the cursor is returned
// unchanged and the value is nil.
func takeInt(tokens []string, cur int) (*int, int) {
	if cur >= len(tokens) {
		return nil, cur
	}
	v, err := strconv.Atoi(tokens[cur])
	if err != nil {
		return nil, cur
	}
	return &v, cur + 1
}

// takeRatingGames consumes the combined end-rating/games-played field,
// which appears in three encodings:
//
//	"1500/9"   one token carrying both values
//	"1500/ 9"  rating token ending in a slash, games in the next token
//	"1500"     rating alone
//
// A numeric parse failure leaves the affected field nil but still
// advances past the consumed token(s) so later columns stay aligned.
func takeRatingGames(tokens []string, cur int) (*int, *int, int) {
	if cur >= len(tokens) {
		return nil, nil, cur
	}
	tok := tokens[cur]

	switch {
	case strings.Contains(tok, "/") && !strings.HasSuffix(tok, "/"):
		left, right, _ := strings.Cut(tok, "/")
		var end, games *int
		if v, err := strconv.Atoi(strings.TrimSpace(left)); err == nil {
			end = &v
			if g, err := strconv.Atoi(strings.TrimSpace(right)); err == nil {
				games = &g
			}
		}
		return end, games, cur + 1

	case strings.HasSuffix(tok, "/"):
		v, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(tok, "/")))
		if err != nil {
			return nil, nil, cur + 1
		}
		end := &v
		if games, next := takeInt(tokens, cur+1); games != nil {
			return end, games, next
		}
		return end, nil, cur + 1

	default:
		end, next := takeInt(tokens, cur)
		if next == cur {
			// Not numeric at all; consume it anyway
			next = cur + 1
		}
		return end, nil, next
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
