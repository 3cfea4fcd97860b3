// Package parse implements the heuristic text parsers at the heart of
// the report scraper.
//
// Report pages render tournament results as loosely structured
// plaintext: a freeform heading block with the tournament name, date,
// address, and director, followed by one whitespace-delimited results
// table per section. Column layout varies per report (round count,
// optional games-played column, several encodings of the rating/games
// field, multi-token player names), so both parsers are best-effort:
// they never return an error, and malformed rows or fields degrade to
// partial records rather than failures.
package parse
