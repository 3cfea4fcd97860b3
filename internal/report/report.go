package report

// TournamentInfo holds the metadata extracted from a report's heading
// block. Name is always populated when the heading has any content at
// all; the remaining fields are best-effort and empty when the heading
// does not supply them.
type TournamentInfo struct {
	Name    string `json:"name"`
	Date    string `json:"date,omitempty"`
	Address string `json:"address,omitempty"`
	TD      string `json:"TD,omitempty"`
}

// RoundResult pairs one round's column header with the raw result code
// printed for a player in that round. The code is kept verbatim
// (e.g. "W12", "L3", "D7", "B"); see DecodeRoundCode for the storage
// side's interpretation.
type RoundResult struct {
	Label string `json:"label"`
	Code  string `json:"code"`
}

// PlayerResult is one parsed row of a section's results table.
// Position and ExternalID are always present; every other field may be
// absent when the source row omits or garbles it.
type PlayerResult struct {
	Position    int           `json:"position"`
	ExternalID  string        `json:"externalId"`
	LastName    string        `json:"lastName"`
	FirstName   string        `json:"firstName"`
	StartRating *int          `json:"startRating,omitempty"`
	EndRating   *int          `json:"endRating,omitempty"`
	GamesPlayed *int          `json:"gamesPlayed,omitempty"`
	TotalScore  *float64      `json:"totalScore,omitempty"`
	Rounds      []RoundResult `json:"rounds"`
}

// Section is one self-contained results table within a report, in
// printed rank order.
type Section struct {
	Name    string         `json:"name"`
	Results []PlayerResult `json:"results"`
}

// Report is a fully assembled tournament report.
type Report struct {
	Info     TournamentInfo `json:"info"`
	URL      string         `json:"url,omitempty"`
	Sections []Section      `json:"sections"`
}
