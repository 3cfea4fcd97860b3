package report

import "strconv"

// PlayerKey derives the persisted player identifier from the printed
// external ID by dropping its fixed 4-character prefix. IDs of 4
// characters or fewer are used unmodified.
func PlayerKey(externalID string) string {
	if len(externalID) <= 4 {
		return externalID
	}
	return externalID[4:]
}

// Outcome is the result tag decoded from a round code's first character.
type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeLoss Outcome = "L"
	OutcomeDraw Outcome = "D"
)

// DecodeRoundCode splits a raw round code into its outcome tag and the
// opponent's printed position. A code like "W12" decodes to (OutcomeWin,
// 12, true). Codes with no digit suffix (byes "B", unplayed "U",
// forfeits) and codes whose first character is not a recognized outcome
// letter return ok=false; callers should fall back to storing the raw
// code.
func DecodeRoundCode(code string) (Outcome, int, bool) {
	if len(code) < 2 {
		return "", 0, false
	}
	outcome := Outcome(code[:1])
	switch outcome {
	case OutcomeWin, OutcomeLoss, OutcomeDraw:
	default:
		return "", 0, false
	}
	pos, err := strconv.Atoi(code[1:])
	if err != nil || pos < 1 {
		return "", 0, false
	}
	return outcome, pos, true
}
