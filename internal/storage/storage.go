package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/nwchess/report-scraper/internal/report"
)

// Storage persists parsed tournament reports into a SQLite database
type Storage struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema
// exists
func Open(path string) (*Storage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Storage{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return s, nil
}

// Close closes the underlying database
func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS tournament (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tournament_name TEXT NOT NULL,
			date TEXT,
			address TEXT,
			td TEXT,
			url TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS player (
			id TEXT PRIMARY KEY,
			last_name TEXT NOT NULL,
			first_name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS section (
			tournament_id INTEGER,
			section_id INTEGER,
			section_name TEXT NOT NULL,
			PRIMARY KEY (tournament_id, section_id),
			FOREIGN KEY (tournament_id) REFERENCES tournament (id)
		)`,
		`CREATE TABLE IF NOT EXISTS player_tournament (
			player_id TEXT,
			tournament_id INTEGER,
			section_id INTEGER,
			start_rating INTEGER,
			end_rating INTEGER,
			games INTEGER,
			score REAL,
			PRIMARY KEY (player_id, tournament_id, section_id),
			FOREIGN KEY (player_id) REFERENCES player (id),
			FOREIGN KEY (tournament_id, section_id) REFERENCES section (tournament_id, section_id)
		)`,
		`CREATE TABLE IF NOT EXISTS games (
			tournament_id INTEGER,
			player_id TEXT,
			section_id INTEGER,
			round TEXT,
			opponent_id TEXT,
			result TEXT,
			PRIMARY KEY (tournament_id, player_id, section_id, round),
			FOREIGN KEY (tournament_id, section_id) REFERENCES section (tournament_id, section_id),
			FOREIGN KEY (player_id) REFERENCES player (id),
			FOREIGN KEY (opponent_id) REFERENCES player (id)
		)`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// StoreReport persists a full report: tournament row, sections in
// order, players, per-section participation rows, and decoded game
// rows. Tournaments are deduplicated on (name, date); storing the same
// report twice reuses the existing tournament id.
func (s *Storage) StoreReport(rpt *report.Report) (int64, error) {
	tournamentID, err := s.insertTournament(rpt)
	if err != nil {
		return 0, fmt.Errorf("inserting tournament: %w", err)
	}

	for _, section := range rpt.Sections {
		sectionID, err := s.insertSection(tournamentID, section.Name)
		if err != nil {
			return 0, fmt.Errorf("inserting section %q: %w", section.Name, err)
		}

		for _, p := range section.Results {
			playerID, err := s.insertPlayer(p)
			if err != nil {
				return 0, fmt.Errorf("inserting player %s: %w", p.ExternalID, err)
			}
			if err := s.insertParticipation(playerID, tournamentID, sectionID, p); err != nil {
				return 0, fmt.Errorf("inserting participation for %s: %w", playerID, err)
			}
		}

		if err := s.insertGames(tournamentID, sectionID, section.Results); err != nil {
			return 0, fmt.Errorf("inserting games for section %q: %w", section.Name, err)
		}
	}

	return tournamentID, nil
}

// insertTournament inserts the tournament row unless one with the same
// name and date already exists, in which case its id is reused
func (s *Storage) insertTournament(rpt *report.Report) (int64, error) {
	var existing int64
	err := s.db.QueryRow(
		"SELECT id FROM tournament WHERE tournament_name = ? AND date = ?",
		rpt.Info.Name, rpt.Info.Date,
	).Scan(&existing)
	if err == nil {
		return existing, nil
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	res, err := s.db.Exec(
		"INSERT INTO tournament (tournament_name, date, address, td, url) VALUES (?, ?, ?, ?, ?)",
		rpt.Info.Name, rpt.Info.Date, rpt.Info.Address, rpt.Info.TD, rpt.URL,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// insertSection assigns the next sequential section id for the
// tournament, starting at 1
func (s *Storage) insertSection(tournamentID int64, name string) (int64, error) {
	var maxID sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(section_id) FROM section WHERE tournament_id = ?",
		tournamentID,
	).Scan(&maxID)
	if err != nil {
		return 0, err
	}

	sectionID := maxID.Int64 + 1
	_, err = s.db.Exec(
		"INSERT INTO section (tournament_id, section_id, section_name) VALUES (?, ?, ?)",
		tournamentID, sectionID, name,
	)
	if err != nil {
		return 0, err
	}
	return sectionID, nil
}

// insertPlayer inserts the player under their normalized key if absent
// and returns the key
func (s *Storage) insertPlayer(p report.PlayerResult) (string, error) {
	playerID := report.PlayerKey(p.ExternalID)

	var existing string
	err := s.db.QueryRow("SELECT id FROM player WHERE id = ?", playerID).Scan(&existing)
	if err == nil {
		return playerID, nil
	}
	if err != sql.ErrNoRows {
		return "", err
	}

	_, err = s.db.Exec(
		"INSERT INTO player (id, last_name, first_name) VALUES (?, ?, ?)",
		playerID, p.LastName, p.FirstName,
	)
	if err != nil {
		return "", err
	}
	return playerID, nil
}

func (s *Storage) insertParticipation(playerID string, tournamentID, sectionID int64, p report.PlayerResult) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO player_tournament
		(player_id, tournament_id, section_id, start_rating, end_rating, games, score)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		playerID, tournamentID, sectionID,
		nullInt(p.StartRating), nullInt(p.EndRating), nullInt(p.GamesPlayed),
		nullFloat(p.TotalScore),
	)
	return err
}

// insertGames decodes each player's round codes and stores one game row
// per decodable result. Codes that carry no outcome/opponent pair
// (byes, unplayed rounds) and opponent positions that match no row in
// the section are skipped.
func (s *Storage) insertGames(tournamentID, sectionID int64, results []report.PlayerResult) error {
	byPosition := make(map[int]string, len(results))
	for _, p := range results {
		byPosition[p.Position] = report.PlayerKey(p.ExternalID)
	}

	for _, p := range results {
		playerID := report.PlayerKey(p.ExternalID)
		for _, rd := range p.Rounds {
			outcome, opponentPos, ok := report.DecodeRoundCode(rd.Code)
			if !ok {
				continue
			}
			opponentID, found := byPosition[opponentPos]
			if !found {
				continue
			}

			_, err := s.db.Exec(
				`INSERT OR REPLACE INTO games
				(tournament_id, player_id, section_id, round, opponent_id, result)
				VALUES (?, ?, ?, ?, ?, ?)`,
				tournamentID, playerID, sectionID, rd.Label, opponentID, string(outcome),
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func nullInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
