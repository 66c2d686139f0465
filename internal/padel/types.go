package padel

import "time"

// Player is a member of the caller's roster. All optional attributes are
// pointers so that absent values round-trip as JSON null.
type Player struct {
	ID          int64      `json:"id"`
	FirstName   *string    `json:"firstName"`
	LastName    string     `json:"lastName"`
	YearOfBirth *string    `json:"yearOfBirth"`
	Nickname    *string    `json:"nickname"`
	UserID      string     `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"deletedAt"`
}

// Game is a single padel match between two teams of two players.
// Dx and Sx are the right and left court positions within a team.
// Set scores are nullable; a game has up to three sets.
type Game struct {
	ID            int64      `json:"id"`
	PlayedAt      time.Time  `json:"playedAt"`
	Team1PlayerDx int64      `json:"team1PlayerDx"`
	Team1PlayerSx int64      `json:"team1PlayerSx"`
	Team2PlayerDx int64      `json:"team2PlayerDx"`
	Team2PlayerSx int64      `json:"team2PlayerSx"`
	Team1Set1     *int       `json:"team1Set1Score"`
	Team2Set1     *int       `json:"team2Set1Score"`
	Team1Set2     *int       `json:"team1Set2Score"`
	Team2Set2     *int       `json:"team2Set2Score"`
	Team1Set3     *int       `json:"team1Set3Score"`
	Team2Set3     *int       `json:"team2Set3Score"`
	TournamentID  *int64     `json:"tournamentId"`
	UserID        string     `json:"userId"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	DeletedAt     *time.Time `json:"deletedAt"`
}

// GameDetail is a game enriched for listing: resolved display names for the
// four participants, the tournament name (nil when the game is friendly) and
// the derived score summary.
type GameDetail struct {
	Game
	Team1PlayerDxName string  `json:"team1PlayerDxName"`
	Team1PlayerSxName string  `json:"team1PlayerSxName"`
	Team2PlayerDxName string  `json:"team2PlayerDxName"`
	Team2PlayerSxName string  `json:"team2PlayerSxName"`
	TournamentName    *string `json:"tournamentName"`
	Team1SetsWon      int     `json:"team1SetsWon"`
	Team2SetsWon      int     `json:"team2SetsWon"`
	Winner            Winner  `json:"winner"`
	SetsScoresText    string  `json:"setsScoresText"`
}

// Tournament is a flat label with a date range; endDate nil means ongoing.
type Tournament struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	UserID    string     `json:"userId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}
