package sportsdb

// Source slice names, used for cache keys, logs and metrics.
const (
	SourceSeason    = "season"
	SourceUpcoming  = "upcoming"
	SourceResults   = "results"
	SourceTeams     = "teams"
	SourceStandings = "standings"
	SourceLive      = "livescores"
)

// eventsResponse is the envelope for the schedule endpoints. The list field is
// legitimately absent when a slice has no events.
type eventsResponse struct {
	Events []apiEvent `json:"events"`
}

// teamsResponse is the roster envelope.
type teamsResponse struct {
	Teams []apiTeam `json:"teams"`
}

// tableResponse is the league-table envelope.
type tableResponse struct {
	Table []apiStanding `json:"table"`
}

// livescoreResponse is the v2 live feed envelope.
type livescoreResponse struct {
	Livescores []apiEvent `json:"livescores"`
}

// apiEvent is the upstream event record. Scores arrive string-typed; date,
// time and combined timestamp are all optional and frequently disagree.
// Live feed records reuse the shape, add strProgress and omit the date.
type apiEvent struct {
	IDEvent          string `json:"idEvent"`
	StrEvent         string `json:"strEvent"`
	StrHomeTeam      string `json:"strHomeTeam"`
	StrAwayTeam      string `json:"strAwayTeam"`
	IntHomeScore     string `json:"intHomeScore"`
	IntAwayScore     string `json:"intAwayScore"`
	DateEvent        string `json:"dateEvent"`
	StrTime          string `json:"strTime"`
	StrTimestamp     string `json:"strTimestamp"`
	StrThumb         string `json:"strThumb"`
	StrStatus        string `json:"strStatus"`
	StrProgress      string `json:"strProgress"`
	IDHomeTeam       string `json:"idHomeTeam"`
	IDAwayTeam       string `json:"idAwayTeam"`
	StrHomeTeamBadge string `json:"strHomeTeamBadge"`
	StrAwayTeamBadge string `json:"strAwayTeamBadge"`
}

type apiTeam struct {
	IDTeam           string `json:"idTeam"`
	StrTeam          string `json:"strTeam"`
	StrTeamBadge     string `json:"strTeamBadge"`
	StrTeamLogo      string `json:"strTeamLogo"`
	StrDescriptionEN string `json:"strDescriptionEN"`
}

type apiStanding struct {
	StrTeam      string `json:"strTeam"`
	IntPlayed    string `json:"intPlayed"`
	IntWin       string `json:"intWin"`
	IntLoss      string `json:"intLoss"`
	IntPoints    string `json:"intPoints"`
	StrTeamBadge string `json:"strTeamBadge"`
}
