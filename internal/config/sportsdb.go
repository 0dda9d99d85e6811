package config

const (
	envSportsDBBaseURL   = "SPORTSDB_BASE_URL"
	envSportsDBV2BaseURL = "SPORTSDB_V2_BASE_URL"
	envSportsDBAPIKey    = "SPORTSDB_API_KEY"
	envLeagueID          = "LEAGUE_ID"
	envSeason            = "SEASON"
	envScrapeBaseURL     = "SCRAPE_BASE_URL"

	defaultSportsDBBaseURL   = "https://www.thesportsdb.com/api/v1/json"
	defaultSportsDBV2BaseURL = "https://www.thesportsdb.com/api/v2/json"
	defaultLeagueID          = "5622"
	defaultSeason            = "2026"
	defaultScrapeBaseURL     = "https://www.unrivaled.basketball"
)

// SportsDBConfig controls how we talk to the stats API.
type SportsDBConfig struct {
	BaseURL   string
	V2BaseURL string
	APIKey    string
	LeagueID  string
	Season    string
}

func loadSportsDB() SportsDBConfig {
	return SportsDBConfig{
		BaseURL:   envOrDefault(envSportsDBBaseURL, defaultSportsDBBaseURL),
		V2BaseURL: envOrDefault(envSportsDBV2BaseURL, defaultSportsDBV2BaseURL),
		APIKey:    envOrDefault(envSportsDBAPIKey, ""),
		LeagueID:  envOrDefault(envLeagueID, defaultLeagueID),
		Season:    envOrDefault(envSeason, defaultSeason),
	}
}
