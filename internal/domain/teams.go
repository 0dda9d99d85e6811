package domain

// AllTeams is the league's fixed eight-team table, used as a fallback when the
// roster endpoint is unavailable and as the lookup table for scraped names.
var AllTeams = []Team{
	{ID: "154048", Name: "Breeze BC", BadgeURL: "https://r2.thesportsdb.com/images/media/team/badge/breeze-bc.png"},
	{ID: "154049", Name: "Hive BC", BadgeURL: "https://r2.thesportsdb.com/images/media/team/badge/hive-bc.png"},
	{ID: "151477", Name: "Laces BC", BadgeURL: "https://r2.thesportsdb.com/images/media/team/badge/laces-bc.png"},
	{ID: "150651", Name: "Lunar Owls BC", BadgeURL: "https://r2.thesportsdb.com/images/media/team/badge/lunar-owls-bc.png"},
	{ID: "151962", Name: "Mist BC", BadgeURL: "https://r2.thesportsdb.com/images/media/team/badge/mist-bc.png"},
	{ID: "151478", Name: "Phantom BC", BadgeURL: "https://r2.thesportsdb.com/images/media/team/badge/phantom-bc.png"},
	{ID: "151481", Name: "Rose BC", BadgeURL: "https://r2.thesportsdb.com/images/media/team/badge/rose-bc.png"},
	{ID: "150736", Name: "Vinyl BC", BadgeURL: "https://r2.thesportsdb.com/images/media/team/badge/vinyl-bc.png"},
}

// TeamByID looks a team up in the fixed table.
func TeamByID(id string) (Team, bool) {
	for _, t := range AllTeams {
		if t.ID == id {
			return t, true
		}
	}
	return Team{}, false
}

// TeamByName matches either the full name or the short name exactly.
func TeamByName(name string) (Team, bool) {
	for _, t := range AllTeams {
		if t.Name == name || t.ShortName() == name {
			return t, true
		}
	}
	return Team{}, false
}

// ShortTeamNames returns the eight short display names in table order. The
// scrape parser scans fragments for these tokens.
func ShortTeamNames() []string {
	names := make([]string, 0, len(AllTeams))
	for _, t := range AllTeams {
		names = append(names, t.ShortName())
	}
	return names
}
