package models

import (
	"fmt"
	"strings"
	"time"
)

// Team is a franchise row from the teams table.
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Conference   string `json:"conference,omitempty"`
	Division     string `json:"division,omitempty"`
	LogoURL      string `json:"logo_url,omitempty"`
}

// abbreviationSpan is one period of a franchise's naming history.
type abbreviationSpan struct {
	Abbreviation string
	From         string // YYYY-MM-DD
	To           string // empty = current
}

// teamAbbreviationHistory maps franchise names to their abbreviation over time.
// Needed because box scores reference teams by the abbreviation in use on the
// game date (e.g. New Jersey Nets games carry NJN, not BKN).
var teamAbbreviationHistory = map[string]abbreviationSpan{
	"Atlanta Hawks":                     {Abbreviation: "ATL", From: "1969-01-01"},
	"Boston Celtics":                    {Abbreviation: "BOS", From: "1969-01-01"},
	"Brooklyn Nets":                     {Abbreviation: "BKN", From: "2012-01-01"},
	"New Jersey Nets":                   {Abbreviation: "NJN", From: "1969-01-01", To: "2012-01-01"},
	"Charlotte Hornets":                 {Abbreviation: "CHO", From: "2014-01-01"},
	"Charlotte Bobcats":                 {Abbreviation: "CHA", From: "2004-01-01", To: "2014-01-01"},
	"Chicago Bulls":                     {Abbreviation: "CHI", From: "1969-01-01"},
	"Cleveland Cavaliers":               {Abbreviation: "CLE", From: "1971-01-01"},
	"Dallas Mavericks":                  {Abbreviation: "DAL", From: "1980-01-01"},
	"Denver Nuggets":                    {Abbreviation: "DEN", From: "1977-01-01"},
	"Detroit Pistons":                   {Abbreviation: "DET", From: "1969-01-01"},
	"Golden State Warriors":             {Abbreviation: "GSW", From: "1971-01-01"},
	"Houston Rockets":                   {Abbreviation: "HOU", From: "1971-01-01"},
	"Indiana Pacers":                    {Abbreviation: "IND", From: "1976-01-01"},
	"Kansas City Kings":                 {Abbreviation: "KCK", From: "1975-01-01", To: "1985-01-01"},
	"Los Angeles Clippers":              {Abbreviation: "LAC", From: "1984-01-01"},
	"Los Angeles Lakers":                {Abbreviation: "LAL", From: "1969-01-01"},
	"Memphis Grizzlies":                 {Abbreviation: "MEM", From: "2001-01-01"},
	"Miami Heat":                        {Abbreviation: "MIA", From: "1988-01-01"},
	"Milwaukee Bucks":                   {Abbreviation: "MIL", From: "1969-01-01"},
	"Minnesota Timberwolves":            {Abbreviation: "MIN", From: "1989-01-01"},
	"New Orleans Pelicans":              {Abbreviation: "NOP", From: "2013-01-01"},
	"New Orleans Hornets":               {Abbreviation: "NOH", From: "2002-01-01", To: "2013-01-01"},
	"New Orleans/Oklahoma City Hornets": {Abbreviation: "NOK", From: "2005-01-01", To: "2007-01-01"},
	"New Orleans Jazz":                  {Abbreviation: "NOJ", From: "1975-01-01", To: "1979-01-01"},
	"New York Knicks":                   {Abbreviation: "NYK", From: "1969-01-01"},
	"Oklahoma City Thunder":             {Abbreviation: "OKC", From: "2008-01-01"},
	"Seattle SuperSonics":               {Abbreviation: "SEA", From: "1969-01-01", To: "2008-01-01"},
	"St. Louis Hawks":                   {Abbreviation: "SLH", From: "1969-01-01", To: "1972-01-01"},
	"Orlando Magic":                     {Abbreviation: "ORL", From: "1989-01-01"},
	"Philadelphia 76ers":                {Abbreviation: "PHI", From: "1969-01-01"},
	"Phoenix Suns":                      {Abbreviation: "PHX", From: "1969-01-01"},
	"Portland Trail Blazers":            {Abbreviation: "POR", From: "1971-01-01"},
	"Sacramento Kings":                  {Abbreviation: "SAC", From: "1985-01-01"},
	"San Antonio Spurs":                 {Abbreviation: "SAS", From: "1976-01-01"},
	"Toronto Raptors":                   {Abbreviation: "TOR", From: "1995-01-01"},
	"Utah Jazz":                         {Abbreviation: "UTA", From: "1979-01-01"},
	"Vancouver Grizzlies":               {Abbreviation: "VAN", From: "1995-01-01", To: "2001-01-01"},
	"Washington Wizards":                {Abbreviation: "WAS", From: "1997-01-01"},
	"Washington Bullets":                {Abbreviation: "WSB", From: "1969-01-01", To: "1997-01-01"},
}

// TeamAbbreviation resolves a team name to its abbreviation, honoring franchise
// renames when a game date is supplied. Names that already look like an
// abbreviation (3 uppercase letters) pass through unchanged.
func TeamAbbreviation(teamName string, gameDate *time.Time) string {
	if teamName == "" {
		return ""
	}
	if len(teamName) == 3 && teamName == strings.ToUpper(teamName) {
		return teamName
	}

	upper := strings.ToUpper(teamName)
	for name, span := range teamAbbreviationHistory {
		if upper != strings.ToUpper(name) {
			continue
		}
		if gameDate == nil {
			if span.To == "" {
				return span.Abbreviation
			}
			continue
		}
		from, _ := time.Parse("2006-01-02", span.From)
		if gameDate.Before(from) {
			continue
		}
		if span.To != "" {
			to, _ := time.Parse("2006-01-02", span.To)
			if !gameDate.Before(to) {
				continue
			}
		}
		return span.Abbreviation
	}

	// Partial match covers inputs like "Lakers" or "LA Lakers"
	for name, span := range teamAbbreviationHistory {
		if strings.Contains(strings.ToUpper(name), upper) && span.To == "" {
			return span.Abbreviation
		}
	}

	if len(teamName) >= 3 {
		return strings.ToUpper(teamName[:3])
	}
	return strings.ToUpper(teamName)
}

// TeamLogoURL returns the hosted logo asset for a team abbreviation.
func TeamLogoURL(abbreviation string) string {
	return fmt.Sprintf("https://raw.githubusercontent.com/HTilki/NBAStatsApp/main/images/teams_logos/%s.svg", abbreviation)
}
