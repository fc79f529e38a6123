package logic

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/HTilki/NBAStatsApp/internal/models"
)

type seasonStatsService struct {
	ch driver.Conn
	pg PgPool
}

func NewSeasonStatsService(ch driver.Conn, pg PgPool) SeasonStatsService {
	return &seasonStatsService{ch: ch, pg: pg}
}

// leaderboardColumn whitelists stat names against ClickHouse columns. Every
// stat that reaches SQL assembly must pass through here first.
func leaderboardColumn(stat string) (string, bool) {
	switch stat {
	case "pts", "trb", "ast", "stl", "blk", "tov",
		"fg", "fga", "three_p", "three_pa", "ft", "fta",
		"orb", "drb", "pf":
		return stat, true
	case "minutes":
		return "seconds_played", true
	default:
		return "", false
	}
}

func (s *seasonStatsService) GetSeasons(ctx context.Context) ([]int, error) {
	rows, err := s.pg.Query(ctx, `SELECT DISTINCT season FROM schedule ORDER BY season DESC`)
	if err != nil {
		return nil, fmt.Errorf("get seasons: %w", err)
	}
	defer rows.Close()

	var seasons []int
	for rows.Next() {
		var season int
		if err := rows.Scan(&season); err != nil {
			return nil, fmt.Errorf("scan season: %w", err)
		}
		seasons = append(seasons, season)
	}
	return seasons, rows.Err()
}

func (s *seasonStatsService) GetTeamSeasonTable(ctx context.Context, season int, gameType string) ([]models.TeamSeasonRow, error) {
	query := `
		SELECT
			team,
			count() as games,
			countIf(win = 1) as wins,
			sum(pts) as pts,
			sum(fg) as fg, sum(fga) as fga,
			sum(three_p) as three_p, sum(three_pa) as three_pa,
			sum(ft) as ft, sum(fta) as fta,
			sum(trb) as trb, sum(ast) as ast,
			sum(stl) as stl, sum(blk) as blk, sum(tov) as tov
		FROM boxscore_lines
		WHERE team_total = 1 AND season = ? AND ` + gameTypeClause(gameType) + `
		GROUP BY team
		ORDER BY wins DESC, team
	`
	rows, err := s.ch.Query(ctx, query, season)
	if err != nil {
		return nil, fmt.Errorf("team season table: %w", err)
	}
	defer rows.Close()

	var table []models.TeamSeasonRow
	for rows.Next() {
		var row models.TeamSeasonRow
		var pts, fg, fga, threeP, threePA, ft, fta, trb, ast, stl, blk, tov uint64
		if err := rows.Scan(&row.Team, &row.Games, &row.Wins, &pts,
			&fg, &fga, &threeP, &threePA, &ft, &fta,
			&trb, &ast, &stl, &blk, &tov); err != nil {
			return nil, fmt.Errorf("scan team row: %w", err)
		}
		row.Losses = row.Games - row.Wins
		n := float64(row.Games)
		if n > 0 {
			row.WinPct = float64(row.Wins) / n
			row.PPG = float64(pts) / n
			row.RPG = float64(trb) / n
			row.APG = float64(ast) / n
			row.SPG = float64(stl) / n
			row.BPG = float64(blk) / n
			row.TPG = float64(tov) / n
		}
		if fga > 0 {
			row.FGPct = float64(fg) / float64(fga)
		}
		if threePA > 0 {
			row.ThreePct = float64(threeP) / float64(threePA)
		}
		if fta > 0 {
			row.FTPct = float64(ft) / float64(fta)
		}
		table = append(table, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	oppQuery := `
		SELECT opponent, count() as games, sum(pts) as pts
		FROM boxscore_lines
		WHERE team_total = 1 AND season = ? AND ` + gameTypeClause(gameType) + `
		GROUP BY opponent
	`
	oppRows, err := s.ch.Query(ctx, oppQuery, season)
	if err != nil {
		return nil, fmt.Errorf("team season table allowed: %w", err)
	}
	defer oppRows.Close()

	allowed := make(map[string]float64)
	for oppRows.Next() {
		var team string
		var games, pts uint64
		if err := oppRows.Scan(&team, &games, &pts); err != nil {
			return nil, err
		}
		if games > 0 {
			allowed[team] = float64(pts) / float64(games)
		}
	}
	for i := range table {
		table[i].OppPPG = allowed[table[i].Team]
	}
	return table, oppRows.Err()
}

func (s *seasonStatsService) GetPlayerSeasonTable(ctx context.Context, season int, gameType string, minGames int) ([]models.PlayerSeasonRow, error) {
	if minGames < 0 {
		minGames = 0
	}
	query := `
		SELECT
			player_name,
			anyLast(team) as team,
			countIf(played = 1) as games,
			sumIf(seconds_played, played = 1) as seconds,
			sum(pts) as pts, sum(trb) as trb, sum(ast) as ast,
			sum(stl) as stl, sum(blk) as blk,
			sum(fg) as fg, sum(fga) as fga,
			sum(three_p) as three_p, sum(three_pa) as three_pa,
			sum(ft) as ft, sum(fta) as fta
		FROM boxscore_lines
		WHERE team_total = 0 AND season = ? AND ` + gameTypeClause(gameType) + `
		GROUP BY player_name
		HAVING games >= ?
		ORDER BY sum(pts) / games DESC
		LIMIT 600
	`
	rows, err := s.ch.Query(ctx, query, season, minGames)
	if err != nil {
		return nil, fmt.Errorf("player season table: %w", err)
	}
	defer rows.Close()

	var table []models.PlayerSeasonRow
	for rows.Next() {
		var row models.PlayerSeasonRow
		var seconds, pts, trb, ast, stl, blk, fg, fga, threeP, threePA, ft, fta uint64
		if err := rows.Scan(&row.PlayerName, &row.Team, &row.Games, &seconds,
			&pts, &trb, &ast, &stl, &blk,
			&fg, &fga, &threeP, &threePA, &ft, &fta); err != nil {
			return nil, fmt.Errorf("scan player row: %w", err)
		}
		n := float64(row.Games)
		if n > 0 {
			row.MPG = float64(seconds) / 60 / n
			row.PPG = float64(pts) / n
			row.RPG = float64(trb) / n
			row.APG = float64(ast) / n
			row.SPG = float64(stl) / n
			row.BPG = float64(blk) / n
		}
		if fga > 0 {
			row.FGPct = float64(fg) / float64(fga)
		}
		if threePA > 0 {
			row.ThreePct = float64(threeP) / float64(threePA)
		}
		if fta > 0 {
			row.FTPct = float64(ft) / float64(fta)
		}
		table = append(table, row)
	}
	return table, rows.Err()
}

func (s *seasonStatsService) GetLeaderboard(ctx context.Context, stat string, season int, perGame bool, limit int) ([]models.LeaderboardEntry, error) {
	column, ok := leaderboardColumn(stat)
	if !ok {
		return nil, fmt.Errorf("unknown stat: %s", stat)
	}
	if limit <= 0 || limit > 100 {
		limit = 25
	}

	order := "total"
	if perGame {
		order = "per_game"
	}

	// Minutes are stored as seconds; report them in whole minutes like the
	// stats query builder does.
	totalExpr := fmt.Sprintf("sum(%s)", column)
	if stat == "minutes" {
		totalExpr = "intDiv(sum(seconds_played), 60)"
	}

	query := fmt.Sprintf(`
		SELECT
			player_name,
			anyLast(team) as team,
			countIf(played = 1) as games,
			%s as total,
			%s / countIf(played = 1) as per_game
		FROM boxscore_lines
		WHERE team_total = 0 AND season = ? AND played = 1 AND `+gameTypeClause("regular season")+`
		GROUP BY player_name
		HAVING games >= 10
		ORDER BY %s DESC
		LIMIT ?
	`, totalExpr, totalExpr, order)

	rows, err := s.ch.Query(ctx, query, season, limit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard %s: %w", stat, err)
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	rank := 1
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.PlayerName, &e.Team, &e.Games, &e.Total, &e.PerGame); err != nil {
			return nil, fmt.Errorf("scan leaderboard entry: %w", err)
		}
		e.Rank = rank
		rank++
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetSeasonChampion finds the winner of the season's last played game, which
// in a complete season is the title clincher.
func (s *seasonStatsService) GetSeasonChampion(ctx context.Context, season int) (*models.SeasonChampion, error) {
	var champ models.SeasonChampion
	var home, visitor string
	var homePts, visitorPts int
	var date string

	err := s.pg.QueryRow(ctx, `
		SELECT id, to_char(date, 'YYYY-MM-DD'), home_team, visitor_team, home_team_pts, visitor_team_pts
		FROM schedule
		WHERE season = $1 AND home_team_pts > 0 AND game_type = 'playoffs'
		ORDER BY date DESC
		LIMIT 1
	`, season).Scan(&champ.GameID, &date, &home, &visitor, &homePts, &visitorPts)
	if err != nil {
		return nil, ErrSeasonNotFound
	}

	champ.Season = season
	champ.Date = date
	if homePts > visitorPts {
		champ.Team = home
		champ.Opponent = visitor
	} else {
		champ.Team = visitor
		champ.Opponent = home
	}
	champ.FinalScore = fmt.Sprintf("%d-%d", max(homePts, visitorPts), min(homePts, visitorPts))

	gameDate, _ := parseDate(date)
	champ.LogoURL = models.TeamLogoURL(models.TeamAbbreviation(champ.Team, gameDate))
	return &champ, nil
}

func parseDate(s string) (*time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
