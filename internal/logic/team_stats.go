package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"golang.org/x/sync/errgroup"

	"github.com/HTilki/NBAStatsApp/internal/models"
)

type teamStatsService struct {
	ch       driver.Conn
	pg       PgPool
	redis    RedisClient
	cacheTTL time.Duration
}

func NewTeamStatsService(ch driver.Conn, pg PgPool, redis RedisClient, cacheTTL time.Duration) TeamStatsService {
	return &teamStatsService{ch: ch, pg: pg, redis: redis, cacheTTL: cacheTTL}
}

// gameTypeClause maps a requested game type to a whitelisted WHERE fragment.
// Regular season includes in-season tournament games except the championship
// game, which counts as neither regular season nor playoffs.
func gameTypeClause(gameType string) string {
	switch gameType {
	case "regular season":
		return "(game_type = 'regular season' OR (game_type = 'in-season tournament' AND game_remarks != 'championship game'))"
	case "playoffs":
		return "game_type = 'playoffs'"
	case "play-in":
		return "game_type = 'play-in'"
	case "in-season tournament":
		return "game_type = 'in-season tournament'"
	default:
		return "1 = 1"
	}
}

func (s *teamStatsService) ListTeams(ctx context.Context) ([]models.Team, error) {
	const cacheKey = "cache:teams"
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var teams []models.Team
			if json.Unmarshal([]byte(cached), &teams) == nil {
				return teams, nil
			}
		}
	}

	rows, err := s.pg.Query(ctx, `
		SELECT id, name, abbreviation, conference, division
		FROM teams
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Abbreviation, &t.Conference, &t.Division); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		t.LogoURL = models.TeamLogoURL(t.Abbreviation)
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if s.redis != nil {
		if payload, err := json.Marshal(teams); err == nil {
			s.redis.Set(ctx, cacheKey, payload, s.cacheTTL)
		}
	}
	return teams, nil
}

// teamSideClauses renders the optional opponent and date-range conditions
// for rows where the subject team owns the line.
func teamSideClauses(f models.TeamStatsFilter) (string, []interface{}) {
	var clause string
	var args []interface{}
	if f.Opponent != "" {
		clause += " AND opponent = ?"
		args = append(args, f.Opponent)
	}
	if f.From != nil {
		clause += " AND date >= ?"
		args = append(args, *f.From)
	}
	if f.To != nil {
		clause += " AND date <= ?"
		args = append(args, *f.To)
	}
	return clause, args
}

// opponentSideClauses mirrors teamSideClauses for opponent-total rows, where
// the subject team sits in the opponent column.
func opponentSideClauses(f models.TeamStatsFilter) (string, []interface{}) {
	var clause string
	var args []interface{}
	if f.Opponent != "" {
		clause += " AND team = ?"
		args = append(args, f.Opponent)
	}
	if f.From != nil {
		clause += " AND date >= ?"
		args = append(args, *f.From)
	}
	if f.To != nil {
		clause += " AND date <= ?"
		args = append(args, *f.To)
	}
	return clause, args
}

// GetTeamStats fetches all sections of the team dashboard in parallel.
func (s *teamStatsService) GetTeamStats(ctx context.Context, team string, filter models.TeamStatsFilter) (*models.TeamStatsResponse, error) {
	cacheKey := fmt.Sprintf("cache:team_stats:%s:%d:%s", team, filter.Season, filter.GameType)
	if filter.Opponent != "" {
		cacheKey += ":vs:" + filter.Opponent
	}
	if filter.From != nil {
		cacheKey += ":from:" + filter.From.Format("2006-01-02")
	}
	if filter.To != nil {
		cacheKey += ":to:" + filter.To.Format("2006-01-02")
	}
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var resp models.TeamStatsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return &resp, nil
			}
		}
	}

	resp := &models.TeamStatsResponse{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.fillOverview(ctx, team, filter, &resp.Overview); err != nil {
			return fmt.Errorf("overview: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := s.fillSeasonSplits(ctx, team, filter, &resp.SeasonSplits); err != nil {
			return fmt.Errorf("season splits: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := s.fillOpponentSplits(ctx, team, filter, &resp.Opponents); err != nil {
			return fmt.Errorf("opponent splits: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := s.fillLocationWinPct(ctx, team, filter, &resp.Location); err != nil {
			return fmt.Errorf("location win pct: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := s.fillGameLog(ctx, team, filter, &resp.GameLog); err != nil {
			return fmt.Errorf("game log: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.redis != nil {
		if payload, err := json.Marshal(resp); err == nil {
			s.redis.Set(ctx, cacheKey, payload, s.cacheTTL)
		}
	}

	return resp, nil
}

func (s *teamStatsService) fillOverview(ctx context.Context, team string, f models.TeamStatsFilter, out *models.TeamOverview) error {
	clause, clauseArgs := teamSideClauses(f)
	query := `
		SELECT
			count() as games,
			countIf(win = 1) as wins,
			sum(pts) as points_for,
			sum(trb) as rebounds,
			sum(ast) as assists,
			sum(stl) as steals,
			sum(blk) as blocks,
			sum(fg) as fg,
			sum(fga) as fga,
			sum(three_p) as three_p,
			sum(three_pa) as three_pa,
			sum(ft) as ft,
			sum(fta) as fta
		FROM boxscore_lines
		WHERE team = ? AND team_total = 1 AND season = ? AND ` + gameTypeClause(f.GameType) + clause

	args := append([]interface{}{team, f.Season}, clauseArgs...)
	var trb, ast, stl, blk, fg, fga, threeP, threePA, ft, fta uint64
	err := s.ch.QueryRow(ctx, query, args...).Scan(
		&out.Games, &out.Wins, &out.PointsFor,
		&trb, &ast, &stl, &blk,
		&fg, &fga, &threeP, &threePA, &ft, &fta,
	)
	if err != nil {
		return err
	}

	// Points allowed comes from the opposing side's total rows
	oppClause, oppClauseArgs := opponentSideClauses(f)
	againstQuery := `
		SELECT sum(pts) as points_against
		FROM boxscore_lines
		WHERE opponent = ? AND team_total = 1 AND season = ? AND ` + gameTypeClause(f.GameType) + oppClause

	againstArgs := append([]interface{}{team, f.Season}, oppClauseArgs...)
	if err := s.ch.QueryRow(ctx, againstQuery, againstArgs...).Scan(&out.PointsAgainst); err != nil {
		return err
	}

	out.Team = team
	out.Season = f.Season
	out.Losses = out.Games - out.Wins
	out.LogoURL = models.TeamLogoURL(team)
	if out.Games > 0 {
		out.WinPct = float64(out.Wins) / float64(out.Games)
		out.PPG = float64(out.PointsFor) / float64(out.Games)
		out.OppPPG = float64(out.PointsAgainst) / float64(out.Games)
		out.PointDiff = out.PPG - out.OppPPG
		out.RPG = float64(trb) / float64(out.Games)
		out.APG = float64(ast) / float64(out.Games)
		out.SPG = float64(stl) / float64(out.Games)
		out.BPG = float64(blk) / float64(out.Games)
	}
	if fga > 0 {
		out.FGPct = float64(fg) / float64(fga)
	}
	if threePA > 0 {
		out.ThreePct = float64(threeP) / float64(threePA)
	}
	if fta > 0 {
		out.FTPct = float64(ft) / float64(fta)
	}
	return nil
}

func (s *teamStatsService) fillSeasonSplits(ctx context.Context, team string, f models.TeamStatsFilter, out *[]models.TeamSeasonSplit) error {
	clause, clauseArgs := teamSideClauses(f)
	query := `
		SELECT
			season,
			count() as games,
			countIf(win = 1) as wins,
			sum(pts) as points_for
		FROM boxscore_lines
		WHERE team = ? AND team_total = 1 AND ` + gameTypeClause(f.GameType) + clause + `
		GROUP BY season
		ORDER BY season DESC`

	args := append([]interface{}{team}, clauseArgs...)
	rows, err := s.ch.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var split models.TeamSeasonSplit
		var season uint16
		var pointsFor uint64
		if err := rows.Scan(&season, &split.Games, &split.Wins, &pointsFor); err != nil {
			return err
		}
		split.Season = int(season)
		split.Losses = split.Games - split.Wins
		if split.Games > 0 {
			split.WinPct = float64(split.Wins) / float64(split.Games)
			split.PPG = float64(pointsFor) / float64(split.Games)
		}
		*out = append(*out, split)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	oppClause, oppClauseArgs := opponentSideClauses(f)
	againstQuery := `
		SELECT season, count() as games, sum(pts) as points_against
		FROM boxscore_lines
		WHERE opponent = ? AND team_total = 1 AND ` + gameTypeClause(f.GameType) + oppClause + `
		GROUP BY season`

	againstArgs := append([]interface{}{team}, oppClauseArgs...)
	againstRows, err := s.ch.Query(ctx, againstQuery, againstArgs...)
	if err != nil {
		return err
	}
	defer againstRows.Close()

	against := make(map[int]float64)
	for againstRows.Next() {
		var season uint16
		var games, pts uint64
		if err := againstRows.Scan(&season, &games, &pts); err != nil {
			return err
		}
		if games > 0 {
			against[int(season)] = float64(pts) / float64(games)
		}
	}
	for i := range *out {
		(*out)[i].OppPPG = against[(*out)[i].Season]
	}
	return againstRows.Err()
}

func (s *teamStatsService) fillOpponentSplits(ctx context.Context, team string, f models.TeamStatsFilter, out *[]models.OpponentSplit) error {
	clause, clauseArgs := teamSideClauses(f)
	query := `
		SELECT
			opponent,
			count() as games,
			countIf(win = 1) as wins,
			sum(pts) as points_for
		FROM boxscore_lines
		WHERE team = ? AND team_total = 1 AND season = ? AND ` + gameTypeClause(f.GameType) + clause + `
		GROUP BY opponent
		ORDER BY games DESC, opponent`

	args := append([]interface{}{team, f.Season}, clauseArgs...)
	rows, err := s.ch.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var split models.OpponentSplit
		var pointsFor uint64
		if err := rows.Scan(&split.Opponent, &split.Games, &split.Wins, &pointsFor); err != nil {
			return err
		}
		split.Losses = split.Games - split.Wins
		if split.Games > 0 {
			split.WinPct = float64(split.Wins) / float64(split.Games)
			split.PPG = float64(pointsFor) / float64(split.Games)
		}
		*out = append(*out, split)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	// Points allowed per opponent comes from the opponent's total rows
	oppClause, oppClauseArgs := opponentSideClauses(f)
	allowedQuery := `
		SELECT team, count() as games, sum(pts) as points_against
		FROM boxscore_lines
		WHERE opponent = ? AND team_total = 1 AND season = ? AND ` + gameTypeClause(f.GameType) + oppClause + `
		GROUP BY team`

	allowedArgs := append([]interface{}{team, f.Season}, oppClauseArgs...)
	allowedRows, err := s.ch.Query(ctx, allowedQuery, allowedArgs...)
	if err != nil {
		return err
	}
	defer allowedRows.Close()

	allowed := make(map[string]float64)
	for allowedRows.Next() {
		var opponent string
		var games, pts uint64
		if err := allowedRows.Scan(&opponent, &games, &pts); err != nil {
			return err
		}
		if games > 0 {
			allowed[opponent] = float64(pts) / float64(games)
		}
	}
	for i := range *out {
		(*out)[i].OppPPG = allowed[(*out)[i].Opponent]
	}
	return allowedRows.Err()
}

func (s *teamStatsService) fillLocationWinPct(ctx context.Context, team string, f models.TeamStatsFilter, out *models.LocationWinPct) error {
	clause, clauseArgs := teamSideClauses(f)
	query := `
		SELECT
			countIf(home = 1) as home_games,
			countIf(home = 1 AND win = 1) as home_wins,
			countIf(home = 0) as away_games,
			countIf(home = 0 AND win = 1) as away_wins
		FROM boxscore_lines
		WHERE team = ? AND team_total = 1 AND season = ? AND ` + gameTypeClause(f.GameType) + clause

	args := append([]interface{}{team, f.Season}, clauseArgs...)
	err := s.ch.QueryRow(ctx, query, args...).Scan(
		&out.HomeGames, &out.HomeWins, &out.AwayGames, &out.AwayWins,
	)
	if err != nil {
		return err
	}

	if out.HomeGames > 0 {
		out.HomeWinPct = float64(out.HomeWins) / float64(out.HomeGames)
	}
	if out.AwayGames > 0 {
		out.AwayWinPct = float64(out.AwayWins) / float64(out.AwayGames)
	}
	return nil
}

func (s *teamStatsService) fillGameLog(ctx context.Context, team string, f models.TeamStatsFilter, out *[]models.TeamGameLogEntry) error {
	clause, clauseArgs := teamSideClauses(f)
	query := `
		SELECT
			game_id,
			toString(date) as date,
			opponent,
			home,
			win,
			pts,
			fg, fga, three_p, three_pa,
			trb, ast, tov
		FROM boxscore_lines
		WHERE team = ? AND team_total = 1 AND season = ? AND ` + gameTypeClause(f.GameType) + clause + `
		ORDER BY date DESC`

	args := append([]interface{}{team, f.Season}, clauseArgs...)
	rows, err := s.ch.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	oppPts := make(map[string]uint64)
	for rows.Next() {
		var entry models.TeamGameLogEntry
		var home, win uint8
		var fg, fga, threeP, threePA uint16
		var pts, trb, ast, tov uint16
		if err := rows.Scan(&entry.GameID, &entry.Date, &entry.Opponent, &home, &win,
			&pts, &fg, &fga, &threeP, &threePA, &trb, &ast, &tov); err != nil {
			return err
		}
		entry.Home = home == 1
		entry.Win = win == 1
		entry.PTS = uint64(pts)
		entry.TRB = uint64(trb)
		entry.AST = uint64(ast)
		entry.TOV = uint64(tov)
		if fga > 0 {
			entry.FGPct = float64(fg) / float64(fga)
		}
		if threePA > 0 {
			entry.ThreePct = float64(threeP) / float64(threePA)
		}
		*out = append(*out, entry)
		oppPts[entry.GameID] = 0
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(*out) == 0 {
		return nil
	}

	oppClause, oppClauseArgs := opponentSideClauses(f)
	oppQuery := `
		SELECT game_id, pts
		FROM boxscore_lines
		WHERE opponent = ? AND team_total = 1 AND season = ? AND ` + gameTypeClause(f.GameType) + oppClause

	oppArgs := append([]interface{}{team, f.Season}, oppClauseArgs...)
	oppRows, err := s.ch.Query(ctx, oppQuery, oppArgs...)
	if err != nil {
		return err
	}
	defer oppRows.Close()

	for oppRows.Next() {
		var gameID string
		var pts uint16
		if err := oppRows.Scan(&gameID, &pts); err != nil {
			return err
		}
		oppPts[gameID] = uint64(pts)
	}
	for i := range *out {
		(*out)[i].OppPTS = oppPts[(*out)[i].GameID]
	}
	return oppRows.Err()
}
