package logic

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/HTilki/NBAStatsApp/internal/models"
)

type playerStatsService struct {
	ch     driver.Conn
	pg     PgPool
	logger *zap.SugaredLogger
}

func NewPlayerStatsService(ch driver.Conn, pg PgPool, logger *zap.Logger) PlayerStatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &playerStatsService{ch: ch, pg: pg, logger: logger.Sugar()}
}

// GetPlayerStats fetches all categories for a player
func (s *playerStatsService) GetPlayerStats(ctx context.Context, playerName string, includeGameLog bool) (*models.PlayerStatsResponse, error) {
	resp := &models.PlayerStatsResponse{PlayerName: playerName}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.fillSeasonAverages(ctx, playerName, &resp.Seasons); err != nil {
			return fmt.Errorf("season averages: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := s.fillCareerTotals(ctx, playerName, &resp.Totals); err != nil {
			return fmt.Errorf("career totals: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := s.fillCareerHighs(ctx, playerName, &resp.Highs); err != nil {
			return fmt.Errorf("career highs: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := s.fillMilestones(ctx, playerName, &resp.Milestones); err != nil {
			// Milestones are decoration, not worth failing the whole response
			s.logger.Warnw("Failed to load milestones", "player", playerName, "error", err)
			resp.Milestones = nil
		}
		return nil
	})

	if includeGameLog {
		g.Go(func() error {
			if err := s.fillGameLog(ctx, playerName, &resp.GameLog); err != nil {
				return fmt.Errorf("game log: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if resp.Totals.Games == 0 {
		return nil, ErrPlayerNotFound
	}

	return resp, nil
}

func (s *playerStatsService) fillSeasonAverages(ctx context.Context, playerName string, out *[]models.SeasonAverages) error {
	query := `
		SELECT
			season,
			anyLast(team) as team,
			countIf(played = 1) as games,
			countIf(starter = 1) as started,
			sumIf(seconds_played, played = 1) as seconds,
			sum(pts) as pts, sum(trb) as trb, sum(ast) as ast,
			sum(stl) as stl, sum(blk) as blk, sum(tov) as tov,
			sum(fg) as fg, sum(fga) as fga,
			sum(two_p) as two_p, sum(two_pa) as two_pa,
			sum(three_p) as three_p, sum(three_pa) as three_pa,
			sum(ft) as ft, sum(fta) as fta
		FROM boxscore_lines
		WHERE player_name = ? AND team_total = 0
		GROUP BY season
		HAVING games > 0
		ORDER BY season DESC
	`
	rows, err := s.ch.Query(ctx, query, playerName)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var sa models.SeasonAverages
		var season uint16
		var games, started, seconds uint64
		var pts, trb, ast, stl, blk, tov, fg, fga, twoP, twoPA, threeP, threePA, ft, fta uint64
		if err := rows.Scan(&season, &sa.Team, &games, &started, &seconds,
			&pts, &trb, &ast, &stl, &blk, &tov,
			&fg, &fga, &twoP, &twoPA, &threeP, &threePA, &ft, &fta); err != nil {
			return err
		}
		sa.Season = int(season)
		sa.Games = games
		sa.Started = started
		n := float64(games)
		sa.MPG = float64(seconds) / 60 / n
		sa.PPG = float64(pts) / n
		sa.RPG = float64(trb) / n
		sa.APG = float64(ast) / n
		sa.SPG = float64(stl) / n
		sa.BPG = float64(blk) / n
		sa.TPG = float64(tov) / n
		if fga > 0 {
			sa.FGPct = float64(fg) / float64(fga)
		}
		if twoPA > 0 {
			sa.TwoPct = float64(twoP) / float64(twoPA)
		}
		if threePA > 0 {
			sa.ThreePct = float64(threeP) / float64(threePA)
		}
		if fta > 0 {
			sa.FTPct = float64(ft) / float64(fta)
		}
		*out = append(*out, sa)
	}
	return rows.Err()
}

func (s *playerStatsService) fillCareerTotals(ctx context.Context, playerName string, out *models.CareerTotals) error {
	query := `
		SELECT
			countIf(played = 1) as games,
			countIf(played = 1 AND win = 1) as wins,
			sumIf(seconds_played, played = 1) as seconds,
			sum(pts) as pts, sum(trb) as trb, sum(ast) as ast,
			sum(stl) as stl, sum(blk) as blk, sum(tov) as tov,
			sum(fg) as fg, sum(fga) as fga,
			sum(three_p) as three_p, sum(three_pa) as three_pa,
			sum(ft) as ft, sum(fta) as fta
		FROM boxscore_lines
		WHERE player_name = ? AND team_total = 0
	`
	err := s.ch.QueryRow(ctx, query, playerName).Scan(
		&out.Games, &out.Wins, &out.Seconds,
		&out.PTS, &out.TRB, &out.AST,
		&out.STL, &out.BLK, &out.TOV,
		&out.FG, &out.FGA,
		&out.ThreeP, &out.ThreePA,
		&out.FT, &out.FTA,
	)
	if err != nil {
		return err
	}
	out.Losses = out.Games - out.Wins

	if out.FGA > 0 {
		out.FGPct = float64(out.FG) / float64(out.FGA)
	}
	if out.ThreePA > 0 {
		out.ThreePct = float64(out.ThreeP) / float64(out.ThreePA)
	}
	if out.FTA > 0 {
		out.FTPct = float64(out.FT) / float64(out.FTA)
	}
	return nil
}

func (s *playerStatsService) fillCareerHighs(ctx context.Context, playerName string, out *models.CareerHighs) error {
	query := `
		SELECT
			max(pts), argMax(game_id, pts), argMax(toString(date), pts), argMax(opponent, pts),
			max(trb), argMax(game_id, trb), argMax(toString(date), trb), argMax(opponent, trb),
			max(ast), argMax(game_id, ast), argMax(toString(date), ast), argMax(opponent, ast),
			max(stl), argMax(game_id, stl), argMax(toString(date), stl), argMax(opponent, stl),
			max(blk), argMax(game_id, blk), argMax(toString(date), blk), argMax(opponent, blk)
		FROM boxscore_lines
		WHERE player_name = ? AND team_total = 0 AND played = 1
	`
	var pts, trb, ast, stl, blk uint16
	err := s.ch.QueryRow(ctx, query, playerName).Scan(
		&pts, &out.PTS.GameID, &out.PTS.Date, &out.PTS.Opponent,
		&trb, &out.TRB.GameID, &out.TRB.Date, &out.TRB.Opponent,
		&ast, &out.AST.GameID, &out.AST.Date, &out.AST.Opponent,
		&stl, &out.STL.GameID, &out.STL.Date, &out.STL.Opponent,
		&blk, &out.BLK.GameID, &out.BLK.Date, &out.BLK.Opponent,
	)
	if err != nil {
		return err
	}
	out.PTS.Value = uint64(pts)
	out.TRB.Value = uint64(trb)
	out.AST.Value = uint64(ast)
	out.STL.Value = uint64(stl)
	out.BLK.Value = uint64(blk)
	return nil
}

func (s *playerStatsService) fillGameLog(ctx context.Context, playerName string, out *[]models.PlayerGameLogEntry) error {
	query := `
		SELECT
			game_id, toString(date) as date, team, opponent, home, win, starter,
			seconds_played, played,
			pts, trb, ast, stl, blk, tov,
			fg, fga, three_p, three_pa, ft, fta, plus_minus
		FROM boxscore_lines
		WHERE player_name = ? AND team_total = 0 AND played = 1
		ORDER BY date DESC
		LIMIT 200
	`
	rows, err := s.ch.Query(ctx, query, playerName)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var e models.PlayerGameLogEntry
		var home, win, starter, played uint8
		var seconds uint32
		var pts, trb, ast, stl, blk, tov, fg, fga, threeP, threePA, ft, fta uint16
		if err := rows.Scan(&e.GameID, &e.Date, &e.Team, &e.Opponent, &home, &win, &starter,
			&seconds, &played,
			&pts, &trb, &ast, &stl, &blk, &tov,
			&fg, &fga, &threeP, &threePA, &ft, &fta, &e.PlusMinus); err != nil {
			return err
		}
		e.Home = home == 1
		e.Win = win == 1
		e.Starter = starter == 1
		e.MP = models.FormatMinutes(int(seconds))
		e.PTS = uint64(pts)
		e.TRB = uint64(trb)
		e.AST = uint64(ast)
		e.STL = uint64(stl)
		e.BLK = uint64(blk)
		e.TOV = uint64(tov)
		e.FG = uint64(fg)
		e.FGA = uint64(fga)
		e.ThreeP = uint64(threeP)
		e.ThreePA = uint64(threePA)
		e.FT = uint64(ft)
		e.FTA = uint64(fta)
		*out = append(*out, e)
	}
	return rows.Err()
}

func (s *playerStatsService) fillMilestones(ctx context.Context, playerName string, out *[]models.Milestone) error {
	rows, err := s.pg.Query(ctx, `
		SELECT stat, threshold, label
		FROM player_milestones
		WHERE player_name = $1
		ORDER BY stat, threshold
	`, playerName)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Milestone
		if err := rows.Scan(&m.Stat, &m.Threshold, &m.Label); err != nil {
			return err
		}
		*out = append(*out, m)
	}
	return rows.Err()
}

// ResolvePlayer finds players whose name matches the input, exact match first,
// then case-insensitive substring. Mirrors how the search box behaves.
func (s *playerStatsService) ResolvePlayer(ctx context.Context, name string) ([]models.PlayerMatch, error) {
	query := `
		SELECT
			player_name,
			countIf(played = 1) as games,
			max(season) as last_season
		FROM boxscore_lines
		WHERE team_total = 0 AND positionCaseInsensitive(player_name, ?) > 0
		GROUP BY player_name
		ORDER BY player_name = ? DESC, games DESC
		LIMIT 20
	`
	rows, err := s.ch.Query(ctx, query, name, name)
	if err != nil {
		return nil, fmt.Errorf("resolve player: %w", err)
	}
	defer rows.Close()

	var matches []models.PlayerMatch
	for rows.Next() {
		var m models.PlayerMatch
		var lastSeason uint16
		if err := rows.Scan(&m.PlayerName, &m.Games, &lastSeason); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		m.LastSeason = int(lastSeason)
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
