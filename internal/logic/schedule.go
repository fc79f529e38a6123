package logic

import (
	"context"
	"fmt"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/HTilki/NBAStatsApp/internal/models"
)

type scheduleService struct {
	pg PgPool
	ch driver.Conn
}

func NewScheduleService(pg PgPool, ch driver.Conn) ScheduleService {
	return &scheduleService{pg: pg, ch: ch}
}

const scheduleColumns = `id, date, season, game_type, coalesce(game_remarks, ''),
	home_team, visitor_team, home_team_pts, visitor_team_pts,
	coalesce(overtime, ''), coalesce(attendance, 0), coalesce(arena, '')`

// ListSchedule filters the schedule table. Filters combine with AND; all of
// them are optional.
func (s *scheduleService) ListSchedule(ctx context.Context, filter models.ScheduleFilter) ([]models.Game, error) {
	var conditions []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Season > 0 {
		conditions = append(conditions, "season = "+arg(filter.Season))
	}
	if filter.Team != "" {
		p := arg(filter.Team)
		conditions = append(conditions, fmt.Sprintf("(home_team = %s OR visitor_team = %s)", p, p))
	}
	if filter.GameType != "" {
		conditions = append(conditions, "game_type = "+arg(strings.ToLower(filter.GameType)))
	}
	if filter.From != nil {
		conditions = append(conditions, "date >= "+arg(*filter.From))
	}
	if filter.To != nil {
		conditions = append(conditions, "date <= "+arg(*filter.To))
	}
	if filter.Upcoming {
		conditions = append(conditions, "home_team_pts = 0")
	}

	query := "SELECT " + scheduleColumns + " FROM schedule"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	if filter.Upcoming {
		query += " ORDER BY date ASC"
	} else {
		query += " ORDER BY date DESC"
	}

	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	query += " LIMIT " + arg(limit)
	if filter.Offset > 0 {
		query += " OFFSET " + arg(filter.Offset)
	}

	rows, err := s.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list schedule: %w", err)
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		var g models.Game
		if err := rows.Scan(&g.ID, &g.Date, &g.Season, &g.GameType, &g.GameRemarks,
			&g.HomeTeam, &g.VisitorTeam, &g.HomePts, &g.VisitorPts,
			&g.Overtime, &g.Attendance, &g.Arena); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// GetGameReport builds the full detail view of one game: the schedule row
// plus both teams' box scores from the stat lines.
func (s *scheduleService) GetGameReport(ctx context.Context, gameID string) (*models.GameReport, error) {
	report := &models.GameReport{}

	err := s.pg.QueryRow(ctx, "SELECT "+scheduleColumns+" FROM schedule WHERE id = $1", gameID).Scan(
		&report.Game.ID, &report.Game.Date, &report.Game.Season, &report.Game.GameType, &report.Game.GameRemarks,
		&report.Game.HomeTeam, &report.Game.VisitorTeam, &report.Game.HomePts, &report.Game.VisitorPts,
		&report.Game.Overtime, &report.Game.Attendance, &report.Game.Arena,
	)
	if err != nil {
		return nil, ErrGameNotFound
	}

	boxes, err := s.fetchBoxscores(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("game report %s: %w", gameID, err)
	}

	gameDate := report.Game.Date
	homeAbbr := models.TeamAbbreviation(report.Game.HomeTeam, &gameDate)
	visitorAbbr := models.TeamAbbreviation(report.Game.VisitorTeam, &gameDate)

	for team, box := range boxes {
		switch team {
		case homeAbbr:
			report.Home = *box
		case visitorAbbr:
			report.Visitor = *box
		}
	}
	report.Home.Team = homeAbbr
	report.Home.LogoURL = models.TeamLogoURL(homeAbbr)
	report.Visitor.Team = visitorAbbr
	report.Visitor.LogoURL = models.TeamLogoURL(visitorAbbr)

	return report, nil
}

func (s *scheduleService) fetchBoxscores(ctx context.Context, gameID string) (map[string]*models.TeamBoxscore, error) {
	query := `
		SELECT
			team, player_name, team_total, starter, played, seconds_played,
			fg, fga, three_p, three_pa, ft, fta,
			orb, drb, trb, ast, stl, blk, tov, pf, pts, plus_minus
		FROM boxscore_lines
		WHERE game_id = ?
		ORDER BY team, team_total, starter DESC, played DESC, pts DESC
	`
	rows, err := s.ch.Query(ctx, query, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	boxes := make(map[string]*models.TeamBoxscore)
	for rows.Next() {
		var team string
		var teamTotal, starter, played uint8
		var seconds uint32
		var row models.BoxscoreRow
		var fg, fga, threeP, threePA, ft, fta, orb, drb, trb, ast, stl, blk, tov, pf, pts uint16
		if err := rows.Scan(&team, &row.PlayerName, &teamTotal, &starter, &played, &seconds,
			&fg, &fga, &threeP, &threePA, &ft, &fta,
			&orb, &drb, &trb, &ast, &stl, &blk, &tov, &pf, &pts, &row.PlusMinus); err != nil {
			return nil, err
		}

		row.Starter = starter == 1
		row.Played = played == 1
		if row.Played {
			row.MP = models.FormatMinutes(int(seconds))
		}
		row.FG = uint64(fg)
		row.FGA = uint64(fga)
		row.ThreeP = uint64(threeP)
		row.ThreePA = uint64(threePA)
		row.FT = uint64(ft)
		row.FTA = uint64(fta)
		row.ORB = uint64(orb)
		row.DRB = uint64(drb)
		row.TRB = uint64(trb)
		row.AST = uint64(ast)
		row.STL = uint64(stl)
		row.BLK = uint64(blk)
		row.TOV = uint64(tov)
		row.PF = uint64(pf)
		row.PTS = uint64(pts)
		if fga > 0 {
			row.FGPct = float64(fg) / float64(fga)
		}
		if threePA > 0 {
			row.ThreePct = float64(threeP) / float64(threePA)
		}
		if fta > 0 {
			row.FTPct = float64(ft) / float64(fta)
		}

		box, ok := boxes[team]
		if !ok {
			box = &models.TeamBoxscore{Team: team}
			boxes[team] = box
		}
		if teamTotal == 1 {
			row.PlayerName = "Team Totals"
			box.Totals = row
		} else {
			box.Players = append(box.Players, row)
		}
	}
	return boxes, rows.Err()
}
