package logic

import (
	"fmt"
	"strings"

	"github.com/HTilki/NBAStatsApp/internal/models"
)

// allowedGroupings maps safe API values to SQL columns
var allowedGroupings = map[string]string{
	"player":    "player_name",
	"team":      "team",
	"season":    "season",
	"opponent":  "opponent",
	"game_type": "game_type",
}

// allowedStats maps safe API stat names to aggregation expressions
var allowedStats = map[string]string{
	"games":     "countIf(played = 1)",
	"wins":      "countIf(win = 1)",
	"pts":       "sum(pts)",
	"trb":       "sum(trb)",
	"orb":       "sum(orb)",
	"drb":       "sum(drb)",
	"ast":       "sum(ast)",
	"stl":       "sum(stl)",
	"blk":       "sum(blk)",
	"tov":       "sum(tov)",
	"pf":        "sum(pf)",
	"fg":        "sum(fg)",
	"fga":       "sum(fga)",
	"two_p":     "sum(two_p)",
	"two_pa":    "sum(two_pa)",
	"three_p":   "sum(three_p)",
	"three_pa":  "sum(three_pa)",
	"ft":        "sum(ft)",
	"fta":       "sum(fta)",
	"minutes":   "sum(seconds_played) / 60",
	"fg_pct":    "sum(fg) / nullIf(sum(fga), 0)",
	"two_pct":   "sum(two_p) / nullIf(sum(two_pa), 0)",
	"three_pct": "sum(three_p) / nullIf(sum(three_pa), 0)",
	"ft_pct":    "sum(ft) / nullIf(sum(fta), 0)",
}

// perGameDivisible marks stats that make sense divided by games played.
var perGameDivisible = map[string]bool{
	"pts": true, "trb": true, "orb": true, "drb": true, "ast": true,
	"stl": true, "blk": true, "tov": true, "pf": true,
	"fg": true, "fga": true, "two_p": true, "two_pa": true,
	"three_p": true, "three_pa": true, "ft": true, "fta": true,
	"minutes": true,
}

// BuildStatsQuery constructs a safe ClickHouse SQL query from a dynamic
// request. Every stat and grouping is resolved through a whitelist; nothing
// from the request reaches the SQL text directly.
func BuildStatsQuery(req models.StatsQueryRequest) (string, []interface{}, error) {
	groupByCol, ok := allowedGroupings[req.GroupBy]
	if !ok {
		return "", nil, fmt.Errorf("invalid group_by: %s", req.GroupBy)
	}

	if len(req.Stats) == 0 {
		return "", nil, fmt.Errorf("at least one stat is required")
	}

	// Uniform result types keep row scanning simple: label is always a
	// string, every stat a float64.
	selects := []string{fmt.Sprintf("toString(%s) as label", groupByCol), "countIf(played = 1) as games"}
	for _, stat := range req.Stats {
		expr, ok := allowedStats[stat]
		if !ok {
			return "", nil, fmt.Errorf("invalid stat: %s", stat)
		}
		if req.PerGame && perGameDivisible[stat] {
			expr = fmt.Sprintf("(%s) / nullIf(countIf(played = 1), 0)", expr)
		}
		selects = append(selects, fmt.Sprintf("toFloat64(ifNull(%s, 0)) as %s", expr, stat))
	}

	query := "SELECT " + strings.Join(selects, ", ") + " FROM boxscore_lines WHERE 1=1"
	var args []interface{}

	// Player-level groupings exclude the synthetic team total rows; team-level
	// groupings use only them so games aren't counted five times over.
	switch req.GroupBy {
	case "player":
		query += " AND team_total = 0"
	case "team", "opponent":
		query += " AND team_total = 1"
	}

	if req.Season > 0 {
		query += " AND season = ?"
		args = append(args, req.Season)
	}
	if req.Team != "" {
		query += " AND team = ?"
		args = append(args, req.Team)
	}
	if req.GameType != "" {
		query += " AND " + gameTypeClause(strings.ToLower(req.GameType))
	}

	query += fmt.Sprintf(" GROUP BY %s", groupByCol)

	if req.MinGames > 0 {
		query += " HAVING games >= ?"
		args = append(args, req.MinGames)
	}

	orderBy := "games"
	if req.OrderBy != "" {
		if _, ok := allowedStats[req.OrderBy]; !ok {
			return "", nil, fmt.Errorf("invalid order_by: %s", req.OrderBy)
		}
		found := false
		for _, stat := range req.Stats {
			if stat == req.OrderBy {
				found = true
				break
			}
		}
		if !found {
			return "", nil, fmt.Errorf("order_by %s not in requested stats", req.OrderBy)
		}
		orderBy = req.OrderBy
	}
	direction := "ASC"
	if req.Desc {
		direction = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", orderBy, direction)

	limit := req.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	query += fmt.Sprintf(" LIMIT %d", limit)

	return query, args, nil
}
