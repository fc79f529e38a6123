package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/HTilki/NBAStatsApp/internal/models"
)

const (
	predictionModelName    = "pythagorean-log5"
	predictionModelVersion = "1.2.0"

	// Morey's NBA calibration of the Pythagorean exponent
	pythagoreanExponent = 13.91

	homeCourtEdge = 0.045
	formWeight    = 0.10

	probFloor = 0.05
	probCeil  = 0.95
)

type predictionService struct {
	ch       driver.Conn
	pg       PgPool
	redis    RedisClient
	cacheTTL time.Duration
}

func NewPredictionService(ch driver.Conn, pg PgPool, redis RedisClient, cacheTTL time.Duration) PredictionService {
	return &predictionService{ch: ch, pg: pg, redis: redis, cacheTTL: cacheTTL}
}

// GetUpcomingPredictions forecasts every unplayed game in the next seven days.
func (s *predictionService) GetUpcomingPredictions(ctx context.Context) (*models.PredictionSet, error) {
	const cacheKey = "cache:predictions:upcoming"
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var set models.PredictionSet
			if json.Unmarshal([]byte(cached), &set) == nil {
				return &set, nil
			}
		}
	}

	rows, err := s.pg.Query(ctx, `
		SELECT id, to_char(date, 'YYYY-MM-DD'), season, home_team, visitor_team
		FROM schedule
		WHERE home_team_pts = 0
		  AND date >= current_date
		  AND date < current_date + interval '7 days'
		ORDER BY date, id
	`)
	if err != nil {
		return nil, fmt.Errorf("upcoming games: %w", err)
	}
	defer rows.Close()

	type upcoming struct {
		id, date, home, visitor string
		season                  int
	}
	var games []upcoming
	for rows.Next() {
		var u upcoming
		if err := rows.Scan(&u.id, &u.date, &u.season, &u.home, &u.visitor); err != nil {
			return nil, fmt.Errorf("scan upcoming game: %w", err)
		}
		games = append(games, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	set := &models.PredictionSet{
		Metadata: models.PredictionMetadata{
			GeneratedAt: time.Now().UTC(),
			Model:       predictionModelName,
			Version:     predictionModelVersion,
		},
		Games: []models.GamePrediction{},
	}

	for _, u := range games {
		pred, err := s.predictGame(ctx, u.id, u.date, u.season, u.home, u.visitor)
		if err != nil {
			return nil, err
		}
		set.Games = append(set.Games, *pred)
	}

	if s.redis != nil {
		if payload, err := json.Marshal(set); err == nil {
			s.redis.Set(ctx, cacheKey, payload, s.cacheTTL)
		}
	}

	return set, nil
}

func (s *predictionService) GetGamePrediction(ctx context.Context, gameID string) (*models.GamePrediction, error) {
	var date, home, visitor string
	var season, homePts int

	err := s.pg.QueryRow(ctx, `
		SELECT to_char(date, 'YYYY-MM-DD'), season, home_team, visitor_team, home_team_pts
		FROM schedule
		WHERE id = $1
	`, gameID).Scan(&date, &season, &home, &visitor, &homePts)
	if err != nil {
		return nil, ErrGameNotFound
	}
	if homePts > 0 {
		return nil, fmt.Errorf("game %s already played", gameID)
	}

	return s.predictGame(ctx, gameID, date, season, home, visitor)
}

func (s *predictionService) predictGame(ctx context.Context, gameID, date string, season int, homeName, visitorName string) (*models.GamePrediction, error) {
	gameDate, err := parseDate(date)
	if err != nil {
		return nil, fmt.Errorf("predict game %s: %w", gameID, err)
	}
	homeAbbr := models.TeamAbbreviation(homeName, gameDate)
	awayAbbr := models.TeamAbbreviation(visitorName, gameDate)

	homeForm, err := s.teamForm(ctx, homeAbbr, season)
	if err != nil {
		return nil, fmt.Errorf("home form %s: %w", homeAbbr, err)
	}
	awayForm, err := s.teamForm(ctx, awayAbbr, season)
	if err != nil {
		return nil, fmt.Errorf("away form %s: %w", awayAbbr, err)
	}

	homeProb := winProbability(homeForm, awayForm)

	pred := &models.GamePrediction{GameID: gameID, Date: date}
	pred.Teams.Home = models.PredictedTeam{
		Name:           homeName,
		Abbreviation:   homeAbbr,
		WinProbability: round3(homeProb),
		LogoURL:        models.TeamLogoURL(homeAbbr),
	}
	pred.Teams.Away = models.PredictedTeam{
		Name:           visitorName,
		Abbreviation:   awayAbbr,
		WinProbability: round3(1 - homeProb),
		LogoURL:        models.TeamLogoURL(awayAbbr),
	}
	if homeProb >= 0.5 {
		pred.Prediction.WinnerName = homeName
	} else {
		pred.Prediction.WinnerName = visitorName
	}
	pred.Prediction.Confidence = confidenceLabel(homeProb)
	pred.Prediction.Factors = predictionFactors(homeForm, awayForm)

	if err := s.fillMatchupStats(ctx, homeAbbr, awayAbbr, *gameDate, &pred.MatchupStats); err != nil {
		// Head-to-head context is optional; missing history isn't an error
		pred.MatchupStats = models.MatchupStats{}
	}

	return pred, nil
}

// teamForm aggregates a team's season record and last-10 form.
func (s *predictionService) teamForm(ctx context.Context, team string, season int) (*models.TeamForm, error) {
	form := &models.TeamForm{Team: team}

	query := `
		SELECT
			countIf(team = ? AND team_total = 1) as games,
			countIf(team = ? AND team_total = 1 AND win = 1) as wins,
			sumIf(pts, team = ? AND team_total = 1) as points_for,
			sumIf(pts, opponent = ? AND team_total = 1) as points_against
		FROM boxscore_lines
		WHERE (team = ? OR opponent = ?) AND season = ? AND ` + gameTypeClause("regular season")

	err := s.ch.QueryRow(ctx, query, team, team, team, team, team, team, season).Scan(
		&form.Games, &form.Wins, &form.PointsFor, &form.PointsAgainst,
	)
	if err != nil {
		return nil, err
	}

	last10Query := `
		SELECT count() as games, countIf(win = 1) as wins
		FROM (
			SELECT win
			FROM boxscore_lines
			WHERE team = ? AND team_total = 1 AND season = ?
			ORDER BY date DESC
			LIMIT 10
		)
	`
	err = s.ch.QueryRow(ctx, last10Query, team, season).Scan(&form.Last10Games, &form.Last10Wins)
	if err != nil {
		return nil, err
	}

	return form, nil
}

// winProbability estimates the home team's chance of winning. Each side's
// strength comes from Pythagorean expectation on season scoring; the two are
// combined with log5, then nudged by home court and last-10 form.
func winProbability(home, away *models.TeamForm) float64 {
	// With no completed games on either side there is nothing to rate:
	// a coin flip, no home edge.
	if home.Games == 0 || away.Games == 0 {
		return 0.5
	}

	homeExp := pythagoreanExpectation(home)
	awayExp := pythagoreanExpectation(away)

	prob := log5(homeExp, awayExp)
	prob += homeCourtEdge
	prob += formWeight * (last10Pct(home) - last10Pct(away))

	return clamp(prob, probFloor, probCeil)
}

// pythagoreanExpectation estimates win percentage from points scored and
// allowed. Teams with no history rate as average.
func pythagoreanExpectation(form *models.TeamForm) float64 {
	if form.Games == 0 || form.PointsFor == 0 || form.PointsAgainst == 0 {
		return 0.5
	}
	ppg := float64(form.PointsFor) / float64(form.Games)
	oppg := float64(form.PointsAgainst) / float64(form.Games)

	ptsForExp := math.Pow(ppg, pythagoreanExponent)
	ptsAgainstExp := math.Pow(oppg, pythagoreanExponent)
	return ptsForExp / (ptsForExp + ptsAgainstExp)
}

// log5 is Bill James' formula for the chance that a team with true winning
// percentage a beats a team with true winning percentage b.
func log5(a, b float64) float64 {
	denom := a + b - 2*a*b
	if denom == 0 {
		return 0.5
	}
	return (a - a*b) / denom
}

// confidenceLabel buckets a win probability by its distance from a coin flip.
func confidenceLabel(prob float64) string {
	switch edge := math.Abs(prob - 0.5); {
	case edge >= 0.2:
		return "high"
	case edge >= 0.1:
		return "medium"
	default:
		return "low"
	}
}

// predictionFactors lists the signals behind a forecast in display order.
func predictionFactors(home, away *models.TeamForm) []string {
	if home.Games == 0 || away.Games == 0 {
		return []string{"insufficient data"}
	}

	var factors []string
	homeExp := pythagoreanExpectation(home)
	awayExp := pythagoreanExpectation(away)
	if homeExp > awayExp {
		factors = append(factors, fmt.Sprintf("%s has the stronger point differential", home.Team))
	} else if awayExp > homeExp {
		factors = append(factors, fmt.Sprintf("%s has the stronger point differential", away.Team))
	}
	factors = append(factors, "home court advantage")

	if diff := last10Pct(home) - last10Pct(away); diff >= 0.2 {
		factors = append(factors, fmt.Sprintf("%s has won %d of their last %d", home.Team, home.Last10Wins, home.Last10Games))
	} else if diff <= -0.2 {
		factors = append(factors, fmt.Sprintf("%s has won %d of their last %d", away.Team, away.Last10Wins, away.Last10Games))
	}
	return factors
}

func last10Pct(form *models.TeamForm) float64 {
	if form.Last10Games == 0 {
		return 0.5
	}
	return float64(form.Last10Wins) / float64(form.Last10Games)
}

func (s *predictionService) fillMatchupStats(ctx context.Context, home, away string, gameDate time.Time, out *models.MatchupStats) error {
	query := `
		SELECT
			count() as games,
			countIf(win = 1) as home_wins,
			max(date) as last_matchup
		FROM boxscore_lines
		WHERE team = ? AND opponent = ? AND team_total = 1 AND date < ?
	`
	var games, homeWins uint64
	var lastMatchup time.Time
	err := s.ch.QueryRow(ctx, query, home, away, gameDate).Scan(&games, &homeWins, &lastMatchup)
	if err != nil {
		return err
	}

	out.H2HGamesPlayed = games
	if games > 0 {
		out.H2HWinPct = round3(float64(homeWins) / float64(games))
		out.DaysSinceLastMatchup = int(gameDate.Sub(lastMatchup).Hours() / 24)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
