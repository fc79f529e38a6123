package logic

import (
	"math"
	"testing"

	"github.com/HTilki/NBAStatsApp/internal/models"
)

func form(games, wins, ptsFor, ptsAgainst, last10Wins uint64) *models.TeamForm {
	return &models.TeamForm{
		Games:         games,
		Wins:          wins,
		PointsFor:     ptsFor,
		PointsAgainst: ptsAgainst,
		Last10Games:   10,
		Last10Wins:    last10Wins,
	}
}

func TestPythagoreanExpectation(t *testing.T) {
	// Equal scoring should be a coin flip
	even := pythagoreanExpectation(form(50, 25, 5500, 5500, 5))
	if math.Abs(even-0.5) > 1e-9 {
		t.Errorf("even team expectation = %f, want 0.5", even)
	}

	// Outscoring opponents by 10/game is a dominant team
	strong := pythagoreanExpectation(form(50, 40, 5800, 5300, 8))
	if strong < 0.75 {
		t.Errorf("strong team expectation = %f, want > 0.75", strong)
	}

	// No history rates as average
	if got := pythagoreanExpectation(form(0, 0, 0, 0, 0)); got != 0.5 {
		t.Errorf("empty form expectation = %f, want 0.5", got)
	}
}

func TestLog5(t *testing.T) {
	if got := log5(0.5, 0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("log5(.5, .5) = %f, want 0.5", got)
	}
	// Better team should be favored, and symmetric
	ab := log5(0.7, 0.4)
	ba := log5(0.4, 0.7)
	if ab <= 0.5 {
		t.Errorf("log5(.7, .4) = %f, want > 0.5", ab)
	}
	if math.Abs(ab+ba-1.0) > 1e-9 {
		t.Errorf("log5 not symmetric: %f + %f != 1", ab, ba)
	}
}

func TestWinProbability_HomeEdge(t *testing.T) {
	home := form(50, 25, 5500, 5500, 5)
	away := form(50, 25, 5500, 5500, 5)

	prob := winProbability(home, away)
	if prob <= 0.5 {
		t.Errorf("evenly matched home team prob = %f, want > 0.5", prob)
	}
	if prob > 0.6 {
		t.Errorf("home edge too strong: %f", prob)
	}
}

func TestWinProbability_Clamped(t *testing.T) {
	juggernaut := form(50, 50, 6500, 4500, 10)
	doormat := form(50, 0, 4500, 6500, 0)

	prob := winProbability(juggernaut, doormat)
	if prob > probCeil {
		t.Errorf("prob = %f, exceeds ceiling %f", prob, probCeil)
	}

	reverse := winProbability(doormat, juggernaut)
	if reverse < probFloor {
		t.Errorf("prob = %f, below floor %f", reverse, probFloor)
	}
}

func TestWinProbability_NoHistory(t *testing.T) {
	// Season openers: neither side has a completed game, so no home edge
	// or form nudge applies
	if got := winProbability(&models.TeamForm{}, &models.TeamForm{}); got != 0.5 {
		t.Errorf("winProbability with no games = %f, want 0.5", got)
	}

	established := form(50, 30, 5700, 5500, 6)
	if got := winProbability(established, &models.TeamForm{}); got != 0.5 {
		t.Errorf("winProbability against team with no games = %f, want 0.5", got)
	}
}

func TestConfidenceLabel(t *testing.T) {
	tests := []struct {
		prob float64
		want string
	}{
		{0.52, "low"},
		{0.48, "low"},
		{0.62, "medium"},
		{0.35, "medium"},
		{0.75, "high"},
		{0.20, "high"},
	}
	for _, tt := range tests {
		if got := confidenceLabel(tt.prob); got != tt.want {
			t.Errorf("confidenceLabel(%f) = %q, want %q", tt.prob, got, tt.want)
		}
	}
}

func TestPredictionFactors(t *testing.T) {
	home := form(50, 40, 5800, 5300, 9)
	home.Team = "BOS"
	away := form(50, 20, 5400, 5600, 2)
	away.Team = "WAS"

	factors := predictionFactors(home, away)
	if len(factors) != 3 {
		t.Fatalf("factors = %v, want differential + home court + form", factors)
	}
	if factors[0] != "BOS has the stronger point differential" {
		t.Errorf("factors[0] = %q", factors[0])
	}
	if factors[2] != "BOS has won 9 of their last 10" {
		t.Errorf("factors[2] = %q", factors[2])
	}

	empty := predictionFactors(&models.TeamForm{Team: "SEA"}, away)
	if len(empty) != 1 || empty[0] != "insufficient data" {
		t.Errorf("factors without history = %v", empty)
	}
}

func TestWinProbability_FormMatters(t *testing.T) {
	hot := form(50, 25, 5500, 5500, 9)
	cold := form(50, 25, 5500, 5500, 1)

	hotHome := winProbability(hot, cold)
	coldHome := winProbability(cold, hot)
	if hotHome <= coldHome {
		t.Errorf("hot team at home (%f) should beat cold team at home (%f)", hotHome, coldHome)
	}
}
