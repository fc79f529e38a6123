package models

import (
	"encoding/json"
	"testing"
)

func TestFlexUnmarshal_AllStrings(t *testing.T) {
	input := `[{"game_id": "202403140LAL", "date": "2024-03-14", "season": "2024", "game_type": "regular season", "team": "LAL", "opponent": "GSW", "location": "home", "outcome": "W", "player_name": "LeBron James", "starter": "true", "mp": "35:14", "fg": "12", "fga": "19", "three_p": "3", "three_pa": "7", "ft": "4", "fta": "5", "orb": "1", "drb": "8", "trb": "9", "ast": "11", "stl": "2", "blk": "1", "tov": "3", "pf": "2", "pts": "31", "plus_minus": "12.0"}]`

	var lines []RawBoxscoreLine
	err := json.Unmarshal([]byte(input), &lines)
	if err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}

	l := lines[0]
	if l.GameID != "202403140LAL" {
		t.Errorf("GameID = %q, want 202403140LAL", l.GameID)
	}
	if l.Season != 2024 {
		t.Errorf("Season = %d, want 2024", l.Season)
	}
	if l.PlayerName != "LeBron James" {
		t.Errorf("PlayerName = %q, want LeBron James", l.PlayerName)
	}
	if !l.Starter {
		t.Error("Starter = false, want true")
	}
	if l.PTS != 31 {
		t.Errorf("PTS = %d, want 31", l.PTS)
	}
	if l.MP != "35:14" {
		t.Errorf("MP = %q, want 35:14", l.MP)
	}
	if l.PlusMinus != 12.0 {
		t.Errorf("PlusMinus = %f, want 12.0", l.PlusMinus)
	}
}

func TestFlexUnmarshal_NativeTypes(t *testing.T) {
	input := `[{"game_id": "202403140LAL", "date": "2024-03-14", "season": 2024, "team": "LAL", "opponent": "GSW", "player_name": "Anthony Davis", "pts": 27, "trb": 15, "plus_minus": -4.0}]`

	var lines []RawBoxscoreLine
	err := json.Unmarshal([]byte(input), &lines)
	if err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	l := lines[0]
	if l.PTS != 27 {
		t.Errorf("PTS = %d, want 27", l.PTS)
	}
	if l.TRB != 15 {
		t.Errorf("TRB = %d, want 15", l.TRB)
	}
	if l.PlusMinus != -4.0 {
		t.Errorf("PlusMinus = %f, want -4.0", l.PlusMinus)
	}
}
