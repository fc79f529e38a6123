package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Config
const (
	API_URL      = "http://localhost:8080/api/v1/ingest/boxscores"
	INGEST_TOKEN = "seed-secret-123"
)

// Line matches models.RawBoxscoreLine (simplified)
type Line struct {
	GameID   string `json:"game_id"`
	Date     string `json:"date"`
	Season   int    `json:"season"`
	GameType string `json:"game_type"`

	Team     string `json:"team"`
	Opponent string `json:"opponent"`
	Location string `json:"location"`
	Outcome  string `json:"outcome"`

	PlayerName string `json:"player_name,omitempty"`
	Starter    bool   `json:"starter,omitempty"`
	TeamTotal  bool   `json:"team_total,omitempty"`

	MP string `json:"mp"`

	FG      int `json:"fg"`
	FGA     int `json:"fga"`
	ThreeP  int `json:"three_p"`
	ThreePA int `json:"three_pa"`
	FT      int `json:"ft"`
	FTA     int `json:"fta"`
	ORB     int `json:"orb"`
	DRB     int `json:"drb"`
	TRB     int `json:"trb"`
	AST     int `json:"ast"`
	STL     int `json:"stl"`
	BLK     int `json:"blk"`
	TOV     int `json:"tov"`
	PF      int `json:"pf"`
	PTS     int `json:"pts"`
}

func main() {
	date := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	gameID := fmt.Sprintf("%sTEST", strings.ReplaceAll(date, "-", ""))

	lines := []Line{
		{
			GameID: gameID, Date: date, Season: 2026, GameType: "regular season",
			Team: "LAL", Opponent: "BOS", Location: "home", Outcome: "W",
			PlayerName: "Test Forward", Starter: true,
			MP: "36:24", FG: 11, FGA: 21, ThreeP: 3, ThreePA: 8, FT: 6, FTA: 7,
			ORB: 1, DRB: 7, TRB: 8, AST: 9, STL: 1, BLK: 1, TOV: 4, PTS: 31,
		},
		{
			GameID: gameID, Date: date, Season: 2026, GameType: "regular season",
			Team: "LAL", Opponent: "BOS", Location: "home", Outcome: "W",
			PlayerName: "Test Center",
			MP:         "Did not play",
		},
		{
			GameID: gameID, Date: date, Season: 2026, GameType: "regular season",
			Team: "LAL", Opponent: "BOS", Location: "home", Outcome: "W",
			TeamTotal: true,
			MP:        "240", FG: 42, FGA: 88, ThreeP: 13, ThreePA: 35, FT: 21, FTA: 26,
			ORB: 9, DRB: 34, TRB: 43, AST: 27, STL: 7, BLK: 5, TOV: 12, PF: 18, PTS: 118,
		},
	}

	// The handler splits the body by newline, one JSON object per line.
	var buf bytes.Buffer
	for _, line := range lines {
		payload, err := json.Marshal(line)
		if err != nil {
			log.Fatalf("Failed to marshal JSON: %v", err)
		}
		buf.Write(payload)
		buf.WriteByte('\n')
	}

	req, err := http.NewRequest("POST", API_URL, &buf)
	if err != nil {
		log.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-ndjson")
	req.Header.Set("X-Ingest-Token", INGEST_TOKEN)

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("Status: %s\n", resp.Status)
	fmt.Printf("Response: %s\n", string(body))

	if resp.StatusCode == 202 {
		fmt.Println("✅ Injection Successful!")
	} else {
		fmt.Println("❌ Injection Failed!")
	}
}
