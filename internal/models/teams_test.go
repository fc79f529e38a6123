package models

import (
	"testing"
	"time"
)

func date(s string) *time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return &d
}

func TestTeamAbbreviation_Current(t *testing.T) {
	if got := TeamAbbreviation("Boston Celtics", nil); got != "BOS" {
		t.Errorf("got %q, want BOS", got)
	}
	if got := TeamAbbreviation("Brooklyn Nets", nil); got != "BKN" {
		t.Errorf("got %q, want BKN", got)
	}
}

func TestTeamAbbreviation_FranchiseRename(t *testing.T) {
	// Nets were NJN before the 2012 move to Brooklyn
	if got := TeamAbbreviation("New Jersey Nets", date("2005-11-02")); got != "NJN" {
		t.Errorf("got %q, want NJN", got)
	}
	if got := TeamAbbreviation("Charlotte Bobcats", date("2010-01-15")); got != "CHA" {
		t.Errorf("got %q, want CHA", got)
	}
	if got := TeamAbbreviation("Charlotte Hornets", date("2020-01-15")); got != "CHO" {
		t.Errorf("got %q, want CHO", got)
	}
	// Date outside the span falls through
	if got := TeamAbbreviation("Seattle SuperSonics", date("1995-03-01")); got != "SEA" {
		t.Errorf("got %q, want SEA", got)
	}
}

func TestTeamAbbreviation_Passthrough(t *testing.T) {
	if got := TeamAbbreviation("LAL", nil); got != "LAL" {
		t.Errorf("abbreviation input should pass through, got %q", got)
	}
}
