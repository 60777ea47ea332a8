package models

import "testing"

func TestParseFleet(t *testing.T) {
	fleet, err := ParseFleet([]string{"Battleship:5", " Destroyer : 4 ", "", "Destroyer:4"})
	if err != nil {
		t.Fatalf("parse fleet: %v", err)
	}
	if got := FormatFleet(fleet); got != "Battleship:5,Destroyer:4,Destroyer:4" {
		t.Fatalf("unexpected fleet %s", got)
	}
	if TotalCells(fleet) != 13 {
		t.Fatalf("expected 13 cells, got %d", TotalCells(fleet))
	}
}

func TestParseFleetErrors(t *testing.T) {
	tests := [][]string{
		nil,
		{""},
		{"Destroyer"},
		{":4"},
		{"Destroyer:four"},
		{"Destroyer:0"},
	}
	for _, entries := range tests {
		if _, err := ParseFleet(entries); err == nil {
			t.Fatalf("expected error for %q", entries)
		}
	}
}

func TestDefaultFleetCells(t *testing.T) {
	if TotalCells(DefaultFleet) != 13 {
		t.Fatalf("expected 13 cells, got %d", TotalCells(DefaultFleet))
	}
}
