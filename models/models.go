package models

import (
	"fmt"
	"strconv"
	"strings"
)

type ShipClass struct {
	Name   string
	Length int
}

func (c ShipClass) String() string {
	return fmt.Sprintf("%s:%d", c.Name, c.Length)
}

// DefaultFleet is one Battleship and two Destroyers, 13 cells in total.
var DefaultFleet = []ShipClass{
	{Name: "Battleship", Length: 5},
	{Name: "Destroyer", Length: 4},
	{Name: "Destroyer", Length: 4},
}

// ParseShipClass parses "Name:Length", e.g. "Destroyer:4".
func ParseShipClass(s string) (ShipClass, error) {
	name, length, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return ShipClass{}, fmt.Errorf("ship class %q: expected Name:Length", s)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ShipClass{}, fmt.Errorf("ship class %q: empty name", s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(length))
	if err != nil {
		return ShipClass{}, fmt.Errorf("ship class %q: %w", s, err)
	}
	if n < 1 {
		return ShipClass{}, fmt.Errorf("ship class %q: length must be at least 1", s)
	}
	return ShipClass{Name: name, Length: n}, nil
}

// ParseFleet parses a list of "Name:Length" entries. Empty entries are skipped.
func ParseFleet(entries []string) ([]ShipClass, error) {
	fleet := make([]ShipClass, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e) == "" {
			continue
		}
		c, err := ParseShipClass(e)
		if err != nil {
			return nil, fmt.Errorf("models.ParseFleet: %w", err)
		}
		fleet = append(fleet, c)
	}
	if len(fleet) == 0 {
		return nil, fmt.Errorf("models.ParseFleet: fleet is empty")
	}
	return fleet, nil
}

func FormatFleet(fleet []ShipClass) string {
	parts := make([]string, len(fleet))
	for i, c := range fleet {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

// TotalCells is the number of cells the fleet occupies.
func TotalCells(fleet []ShipClass) int {
	total := 0
	for _, c := range fleet {
		total += c.Length
	}
	return total
}
