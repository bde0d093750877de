package nscp

import (
	"fmt"
	"math"
	"strings"
)

// LoadType identifies the source of a load for factoring
type LoadType string

const (
	Dead       LoadType = "D"
	Live       LoadType = "L"
	Roof       LoadType = "Lr"
	Wind       LoadType = "W"
	Earthquake LoadType = "E"
	Rain       LoadType = "R"
)

// ParseLoadType accepts the NSCP symbol or the load name.
// An empty string means dead load.
func ParseLoadType(s string) (LoadType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "d", "dead":
		return Dead, nil
	case "l", "live":
		return Live, nil
	case "lr", "roof":
		return Roof, nil
	case "w", "wind":
		return Wind, nil
	case "e", "earthquake":
		return Earthquake, nil
	case "r", "rain":
		return Rain, nil
	}
	return "", fmt.Errorf("unknown load case %q", s)
}

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{ID: "1", Description: "1.4D", Dead: 1.4},
	{ID: "2", Description: "1.2D + 1.6L + 0.5(Lr or R)", Dead: 1.2, Live: 1.6, Roof: 0.5, Rain: 0.5},
	{ID: "3", Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)", Dead: 1.2, Live: 1.0, Roof: 1.6, Rain: 1.6, Wind: 0.5},
	{ID: "4", Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)", Dead: 1.2, Live: 1.0, Wind: 1.0, Roof: 0.5, Rain: 0.5},
	{ID: "5", Description: "1.2D + 1.0E + 1.0L", Dead: 1.2, Live: 1.0, Earthquake: 1.0},
	{ID: "6", Description: "0.9D + 1.0W", Dead: 0.9, Wind: 1.0},
	{ID: "7", Description: "0.9D + 1.0E", Dead: 0.9, Earthquake: 1.0},
}

// SimplifiedCombinations are the gravity-only combinations used for most beams
var SimplifiedCombinations = []LoadCombination{
	{ID: "1", Description: "1.4D", Dead: 1.4},
	{ID: "2", Description: "1.2D + 1.6L", Dead: 1.2, Live: 1.6},
}

// Factor returns the load factor this combination applies to t
func (lc LoadCombination) Factor(t LoadType) float64 {
	switch t {
	case Dead:
		return lc.Dead
	case Live:
		return lc.Live
	case Roof:
		return lc.Roof
	case Wind:
		return lc.Wind
	case Earthquake:
		return lc.Earthquake
	case Rain:
		return lc.Rain
	}
	return 0
}

// Find looks up a combination by ID
func Find(combinations []LoadCombination, id string) (LoadCombination, error) {
	for _, c := range combinations {
		if c.ID == id {
			return c, nil
		}
	}
	return LoadCombination{}, fmt.Errorf("no load combination %q", id)
}

// Governing evaluates effect for every combination and returns the one with
// the largest absolute effect, together with that effect
func Governing(combinations []LoadCombination, effect func(LoadCombination) (float64, error)) (LoadCombination, float64, error) {
	var (
		governing LoadCombination
		maxEffect float64
		found     bool
	)
	for _, combo := range combinations {
		e, err := effect(combo)
		if err != nil {
			return LoadCombination{}, 0, fmt.Errorf("combination %s: %w", combo.ID, err)
		}
		if !found || math.Abs(e) > math.Abs(maxEffect) {
			governing, maxEffect, found = combo, e, true
		}
	}
	if !found {
		return LoadCombination{}, 0, fmt.Errorf("no load combinations given")
	}
	return governing, maxEffect, nil
}
