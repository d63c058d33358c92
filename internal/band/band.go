// Package band maps a match score onto the user-facing compatibility tier.
package band

import "math"

// Level names a compatibility tier.
type Level string

const (
	VeryHigh Level = "very high"
	High     Level = "high"
	Medium   Level = "medium"
	Low      Level = "low"
	VeryLow  Level = "very low"
)

// Color is the display color of a tier.
type Color string

const (
	Green  Color = "green"
	Blue   Color = "blue"
	Yellow Color = "yellow"
	Orange Color = "orange"
	Red    Color = "red"
)

// Band is the presentation form of a match score.
type Band struct {
	Level       Level  `json:"level"`
	Percentage  int    `json:"percentage"`
	Description string `json:"description"`
	Color       Color  `json:"color"`
}

type tier struct {
	min         float64
	level       Level
	color       Color
	description string
	percentage  func(score float64) float64
}

// tiers are checked top to bottom; the last one has no lower bound.
// Only the last tier clamps its percentage. Scores outside [-2, 2] can push
// the upper tiers past 100.
var tiers = []tier{
	{
		min:         1.5,
		level:       VeryHigh,
		color:       Green,
		description: "Your work style fits this workplace exceptionally well.",
		percentage:  func(s float64) float64 { return 90 + math.Round((s-1.5)*20) },
	},
	{
		min:         0.5,
		level:       High,
		color:       Blue,
		description: "Your work style fits this workplace well.",
		percentage:  func(s float64) float64 { return 70 + math.Round((s-0.5)*20) },
	},
	{
		min:         -0.5,
		level:       Medium,
		color:       Yellow,
		description: "Your work style partly fits this workplace.",
		percentage:  func(s float64) float64 { return 50 + math.Round(s*20) },
	},
	{
		min:         -1.5,
		level:       Low,
		color:       Orange,
		description: "Your work style differs from this workplace in several ways.",
		percentage:  func(s float64) float64 { return 20 + math.Round((s+1.5)*20) },
	},
	{
		min:         math.Inf(-1),
		level:       VeryLow,
		color:       Red,
		description: "Your work style differs strongly from this workplace.",
		percentage:  func(s float64) float64 { return max(0, math.Round((s+2)*20)) },
	},
}

// For returns the band a score falls into. It is total over the real line;
// NaN falls through to the lowest tier.
func For(score float64) Band {
	t := tiers[len(tiers)-1]
	for _, candidate := range tiers {
		if score >= candidate.min {
			t = candidate
			break
		}
	}

	return Band{
		Level:       t.level,
		Percentage:  toInt(t.percentage(score)),
		Description: t.description,
		Color:       t.color,
	}
}

// Levels returns every level from best to worst.
func Levels() []Level {
	out := make([]Level, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, t.level)
	}
	return out
}

// toInt saturates at the int bounds; NaN becomes 0.
func toInt(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt:
		return math.MaxInt
	case v <= math.MinInt:
		return math.MinInt
	}
	return int(v)
}
