// Package engine implements the emission calculation pipeline: four
// independent category calculators, the aggregate total and score, and the
// rule-based recommendation generator.
//
// Every function in this package is total: missing or malformed answers
// degrade to zero contributions or identity multipliers, never to errors or
// NaN. The same answer record always produces the same results.
package engine

import "github.com/greenloop/ecotrace/internal/survey"

// Difficulty tags a recommendation's effort level.
type Difficulty string

// Difficulty levels.
const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
)

// Recommendation is a suggested improvement surfaced alongside results.
// Completed is UI state; the generator always emits it false.
type Recommendation struct {
	Category    string     `json:"category"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Impact      string     `json:"impact"`
	Difficulty  Difficulty `json:"difficulty"`
	Completed   bool       `json:"completed"`
}

// CategoryEmissions holds the per-category calculator outputs.
//
// The categories are not unit-normalized against each other: home is in
// metric tons while the others keep the scoring model's mixed units. The
// asymmetry is preserved deliberately (see DESIGN.md).
type CategoryEmissions struct {
	Home      float64 `json:"home"`
	Transport float64 `json:"transport"`
	Food      float64 `json:"food"`
	Waste     float64 `json:"waste"`
}

// CalculationResults is the full output of one pipeline run.
type CalculationResults struct {
	Score             int              `json:"score"`
	Emissions         float64          `json:"emissions"`
	CategoryEmissions CategoryEmissions `json:"categoryEmissions"`
	Recommendations   []Recommendation `json:"recommendations"`
}

// Calculator is the signature shared by the four category calculators.
type Calculator func(*survey.Responses) float64
