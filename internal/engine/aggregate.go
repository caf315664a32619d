package engine

import "math"

// CalculateTotalEmissions sums the four category outputs. The categories
// carry the scoring model's mixed units, so the sum's scale is nominal
// rather than strictly metric tons.
func CalculateTotalEmissions(c CategoryEmissions) float64 {
	return c.Home + c.Transport + c.Food + c.Waste
}

// CalculateScore maps a total onto the 0-100 score via the linear inverse
// against WorstCaseTons, clamped then rounded half up. A zero total scores
// 100; anything at or beyond the worst case scores 0.
func CalculateScore(total float64) int {
	raw := MaxScore - (total/WorstCaseTons)*MaxScore
	clamped := math.Max(MinScore, math.Min(MaxScore, raw))
	return int(math.Floor(clamped + 0.5))
}
