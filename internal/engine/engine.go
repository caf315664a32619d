package engine

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/greenloop/ecotrace/internal/logging"
	"github.com/greenloop/ecotrace/internal/survey"
)

// Engine runs the full calculation pipeline. The zero value is ready to use;
// NewEngine exists for symmetry with the rest of the codebase.
type Engine struct{}

// NewEngine returns a pipeline engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Calculate runs the four category calculators, aggregates the total and
// score, and generates recommendations for the given answer record.
//
// The calculators are independent pure functions over the same immutable
// input, so they fan out concurrently; each writes a distinct result field.
// The pipeline is total and never fails, but ctx carries the logger for
// structured timing output.
func (e *Engine) Calculate(ctx context.Context, r *survey.Responses) *CalculationResults {
	log := logging.FromContext(ctx)
	start := time.Now()

	var cat CategoryEmissions
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { cat.Home = CalculateHomeEmissions(r); return nil })
	g.Go(func() error { cat.Transport = CalculateTransportEmissions(r); return nil })
	g.Go(func() error { cat.Food = CalculateFoodEmissions(r); return nil })
	g.Go(func() error { cat.Waste = CalculateWasteEmissions(r); return nil })
	_ = g.Wait() // calculators never return errors

	total := CalculateTotalEmissions(cat)
	score := CalculateScore(total)
	recs := GenerateRecommendations(r)

	log.Debug().
		Str("component", "engine").
		Str("operation", "calculate").
		Float64("total_emissions", total).
		Int("score", score).
		Int("recommendation_count", len(recs)).
		Dur("elapsed", time.Since(start)).
		Msg("calculation complete")

	return &CalculationResults{
		Score:             score,
		Emissions:         total,
		CategoryEmissions: cat,
		Recommendations:   recs,
	}
}
