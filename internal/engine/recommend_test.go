package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenloop/ecotrace/internal/survey"
)

func TestGenerateRecommendationsRenewableRuleFirst(t *testing.T) {
	r := survey.Responses{}

	recs := GenerateRecommendations(&r)

	require.NotEmpty(t, recs)
	assert.Equal(t, "Switch to Renewable Energy", recs[0].Title)
	assert.Equal(t, "home", recs[0].Category)
	assert.False(t, recs[0].Completed)
}

func TestGenerateRecommendationsRuleConditions(t *testing.T) {
	titlesOf := func(recs []Recommendation) []string {
		titles := make([]string, len(recs))
		for i, rec := range recs {
			titles[i] = rec.Title
		}
		return titles
	}

	tests := []struct {
		name        string
		r           survey.Responses
		wantTitle   string
		wantPresent bool
	}{
		{
			name:        "renewable user skips renewable rule",
			r:           survey.Responses{UsesRenewableEnergy: true},
			wantTitle:   "Switch to Renewable Energy",
			wantPresent: false,
		},
		{
			name:        "inefficient home triggers upgrade rule",
			r:           survey.Responses{HomeEfficiency: survey.TierC},
			wantTitle:   "Upgrade Home Efficiency",
			wantPresent: true,
		},
		{
			name:        "car commuter gets transit suggestion",
			r:           survey.Responses{PrimaryTransportMode: survey.CodeC},
			wantTitle:   "Shift Trips to Transit or Cycling",
			wantPresent: true,
		},
		{
			name:        "cyclist gets no transit suggestion",
			r:           survey.Responses{PrimaryTransportMode: survey.CodeA},
			wantTitle:   "Shift Trips to Transit or Cycling",
			wantPresent: false,
		},
		{
			name:        "meat heavy diet gets plant-based suggestion",
			r:           survey.Responses{DietType: survey.DietMeatHeavy},
			wantTitle:   "Add Plant-Based Meals",
			wantPresent: true,
		},
		{
			name:        "vegan gets no plant-based suggestion",
			r:           survey.Responses{DietType: survey.DietVegan},
			wantTitle:   "Add Plant-Based Meals",
			wantPresent: false,
		},
		{
			name: "low recycling triggers recycling rule",
			r: survey.Responses{Waste: survey.WasteResponses{
				RecyclingPercent: "20",
			}},
			wantTitle:   "Recycle More of Your Waste",
			wantPresent: true,
		},
		{
			name: "unanswered recycling does not trigger recycling rule",
			r: survey.Responses{Waste: survey.WasteResponses{
				RecyclingPercent: "",
			}},
			wantTitle:   "Recycle More of Your Waste",
			wantPresent: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			titles := titlesOf(GenerateRecommendations(&tt.r))
			if tt.wantPresent {
				assert.Contains(t, titles, tt.wantTitle)
			} else {
				assert.NotContains(t, titles, tt.wantTitle)
			}
		})
	}
}

func TestGenerateRecommendationsStableOrder(t *testing.T) {
	r := survey.Responses{
		HomeEfficiency:       survey.TierC,
		PrimaryTransportMode: survey.CodeD,
		DietType:             survey.DietMeatHeavy,
	}

	first := GenerateRecommendations(&r)
	for range 10 {
		assert.Equal(t, first, GenerateRecommendations(&r))
	}

	// Declaration order: home rules before transport before food.
	require.GreaterOrEqual(t, len(first), 4)
	assert.Equal(t, "Switch to Renewable Energy", first[0].Title)
	assert.Equal(t, "Upgrade Home Efficiency", first[1].Title)
	assert.Equal(t, "Shift Trips to Transit or Cycling", first[2].Title)
	assert.Equal(t, "Add Plant-Based Meals", first[3].Title)
}
