package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greenloop/ecotrace/internal/survey"
)

func TestCalculateHomeEmissions(t *testing.T) {
	tests := []struct {
		name string
		r    survey.Responses
		want float64
	}{
		{
			name: "all empty yields zero",
			r:    survey.Responses{},
			want: 0,
		},
		{
			name: "electricity only with efficient home",
			r: survey.Responses{
				ElectricityKwh:    "1000",
				NaturalGasTherm:   "0",
				HeatingOilGallons: "0",
				PropaneGallons:    "0",
				HomeEfficiency:    survey.TierA,
				EnergyManagement:  survey.TierB,
			},
			// 1000*0.4 = 400 kg, x0.7 efficiency, /1000 = 0.28 t.
			want: 0.28,
		},
		{
			name: "all utilities no modifiers",
			r: survey.Responses{
				ElectricityKwh:    "100",
				NaturalGasTherm:   "10",
				HeatingOilGallons: "5",
				PropaneGallons:    "2",
			},
			// 40 + 53 + 51 + 11.6 = 155.6 kg.
			want: 0.1556,
		},
		{
			name: "inefficient home with no management",
			r: survey.Responses{
				ElectricityKwh:   "1000",
				HomeEfficiency:   survey.TierC,
				EnergyManagement: survey.TierC,
			},
			// 400 x1.3 x1.2 = 624 kg.
			want: 0.624,
		},
		{
			name: "renewable energy halves the total",
			r: survey.Responses{
				ElectricityKwh:      "1000",
				UsesRenewableEnergy: true,
			},
			want: 0.2,
		},
		{
			name: "non-numeric quantity contributes nothing",
			r: survey.Responses{
				ElectricityKwh:  "lots",
				NaturalGasTherm: "10",
			},
			want: 0.053,
		},
		{
			name: "active management discount",
			r: survey.Responses{
				ElectricityKwh:   "1000",
				EnergyManagement: survey.TierA,
			},
			want: 0.32,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateHomeEmissions(&tt.r)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCalculateHomeEmissionsMonotonicInElectricity(t *testing.T) {
	base := survey.Responses{
		ElectricityKwh:   "500",
		NaturalGasTherm:  "20",
		HomeEfficiency:   survey.TierA,
		EnergyManagement: survey.TierC,
	}
	prev := CalculateHomeEmissions(&base)

	for _, kwh := range []string{"600", "1000", "5000", "20000"} {
		r := base
		r.ElectricityKwh = kwh
		got := CalculateHomeEmissions(&r)
		assert.GreaterOrEqual(t, got, prev, "kwh=%s", kwh)
		prev = got
	}
}
