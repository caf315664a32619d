package survey

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalFloat(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   float64
		wantOK bool
	}{
		{name: "plain integer", raw: "1000", want: 1000, wantOK: true},
		{name: "decimal", raw: "12.5", want: 12.5, wantOK: true},
		{name: "leading and trailing spaces", raw: "  42 ", want: 42, wantOK: true},
		{name: "zero", raw: "0", want: 0, wantOK: true},
		{name: "negative", raw: "-3", want: -3, wantOK: true},
		{name: "empty string", raw: "", wantOK: false},
		{name: "whitespace only", raw: "   ", wantOK: false},
		{name: "non-numeric", raw: "abc", wantOK: false},
		{name: "trailing garbage", raw: "10kwh", wantOK: false},
		{name: "nan literal", raw: "NaN", wantOK: false},
		{name: "infinity literal", raw: "Inf", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseOptionalFloat(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			} else {
				assert.Zero(t, got)
			}
		})
	}
}

func TestResponsesJSONRoundTrip(t *testing.T) {
	in := Responses{
		Name:                 "Riley",
		HomeEfficiency:       TierA,
		ElectricityKwh:       "1000",
		PrimaryTransportMode: CodeB,
		DietType:             DietVegan,
		Waste: WasteResponses{
			Prevention:    CodeA,
			WasteLbs:      "30",
			AvoidsPlastic: true,
		},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Responses
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestZeroValueResponsesIsFullyUnanswered(t *testing.T) {
	var r Responses

	assert.Equal(t, TierUnanswered, r.HomeEfficiency)
	assert.Equal(t, CodeUnanswered, r.PrimaryTransportMode)
	assert.Equal(t, DietUnanswered, r.DietType)
	assert.Equal(t, CodeUnanswered, r.Waste.Prevention)
}
