package story

// impactBucket pairs a CO2 threshold with its comparison phrase. Buckets
// evaluate top-down; the first threshold at or below the value wins.
type impactBucket struct {
	minCO2 float64
	phrase string
}

// impactBuckets maps saved-CO2 magnitudes onto relatable comparisons,
// descending. Values under the lowest threshold get the default phrase.
var impactBuckets = []impactBucket{
	{minCO2: 10, phrase: "planting a small forest"},
	{minCO2: 5, phrase: "taking a car off the road for half a year"},
	{minCO2: 2, phrase: "powering a home on renewables for months"},
	{minCO2: 0.5, phrase: "skipping hundreds of disposable coffee cups"},
}

// defaultImpactPhrase covers savings below every bucket threshold.
const defaultImpactPhrase = "every small step adding up"

// ImpactComparison buckets a saved-CO2 magnitude into a comparison phrase.
// Deterministic for any input, including zero and negative values.
func ImpactComparison(co2 float64) string {
	for _, b := range impactBuckets {
		if co2 >= b.minCO2 {
			return b.phrase
		}
	}
	return defaultImpactPhrase
}
