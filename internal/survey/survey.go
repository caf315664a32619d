// Package survey defines the quiz answer record consumed by the calculation
// pipeline, along with the answer code enums and numeric parse helper.
//
// Every enum field is a string code where the empty string means the
// question was not answered. Unanswered is always a valid input: calculators
// treat it as a no-op multiplier and the personality tally skips it. Numeric
// magnitudes arrive as raw strings (the quiz collects free text) and are
// parsed at calculation time with ParseOptionalFloat.
package survey

import (
	"math"
	"strconv"
	"strings"
)

// Tier is a three-level answer code used by the home energy questions.
type Tier string

// Tier codes. TierUnanswered is the unanswered sentinel.
const (
	TierUnanswered Tier = ""
	TierA          Tier = "A"
	TierB          Tier = "B"
	TierC          Tier = "C"
)

// Code is a generic lettered answer code (A through E) used by most
// multiple-choice questions.
type Code string

// Answer codes. CodeUnanswered is the unanswered sentinel.
const (
	CodeUnanswered Code = ""
	CodeA          Code = "A"
	CodeB          Code = "B"
	CodeC          Code = "C"
	CodeD          Code = "D"
	CodeE          Code = "E"
)

// Diet identifies the respondent's diet type.
type Diet string

// Diet codes, ordered by increasing meat intake.
const (
	DietUnanswered   Diet = ""
	DietVegan        Diet = "VEGAN"
	DietVegetarian   Diet = "VEGETARIAN"
	DietFlexitarian  Diet = "FLEXITARIAN"
	DietModerateMeat Diet = "MODERATE_MEAT"
	DietMeatHeavy    Diet = "MEAT_HEAVY"
)

// WasteResponses is the nested waste section of the answer record.
type WasteResponses struct {
	Prevention         Code   `json:"prevention"`         // A-D
	Composition        Code   `json:"composition"`        // A-E
	ShoppingApproach   Code   `json:"smartShopping"`      // A-C
	Management         Code   `json:"management"`         // A-C
	RepairsItems       bool   `json:"repairsItems"`
	MinimizesWaste     bool   `json:"minimizesWaste"`
	AvoidsPlastic      bool   `json:"avoidsPlastic"`
	EvaluatesLifecycle bool   `json:"evaluatesLifecycle"`
	WasteLbs           string `json:"wasteLbs"`
	RecyclingPercent   string `json:"recyclingPercentage"`
}

// Responses is the full quiz answer record. It is a plain value record owned
// by the caller; the calculation pipeline never mutates it.
type Responses struct {
	// Demographics. Free strings, presence not enforced.
	Name          string `json:"name"`
	Email         string `json:"email"`
	AgeBand       string `json:"age"`
	Gender        string `json:"gender"`
	Profession    string `json:"profession"`
	Country       string `json:"country"`
	HouseholdSize string `json:"householdSize"`

	// Home energy.
	BedroomCount         string `json:"homeSize"`
	HomeEfficiency       Tier   `json:"homeEfficiency"`
	EnergyManagement     Tier   `json:"energyManagement"`
	ElectricityKwh       string `json:"electricityKwh"`
	NaturalGasTherm      string `json:"naturalGasTherm"`
	HeatingOilGallons    string `json:"heatingOilGallons"`
	PropaneGallons       string `json:"propaneGallons"`
	UsesRenewableEnergy  bool   `json:"usesRenewableEnergy"`
	HasEfficiencyUpgrade bool   `json:"hasEnergyEfficiencyUpgrades"`
	HasSmartThermostats  bool   `json:"hasSmartThermostats"`
	HasEnergyStar        bool   `json:"hasEnergyStarAppliances"`

	// Transport.
	PrimaryTransportMode Code   `json:"primaryTransportMode"` // A-D
	CarProfile           Code   `json:"carProfile"`           // A-E
	AnnualMileage        string `json:"weeklyKm"`
	CostPerMile          string `json:"costPerMile"`
	LongDistanceTravel   Code   `json:"longDistanceTravel"` // A-C

	// Food.
	DietType          Diet   `json:"dietType"`
	PlateProfile      Code   `json:"plateProfile"`
	DiningStyle       Code   `json:"monthlyDiningOut"`
	BuysLocalFood     bool   `json:"buysLocalFood"`
	FollowsSustDiet   bool   `json:"followsSustainableDiet"`
	GrowsOwnFood      bool   `json:"growsOwnFood"`
	Composts          bool   `json:"composts"`
	PlansMeals        bool   `json:"usesMealPlanning"`
	PlantBasedPerWeek string `json:"plantBasedMealsPerWeek"`

	// Waste (nested section).
	Waste WasteResponses `json:"waste"`

	// Air quality. Personality-only signals, never used by the emission
	// calculators.
	AirQualityMonitoring Code `json:"aqiMonitoring"`     // A-D
	AirQualityImpact     Code `json:"aqiImpact"`         // A-D
	OutdoorAirQuality    Code `json:"outdoorAirQuality"` // A-D
	IndoorAirQuality     Code `json:"indoorAirQuality"`  // A-D
	CommuteExposure      Code `json:"commuteExposure"`   // A-D

	// Clothing. Personality-only signals.
	WardrobeImpact       Code `json:"wardrobeImpact"`       // A-C
	MindfulUpgrades      Code `json:"mindfulUpgrades"`      // A-C
	ClothingDurability   Code `json:"durability"`           // A-C
	ConsumptionFrequency Code `json:"consumptionFrequency"` // A-D
	BrandLoyalty         Code `json:"brandLoyalty"`         // A-D
}

// ParseOptionalFloat parses a numeric answer string. It returns the parsed
// value and true, or (0, false) when the field is blank, non-numeric, NaN or
// infinite. Callers map false onto a zero contribution, which keeps NaN out
// of every accumulator.
func ParseOptionalFloat(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
