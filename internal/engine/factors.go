package engine

// Emission factor constants for the four category calculators.
//
// Utility factors are kg CO2e per unit consumed. Multiplier constants adjust
// the additive base per answer code and compose by sequential multiplication
// in the documented order. The values are product-defined heuristics, not
// audited lifecycle factors.
const (
	// ElectricityFactor is kg CO2e per kWh of grid electricity.
	ElectricityFactor = 0.4

	// NaturalGasFactor is kg CO2e per therm of natural gas.
	NaturalGasFactor = 5.3

	// HeatingOilFactor is kg CO2e per gallon of heating oil.
	HeatingOilFactor = 10.2

	// PropaneFactor is kg CO2e per gallon of propane.
	PropaneFactor = 5.8

	// KgPerMetricTon converts kg CO2e to metric tons.
	KgPerMetricTon = 1000.0
)

// Home multipliers keyed by efficiency and management tier answers.
const (
	EfficientHomeMultiplier   = 0.7
	InefficientHomeMultiplier = 1.3

	ActiveManagementMultiplier = 0.8
	NoManagementMultiplier     = 1.2

	// RenewableEnergyMultiplier halves home emissions when the respondent
	// reports renewable energy use.
	RenewableEnergyMultiplier = 0.5
)

// Transport constants.
const (
	// Base annual emissions by primary mode, ascending from active/public
	// transit to car- and flight-heavy lifestyles.
	TransportBaseActive   = 0.5
	TransportBasePublic   = 2.0
	TransportBaseCar      = 4.0
	TransportBaseFrequent = 6.0

	// MileageSpendFactor scales annual mileage times cost-per-mile into the
	// additive base. The product is not dimensionally CO2e; the scale is
	// part of the scoring model (see DESIGN.md).
	MileageSpendFactor = 0.4

	// Long-distance travel multipliers.
	RareTravelMultiplier       = 0.8
	OccasionalTravelMultiplier = 1.2
	FrequentTravelMultiplier   = 1.5
)

// Food constants.
const (
	DaysPerYear = 365

	// Daily diet factors, ascending with meat intake.
	DietFactorVegan        = 1.5
	DietFactorVegetarian   = 2.0
	DietFactorFlexitarian  = 2.5
	DietFactorModerateMeat = 3.0
	DietFactorMeatHeavy    = 4.0

	// DefaultDietFactor stands in for answered but unrecognized diet codes.
	// The moderate middle factor keeps the calculator total instead of
	// propagating an undefined value.
	DefaultDietFactor = DietFactorFlexitarian

	// MealsPerWeek is the plant-based meal ceiling (3 meals x 7 days).
	MealsPerWeek = 21

	// PlantBasedMaxReduction caps the plant-based meal discount at 30%.
	PlantBasedMaxReduction = 0.3

	LocalFoodMultiplier    = 0.9
	GrowsOwnFoodMultiplier = 0.9
	CompostingMultiplier   = 0.95
	MealPlanningMultiplier = 0.95
)

// Waste constants.
const (
	// WasteFactorPerLb is kg CO2e per pound of landfilled waste.
	WasteFactorPerLb = 0.5

	// RecyclingMaxReduction caps the recycling-percentage discount at 50%.
	RecyclingMaxReduction = 0.5

	// Prevention multipliers for answer codes A through D.
	PreventionBestMultiplier  = 0.7
	PreventionGoodMultiplier  = 0.85
	PreventionSomeMultiplier  = 1.0
	PreventionWorstMultiplier = 1.2

	RepairsItemsMultiplier   = 0.9
	MinimizesWasteMultiplier = 0.9
	AvoidsPlasticMultiplier  = 0.95
)

// Score constants.
const (
	// WorstCaseTons is the annual total pinned to score 0. Totals at or
	// above it clamp to zero; a zero total scores 100.
	WorstCaseTons = 20.0

	MaxScore = 100
	MinScore = 0
)
