package tui

import "github.com/greenloop/ecotrace/internal/survey"

// questionKind distinguishes free-text questions from multiple choice.
type questionKind int

const (
	kindChoice questionKind = iota
	kindText
)

// choice is one selectable answer. An empty code records the question as
// unanswered, which every downstream consumer treats as valid.
type choice struct {
	code  string
	label string
}

// question is a single quiz step. apply writes the collected raw value onto
// the answer record.
type question struct {
	prompt  string
	kind    questionKind
	choices []choice
	apply   func(*survey.Responses, string)
}

// skipChoice ends every choice list so any question can stay unanswered.
var skipChoice = choice{code: "", label: "Skip this question"}

// boolQuestion builds a yes/no choice question.
func boolQuestion(prompt string, set func(*survey.Responses, bool)) question {
	return question{
		prompt: prompt,
		kind:   kindChoice,
		choices: []choice{
			{code: "Y", label: "Yes"},
			{code: "N", label: "No"},
			skipChoice,
		},
		apply: func(r *survey.Responses, v string) { set(r, v == "Y") },
	}
}

// quizQuestions is the fixed multi-step quiz flow, grouped by domain in the
// same order the product walks through them.
func quizQuestions() []question {
	return []question{
		{
			prompt: "What's your name?",
			kind:   kindText,
			apply:  func(r *survey.Responses, v string) { r.Name = v },
		},
		{
			prompt: "Monthly electricity use in kWh (blank to skip)",
			kind:   kindText,
			apply:  func(r *survey.Responses, v string) { r.ElectricityKwh = v },
		},
		{
			prompt: "Monthly natural gas use in therms (blank to skip)",
			kind:   kindText,
			apply:  func(r *survey.Responses, v string) { r.NaturalGasTherm = v },
		},
		{
			prompt: "How energy efficient is your home?",
			kind:   kindChoice,
			choices: []choice{
				{code: "A", label: "Very efficient — insulated, modern systems"},
				{code: "B", label: "Somewhere in the middle"},
				{code: "C", label: "Drafty and dated"},
				skipChoice,
			},
			apply: func(r *survey.Responses, v string) { r.HomeEfficiency = survey.Tier(v) },
		},
		{
			prompt: "How actively do you manage home energy use?",
			kind:   kindChoice,
			choices: []choice{
				{code: "A", label: "Smart thermostats, schedules, the works"},
				{code: "B", label: "I keep an eye on it"},
				{code: "C", label: "I don't think about it"},
				skipChoice,
			},
			apply: func(r *survey.Responses, v string) { r.EnergyManagement = survey.Tier(v) },
		},
		boolQuestion("Is your home on a renewable energy plan?",
			func(r *survey.Responses, v bool) { r.UsesRenewableEnergy = v }),
		{
			prompt: "What's your primary way of getting around?",
			kind:   kindChoice,
			choices: []choice{
				{code: "A", label: "Walking or cycling"},
				{code: "B", label: "Public transit"},
				{code: "C", label: "Driving"},
				{code: "D", label: "Driving plus frequent flights"},
				skipChoice,
			},
			apply: func(r *survey.Responses, v string) { r.PrimaryTransportMode = survey.Code(v) },
		},
		{
			prompt: "Which best describes your car?",
			kind:   kindChoice,
			choices: []choice{
				{code: "A", label: "No car"},
				{code: "B", label: "Electric"},
				{code: "C", label: "Hybrid"},
				{code: "D", label: "Efficient gas car"},
				{code: "E", label: "SUV or truck"},
				skipChoice,
			},
			apply: func(r *survey.Responses, v string) { r.CarProfile = survey.Code(v) },
		},
		{
			prompt: "Annual mileage (blank to skip)",
			kind:   kindText,
			apply:  func(r *survey.Responses, v string) { r.AnnualMileage = v },
		},
		{
			prompt: "How often do you travel long distance?",
			kind:   kindChoice,
			choices: []choice{
				{code: "A", label: "Rarely"},
				{code: "B", label: "A few times a year"},
				{code: "C", label: "Frequently"},
				skipChoice,
			},
			apply: func(r *survey.Responses, v string) { r.LongDistanceTravel = survey.Code(v) },
		},
		{
			prompt: "How would you describe your diet?",
			kind:   kindChoice,
			choices: []choice{
				{code: string(survey.DietVegan), label: "Vegan"},
				{code: string(survey.DietVegetarian), label: "Vegetarian"},
				{code: string(survey.DietFlexitarian), label: "Flexitarian"},
				{code: string(survey.DietModerateMeat), label: "Meat a few times a week"},
				{code: string(survey.DietMeatHeavy), label: "Meat with most meals"},
				skipChoice,
			},
			apply: func(r *survey.Responses, v string) { r.DietType = survey.Diet(v) },
		},
		{
			prompt: "Plant-based meals per week (blank to skip)",
			kind:   kindText,
			apply:  func(r *survey.Responses, v string) { r.PlantBasedPerWeek = v },
		},
		{
			prompt: "Where does most of your food come from?",
			kind:   kindChoice,
			choices: []choice{
				{code: "A", label: "Local farms and markets"},
				{code: "B", label: "A mix of local and supermarket"},
				{code: "C", label: "Mostly imported or packaged"},
				skipChoice,
			},
			apply: func(r *survey.Responses, v string) { r.PlateProfile = survey.Code(v) },
		},
		boolQuestion("Do you compost food scraps?",
			func(r *survey.Responses, v bool) { r.Composts = v }),
		{
			prompt: "Household waste per week in pounds (blank to skip)",
			kind:   kindText,
			apply:  func(r *survey.Responses, v string) { r.Waste.WasteLbs = v },
		},
		{
			prompt: "Roughly what percentage do you recycle? (blank to skip)",
			kind:   kindText,
			apply:  func(r *survey.Responses, v string) { r.Waste.RecyclingPercent = v },
		},
		{
			prompt: "How much do you do to prevent waste before it happens?",
			kind:   kindChoice,
			choices: []choice{
				{code: "A", label: "It shapes most of my purchases"},
				{code: "B", label: "I try where it's easy"},
				{code: "C", label: "Occasionally"},
				{code: "D", label: "Not something I think about"},
				skipChoice,
			},
			apply: func(r *survey.Responses, v string) { r.Waste.Prevention = survey.Code(v) },
		},
		boolQuestion("Do you actively avoid single-use plastic?",
			func(r *survey.Responses, v bool) { r.Waste.AvoidsPlastic = v }),
		{
			prompt: "How would you describe your clothing shopping?",
			kind:   kindChoice,
			choices: []choice{
				{code: "A", label: "Rarely, and built to last"},
				{code: "B", label: "A few considered purchases a year"},
				{code: "C", label: "Regular refreshes"},
				{code: "D", label: "Constantly chasing new styles"},
				skipChoice,
			},
			apply: func(r *survey.Responses, v string) { r.ConsumptionFrequency = survey.Code(v) },
		},
	}
}
