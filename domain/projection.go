package domain

// SimulationParameters are the starting conditions of a projection.
type SimulationParameters struct {
	StartingDebt          float64 `json:"startingDebt"`
	StartingIncome        float64 `json:"startingIncome"`
	IndexationRatePercent float64 `json:"indexationRatePercent"`
	WageGrowthPercent     float64 `json:"wageGrowthPercent"`
	FirstYear             int     `json:"firstYear"`
	StartingAge           *int    `json:"startingAge,omitempty"`
}

// YearSnapshot is the financial state of the loan for one simulated year.
type YearSnapshot struct {
	Year                int      `json:"year"`
	Age                 *int     `json:"age,omitempty"`
	BaselineIncome      float64  `json:"baselineIncome"`
	TaxableIncome       float64  `json:"taxableIncome"`
	CompulsoryRepayment float64  `json:"compulsoryRepayment"`
	VoluntaryRepayment  float64  `json:"voluntaryRepayment"`
	IndexationAmount    float64  `json:"indexationAmount"`
	StartBalance        float64  `json:"startBalance"`
	EndBalance          float64  `json:"endBalance"`
	IsBreakYear         bool     `json:"isBreakYear"`
	Notes               []string `json:"notes"`
}

// Summary aggregates a snapshot sequence.
type Summary struct {
	DebtFree        bool    `json:"debtFree"`
	YearsToRepay    int     `json:"yearsToRepay,omitempty"`
	FinalYear       int     `json:"finalYear"`
	FinalAge        *int    `json:"finalAge,omitempty"`
	TotalPaid       float64 `json:"totalPaid"`
	TotalCompulsory float64 `json:"totalCompulsory"`
	TotalVoluntary  float64 `json:"totalVoluntary"`
	TotalIndexation float64 `json:"totalIndexation"`
}

// ProjectionInput is a full request: parameters plus the four event lists.
type ProjectionInput struct {
	Parameters        SimulationParameters `json:"parameters"`
	Promotions        []Promotion          `json:"promotions"`
	Reductions        []IncomeReduction    `json:"reductions"`
	Breaks            []WorkBreak          `json:"breaks"`
	VoluntaryPayments []VoluntaryPayment   `json:"voluntaryPayments"`
}

type ProjectionResult struct {
	ID         string               `json:"id"`
	Parameters SimulationParameters `json:"parameters"`
	Snapshots  []YearSnapshot       `json:"snapshots"`
	Summary    Summary              `json:"summary"`
	Nudges     []Nudge              `json:"nudges,omitempty"`
}

// DefaultParameters returns the calculator's reset values.
func DefaultParameters() SimulationParameters {
	age := 22
	return SimulationParameters{
		StartingDebt:          50000,
		StartingIncome:        70000,
		IndexationRatePercent: 3.0,
		WageGrowthPercent:     3.5,
		FirstYear:             2026,
		StartingAge:           &age,
	}
}
