package domain

// ComparisonResult contrasts a scenario with the same scenario minus its
// voluntary payments.
type ComparisonResult struct {
	Scenario ProjectionResult `json:"scenario"`
	Baseline ProjectionResult `json:"baseline"`
	Savings  struct {
		IndexationSaved  float64 `json:"indexationSaved"`
		TotalPaidChange  float64 `json:"totalPaidChange"`
		YearsSaved       int     `json:"yearsSaved"`
		BaselineDebtFree bool    `json:"baselineDebtFree"`
	} `json:"savings"`
}
