package domain

type VoluntaryPayment struct {
	Year   int     `json:"year"`
	Amount float64 `json:"amount"`
}

type Promotion struct {
	Year            int     `json:"year"`
	PercentIncrease float64 `json:"percentIncrease"`
}

type IncomeReduction struct {
	Year            int     `json:"year"`
	PercentDecrease float64 `json:"percentDecrease"`
}

// WorkBreak covers the half-open interval [StartYear, StartYear+DurationYears).
type WorkBreak struct {
	StartYear     int `json:"startYear"`
	DurationYears int `json:"durationYears"`
}

// Covers reports whether year falls inside the break.
func (b WorkBreak) Covers(year int) bool {
	return year >= b.StartYear && year < b.StartYear+b.DurationYears
}
