package service

import (
	"errors"
	"fmt"
	"math"

	"help-projector/domain"
)

// NormalizeParameters clamps parameters to the calculator's bounds and
// reports every adjustment as a nudge. Negative amounts are rejected.
func NormalizeParameters(
	params domain.SimulationParameters,
) (domain.SimulationParameters, []domain.Nudge, error) {

	// Validar entrada
	if math.IsNaN(params.StartingDebt) || params.StartingDebt < 0 {
		return params, nil, errors.New("invalid starting debt")
	}
	if math.IsNaN(params.StartingIncome) || params.StartingIncome < 0 {
		return params, nil, errors.New("invalid starting income")
	}
	if math.IsNaN(params.IndexationRatePercent) || params.IndexationRatePercent < 0 {
		return params, nil, errors.New("invalid indexation rate")
	}
	if math.IsNaN(params.WageGrowthPercent) || params.WageGrowthPercent < 0 {
		return params, nil, errors.New("invalid wage growth")
	}
	if params.StartingAge != nil && *params.StartingAge < 0 {
		return params, nil, errors.New("invalid starting age")
	}

	var nudges []domain.Nudge

	switch {
	case params.StartingDebt > MaxStartingDebt:
		params.StartingDebt = MaxStartingDebt
		nudges = append(nudges, domain.Nudge{
			Field:   "startingDebt",
			Level:   domain.NudgeWarning,
			Message: "Capped at $129,883 for most, or $186,544 for Medicine & some Aviation courses",
		})
	case params.StartingDebt == 0:
		nudges = append(nudges, domain.Nudge{
			Field:   "startingDebt",
			Level:   domain.NudgeInfo,
			Message: "Lucky you! Nothing to repay.",
		})
	}

	if params.StartingIncome > MaxStartingIncome {
		params.StartingIncome = MaxStartingIncome
		nudges = append(nudges, domain.Nudge{
			Field:   "startingIncome",
			Level:   domain.NudgeWarning,
			Message: "This tool is capped at $500,000.",
		})
	}

	if params.WageGrowthPercent > MaxWageGrowthPercent {
		params.WageGrowthPercent = MaxWageGrowthPercent
		nudges = append(nudges, domain.Nudge{
			Field:   "wageGrowthPercent",
			Level:   domain.NudgeWarning,
			Message: "Capped at 10% (averaged over life). Try 3-4%.",
		})
	}

	if params.IndexationRatePercent > MaxIndexationPercent {
		params.IndexationRatePercent = MaxIndexationPercent
		nudges = append(nudges, domain.Nudge{
			Field:   "indexationRatePercent",
			Level:   domain.NudgeWarning,
			Message: "Capped at 10%. Try 3-4%.",
		})
	}

	if params.FirstYear < MinFirstYear {
		params.FirstYear = MinFirstYear
		nudges = append(nudges, domain.Nudge{
			Field:   "firstYear",
			Level:   domain.NudgeInfo,
			Message: fmt.Sprintf("Projections start no earlier than %d.", MinFirstYear),
		})
	}

	if params.StartingAge != nil && *params.StartingAge < MinStartingAge {
		age := MinStartingAge
		params.StartingAge = &age
		nudges = append(nudges, domain.Nudge{
			Field:   "startingAge",
			Level:   domain.NudgeInfo,
			Message: fmt.Sprintf("Starting age raised to %d.", MinStartingAge),
		})
	}

	return params, nudges, nil
}

// ValidateEvents checks the four event collections.
func ValidateEvents(input domain.ProjectionInput) error {
	if len(input.Promotions) > MaxEventsPerKind ||
		len(input.Reductions) > MaxEventsPerKind ||
		len(input.Breaks) > MaxEventsPerKind ||
		len(input.VoluntaryPayments) > MaxEventsPerKind {
		return fmt.Errorf("too many events: at most %d per kind", MaxEventsPerKind)
	}

	for _, v := range input.VoluntaryPayments {
		if !isFinite(v.Amount) || v.Amount <= 0 {
			return fmt.Errorf("invalid voluntary payment amount in %d", v.Year)
		}
	}
	for _, p := range input.Promotions {
		if !isFinite(p.PercentIncrease) || p.PercentIncrease < 0 || p.PercentIncrease > MaxPromotionPercent {
			return fmt.Errorf("invalid promotion percentage in %d", p.Year)
		}
	}
	for _, r := range input.Reductions {
		if !isFinite(r.PercentDecrease) || r.PercentDecrease < 0 || r.PercentDecrease > MaxReductionPercent {
			return fmt.Errorf("invalid income reduction percentage in %d", r.Year)
		}
	}
	for _, b := range input.Breaks {
		if b.DurationYears < 1 {
			return fmt.Errorf("invalid work break duration starting %d", b.StartYear)
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
