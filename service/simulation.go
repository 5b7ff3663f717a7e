package service

import (
	"math"
	"strconv"

	"help-projector/domain"
)

// Simulate projects the loan balance year by year until it clears or the
// horizon is reached. It is a pure function: identical inputs always
// produce an identical, freshly allocated sequence.
func Simulate(
	params domain.SimulationParameters,
	promotions []domain.Promotion,
	reductions []domain.IncomeReduction,
	breaks []domain.WorkBreak,
	voluntary []domain.VoluntaryPayment,
) []domain.YearSnapshot {

	balance := finite(params.StartingDebt)
	baselineIncome := finite(params.StartingIncome)
	wageGrowth := finite(params.WageGrowthPercent)
	indexationRate := finite(params.IndexationRatePercent)
	year := params.FirstYear

	snapshots := []domain.YearSnapshot{}
	if balance <= 0 {
		return snapshots
	}

	for yearsElapsed := 0; balance > 0 && yearsElapsed < MaxProjectionYears; yearsElapsed++ {
		snap := domain.YearSnapshot{
			Year:         year,
			Age:          ageAt(params.StartingAge, yearsElapsed),
			StartBalance: balance,
			Notes:        []string{},
		}

		// El crecimiento salarial no se aplica en el primer año
		if yearsElapsed > 0 {
			baselineIncome *= 1 + wageGrowth/100
		}

		for _, p := range promotions {
			if p.Year != year {
				continue
			}
			pct := finite(p.PercentIncrease)
			baselineIncome *= 1 + pct/100
			snap.Notes = append(snap.Notes, "Promotion: +"+formatPercent(pct)+"%")
		}

		for _, r := range reductions {
			if r.Year != year {
				continue
			}
			pct := finite(r.PercentDecrease)
			baselineIncome *= 1 - pct/100
			snap.Notes = append(snap.Notes, "Income Drop: -"+formatPercent(pct)+"%")
		}

		snap.BaselineIncome = baselineIncome
		snap.TaxableIncome = baselineIncome
		if _, ok := activeBreak(breaks, year); ok {
			snap.IsBreakYear = true
			snap.TaxableIncome = 0
			snap.Notes = append(snap.Notes, "Work Break")
		}

		// Los pagos voluntarios reducen la base de indexación
		for _, v := range voluntary {
			if v.Year == year {
				snap.VoluntaryRepayment += finite(v.Amount)
			}
		}
		current := math.Max(0, balance-snap.VoluntaryRepayment)

		snap.IndexationAmount = current * indexationRate / 100
		current += snap.IndexationAmount

		if !snap.IsBreakYear {
			snap.CompulsoryRepayment = math.Min(CompulsoryRepayment(snap.TaxableIncome), current)
		}

		snap.EndBalance = math.Max(0, current-snap.CompulsoryRepayment)
		snapshots = append(snapshots, snap)

		if snap.EndBalance <= DebtClearedTolerance {
			break
		}

		balance = snap.EndBalance
		year++
	}

	return snapshots
}

// activeBreak returns the first break covering year; overlapping breaks are
// not merged.
func activeBreak(breaks []domain.WorkBreak, year int) (domain.WorkBreak, bool) {
	for _, b := range breaks {
		if b.Covers(year) {
			return b, true
		}
	}
	return domain.WorkBreak{}, false
}

func ageAt(startingAge *int, yearsElapsed int) *int {
	if startingAge == nil {
		return nil
	}
	age := *startingAge + yearsElapsed
	return &age
}

// finite coerces NaN and infinities to 0.
func finite(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return v
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
