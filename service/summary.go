package service

import "help-projector/domain"

// Summarize derives the headline figures of a projection. An empty sequence
// means there was nothing to repay and counts as debt free.
func Summarize(params domain.SimulationParameters, snapshots []domain.YearSnapshot) domain.Summary {
	summary := domain.Summary{
		FinalYear: params.FirstYear,
		FinalAge:  params.StartingAge,
	}
	if len(snapshots) == 0 {
		// no timeline means nothing was owed: debt free, not "not yet repaid"
		summary.DebtFree = true
		return summary
	}

	for _, s := range snapshots {
		summary.TotalCompulsory += s.CompulsoryRepayment
		summary.TotalVoluntary += s.VoluntaryRepayment
		summary.TotalIndexation += s.IndexationAmount
	}
	summary.TotalPaid = summary.TotalCompulsory + summary.TotalVoluntary

	last := snapshots[len(snapshots)-1]
	summary.FinalYear = last.Year
	summary.FinalAge = last.Age
	summary.DebtFree = last.EndBalance <= DebtClearedTolerance
	if summary.DebtFree {
		summary.YearsToRepay = last.Year - params.FirstYear + 1
	}

	return summary
}
