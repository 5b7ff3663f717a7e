package service

import (
	"math"

	"help-projector/domain"
)

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

type ComparisonService struct {
	projectionService *ProjectionService
}

func NewComparisonService(projectionService *ProjectionService) *ComparisonService {
	return &ComparisonService{projectionService: projectionService}
}

// Compare runs the scenario and a baseline without voluntary payments and
// reports what the voluntary payments save.
func (s *ComparisonService) Compare(
	input domain.ProjectionInput,
) (domain.ComparisonResult, error) {

	scenario, err := s.projectionService.Project(input)
	if err != nil {
		return domain.ComparisonResult{}, err
	}

	baselineInput := input
	baselineInput.VoluntaryPayments = nil
	baseline, err := s.projectionService.Project(baselineInput)
	if err != nil {
		return domain.ComparisonResult{}, err
	}

	result := domain.ComparisonResult{
		Scenario: scenario,
		Baseline: baseline,
	}
	result.Savings.IndexationSaved = roundTo2Decimals(
		baseline.Summary.TotalIndexation - scenario.Summary.TotalIndexation,
	)
	result.Savings.TotalPaidChange = roundTo2Decimals(
		scenario.Summary.TotalPaid - baseline.Summary.TotalPaid,
	)
	result.Savings.YearsSaved = len(baseline.Snapshots) - len(scenario.Snapshots)
	result.Savings.BaselineDebtFree = baseline.Summary.DebtFree

	return result, nil
}
