package service

import (
	"errors"
	"strings"
	"testing"

	"help-projector/domain"
	"help-projector/repository"
)

type MockProjectionRepository struct {
	SaveCalls  int
	ForceError bool
}

func (m *MockProjectionRepository) Save(
	input domain.ProjectionInput,
	result domain.ProjectionResult,
) error {
	m.SaveCalls++
	if m.ForceError {
		return errors.New("save error")
	}
	return nil
}

type failingCache struct{}

func (failingCache) Get(key string) (string, bool)      { return "", false }
func (failingCache) Set(key string, value string) error { return errors.New("cache down") }

func TestProject_Defaults(t *testing.T) {
	mockRepo := &MockProjectionRepository{}
	service := NewProjectionService(mockRepo, repository.NewMemoryCache())

	result, err := service.Project(domain.ProjectionInput{Parameters: domain.DefaultParameters()})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ID == "" {
		t.Error("expected projection id")
	}
	if len(result.Snapshots) == 0 {
		t.Fatal("expected snapshots")
	}
	if !result.Summary.DebtFree || result.Summary.YearsToRepay != len(result.Snapshots) {
		t.Errorf("unexpected summary %+v", result.Summary)
	}
	if result.Summary.FinalAge == nil || *result.Summary.FinalAge != 22+len(result.Snapshots)-1 {
		t.Errorf("unexpected final age %v", result.Summary.FinalAge)
	}
	if len(result.Nudges) != 0 {
		t.Errorf("expected no nudges, got %v", result.Nudges)
	}
	if mockRepo.SaveCalls != 1 {
		t.Errorf("expected repository Save to be called once, got %d", mockRepo.SaveCalls)
	}
}

func TestProject_MemoizesStructurallyEqualInput(t *testing.T) {
	mockRepo := &MockProjectionRepository{}
	cache := repository.NewMemoryCache()
	service := NewProjectionService(mockRepo, cache)

	input := domain.ProjectionInput{
		Parameters:        domain.DefaultParameters(),
		VoluntaryPayments: []domain.VoluntaryPayment{{Year: 2027, Amount: 5000}},
	}

	first, err := service.Project(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// misma estructura, distinto puntero
	again := input
	age := 22
	again.Parameters.StartingAge = &age
	second, err := service.Project(again)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("expected cached projection, got ids %s and %s", first.ID, second.ID)
	}
	if mockRepo.SaveCalls != 1 {
		t.Errorf("expected a single computation, got %d saves", mockRepo.SaveCalls)
	}
	if len(cache.Data) != 1 {
		t.Errorf("expected one cache entry, got %d", len(cache.Data))
	}
	for key := range cache.Data {
		if !strings.HasPrefix(key, "projection:") {
			t.Errorf("unexpected cache key %s", key)
		}
	}

	changed := input
	changed.VoluntaryPayments = []domain.VoluntaryPayment{{Year: 2027, Amount: 6000}}
	third, err := service.Project(changed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if third.ID == first.ID {
		t.Error("expected a new projection for different input")
	}
}

func TestProject_IgnoresUnreadableCacheEntry(t *testing.T) {
	cache := repository.NewMemoryCache()
	service := NewProjectionService(&MockProjectionRepository{}, cache)
	input := domain.ProjectionInput{Parameters: domain.DefaultParameters()}

	key, err := projectionCacheKey(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cache.Data[key] = "{not json"

	result, err := service.Project(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Snapshots) == 0 {
		t.Fatal("expected a fresh projection")
	}
}

func TestProject_StorageFailuresAreNotFatal(t *testing.T) {
	mockRepo := &MockProjectionRepository{ForceError: true}
	service := NewProjectionService(mockRepo, failingCache{})

	result, err := service.Project(domain.ProjectionInput{Parameters: domain.DefaultParameters()})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Snapshots) == 0 {
		t.Error("expected snapshots")
	}
}

func TestProject_ClampsAndNudges(t *testing.T) {
	service := NewProjectionService(&MockProjectionRepository{}, repository.NewMemoryCache())

	params := domain.DefaultParameters()
	params.StartingDebt = 250000
	params.WageGrowthPercent = 25

	result, err := service.Project(domain.ProjectionInput{Parameters: params})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Parameters.StartingDebt != MaxStartingDebt {
		t.Errorf("expected debt clamped to %.0f, got %.0f", MaxStartingDebt, result.Parameters.StartingDebt)
	}
	if result.Snapshots[0].StartBalance != MaxStartingDebt {
		t.Errorf("expected simulation to use clamped debt")
	}
	if len(result.Nudges) != 2 {
		t.Fatalf("expected 2 nudges, got %v", result.Nudges)
	}
}

func TestProject_ZeroDebt(t *testing.T) {
	mockRepo := &MockProjectionRepository{}
	service := NewProjectionService(mockRepo, repository.NewMemoryCache())

	params := domain.DefaultParameters()
	params.StartingDebt = 0

	result, err := service.Project(domain.ProjectionInput{Parameters: params})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Snapshots) != 0 {
		t.Errorf("expected no snapshots, got %d", len(result.Snapshots))
	}
	if !result.Summary.DebtFree {
		t.Error("expected debt free")
	}
	if len(result.Nudges) != 1 || result.Nudges[0].Level != domain.NudgeInfo {
		t.Errorf("expected info nudge, got %v", result.Nudges)
	}
}

func TestProject_InvalidInput(t *testing.T) {
	mockRepo := &MockProjectionRepository{}
	service := NewProjectionService(mockRepo, repository.NewMemoryCache())

	params := domain.DefaultParameters()
	params.StartingIncome = -1

	if _, err := service.Project(domain.ProjectionInput{Parameters: params}); err == nil {
		t.Error("expected error for negative income")
	}

	_, err := service.Project(domain.ProjectionInput{
		Parameters: domain.DefaultParameters(),
		Breaks:     []domain.WorkBreak{{StartYear: 2028, DurationYears: 0}},
	})
	if err == nil {
		t.Error("expected error for zero-length work break")
	}

	if mockRepo.SaveCalls != 0 {
		t.Errorf("repository Save should NOT be called")
	}
}

func TestProject_NudgesFollowEachRequest(t *testing.T) {
	service := NewProjectionService(&MockProjectionRepository{}, repository.NewMemoryCache())

	capped := domain.ProjectionInput{Parameters: domain.DefaultParameters()}
	capped.Parameters.StartingDebt = 200000
	atCap := capped
	atCap.Parameters.StartingDebt = MaxStartingDebt

	first, err := service.Project(capped)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := service.Project(atCap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected both requests to share the cached projection")
	}
	if len(first.Nudges) != 1 || first.Nudges[0].Field != "startingDebt" {
		t.Errorf("expected debt cap nudge, got %+v", first.Nudges)
	}
	if len(second.Nudges) != 0 {
		t.Errorf("expected no nudges for in-range debt, got %+v", second.Nudges)
	}

	// orden inverso en un servicio nuevo
	service = NewProjectionService(&MockProjectionRepository{}, repository.NewMemoryCache())
	if _, err := service.Project(atCap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	third, err := service.Project(capped)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(third.Nudges) != 1 || third.Nudges[0].Level != domain.NudgeWarning {
		t.Errorf("expected debt cap nudge on cached projection, got %+v", third.Nudges)
	}
}

func TestProjectionCacheKey_NilAndEmptyEventsMatch(t *testing.T) {
	absent := domain.ProjectionInput{Parameters: domain.DefaultParameters()}
	empty := domain.ProjectionInput{
		Parameters:        domain.DefaultParameters(),
		Promotions:        []domain.Promotion{},
		Reductions:        []domain.IncomeReduction{},
		Breaks:            []domain.WorkBreak{},
		VoluntaryPayments: []domain.VoluntaryPayment{},
	}

	a, err := projectionCacheKey(absent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := projectionCacheKey(empty)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("expected equal keys, got %s and %s", a, b)
	}
}

func TestProject_ExtremePromotions(t *testing.T) {
	service := NewProjectionService(&MockProjectionRepository{}, repository.NewMemoryCache())

	input := domain.ProjectionInput{Parameters: domain.DefaultParameters()}
	input.Promotions = []domain.Promotion{{Year: 2026, PercentIncrease: 1e308}}
	if _, err := service.Project(input); err == nil {
		t.Fatal("expected oversized promotion to be rejected")
	}

	input.Promotions = make([]domain.Promotion, MaxEventsPerKind)
	for i := range input.Promotions {
		input.Promotions[i] = domain.Promotion{Year: 2026, PercentIncrease: MaxPromotionPercent}
	}
	result, err := service.Project(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range result.Snapshots {
		if !isFinite(s.TaxableIncome) || !isFinite(s.BaselineIncome) {
			t.Fatalf("income overflowed in %d: %v", s.Year, s.TaxableIncome)
		}
	}
}
