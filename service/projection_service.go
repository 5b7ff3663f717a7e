package service

import (
	"log/slog"
	"strconv"

	"github.com/cespare/xxhash/v2"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"help-projector/domain"
	"help-projector/repository"
)

const projectionCacheKeyPrefix = "projection:"

type ProjectionService struct {
	repo  repository.ProjectionRepository
	cache repository.CacheRepository
}

// NewProjectionService creates a new ProjectionService with the given
// repository and cache.
func NewProjectionService(repo repository.ProjectionRepository,
	cache repository.CacheRepository,
) *ProjectionService {
	return &ProjectionService{repo: repo, cache: cache}
}

// Project normalizes the input, runs the simulation and summarizes it.
// Results are memoized on the normalized input.
func (s *ProjectionService) Project(
	input domain.ProjectionInput,
) (domain.ProjectionResult, error) {

	params, nudges, err := NormalizeParameters(input.Parameters)
	if err != nil {
		return domain.ProjectionResult{}, err
	}
	if err := ValidateEvents(input); err != nil {
		return domain.ProjectionResult{}, err
	}
	input.Parameters = params

	key, keyErr := projectionCacheKey(input)
	if keyErr != nil {
		slog.Warn("failed to build projection cache key", "error", keyErr)
	} else if cached, ok := s.lookup(key); ok {
		// los avisos dependen de la entrada original, no de la normalizada
		cached.Nudges = nudges
		return cached, nil
	}

	snapshots := Simulate(params, input.Promotions, input.Reductions, input.Breaks, input.VoluntaryPayments)

	result := domain.ProjectionResult{
		ID:         uuid.New().String(),
		Parameters: params,
		Snapshots:  snapshots,
		Summary:    Summarize(params, snapshots),
		Nudges:     nudges,
	}

	if keyErr == nil {
		s.store(key, result)
	}

	// Guardar el resultado (no crítico si falla)
	if err := s.repo.Save(input, result); err != nil {
		slog.Warn("failed to save projection", "id", result.ID, "error", err)
	}

	return result, nil
}

func (s *ProjectionService) lookup(key string) (domain.ProjectionResult, bool) {
	raw, ok := s.cache.Get(key)
	if !ok {
		return domain.ProjectionResult{}, false
	}
	var result domain.ProjectionResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		slog.Warn("discarding unreadable cached projection", "key", key, "error", err)
		return domain.ProjectionResult{}, false
	}
	slog.Debug("projection cache hit", "key", key)
	return result, true
}

// store caches result without its nudges; they belong to the request.
func (s *ProjectionService) store(key string, result domain.ProjectionResult) {
	result.Nudges = nil
	b, err := json.Marshal(result)
	if err != nil {
		slog.Warn("failed to encode projection for cache", "error", err)
		return
	}
	if err := s.cache.Set(key, string(b)); err != nil {
		slog.Warn("failed to cache projection", "key", key, "error", err)
	}
}

// projectionCacheKey hashes the canonical encoding of a normalized input;
// structurally equal inputs share a key.
func projectionCacheKey(input domain.ProjectionInput) (string, error) {
	b, err := json.Marshal(canonicalInput(input))
	if err != nil {
		return "", err
	}
	return projectionCacheKeyPrefix + strconv.FormatUint(xxhash.Sum64(b), 16), nil
}

// canonicalInput replaces nil event slices with empty ones so that absent
// and empty collections encode the same way.
func canonicalInput(input domain.ProjectionInput) domain.ProjectionInput {
	if input.Promotions == nil {
		input.Promotions = []domain.Promotion{}
	}
	if input.Reductions == nil {
		input.Reductions = []domain.IncomeReduction{}
	}
	if input.Breaks == nil {
		input.Breaks = []domain.WorkBreak{}
	}
	if input.VoluntaryPayments == nil {
		input.VoluntaryPayments = []domain.VoluntaryPayment{}
	}
	return input
}
