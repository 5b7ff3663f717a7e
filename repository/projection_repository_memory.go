package repository

import (
	"sync"

	"help-projector/domain"
)

// ProjectionRepositoryMemory keeps the projections computed during the
// current process. Nothing outlives the session.
type ProjectionRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.ProjectionResult
}

// NewProjectionRepositoryMemory creates a new in-memory projection repository.
func NewProjectionRepositoryMemory() *ProjectionRepositoryMemory {
	return &ProjectionRepositoryMemory{
		data: []domain.ProjectionResult{},
	}
}

// Save stores the projection result in memory.
func (r *ProjectionRepositoryMemory) Save(
	input domain.ProjectionInput,
	result domain.ProjectionResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, result)
	return nil
}

// Len returns the number of stored projections.
func (r *ProjectionRepositoryMemory) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}
