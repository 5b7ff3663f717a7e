package repository

import "help-projector/domain"

type ProjectionRepository interface {
	Save(input domain.ProjectionInput, result domain.ProjectionResult) error
}
