package interfaces

import (
	"context"

	"rede_saude/internal/domain/entities"
)

// IPlanRepository abstracts DynamoDB persistence for the plan catalog.
//
// The checkout only reads plans: either the caller pre-selects one or the
// customer picks from the active list on the first step.
type IPlanRepository interface {
	GetByID(ctx context.Context, id string) (entities.Plan, error)
	ListActive(ctx context.Context) ([]entities.Plan, error)
}
