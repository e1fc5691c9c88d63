package usecase

import (
	"context"
	"errors"
	"strings"

	"rede_saude/internal/domain/entities"
	"rede_saude/internal/usecase/interfaces"
)

var ErrInvalidPlanID = errors.New("invalid plan id")

// IPlanUseCase exposes the read-only plan catalog backing the checkout's
// first step.

type IPlanUseCase interface {
	ListActive(ctx context.Context) ([]entities.Plan, error)
	GetByID(ctx context.Context, id string) (entities.Plan, error)
}

type PlanUseCase struct {
	repo interfaces.IPlanRepository
}

var _ IPlanUseCase = (*PlanUseCase)(nil)

func NewPlanUseCase(repo interfaces.IPlanRepository) *PlanUseCase {
	return &PlanUseCase{repo: repo}
}

func (u *PlanUseCase) ListActive(ctx context.Context) ([]entities.Plan, error) {
	return u.repo.ListActive(ctx)
}

func (u *PlanUseCase) GetByID(ctx context.Context, id string) (entities.Plan, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Plan{}, ErrInvalidPlanID
	}

	plan, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Plan{}, err
	}
	if plan.ID == "" {
		return entities.Plan{}, ErrPlanNotFound
	}
	return plan, nil
}
