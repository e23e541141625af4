package usecase

import (
	"context"
	"errors"

	"go-trainer-booking/internal/converter"
	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/domain/entity"
	"go-trainer-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrPlanSlugTaken     = errors.New("a plan with this slug already exists")
	ErrPlanPriceNegative = errors.New("price must not be negative")
)

type PlanUsecase interface {
	ListActive(ctx context.Context) ([]dto.PlanResponse, error)
	ListAll(ctx context.Context) ([]dto.PlanResponse, error)
	Create(ctx context.Context, req *dto.CreatePlanRequest) (*dto.PlanResponse, error)
	Update(ctx context.Context, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error)
}

type planUsecase struct {
	log      *logrus.Logger
	planRepo repository.PlanRepository
}

func NewPlanUsecase(log *logrus.Logger, planRepo repository.PlanRepository) PlanUsecase {
	return &planUsecase{log: log, planRepo: planRepo}
}

func (u *planUsecase) ListActive(ctx context.Context) ([]dto.PlanResponse, error) {
	plans, err := u.planRepo.FindAllActive(ctx)
	if err != nil {
		u.log.Warnf("Failed to list active plans: %+v", err)
		return nil, err
	}
	return converter.PlansToResponses(plans), nil
}

func (u *planUsecase) ListAll(ctx context.Context) ([]dto.PlanResponse, error) {
	plans, err := u.planRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list plans: %+v", err)
		return nil, err
	}
	return converter.PlansToResponses(plans), nil
}

func (u *planUsecase) Create(ctx context.Context, req *dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	if req.Price.IsNegative() {
		return nil, ErrPlanPriceNegative
	}

	plan := &entity.Plan{
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Features:    req.Features,
		Active:      true,
	}
	if req.Active != nil {
		plan.Active = *req.Active
	}

	if err := u.planRepo.Create(ctx, plan); err != nil {
		if isDuplicateKeyError(err, "slug") {
			return nil, ErrPlanSlugTaken
		}
		u.log.Warnf("Failed to create plan: %+v", err)
		return nil, err
	}
	return converter.PlanToResponse(plan), nil
}

func (u *planUsecase) Update(ctx context.Context, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	if req.Price.IsNegative() {
		return nil, ErrPlanPriceNegative
	}

	plan, err := u.planRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	plan.Slug = req.Slug
	plan.Name = req.Name
	plan.Description = req.Description
	plan.Price = req.Price
	plan.Features = req.Features
	if req.Active != nil {
		plan.Active = *req.Active
	}

	if err := u.planRepo.Update(ctx, plan); err != nil {
		if isDuplicateKeyError(err, "slug") {
			return nil, ErrPlanSlugTaken
		}
		u.log.Warnf("Failed to update plan %d: %+v", req.ID, err)
		return nil, err
	}
	return converter.PlanToResponse(plan), nil
}
