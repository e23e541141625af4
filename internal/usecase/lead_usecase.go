package usecase

import (
	"context"

	"go-trainer-booking/internal/converter"
	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/domain/entity"
	"go-trainer-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type LeadUsecase interface {
	// Create registers a consulting-plan signup from the landing page.
	Create(ctx context.Context, req *dto.CreateLeadRequest) (*dto.LeadResponse, error)
	ListAll(ctx context.Context) ([]dto.LeadResponse, error)
}

type leadUsecase struct {
	log      *logrus.Logger
	leadRepo repository.LeadRepository
	planRepo repository.PlanRepository
}

func NewLeadUsecase(log *logrus.Logger, leadRepo repository.LeadRepository, planRepo repository.PlanRepository) LeadUsecase {
	return &leadUsecase{log: log, leadRepo: leadRepo, planRepo: planRepo}
}

func (u *leadUsecase) Create(ctx context.Context, req *dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	plan, err := u.planRepo.FindBySlug(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	if !plan.Active {
		return nil, ErrPlanInactive
	}

	lead := &entity.Lead{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Instagram: req.Instagram,
		Notes:     req.Notes,
		PlanID:    plan.Slug,
	}
	if err := u.leadRepo.Create(ctx, lead); err != nil {
		u.log.Warnf("Failed to create lead: %+v", err)
		return nil, err
	}

	u.log.Infof("Lead created: id=%d, plan=%s", lead.ID, plan.Slug)
	return converter.LeadToResponse(lead), nil
}

func (u *leadUsecase) ListAll(ctx context.Context) ([]dto.LeadResponse, error) {
	leads, err := u.leadRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list leads: %+v", err)
		return nil, err
	}
	return converter.LeadsToResponses(leads), nil
}
