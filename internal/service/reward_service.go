package service

import (
	"context"

	"github.com/google/uuid"

	"fintech-admin-be/internal/dto"
	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/pkg/logger"
	"fintech-admin-be/internal/repository/fallback"
	"fintech-admin-be/internal/repository/specification"
	"fintech-admin-be/internal/repository/unitofwork"
	"fintech-admin-be/internal/schema"
)

type RewardService interface {
	ListCriteria(ctx context.Context, req dto.ListRequest) ([]dto.RewardCriterionResponse, bool, error)
	GetCriterion(ctx context.Context, id uuid.UUID) (*dto.RewardCriterionResponse, error)
	CreateCriterion(ctx context.Context, input map[string]any) (*dto.RewardCriterionResponse, error)
	UpdateCriterion(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.RewardCriterionResponse, error)
	DeleteCriterion(ctx context.Context, id uuid.UUID) error
}

type rewardService struct {
	uowFactory unitofwork.RepositoryFactory
	fallback   fallback.Provider
	audit      AuditPublisher
	log        logger.ILogger
}

func NewRewardService(uowFactory unitofwork.RepositoryFactory, fb fallback.Provider, audit AuditPublisher, log logger.ILogger) RewardService {
	return &rewardService{
		uowFactory: uowFactory,
		fallback:   fb,
		audit:      audit,
		log:        log,
	}
}

func (s *rewardService) ListCriteria(ctx context.Context, req dto.ListRequest) ([]dto.RewardCriterionResponse, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	criteria, err := uow.RewardRepository().FindCriteria(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	degraded := false
	if err != nil {
		if !degradedRead(err) {
			return nil, false, err
		}
		s.log.Warn("reward", "database unreachable, serving fallback criteria", map[string]interface{}{"error": err.Error()})
		criteria = s.fallback.RewardCriteria()
		degraded = true
	}

	criteria = applyTable(schema.RewardCriterionSchema(), criteria, req)
	out := make([]dto.RewardCriterionResponse, 0, len(criteria))
	for _, c := range criteria {
		out = append(out, toCriterionResponse(c))
	}
	return out, degraded, nil
}

func (s *rewardService) GetCriterion(ctx context.Context, id uuid.UUID) (*dto.RewardCriterionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	criterion, err := uow.RewardRepository().FindOneCriterion(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	res := toCriterionResponse(criterion)
	return &res, nil
}

func (s *rewardService) CreateCriterion(ctx context.Context, input map[string]any) (*dto.RewardCriterionResponse, error) {
	draft, err := applyForm(schema.RewardCriterionSchema(), entity.RewardCriterion{Active: true}, input)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.RewardRepository().CreateCriterion(ctx, &draft); err != nil {
		return nil, err
	}
	publishWriteEvent(ctx, s.audit, s.log, "reward_criteria", draft.Id.String(), "create")

	res := toCriterionResponse(&draft)
	return &res, nil
}

func (s *rewardService) UpdateCriterion(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.RewardCriterionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.RewardRepository().FindOneCriterion(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}

	draft, err := applyForm(schema.RewardCriterionSchema(), *existing, input)
	if err != nil {
		return nil, err
	}
	if err := uow.RewardRepository().UpdateCriterion(ctx, &draft); err != nil {
		return nil, err
	}
	publishWriteEvent(ctx, s.audit, s.log, "reward_criteria", draft.Id.String(), "update")

	res := toCriterionResponse(&draft)
	return &res, nil
}

func (s *rewardService) DeleteCriterion(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.RewardRepository().DeleteCriterion(ctx, id); err != nil {
		return err
	}
	publishWriteEvent(ctx, s.audit, s.log, "reward_criteria", id.String(), "delete")
	return nil
}

func toCriterionResponse(c *entity.RewardCriterion) dto.RewardCriterionResponse {
	return dto.RewardCriterionResponse{
		Id:           c.Id,
		Name:         c.Name,
		Description:  c.Description,
		RewardAmount: c.RewardAmount,
		Threshold:    c.Threshold,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
