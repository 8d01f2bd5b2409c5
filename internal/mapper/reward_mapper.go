package mapper

import (
	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/model"
	"fintech-admin-be/pkg/money"
)

type RewardMapper struct{}

func NewRewardMapper() *RewardMapper {
	return &RewardMapper{}
}

func (m *RewardMapper) ToEntity(r *model.RewardCriterion) *entity.RewardCriterion {
	if r == nil {
		return nil
	}
	return &entity.RewardCriterion{
		Id:           r.Id,
		Name:         r.Name,
		Description:  r.Description,
		RewardAmount: money.FromMinor(r.RewardAmount),
		Threshold:    r.Threshold,
		Active:       r.Active,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (m *RewardMapper) ToModel(r *entity.RewardCriterion) *model.RewardCriterion {
	if r == nil {
		return nil
	}
	return &model.RewardCriterion{
		Id:           r.Id,
		Name:         r.Name,
		Description:  r.Description,
		RewardAmount: money.ToMinor(r.RewardAmount),
		Threshold:    r.Threshold,
		Active:       r.Active,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (m *RewardMapper) ToEntities(rewards []*model.RewardCriterion) []*entity.RewardCriterion {
	entities := make([]*entity.RewardCriterion, len(rewards))
	for i, r := range rewards {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
