package mapper

import (
	"encoding/json"

	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/model"
	"fintech-admin-be/pkg/money"

	"gorm.io/datatypes"
)

type KycMapper struct{}

func NewKycMapper() *KycMapper {
	return &KycMapper{}
}

func (m *KycMapper) ToEntity(k *model.UserKyc) *entity.UserKyc {
	if k == nil {
		return nil
	}
	return &entity.UserKyc{
		Id:        k.Id,
		UserId:    k.UserId,
		KycLevel:  entity.KycTier(k.KycLevel),
		Status:    entity.KycStatus(k.Status),
		Remarks:   k.Remarks,
		CreatedAt: k.CreatedAt,
		UpdatedAt: k.UpdatedAt,
	}
}

func (m *KycMapper) ToModel(k *entity.UserKyc) *model.UserKyc {
	if k == nil {
		return nil
	}
	return &model.UserKyc{
		Id:        k.Id,
		UserId:    k.UserId,
		KycLevel:  string(k.KycLevel),
		Status:    string(k.Status),
		Remarks:   k.Remarks,
		CreatedAt: k.CreatedAt,
		UpdatedAt: k.UpdatedAt,
	}
}

func (m *KycMapper) ToEntities(kycs []*model.UserKyc) []*entity.UserKyc {
	entities := make([]*entity.UserKyc, len(kycs))
	for i, k := range kycs {
		entities[i] = m.ToEntity(k)
	}
	return entities
}

func (m *KycMapper) DetailToEntity(d *model.UserKycDetail) *entity.UserKycDetail {
	if d == nil {
		return nil
	}
	return &entity.UserKycDetail{
		Id:             d.Id,
		UserId:         d.UserId,
		KycId:          d.KycId,
		DocumentType:   entity.DocumentType(d.DocumentType),
		DocumentNumber: d.DocumentNumber,
		DocumentUrl:    d.DocumentUrl,
		Status:         entity.KycStatus(d.Status),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func (m *KycMapper) DetailToModel(d *entity.UserKycDetail) *model.UserKycDetail {
	if d == nil {
		return nil
	}
	return &model.UserKycDetail{
		Id:             d.Id,
		UserId:         d.UserId,
		KycId:          d.KycId,
		DocumentType:   string(d.DocumentType),
		DocumentNumber: d.DocumentNumber,
		DocumentUrl:    d.DocumentUrl,
		Status:         string(d.Status),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func (m *KycMapper) DetailToEntities(details []*model.UserKycDetail) []*entity.UserKycDetail {
	entities := make([]*entity.UserKycDetail, len(details))
	for i, d := range details {
		entities[i] = m.DetailToEntity(d)
	}
	return entities
}

// Level mappers. Requirements round-trip through the jsonb column; limits
// cross the minor-unit boundary here.

func (m *KycMapper) LevelToEntity(l *model.KycLevel) *entity.KycLevel {
	if l == nil {
		return nil
	}
	var requirements []string
	if len(l.Requirements) > 0 {
		_ = json.Unmarshal(l.Requirements, &requirements)
	}
	return &entity.KycLevel{
		Id:           l.Id,
		Name:         entity.KycTier(l.Name),
		Level:        l.Level,
		DailyLimit:   money.FromMinor(l.DailyLimit),
		MaxBalance:   money.FromMinor(l.MaxBalance),
		Requirements: requirements,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func (m *KycMapper) LevelToModel(l *entity.KycLevel) *model.KycLevel {
	if l == nil {
		return nil
	}
	requirements, _ := json.Marshal(l.Requirements)
	return &model.KycLevel{
		Id:           l.Id,
		Name:         string(l.Name),
		Level:        l.Level,
		DailyLimit:   money.ToMinor(l.DailyLimit),
		MaxBalance:   money.ToMinor(l.MaxBalance),
		Requirements: datatypes.JSON(requirements),
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func (m *KycMapper) LevelToEntities(levels []*model.KycLevel) []*entity.KycLevel {
	entities := make([]*entity.KycLevel, len(levels))
	for i, l := range levels {
		entities[i] = m.LevelToEntity(l)
	}
	return entities
}
