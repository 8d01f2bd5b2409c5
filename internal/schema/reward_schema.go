package schema

import (
	"fintech-admin-be/internal/entity"
	"fintech-admin-be/pkg/money"
)

func RewardCriterionSchema() Schema[entity.RewardCriterion] {
	return Schema[entity.RewardCriterion]{
		Entity: "RewardCriterion",
		Fields: []FieldSpec[entity.RewardCriterion]{
			{
				Name: "id", Label: "ID", Kind: FieldText, ReadOnly: true,
				Get: func(r *entity.RewardCriterion) any { return r.Id.String() },
			},
			{
				Name: "name", Label: "Name", Kind: FieldText, Placeholder: "First transfer bonus",
				Get: func(r *entity.RewardCriterion) any { return r.Name },
				Set: func(r *entity.RewardCriterion, v any) { r.Name = v.(string) },
			},
			{
				Name: "description", Label: "Description", Kind: FieldTextarea,
				Get: func(r *entity.RewardCriterion) any { return r.Description },
				Set: func(r *entity.RewardCriterion, v any) { r.Description = v.(string) },
			},
			{
				Name: "rewardAmount", Label: "Reward", Kind: FieldNumber,
				Get: func(r *entity.RewardCriterion) any { return r.RewardAmount },
				Set: func(r *entity.RewardCriterion, v any) { r.RewardAmount = v.(float64) },
			},
			{
				Name: "threshold", Label: "Threshold", Kind: FieldNumber,
				Get: func(r *entity.RewardCriterion) any { return r.Threshold },
				Set: func(r *entity.RewardCriterion, v any) { r.Threshold = v.(float64) },
			},
			{
				Name: "active", Label: "Active", Kind: FieldSwitch,
				Get: func(r *entity.RewardCriterion) any { return r.Active },
				Set: func(r *entity.RewardCriterion, v any) { r.Active = v.(bool) },
			},
		},
		Columns: []ColumnSpec[entity.RewardCriterion]{
			{Key: "name", Header: "Name", Sortable: true, Value: func(r *entity.RewardCriterion) any { return r.Name }},
			{
				Key: "rewardAmount", Header: "Reward", Sortable: true,
				Value:  func(r *entity.RewardCriterion) any { return r.RewardAmount },
				Render: func(r *entity.RewardCriterion) string { return money.Format(r.RewardAmount) },
			},
			{Key: "threshold", Header: "Threshold", Sortable: true, Value: func(r *entity.RewardCriterion) any { return r.Threshold }},
			{Key: "active", Header: "Active", Value: func(r *entity.RewardCriterion) any { return r.Active }},
			{Key: "createdAt", Header: "Created", Sortable: true, Value: func(r *entity.RewardCriterion) any { return r.CreatedAt }},
		},
	}
}
