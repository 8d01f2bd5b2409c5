package schema

import (
	"strings"

	"fintech-admin-be/internal/entity"
	"fintech-admin-be/pkg/money"
)

var kycStatusOptions = []string{
	string(entity.KycStatusPending),
	string(entity.KycStatusCompleted),
	string(entity.KycStatusRejected),
}

var kycTierOptions = []string{
	string(entity.KycTierOne),
	string(entity.KycTierTwo),
	string(entity.KycTierThree),
}

func UserKycSchema() Schema[entity.UserKyc] {
	return Schema[entity.UserKyc]{
		Entity: "UserKyc",
		Fields: []FieldSpec[entity.UserKyc]{
			{
				Name: "id", Label: "ID", Kind: FieldText, ReadOnly: true,
				Get: func(k *entity.UserKyc) any { return k.Id.String() },
			},
			{
				Name: "userId", Label: "User ID", Kind: FieldText,
				Get: func(k *entity.UserKyc) any { return k.UserId },
				Set: func(k *entity.UserKyc, v any) { k.UserId = v.(string) },
			},
			{
				Name: "kycLevel", Label: "Level", Kind: FieldSelect, Options: kycTierOptions,
				Get: func(k *entity.UserKyc) any { return string(k.KycLevel) },
				Set: func(k *entity.UserKyc, v any) { k.KycLevel = entity.KycTier(v.(string)) },
			},
			{
				Name: "status", Label: "Status", Kind: FieldSelect, Options: kycStatusOptions,
				Get: func(k *entity.UserKyc) any { return string(k.Status) },
				Set: func(k *entity.UserKyc, v any) { k.Status = entity.KycStatus(v.(string)) },
			},
			{
				Name: "remarks", Label: "Remarks", Kind: FieldTextarea,
				Get: func(k *entity.UserKyc) any { return k.Remarks },
				Set: func(k *entity.UserKyc, v any) { k.Remarks = v.(string) },
			},
		},
		Columns: []ColumnSpec[entity.UserKyc]{
			{Key: "userId", Header: "User ID", Sortable: true, Value: func(k *entity.UserKyc) any { return k.UserId }},
			{Key: "kycLevel", Header: "Level", Sortable: true, Value: func(k *entity.UserKyc) any { return string(k.KycLevel) }},
			{Key: "status", Header: "Status", Sortable: true, Value: func(k *entity.UserKyc) any { return string(k.Status) }},
			{Key: "remarks", Header: "Remarks", Value: func(k *entity.UserKyc) any { return k.Remarks }},
			{Key: "createdAt", Header: "Created", Sortable: true, Value: func(k *entity.UserKyc) any { return k.CreatedAt }},
		},
	}
}

func UserKycDetailSchema() Schema[entity.UserKycDetail] {
	return Schema[entity.UserKycDetail]{
		Entity: "UserKycDetail",
		Fields: []FieldSpec[entity.UserKycDetail]{
			{
				Name: "id", Label: "ID", Kind: FieldText, ReadOnly: true,
				Get: func(d *entity.UserKycDetail) any { return d.Id.String() },
			},
			{
				Name: "userId", Label: "User ID", Kind: FieldText,
				Get: func(d *entity.UserKycDetail) any { return d.UserId },
				Set: func(d *entity.UserKycDetail, v any) { d.UserId = v.(string) },
			},
			{
				Name: "kycId", Label: "KYC ID", Kind: FieldText,
				Get: func(d *entity.UserKycDetail) any { return d.KycId },
				Set: func(d *entity.UserKycDetail, v any) { d.KycId = v.(string) },
			},
			{
				Name: "documentType", Label: "Document Type", Kind: FieldSelect,
				Options: []string{
					string(entity.DocumentPassport),
					string(entity.DocumentNationalId),
					string(entity.DocumentDriversLicense),
					string(entity.DocumentUtilityBill),
				},
				Get: func(d *entity.UserKycDetail) any { return string(d.DocumentType) },
				Set: func(d *entity.UserKycDetail, v any) { d.DocumentType = entity.DocumentType(v.(string)) },
			},
			{
				Name: "documentNumber", Label: "Document Number", Kind: FieldText,
				Get: func(d *entity.UserKycDetail) any { return d.DocumentNumber },
				Set: func(d *entity.UserKycDetail, v any) { d.DocumentNumber = v.(string) },
			},
			{
				Name: "status", Label: "Status", Kind: FieldSelect, Options: kycStatusOptions,
				Get: func(d *entity.UserKycDetail) any { return string(d.Status) },
				Set: func(d *entity.UserKycDetail, v any) { d.Status = entity.KycStatus(v.(string)) },
			},
		},
		Columns: []ColumnSpec[entity.UserKycDetail]{
			{Key: "userId", Header: "User ID", Sortable: true, Value: func(d *entity.UserKycDetail) any { return d.UserId }},
			{Key: "documentType", Header: "Document", Sortable: true, Value: func(d *entity.UserKycDetail) any { return string(d.DocumentType) }},
			{Key: "documentNumber", Header: "Number", Value: func(d *entity.UserKycDetail) any { return d.DocumentNumber }},
			{Key: "status", Header: "Status", Sortable: true, Value: func(d *entity.UserKycDetail) any { return string(d.Status) }},
			{Key: "createdAt", Header: "Created", Sortable: true, Value: func(d *entity.UserKycDetail) any { return d.CreatedAt }},
		},
	}
}

func KycLevelSchema() Schema[entity.KycLevel] {
	return Schema[entity.KycLevel]{
		Entity: "KycLevel",
		Fields: []FieldSpec[entity.KycLevel]{
			{
				Name: "id", Label: "ID", Kind: FieldText, ReadOnly: true,
				Get: func(l *entity.KycLevel) any { return l.Id.String() },
			},
			{
				Name: "name", Label: "Name", Kind: FieldSelect, Options: kycTierOptions,
				Get: func(l *entity.KycLevel) any { return string(l.Name) },
				Set: func(l *entity.KycLevel, v any) { l.Name = entity.KycTier(v.(string)) },
			},
			{
				Name: "level", Label: "Level", Kind: FieldNumber,
				Get: func(l *entity.KycLevel) any { return float64(l.Level) },
				Set: func(l *entity.KycLevel, v any) { l.Level = int(v.(float64)) },
			},
			{
				Name: "dailyLimit", Label: "Daily Limit", Kind: FieldNumber,
				Get: func(l *entity.KycLevel) any { return l.DailyLimit },
				Set: func(l *entity.KycLevel, v any) { l.DailyLimit = v.(float64) },
			},
			{
				Name: "maxBalance", Label: "Max Balance", Kind: FieldNumber,
				Get: func(l *entity.KycLevel) any { return l.MaxBalance },
				Set: func(l *entity.KycLevel, v any) { l.MaxBalance = v.(float64) },
			},
			{
				Name: "requirements", Label: "Requirements", Kind: FieldTextarea,
				Placeholder: "one requirement per line",
				Get: func(l *entity.KycLevel) any { return strings.Join(l.Requirements, "\n") },
				Set: func(l *entity.KycLevel, v any) {
					var reqs []string
					for _, line := range strings.Split(v.(string), "\n") {
						if line = strings.TrimSpace(line); line != "" {
							reqs = append(reqs, line)
						}
					}
					l.Requirements = reqs
				},
			},
		},
		Columns: []ColumnSpec[entity.KycLevel]{
			{Key: "name", Header: "Name", Sortable: true, Value: func(l *entity.KycLevel) any { return string(l.Name) }},
			{Key: "level", Header: "Level", Sortable: true, Value: func(l *entity.KycLevel) any { return l.Level }},
			{
				Key: "dailyLimit", Header: "Daily Limit", Sortable: true,
				Value:  func(l *entity.KycLevel) any { return l.DailyLimit },
				Render: func(l *entity.KycLevel) string { return money.Format(l.DailyLimit) },
			},
			{
				Key: "maxBalance", Header: "Max Balance", Sortable: true,
				Value:  func(l *entity.KycLevel) any { return l.MaxBalance },
				Render: func(l *entity.KycLevel) string { return money.Format(l.MaxBalance) },
			},
			{
				Key: "requirements", Header: "Requirements",
				Value:  func(l *entity.KycLevel) any { return strings.Join(l.Requirements, ", ") },
			},
		},
	}
}
