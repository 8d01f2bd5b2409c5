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

type KycService interface {
	ListKycs(ctx context.Context, req dto.ListRequest) ([]dto.UserKycResponse, bool, error)
	GetKyc(ctx context.Context, id uuid.UUID) (*dto.UserKycResponse, error)
	CreateKyc(ctx context.Context, input map[string]any) (*dto.UserKycResponse, error)
	UpdateKyc(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.UserKycResponse, error)
	DeleteKyc(ctx context.Context, id uuid.UUID) error

	ListDetails(ctx context.Context, req dto.ListRequest) ([]dto.UserKycDetailResponse, bool, error)
	CreateDetail(ctx context.Context, input map[string]any) (*dto.UserKycDetailResponse, error)
	UpdateDetail(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.UserKycDetailResponse, error)
	DeleteDetail(ctx context.Context, id uuid.UUID) error

	ListLevels(ctx context.Context, req dto.ListRequest) ([]dto.KycLevelResponse, bool, error)
	CreateLevel(ctx context.Context, input map[string]any) (*dto.KycLevelResponse, error)
	UpdateLevel(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.KycLevelResponse, error)
	DeleteLevel(ctx context.Context, id uuid.UUID) error
}

type kycService struct {
	uowFactory unitofwork.RepositoryFactory
	fallback   fallback.Provider
	audit      AuditPublisher
	log        logger.ILogger
}

func NewKycService(uowFactory unitofwork.RepositoryFactory, fb fallback.Provider, audit AuditPublisher, log logger.ILogger) KycService {
	return &kycService{
		uowFactory: uowFactory,
		fallback:   fb,
		audit:      audit,
		log:        log,
	}
}

func (s *kycService) publishWrite(ctx context.Context, entityName, recordId, op string) {
	publishWriteEvent(ctx, s.audit, s.log, entityName, recordId, op)
}

func (s *kycService) ListKycs(ctx context.Context, req dto.ListRequest) ([]dto.UserKycResponse, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	kycs, err := uow.KycRepository().FindKycs(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	degraded := false
	if err != nil {
		if !degradedRead(err) {
			return nil, false, err
		}
		s.log.Warn("kyc", "database unreachable, serving fallback kyc records", map[string]interface{}{"error": err.Error()})
		kycs = s.fallback.Kycs()
		degraded = true
	}

	kycs = applyTable(schema.UserKycSchema(), kycs, req)
	out := make([]dto.UserKycResponse, 0, len(kycs))
	for _, k := range kycs {
		out = append(out, toKycResponse(k))
	}
	return out, degraded, nil
}

func (s *kycService) GetKyc(ctx context.Context, id uuid.UUID) (*dto.UserKycResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	kyc, err := uow.KycRepository().FindOneKyc(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	res := toKycResponse(kyc)
	return &res, nil
}

func (s *kycService) CreateKyc(ctx context.Context, input map[string]any) (*dto.UserKycResponse, error) {
	draft, err := applyForm(schema.UserKycSchema(), entity.UserKyc{
		KycLevel: entity.KycTierOne,
		Status:   entity.KycStatusPending,
	}, input)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.KycRepository().CreateKyc(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "user_kycs", draft.Id.String(), "create")

	res := toKycResponse(&draft)
	return &res, nil
}

func (s *kycService) UpdateKyc(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.UserKycResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.KycRepository().FindOneKyc(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}

	draft, err := applyForm(schema.UserKycSchema(), *existing, input)
	if err != nil {
		return nil, err
	}
	if err := uow.KycRepository().UpdateKyc(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "user_kycs", draft.Id.String(), "update")

	res := toKycResponse(&draft)
	return &res, nil
}

func (s *kycService) DeleteKyc(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.KycRepository().DeleteKyc(ctx, id); err != nil {
		return err
	}
	s.publishWrite(ctx, "user_kycs", id.String(), "delete")
	return nil
}

// --- Documents ---

func (s *kycService) ListDetails(ctx context.Context, req dto.ListRequest) ([]dto.UserKycDetailResponse, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	details, err := uow.KycRepository().FindDetails(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	degraded := false
	if err != nil {
		if !degradedRead(err) {
			return nil, false, err
		}
		s.log.Warn("kyc", "database unreachable, serving fallback kyc documents", map[string]interface{}{"error": err.Error()})
		details = s.fallback.KycDetails()
		degraded = true
	}

	details = applyTable(schema.UserKycDetailSchema(), details, req)
	out := make([]dto.UserKycDetailResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toKycDetailResponse(d))
	}
	return out, degraded, nil
}

func (s *kycService) CreateDetail(ctx context.Context, input map[string]any) (*dto.UserKycDetailResponse, error) {
	draft, err := applyForm(schema.UserKycDetailSchema(), entity.UserKycDetail{
		DocumentType: entity.DocumentPassport,
		Status:       entity.KycStatusPending,
	}, input)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.KycRepository().CreateDetail(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "user_kyc_details", draft.Id.String(), "create")

	res := toKycDetailResponse(&draft)
	return &res, nil
}

func (s *kycService) UpdateDetail(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.UserKycDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.KycRepository().FindOneDetail(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}

	draft, err := applyForm(schema.UserKycDetailSchema(), *existing, input)
	if err != nil {
		return nil, err
	}
	if err := uow.KycRepository().UpdateDetail(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "user_kyc_details", draft.Id.String(), "update")

	res := toKycDetailResponse(&draft)
	return &res, nil
}

func (s *kycService) DeleteDetail(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.KycRepository().DeleteDetail(ctx, id); err != nil {
		return err
	}
	s.publishWrite(ctx, "user_kyc_details", id.String(), "delete")
	return nil
}

// --- Levels ---

func (s *kycService) ListLevels(ctx context.Context, req dto.ListRequest) ([]dto.KycLevelResponse, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	levels, err := uow.KycRepository().FindLevels(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	degraded := false
	if err != nil {
		if !degradedRead(err) {
			return nil, false, err
		}
		s.log.Warn("kyc", "database unreachable, serving fallback kyc levels", map[string]interface{}{"error": err.Error()})
		levels = s.fallback.KycLevels()
		degraded = true
	}

	levels = applyTable(schema.KycLevelSchema(), levels, req)
	out := make([]dto.KycLevelResponse, 0, len(levels))
	for _, l := range levels {
		out = append(out, toKycLevelResponse(l))
	}
	return out, degraded, nil
}

func (s *kycService) CreateLevel(ctx context.Context, input map[string]any) (*dto.KycLevelResponse, error) {
	draft, err := applyForm(schema.KycLevelSchema(), entity.KycLevel{Name: entity.KycTierOne, Level: 1}, input)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.KycRepository().CreateLevel(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "kyc_levels", draft.Id.String(), "create")

	res := toKycLevelResponse(&draft)
	return &res, nil
}

func (s *kycService) UpdateLevel(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.KycLevelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.KycRepository().FindOneLevel(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}

	draft, err := applyForm(schema.KycLevelSchema(), *existing, input)
	if err != nil {
		return nil, err
	}
	if err := uow.KycRepository().UpdateLevel(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "kyc_levels", draft.Id.String(), "update")

	res := toKycLevelResponse(&draft)
	return &res, nil
}

func (s *kycService) DeleteLevel(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.KycRepository().DeleteLevel(ctx, id); err != nil {
		return err
	}
	s.publishWrite(ctx, "kyc_levels", id.String(), "delete")
	return nil
}

func toKycResponse(k *entity.UserKyc) dto.UserKycResponse {
	return dto.UserKycResponse{
		Id:        k.Id,
		UserId:    k.UserId,
		KycLevel:  string(k.KycLevel),
		Status:    string(k.Status),
		Remarks:   k.Remarks,
		CreatedAt: k.CreatedAt,
		UpdatedAt: k.UpdatedAt,
	}
}

func toKycDetailResponse(d *entity.UserKycDetail) dto.UserKycDetailResponse {
	return dto.UserKycDetailResponse{
		Id:             d.Id,
		UserId:         d.UserId,
		KycId:          d.KycId,
		DocumentType:   string(d.DocumentType),
		DocumentNumber: d.DocumentNumber,
		DocumentUrl:    d.DocumentUrl,
		Status:         string(d.Status),
		CreatedAt:      d.CreatedAt,
	}
}

func toKycLevelResponse(l *entity.KycLevel) dto.KycLevelResponse {
	return dto.KycLevelResponse{
		Id:           l.Id,
		Name:         string(l.Name),
		Level:        l.Level,
		DailyLimit:   l.DailyLimit,
		MaxBalance:   l.MaxBalance,
		Requirements: l.Requirements,
		CreatedAt:    l.CreatedAt,
	}
}
