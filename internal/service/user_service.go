package service

import (
	"context"

	"github.com/google/uuid"

	"fintech-admin-be/internal/dto"
	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/pkg/apperror"
	"fintech-admin-be/internal/pkg/logger"
	"fintech-admin-be/internal/repository/fallback"
	"fintech-admin-be/internal/repository/specification"
	"fintech-admin-be/internal/repository/unitofwork"
	"fintech-admin-be/internal/schema"
)

type UserService interface {
	ListUsers(ctx context.Context, req dto.ListRequest) ([]dto.UserResponse, bool, error)
	GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	CreateUser(ctx context.Context, input map[string]any) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error

	ListAuths(ctx context.Context, req dto.ListRequest) ([]dto.UserAuthResponse, bool, error)
	CreateAuth(ctx context.Context, input map[string]any) (*dto.UserAuthResponse, error)
	UpdateAuth(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.UserAuthResponse, error)
	DeleteAuth(ctx context.Context, id uuid.UUID) error

	ListActivities(ctx context.Context, req dto.ListRequest) ([]dto.RecentActivityResponse, bool, error)
	CreateActivity(ctx context.Context, input map[string]any) (*dto.RecentActivityResponse, error)
	UpdateActivity(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.RecentActivityResponse, error)
	DeleteActivity(ctx context.Context, id uuid.UUID) error

	ListReferrals(ctx context.Context, req dto.ListRequest) ([]dto.UserReferralResponse, bool, error)
	CreateReferral(ctx context.Context, input map[string]any) (*dto.UserReferralResponse, error)
	UpdateReferral(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.UserReferralResponse, error)
	DeleteReferral(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	fallback   fallback.Provider
	audit      AuditPublisher
	log        logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, fb fallback.Provider, audit AuditPublisher, log logger.ILogger) UserService {
	return &userService{
		uowFactory: uowFactory,
		fallback:   fb,
		audit:      audit,
		log:        log,
	}
}

// degradedRead decides whether an error means "serve the fallback dataset".
func degradedRead(err error) bool {
	return apperror.KindOf(err) == apperror.KindBackendUnavailable
}

func (s *userService) publishWrite(ctx context.Context, entityName, recordId, op string) {
	publishWriteEvent(ctx, s.audit, s.log, entityName, recordId, op)
}

// --- Users ---

func (s *userService) ListUsers(ctx context.Context, req dto.ListRequest) ([]dto.UserResponse, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindUsers(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	degraded := false
	if err != nil {
		if !degradedRead(err) {
			return nil, false, err
		}
		s.log.Warn("user", "database unreachable, serving fallback users", map[string]interface{}{"error": err.Error()})
		users = s.fallback.Users()
		degraded = true
	}

	users = applyTable(schema.UserSchema(), users, req)
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, degraded, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOneUser(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	res := toUserResponse(user)
	return &res, nil
}

func (s *userService) CreateUser(ctx context.Context, input map[string]any) (*dto.UserResponse, error) {
	draft, err := applyForm(schema.UserSchema(), entity.User{Status: entity.UserStatusActive, UserGroup: entity.UserGroupStandard}, input)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().CreateUser(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "users", draft.Id.String(), "create")

	res := toUserResponse(&draft)
	return &res, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindOneUser(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}

	draft, err := applyForm(schema.UserSchema(), *existing, input)
	if err != nil {
		return nil, err
	}
	if err := uow.UserRepository().UpdateUser(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "users", draft.Id.String(), "update")

	res := toUserResponse(&draft)
	return &res, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().DeleteUser(ctx, id); err != nil {
		return err
	}
	s.publishWrite(ctx, "users", id.String(), "delete")
	return nil
}

// --- Auth records ---

func (s *userService) ListAuths(ctx context.Context, req dto.ListRequest) ([]dto.UserAuthResponse, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	auths, err := uow.UserRepository().FindAuths(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	degraded := false
	if err != nil {
		if !degradedRead(err) {
			return nil, false, err
		}
		s.log.Warn("user", "database unreachable, serving fallback auth records", map[string]interface{}{"error": err.Error()})
		auths = s.fallback.Auths()
		degraded = true
	}

	auths = applyTable(schema.UserAuthSchema(), auths, req)
	out := make([]dto.UserAuthResponse, 0, len(auths))
	for _, a := range auths {
		out = append(out, toAuthResponse(a))
	}
	return out, degraded, nil
}

func (s *userService) CreateAuth(ctx context.Context, input map[string]any) (*dto.UserAuthResponse, error) {
	draft, err := applyForm(schema.UserAuthSchema(), entity.UserAuth{}, input)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().CreateAuth(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "user_auths", draft.Id.String(), "create")

	res := toAuthResponse(&draft)
	return &res, nil
}

func (s *userService) UpdateAuth(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.UserAuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindOneAuth(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}

	draft, err := applyForm(schema.UserAuthSchema(), *existing, input)
	if err != nil {
		return nil, err
	}
	if err := uow.UserRepository().UpdateAuth(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "user_auths", draft.Id.String(), "update")

	res := toAuthResponse(&draft)
	return &res, nil
}

func (s *userService) DeleteAuth(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().DeleteAuth(ctx, id); err != nil {
		return err
	}
	s.publishWrite(ctx, "user_auths", id.String(), "delete")
	return nil
}

// --- Activities ---

func (s *userService) ListActivities(ctx context.Context, req dto.ListRequest) ([]dto.RecentActivityResponse, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	activities, err := uow.UserRepository().FindActivities(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	degraded := false
	if err != nil {
		if !degradedRead(err) {
			return nil, false, err
		}
		s.log.Warn("user", "database unreachable, serving fallback activities", map[string]interface{}{"error": err.Error()})
		activities = s.fallback.Activities()
		degraded = true
	}

	activities = applyTable(schema.RecentActivitySchema(), activities, req)
	out := make([]dto.RecentActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, toActivityResponse(a))
	}
	return out, degraded, nil
}

func (s *userService) CreateActivity(ctx context.Context, input map[string]any) (*dto.RecentActivityResponse, error) {
	draft, err := applyForm(schema.RecentActivitySchema(), entity.RecentUserActivity{}, input)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().CreateActivity(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "recent_user_activities", draft.Id.String(), "create")

	res := toActivityResponse(&draft)
	return &res, nil
}

func (s *userService) UpdateActivity(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.RecentActivityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindOneActivity(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}

	draft, err := applyForm(schema.RecentActivitySchema(), *existing, input)
	if err != nil {
		return nil, err
	}
	if err := uow.UserRepository().UpdateActivity(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "recent_user_activities", draft.Id.String(), "update")

	res := toActivityResponse(&draft)
	return &res, nil
}

func (s *userService) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().DeleteActivity(ctx, id); err != nil {
		return err
	}
	s.publishWrite(ctx, "recent_user_activities", id.String(), "delete")
	return nil
}

// --- Referrals ---

func (s *userService) ListReferrals(ctx context.Context, req dto.ListRequest) ([]dto.UserReferralResponse, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	referrals, err := uow.UserRepository().FindReferrals(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	degraded := false
	if err != nil {
		if !degradedRead(err) {
			return nil, false, err
		}
		s.log.Warn("user", "database unreachable, serving fallback referrals", map[string]interface{}{"error": err.Error()})
		referrals = s.fallback.Referrals()
		degraded = true
	}

	referrals = applyTable(schema.UserReferralSchema(), referrals, req)
	out := make([]dto.UserReferralResponse, 0, len(referrals))
	for _, r := range referrals {
		out = append(out, toReferralResponse(r))
	}
	return out, degraded, nil
}

func (s *userService) CreateReferral(ctx context.Context, input map[string]any) (*dto.UserReferralResponse, error) {
	draft, err := applyForm(schema.UserReferralSchema(), entity.UserReferral{Status: entity.ReferralStatusPending}, input)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().CreateReferral(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "user_referrals", draft.Id.String(), "create")

	res := toReferralResponse(&draft)
	return &res, nil
}

func (s *userService) UpdateReferral(ctx context.Context, id uuid.UUID, input map[string]any) (*dto.UserReferralResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindOneReferral(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}

	draft, err := applyForm(schema.UserReferralSchema(), *existing, input)
	if err != nil {
		return nil, err
	}
	if err := uow.UserRepository().UpdateReferral(ctx, &draft); err != nil {
		return nil, err
	}
	s.publishWrite(ctx, "user_referrals", draft.Id.String(), "update")

	res := toReferralResponse(&draft)
	return &res, nil
}

func (s *userService) DeleteReferral(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().DeleteReferral(ctx, id); err != nil {
		return err
	}
	s.publishWrite(ctx, "user_referrals", id.String(), "delete")
	return nil
}

// --- DTO conversion ---

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:            u.Id,
		Email:         u.Email,
		FullName:      u.FullName,
		Phone:         u.Phone,
		Status:        string(u.Status),
		UserGroup:     string(u.UserGroup),
		EmailVerified: u.EmailVerified,
		PhoneVerified: u.PhoneVerified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func toAuthResponse(a *entity.UserAuth) dto.UserAuthResponse {
	return dto.UserAuthResponse{
		Id:               a.Id,
		UserId:           a.UserId,
		TwoFactorEnabled: a.TwoFactorEnabled,
		DeviceId:         a.DeviceId,
		LastLoginAt:      a.LastLoginAt,
		CreatedAt:        a.CreatedAt,
	}
}

func toActivityResponse(a *entity.RecentUserActivity) dto.RecentActivityResponse {
	return dto.RecentActivityResponse{
		Id:        a.Id,
		UserId:    a.UserId,
		Activity:  string(a.Activity),
		Detail:    a.Detail,
		IpAddress: a.IpAddress,
		UserAgent: a.UserAgent,
		CreatedAt: a.CreatedAt,
	}
}

func toReferralResponse(r *entity.UserReferral) dto.UserReferralResponse {
	return dto.UserReferralResponse{
		Id:             r.Id,
		UserId:         r.UserId,
		ReferredUserId: r.ReferredUserId,
		ReferralCode:   r.ReferralCode,
		Status:         string(r.Status),
		RewardAmount:   r.RewardAmount,
		CreatedAt:      r.CreatedAt,
	}
}
