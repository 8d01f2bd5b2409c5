package service

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"fintech-admin-be/internal/dto"
	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/pkg/apperror"
	"fintech-admin-be/internal/pkg/logger"
	"fintech-admin-be/internal/repository/fallback"
	"fintech-admin-be/internal/repository/specification"
	"fintech-admin-be/internal/repository/unitofwork"
	"fintech-admin-be/pkg/events"
)

const accessTokenExpiry = 24 * time.Hour

type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	fallback   fallback.Provider
	audit      AuditPublisher
	log        logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, fb fallback.Provider, audit AuditPublisher, log logger.ILogger) AuthService {
	return &authService{
		uowFactory: uowFactory,
		fallback:   fb,
		audit:      audit,
		log:        log,
	}
}

// Login verifies the password against the stored bcrypt hash. A wrong
// password and an unknown email both come back as InvalidCredentials so the
// response does not leak which one failed.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOneUser(ctx, specification.ByEmailInsensitive{Email: req.Email})
	degraded := false
	if err != nil {
		switch apperror.KindOf(err) {
		case apperror.KindNotFound:
			return nil, apperror.InvalidCredentials("invalid email or password")
		case apperror.KindBackendUnavailable:
			user = s.fallbackUser(req.Email)
			if user == nil {
				return nil, apperror.InvalidCredentials("invalid email or password")
			}
			degraded = true
		default:
			return nil, err
		}
	}

	if user.PasswordHash == nil {
		return nil, apperror.InvalidCredentials("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.InvalidCredentials("invalid email or password")
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}

	if !degraded {
		s.recordLogin(ctx, uow, user)
	}
	if s.audit != nil {
		if err := s.audit.Publish(ctx, events.NewUserLogin(user.Id.String(), user.Email)); err != nil {
			s.log.Warn("auth", "failed to publish login event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	user := entity.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: &hashStr,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Status:       entity.UserStatusActive,
		UserGroup:    entity.UserGroupStandard,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().CreateUser(ctx, &user); err != nil {
		return nil, err
	}
	publishWriteEvent(ctx, s.audit, s.log, "users", user.Id.String(), "create")

	token, err := s.signToken(&user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: toUserResponse(&user)}, nil
}

func (s *authService) signToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    user.Id.String(),
		"user_group": string(user.UserGroup),
		"exp":        time.Now().Add(accessTokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return token.SignedString([]byte(secret))
}

func (s *authService) fallbackUser(email string) *entity.User {
	for _, u := range s.fallback.Users() {
		if strings.EqualFold(u.Email, email) {
			return u
		}
	}
	return nil
}

// recordLogin appends to the activity feed, best effort.
func (s *authService) recordLogin(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User) {
	activity := entity.RecentUserActivity{
		UserId:   user.Id.String(),
		Activity: entity.ActivityLogin,
		Detail:   "Back office sign in",
	}
	if err := uow.UserRepository().CreateActivity(ctx, &activity); err != nil {
		s.log.Warn("auth", "failed to record login activity", map[string]interface{}{
			"user_id": user.Id.String(), "error": err.Error(),
		})
	}
}
