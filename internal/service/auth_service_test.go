package service

import (
	"context"
	"testing"

	"fintech-admin-be/internal/dto"
	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/pkg/apperror"
	"fintech-admin-be/internal/repository/fallback"
	"fintech-admin-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func testUser(t *testing.T, email, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	hashStr := string(hash)
	return &entity.User{
		Id:           uuid.New(),
		Email:        email,
		PasswordHash: &hashStr,
		FullName:     "Test User",
		Status:       entity.UserStatusActive,
		UserGroup:    entity.UserGroupStaff,
	}
}

func newAuthFixture(repo *fakeUserRepo, fb fallback.Provider) AuthService {
	return NewAuthService(&fakeFactory{uow: &fakeUow{users: repo}}, fb, nil, noopLogger{})
}

func TestLoginSuccess(t *testing.T) {
	user := testUser(t, "ops@example.com", "secret123")
	repo := &fakeUserRepo{
		findOneUser: func(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
			return user, nil
		},
	}
	svc := newAuthFixture(repo, &fakeFallback{})

	res, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ops@example.com", Password: "secret123"})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "ops@example.com", res.User.Email)
	// Successful sign-ins land on the activity feed.
	assert.Len(t, repo.activities, 1)
	assert.Equal(t, entity.ActivityLogin, repo.activities[0].Activity)
}

func TestLoginWrongPassword(t *testing.T) {
	user := testUser(t, "ops@example.com", "secret123")
	repo := &fakeUserRepo{
		findOneUser: func(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
			return user, nil
		},
	}
	svc := newAuthFixture(repo, &fakeFallback{})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ops@example.com", Password: "wrong"})

	assert.Equal(t, apperror.KindInvalidCredentials, apperror.KindOf(err))
	assert.Empty(t, repo.activities)
}

func TestLoginUnknownEmailIndistinguishableFromWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{
		findOneUser: func(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
			return nil, apperror.NotFound("user not found")
		},
	}
	svc := newAuthFixture(repo, &fakeFallback{})

	_, errUnknown := svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})

	user := testUser(t, "ops@example.com", "secret123")
	repo.findOneUser = func(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
		return user, nil
	}
	_, errWrong := svc.Login(context.Background(), &dto.LoginRequest{Email: "ops@example.com", Password: "bad"})

	assert.Equal(t, apperror.KindInvalidCredentials, apperror.KindOf(errUnknown))
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestLoginMissingPasswordHash(t *testing.T) {
	user := testUser(t, "ops@example.com", "secret123")
	user.PasswordHash = nil
	repo := &fakeUserRepo{
		findOneUser: func(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
			return user, nil
		},
	}
	svc := newAuthFixture(repo, &fakeFallback{})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ops@example.com", Password: "secret123"})

	assert.Equal(t, apperror.KindInvalidCredentials, apperror.KindOf(err))
}

func TestLoginFallsBackWhenBackendUnavailable(t *testing.T) {
	demo := testUser(t, "demo@example.com", "password123")
	repo := &fakeUserRepo{
		findOneUser: func(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
			return nil, apperror.BackendUnavailable("db down", nil)
		},
	}
	svc := newAuthFixture(repo, &fakeFallback{users: []*entity.User{demo}})

	res, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "Demo@Example.com", Password: "password123"})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	// Degraded logins never write to the activity feed.
	assert.Empty(t, repo.activities)

	// Unknown accounts still get the generic rejection while degraded.
	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "other@example.com", Password: "password123"})
	assert.Equal(t, apperror.KindInvalidCredentials, apperror.KindOf(err))
}

func TestRegisterHashesPasswordAndNormalizesEmail(t *testing.T) {
	var created *entity.User
	repo := &fakeUserRepo{
		createUser: func(ctx context.Context, user *entity.User) error {
			user.Id = uuid.New()
			created = user
			return nil
		},
	}
	svc := newAuthFixture(repo, &fakeFallback{})

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "  New.Staff@Example.COM ",
		Password: "secret123",
		FullName: "New Staff",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new.staff@example.com", created.Email)
	assert.NotNil(t, created.PasswordHash)
	assert.NotEqual(t, "secret123", *created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*created.PasswordHash), []byte("secret123")))
	assert.NotEmpty(t, res.Token)
}

func TestRegisterDuplicateEmailSurfaces(t *testing.T) {
	repo := &fakeUserRepo{
		createUser: func(ctx context.Context, user *entity.User) error {
			return apperror.Duplicate("email already registered")
		},
	}
	svc := newAuthFixture(repo, &fakeFallback{})

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "ops@example.com",
		Password: "secret123",
		FullName: "Dup",
	})

	assert.Equal(t, apperror.KindDuplicate, apperror.KindOf(err))
}
