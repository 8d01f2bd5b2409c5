package service

import (
	"context"
	"testing"

	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateUserStoresCanonicalEmail(t *testing.T) {
	var created *entity.User
	repo := &fakeUserRepo{
		createUser: func(ctx context.Context, u *entity.User) error {
			created = u
			return nil
		},
	}
	svc := NewUserService(&fakeFactory{uow: &fakeUow{users: repo}}, nil, nil, noopLogger{})

	res, err := svc.CreateUser(context.Background(), map[string]any{
		"fullName": "Demo User",
		"email":    "  Demo@Example.COM ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "demo@example.com", created.Email)
	assert.Equal(t, "demo@example.com", res.Email)
}

func TestUpdateUserStoresCanonicalEmail(t *testing.T) {
	existing := &entity.User{Id: uuid.New(), Email: "old@example.com", FullName: "Old Name"}
	var updated *entity.User
	repo := &fakeUserRepo{
		findOneUser: func(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
			return existing, nil
		},
		updateUser: func(ctx context.Context, u *entity.User) error {
			updated = u
			return nil
		},
	}
	svc := NewUserService(&fakeFactory{uow: &fakeUow{users: repo}}, nil, nil, noopLogger{})

	_, err := svc.UpdateUser(context.Background(), existing.Id, map[string]any{"email": "New.Address@Example.com"})

	assert.NoError(t, err)
	assert.Equal(t, "new.address@example.com", updated.Email)
	assert.Equal(t, "Old Name", updated.FullName)
}
