package controller

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"fintech-admin-be/internal/dto"
	"fintech-admin-be/internal/pkg/serverutils"
	"fintech-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeTransactionService struct {
	service.TransactionService
	getTransaction func(id uuid.UUID) (*dto.TransactionResponse, error)
}

func (f *fakeTransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*dto.TransactionResponse, error) {
	return f.getTransaction(id)
}

func testToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.NewString(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return signed
}

func newTransactionApp(svc service.TransactionService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewTransactionController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func TestGetTransactionMalformedIdIsBadRequest(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := &fakeTransactionService{
		getTransaction: func(id uuid.UUID) (*dto.TransactionResponse, error) {
			t.Error("service must not be reached with a malformed id")
			return nil, nil
		},
	}
	app := newTransactionApp(svc)

	req := httptest.NewRequest("GET", "/api/transactions/v1/not-a-uuid", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t))
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetTransactionWellFormedIdReachesService(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	want := uuid.New()
	svc := &fakeTransactionService{
		getTransaction: func(id uuid.UUID) (*dto.TransactionResponse, error) {
			assert.Equal(t, want, id)
			return &dto.TransactionResponse{Id: id, Reference: "TXN-1"}, nil
		},
	}
	app := newTransactionApp(svc)

	req := httptest.NewRequest("GET", "/api/transactions/v1/"+want.String(), nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t))
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
