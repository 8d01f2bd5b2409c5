package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTransactionFixture(repo *fakeTxRepo) TransactionService {
	return NewTransactionService(&fakeFactory{uow: &fakeUow{txs: repo}}, nil, nil, noopLogger{})
}

func TestCreateTransactionAssignsUniqueReference(t *testing.T) {
	repo := &fakeTxRepo{}
	svc := newTransactionFixture(repo)

	first, err := svc.CreateTransaction(context.Background(), map[string]any{"amount": 150.0, "userId": "u-1"})
	assert.NoError(t, err)
	_, err = svc.CreateTransaction(context.Background(), map[string]any{"amount": 75.0, "userId": "u-2"})
	assert.NoError(t, err)

	assert.Len(t, repo.created, 2)
	assert.True(t, strings.HasPrefix(repo.created[0].Reference, "TXN-"))
	assert.NotEmpty(t, repo.created[1].Reference)
	assert.NotEqual(t, repo.created[0].Reference, repo.created[1].Reference)
	assert.Equal(t, repo.created[0].Reference, first.Reference)
}

func TestCreateTransactionIgnoresClientReference(t *testing.T) {
	repo := &fakeTxRepo{}
	svc := newTransactionFixture(repo)

	_, err := svc.CreateTransaction(context.Background(), map[string]any{"reference": "TXN-FORGED", "amount": 10.0})

	assert.NoError(t, err)
	assert.Len(t, repo.created, 1)
	assert.NotEqual(t, "TXN-FORGED", repo.created[0].Reference)
	assert.NotEmpty(t, repo.created[0].Reference)
}
