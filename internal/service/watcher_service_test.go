package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fintech-admin-be/internal/entity"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newWatcherFixture(t *testing.T) (*watcherService, <-chan *message.Message) {
	t.Helper()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	msgs, err := pubSub.Subscribe(context.Background(), TransactionWatchTopic)
	assert.NoError(t, err)

	svc := NewWatcherService(nil, pubSub, noopLogger{}, time.Minute).(*watcherService)
	return svc, msgs
}

func receiveStatusMessage(t *testing.T, msgs <-chan *message.Message) *TransactionStatusMessage {
	t.Helper()
	select {
	case msg := <-msgs:
		msg.Ack()
		var payload TransactionStatusMessage
		assert.NoError(t, json.Unmarshal(msg.Payload, &payload))
		return &payload
	case <-time.After(2 * time.Second):
		t.Fatal("expected a status change message")
		return nil
	}
}

func assertNoMessage(t *testing.T, msgs <-chan *message.Message) {
	t.Helper()
	select {
	case msg := <-msgs:
		t.Fatalf("unexpected message: %s", msg.Payload)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcherFirstSweepPrimesWithoutPublishing(t *testing.T) {
	svc, msgs := newWatcherFixture(t)
	tx := &entity.Transaction{Id: uuid.New(), Reference: "TXN-1", TransactionStatus: entity.TransactionStatusPending}

	gen := svc.generation.Add(1)
	svc.applySweep(gen, []*entity.Transaction{tx})

	assertNoMessage(t, msgs)
}

func TestWatcherPublishesOnStatusChange(t *testing.T) {
	svc, msgs := newWatcherFixture(t)
	id := uuid.New()
	pending := &entity.Transaction{Id: id, Reference: "TXN-1", TransactionStatus: entity.TransactionStatusPending, Amount: 5000}

	gen := svc.generation.Add(1)
	svc.applySweep(gen, []*entity.Transaction{pending})

	successful := &entity.Transaction{Id: id, Reference: "TXN-1", TransactionStatus: entity.TransactionStatusSuccessful, Amount: 5000}
	gen = svc.generation.Add(1)
	svc.applySweep(gen, []*entity.Transaction{successful})

	payload := receiveStatusMessage(t, msgs)
	assert.Equal(t, id.String(), payload.TransactionId)
	assert.Equal(t, string(entity.TransactionStatusPending), payload.OldStatus)
	assert.Equal(t, string(entity.TransactionStatusSuccessful), payload.NewStatus)
	assert.Equal(t, 5000.0, payload.Amount)
}

func TestWatcherIgnoresUnchangedRows(t *testing.T) {
	svc, msgs := newWatcherFixture(t)
	id := uuid.New()
	tx := &entity.Transaction{Id: id, Reference: "TXN-1", TransactionStatus: entity.TransactionStatusPending}

	gen := svc.generation.Add(1)
	svc.applySweep(gen, []*entity.Transaction{tx})

	gen = svc.generation.Add(1)
	svc.applySweep(gen, []*entity.Transaction{tx})

	assertNoMessage(t, msgs)
}

func TestWatcherAnnouncesNewArrivalsOnce(t *testing.T) {
	svc, msgs := newWatcherFixture(t)
	tx := &entity.Transaction{Id: uuid.New(), Reference: "TXN-1", TransactionStatus: entity.TransactionStatusPending}

	gen := svc.generation.Add(1)
	svc.applySweep(gen, []*entity.Transaction{tx})

	fresh := &entity.Transaction{Id: uuid.New(), Reference: "TXN-2", TransactionStatus: entity.TransactionStatusPending, Amount: 750}
	gen = svc.generation.Add(1)
	svc.applySweep(gen, []*entity.Transaction{tx, fresh})

	payload := receiveStatusMessage(t, msgs)
	assert.Equal(t, fresh.Id.String(), payload.TransactionId)
	assert.Equal(t, "", payload.OldStatus)
	assert.Equal(t, string(entity.TransactionStatusPending), payload.NewStatus)

	// The arrival is one-shot; the same row in the next sweep is silent.
	gen = svc.generation.Add(1)
	svc.applySweep(gen, []*entity.Transaction{tx, fresh})
	assertNoMessage(t, msgs)
}

func TestWatcherDiscardsStaleSweep(t *testing.T) {
	svc, msgs := newWatcherFixture(t)
	id := uuid.New()
	pending := &entity.Transaction{Id: id, Reference: "TXN-1", TransactionStatus: entity.TransactionStatusPending}
	successful := &entity.Transaction{Id: id, Reference: "TXN-1", TransactionStatus: entity.TransactionStatusSuccessful}

	gen := svc.generation.Add(1)
	svc.applySweep(gen, []*entity.Transaction{pending})

	// A slow poll (staleGen) is overtaken by a newer sweep before it lands.
	staleGen := svc.generation.Add(1)
	newerGen := svc.generation.Add(1)

	svc.applySweep(newerGen, []*entity.Transaction{successful})
	payload := receiveStatusMessage(t, msgs)
	assert.Equal(t, string(entity.TransactionStatusSuccessful), payload.NewStatus)

	// The stale snapshot still carries PENDING; applying it must not
	// regress the known state or publish anything.
	svc.applySweep(staleGen, []*entity.Transaction{pending})
	assertNoMessage(t, msgs)
	assert.Equal(t, entity.TransactionStatusSuccessful, svc.known[id])
}
