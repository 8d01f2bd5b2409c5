package service

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"fintech-admin-be/internal/entity"
	"fintech-admin-be/internal/pkg/logger"
	"fintech-admin-be/internal/repository/specification"
	"fintech-admin-be/internal/repository/unitofwork"
)

// TransactionWatchTopic carries watcher notifications, both new arrivals and
// status transitions, to the notification consumer.
const TransactionWatchTopic = "transaction.watch"

// TransactionStatusMessage is the watcher's published payload. OldStatus is
// empty for a newly arrived transaction.
type TransactionStatusMessage struct {
	TransactionId string  `json:"transaction_id"`
	Reference     string  `json:"reference"`
	OldStatus     string  `json:"old_status"`
	NewStatus     string  `json:"new_status"`
	Amount        float64 `json:"amount"`
}

type WatcherService interface {
	Start(ctx context.Context)
	Stop()
}

type watcherService struct {
	uowFactory unitofwork.RepositoryFactory
	pubSub     *gochannel.GoChannel
	log        logger.ILogger
	interval   time.Duration

	// generation increments per sweep; a fetch finishing after a newer
	// sweep has started is stale and its result is dropped.
	generation atomic.Uint64

	mu       sync.Mutex
	known    map[uuid.UUID]entity.TransactionStatus
	primed   bool
	stopOnce sync.Once
	stop     chan struct{}
}

func NewWatcherService(uowFactory unitofwork.RepositoryFactory, pubSub *gochannel.GoChannel, log logger.ILogger, interval time.Duration) WatcherService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &watcherService{
		uowFactory: uowFactory,
		pubSub:     pubSub,
		log:        log,
		interval:   interval,
		known:      make(map[uuid.UUID]entity.TransactionStatus),
		stop:       make(chan struct{}),
	}
}

func (s *watcherService) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		// Prime the baseline immediately instead of waiting a full tick.
		s.sweep(ctx)

		for {
			select {
			case <-ticker.C:
				// Each sweep runs detached so a slow query never blocks
				// the ticker; staleness is handled by the generation.
				go s.sweep(ctx)
			case <-s.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (s *watcherService) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *watcherService) sweep(ctx context.Context) {
	gen := s.generation.Add(1)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	txs, err := uow.TransactionRepository().FindTransactions(ctx, specification.OrderBy{Field: "updated_at", Desc: true})
	if err != nil {
		s.log.Warn("watcher", "poll failed", map[string]interface{}{"error": err.Error()})
		return
	}

	s.applySweep(gen, txs)
}

// applySweep folds one poll result into the known set. Results from a
// superseded generation are discarded whole; a stale snapshot must never
// overwrite a fresher one.
func (s *watcherService) applySweep(gen uint64, txs []*entity.Transaction) {
	if s.generation.Load() != gen {
		s.log.Debug("watcher", "discarding stale poll result", map[string]interface{}{"generation": gen})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation.Load() != gen {
		return
	}

	for _, tx := range txs {
		old, seen := s.known[tx.Id]
		s.known[tx.Id] = tx.TransactionStatus
		if !s.primed {
			continue
		}
		if !seen {
			// Rows appearing after the baseline are announced once; OldStatus
			// stays empty so consumers can tell arrival from transition.
			s.publishChange(tx, "")
			continue
		}
		if old != tx.TransactionStatus {
			s.publishChange(tx, old)
		}
	}
	s.primed = true
}

func (s *watcherService) publishChange(tx *entity.Transaction, old entity.TransactionStatus) {
	payload, err := json.Marshal(TransactionStatusMessage{
		TransactionId: tx.Id.String(),
		Reference:     tx.Reference,
		OldStatus:     string(old),
		NewStatus:     string(tx.TransactionStatus),
		Amount:        tx.Amount,
	})
	if err != nil {
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(TransactionWatchTopic, msg); err != nil {
		s.log.Warn("watcher", "failed to publish status change", map[string]interface{}{
			"reference": tx.Reference, "error": err.Error(),
		})
		return
	}
	event := "transaction status changed"
	if old == "" {
		event = "new transaction detected"
	}
	s.log.Info("watcher", event, map[string]interface{}{
		"reference": tx.Reference, "old": string(old), "new": string(tx.TransactionStatus),
	})
}
