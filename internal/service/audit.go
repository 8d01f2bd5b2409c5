package service

import (
	"context"

	"fintech-admin-be/internal/pkg/logger"
	"fintech-admin-be/pkg/events"
)

// AuditPublisher is the slice of the NATS publisher the services need.
type AuditPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// publishWriteEvent records an admin write on the audit stream. Publish
// failures are logged, never propagated; the write itself already happened.
func publishWriteEvent(ctx context.Context, audit AuditPublisher, log logger.ILogger, entityName, recordId, op string) {
	if audit == nil {
		return
	}
	if err := audit.Publish(ctx, events.NewRecordWritten(entityName, recordId, op)); err != nil {
		log.Warn("audit", "failed to publish write event", map[string]interface{}{
			"entity": entityName, "error": err.Error(),
		})
	}
}
