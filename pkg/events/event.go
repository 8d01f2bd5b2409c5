package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event types emitted by the back office.
const (
	TypeUserLogin         = "USER_LOGIN"
	TypeRecordWritten     = "RECORD_WRITTEN"
	TypeTransactionStatus = "TRANSACTION_STATUS_CHANGED"
	TypeFallbackActivated = "FALLBACK_ACTIVATED"
)

func NewUserLogin(userId, email string) Event {
	return BaseEvent{
		Type:       TypeUserLogin,
		Data:       map[string]interface{}{"user_id": userId, "email": email},
		OccurredAt: time.Now().UTC(),
	}
}

// NewRecordWritten marks an admin create/update/delete against any entity.
func NewRecordWritten(entityName, recordId, operation string) Event {
	return BaseEvent{
		Type: TypeRecordWritten,
		Data: map[string]interface{}{
			"entity":    entityName,
			"record_id": recordId,
			"operation": operation,
		},
		OccurredAt: time.Now().UTC(),
	}
}

func NewTransactionStatusChanged(reference, oldStatus, newStatus string, amount float64) Event {
	return BaseEvent{
		Type: TypeTransactionStatus,
		Data: map[string]interface{}{
			"reference":  reference,
			"old_status": oldStatus,
			"new_status": newStatus,
			"amount":     amount,
		},
		OccurredAt: time.Now().UTC(),
	}
}

func NewFallbackActivated(reason string) Event {
	return BaseEvent{
		Type:       TypeFallbackActivated,
		Data:       map[string]interface{}{"reason": reason},
		OccurredAt: time.Now().UTC(),
	}
}
