package entity

import (
	"encoding/json"
	"time"
)

// OutboxStatus is the lifecycle state of an outbox event.
// pending -> processing -> published | failed
type OutboxStatus string

const (
	OutboxStatusPending    OutboxStatus = "pending"
	OutboxStatusProcessing OutboxStatus = "processing"
	OutboxStatusPublished  OutboxStatus = "published"
	OutboxStatusFailed     OutboxStatus = "failed"
)

// Event type constants emitted by the domain services.
const (
	EventUserRegistered     = "user.registered"
	EventUserProfileUpdated = "user.profile_updated"
)

// OutboxEvent is written in the same transaction as the domain mutation it
// describes. After creation only the dispatcher mutates it.
type OutboxEvent struct {
	ID          string
	EventType   string
	AggregateID string
	Payload     json.RawMessage
	Status      OutboxStatus
	OccurredAt  time.Time
	PublishedAt *time.Time
	RetryCount  int
	LastError   string
}
