package repository

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
)

type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Payload     json.RawMessage `db:"payload"`
	Topic       string          `db:"topic"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

// Notification event types, one per lifecycle transition the surrounding
// system cares about.
const (
	EventOrderDistributed = "order_distributed"
	EventProposalAccepted = "proposal_accepted"
	EventOrderFinalized   = "order_finalized"
)

// NotificationPayload is the message written for the notification
// collaborator: which event, which order, which printers it affects.
type NotificationPayload struct {
	EventType          string    `json:"event_type"`
	OrderID            string    `json:"order_id"`
	AffectedPrinterIDs []string  `json:"affected_printer_ids,omitempty"`
	ChosenPrinterID    string    `json:"chosen_printer_id,omitempty"`
	OccurredAt         time.Time `json:"occurred_at"`
}
