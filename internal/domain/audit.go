package domain

import "time"

const (
	EntityTypeUser    = "user"
	EntityTypeListing = "listing"
	EntityTypeReview  = "review"

	ActionTypeCreate = "create"
	ActionTypeUpdate = "update"
	ActionTypeDelete = "delete"
)

type AuditLog struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Action     string    `json:"action"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"createdAt"`
}

type AuditLogRepository interface {
	Append(entry *AuditLog) error
	FindRecent(limit int) ([]*AuditLog, error)
}
