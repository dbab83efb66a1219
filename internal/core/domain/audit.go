package domain

import "time"

// Audit actions recorded for catalog mutations.
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// AuditEvent records a single mutation on a catalog entity. Events are
// written asynchronously; losing one never fails the originating request.
type AuditEvent struct {
	Entity    string    `json:"entity" bson:"entity"`
	EntityID  string    `json:"entity_id" bson:"entity_id"`
	Action    string    `json:"action" bson:"action"`
	Actor     string    `json:"actor" bson:"actor"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
