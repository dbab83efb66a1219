package ports

import (
	"context"

	"github.com/almacen/stock-api/internal/core/domain"
)

// AuditRecorder is the write side exposed to the catalog services. The
// dispatcher implements it; Enqueue never blocks the caller beyond the
// worker channel buffer.
type AuditRecorder interface {
	Enqueue(event domain.AuditEvent)
}

// AuditService persists and queries audit events.
type AuditService interface {
	Record(ctx context.Context, event domain.AuditEvent) error
	Recent(ctx context.Context, limit int) ([]domain.AuditEvent, error)
}

// AuditRepository defines persistence operations for the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
	FindRecent(ctx context.Context, limit int) ([]domain.AuditEvent, error)
}
