package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/almacen/stock-api/internal/core/domain"
	"github.com/almacen/stock-api/internal/core/ports"
)

const defaultAuditLimit = 50

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService backed by the given repository.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Record persists a single audit event. Called from dispatcher workers, not
// from the request path.
func (s *auditService) Record(ctx context.Context, event domain.AuditEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}

	s.log.Debug().
		Str("entity", event.Entity).
		Str("entity_id", event.EntityID).
		Str("action", event.Action).
		Msg("audit event recorded")

	return nil
}

// Recent returns the newest events, most recent first.
func (s *auditService) Recent(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	if limit <= 0 || limit > defaultAuditLimit {
		limit = defaultAuditLimit
	}
	return s.repo.FindRecent(ctx, limit)
}
