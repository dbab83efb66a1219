package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/almacen/stock-api/internal/core/domain"
	"github.com/almacen/stock-api/internal/core/ports"
)

// CategoryService implements CRUD orchestration for categories.
type CategoryService struct {
	repo  ports.CategoryRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, audit ports.AuditRecorder, log zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, audit: audit, log: log}
}

func (s *CategoryService) GetAll(ctx context.Context) ([]domain.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, input ports.CreateCategoryInput, actor string) (*domain.Category, error) {
	now := time.Now().UTC()
	category := &domain.Category{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, category)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("category_id", created.ID).Str("name", created.Name).Msg("category created")
	s.recordAudit(domain.AuditActionCreate, created.ID, actor)
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, input ports.UpdateCategoryInput, actor string) (*domain.Category, error) {
	patch := ports.CategoryPatch{
		Name:        trimmed(input.Name),
		Description: trimmed(input.Description),
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.recordAudit(domain.AuditActionUpdate, updated.ID, actor)
	return updated, nil
}

func (s *CategoryService) Remove(ctx context.Context, id string, actor string) (*domain.Category, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("category_id", removed.ID).Str("name", removed.Name).Msg("category removed")
	s.recordAudit(domain.AuditActionDelete, removed.ID, actor)
	return removed, nil
}

func (s *CategoryService) recordAudit(action, entityID, actor string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuditEvent{
		Entity:    "category",
		EntityID:  entityID,
		Action:    action,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
	})
}

// trimmed trims a patch field, preserving nil ("not provided").
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
