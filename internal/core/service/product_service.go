package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/almacen/stock-api/internal/core/domain"
	"github.com/almacen/stock-api/internal/core/ports"
)

// ProductService implements CRUD orchestration for products. The category
// reference is passed through to the store untouched; referential
// validation is left to the database.
type ProductService struct {
	repo  ports.ProductRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, audit ports.AuditRecorder, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, audit: audit, log: log}
}

func (s *ProductService) GetAll(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput, actor string) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	s.recordAudit(domain.AuditActionCreate, created.ID, actor)
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput, actor string) (*domain.Product, error) {
	patch := ports.ProductPatch{
		Name:        trimmed(input.Name),
		Description: trimmed(input.Description),
		Price:       input.Price,
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.recordAudit(domain.AuditActionUpdate, updated.ID, actor)
	return updated, nil
}

func (s *ProductService) Remove(ctx context.Context, id string, actor string) (*domain.Product, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", removed.ID).Str("name", removed.Name).Msg("product removed")
	s.recordAudit(domain.AuditActionDelete, removed.ID, actor)
	return removed, nil
}

func (s *ProductService) recordAudit(action, entityID, actor string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuditEvent{
		Entity:    "product",
		EntityID:  entityID,
		Action:    action,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
	})
}
