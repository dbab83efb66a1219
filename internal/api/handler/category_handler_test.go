package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/almacen/stock-api/internal/core/domain"
	"github.com/almacen/stock-api/internal/core/ports"
)

type stubCategoryService struct {
	categories []domain.Category
	category   *domain.Category
	err        error

	gotActor string
	gotInput ports.CreateCategoryInput
	gotPatch ports.UpdateCategoryInput
}

func (s *stubCategoryService) GetAll(context.Context) ([]domain.Category, error) {
	return s.categories, s.err
}

func (s *stubCategoryService) GetByID(context.Context, string) (*domain.Category, error) {
	return s.category, s.err
}

func (s *stubCategoryService) Create(_ context.Context, input ports.CreateCategoryInput, actor string) (*domain.Category, error) {
	s.gotInput, s.gotActor = input, actor
	return s.category, s.err
}

func (s *stubCategoryService) Update(_ context.Context, _ string, input ports.UpdateCategoryInput, actor string) (*domain.Category, error) {
	s.gotPatch, s.gotActor = input, actor
	return s.category, s.err
}

func (s *stubCategoryService) Remove(_ context.Context, _ string, actor string) (*domain.Category, error) {
	s.gotActor = actor
	return s.category, s.err
}

func sampleCategory() *domain.Category {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Category{
		ID:          "665f0c1a2b3c4d5e6f708090",
		Name:        "Bebidas",
		Description: "Refrescos y jugos",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCategoryHandler_GetAll(t *testing.T) {
	svc := &stubCategoryService{categories: []domain.Category{*sampleCategory()}}
	h := NewCategoryHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/categories", "")

	if err := h.GetAll(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var out []categoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Bebidas" {
		t.Fatalf("unexpected list: %+v", out)
	}
}

func TestCategoryHandler_GetByID_NotFound(t *testing.T) {
	h := NewCategoryHandler(&stubCategoryService{err: domain.ErrCategoryNotFound})

	c, rec := newTestContext(t, http.MethodGet, "/api/categories/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.GetByID(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["mensaje"] != "Categoría no encontrada" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestCategoryHandler_Create(t *testing.T) {
	svc := &stubCategoryService{category: sampleCategory()}
	h := NewCategoryHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/categories",
		`{"name":"Bebidas","description":"Refrescos y jugos"}`)
	c.Set("username", "admin")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.gotActor != "admin" {
		t.Fatalf("expected actor from context, got %q", svc.gotActor)
	}
	if svc.gotInput.Name != "Bebidas" {
		t.Fatalf("service received wrong input: %+v", svc.gotInput)
	}
}

func TestCategoryHandler_Create_DuplicateName(t *testing.T) {
	h := NewCategoryHandler(&stubCategoryService{err: domain.ErrDuplicateName})

	c, rec := newTestContext(t, http.MethodPost, "/api/categories", `{"name":"Bebidas"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["mensaje"] != "El nombre de la categoría ya existe" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestCategoryHandler_Create_Validation(t *testing.T) {
	h := NewCategoryHandler(&stubCategoryService{})

	c, rec := newTestContext(t, http.MethodPost, "/api/categories", `{"name":"ab"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "name must be at least 3 characters") {
		t.Fatalf("expected validation message, got %s", rec.Body.String())
	}
}

func TestCategoryHandler_Update_DuplicateNameIsBadRequest(t *testing.T) {
	h := NewCategoryHandler(&stubCategoryService{err: domain.ErrDuplicateName})

	c, rec := newTestContext(t, http.MethodPut, "/api/categories/abc", `{"name":"Bebidas"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	// update maps duplicate names to 400, unlike create's 409
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["mensaje"] != "El nombre de la categoría ya existe" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestCategoryHandler_Update_NotFound(t *testing.T) {
	h := NewCategoryHandler(&stubCategoryService{err: domain.ErrCategoryNotFound})

	c, rec := newTestContext(t, http.MethodPut, "/api/categories/abc", `{"name":"Nueva"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCategoryHandler_Remove(t *testing.T) {
	svc := &stubCategoryService{category: sampleCategory()}
	h := NewCategoryHandler(svc)

	c, rec := newTestContext(t, http.MethodDelete, "/api/categories/665f0c1a2b3c4d5e6f708090", "")
	c.SetParamNames("id")
	c.SetParamValues("665f0c1a2b3c4d5e6f708090")
	c.Set("username", "admin")

	if err := h.Remove(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["mensaje"] != "Categoría con ID 665f0c1a2b3c4d5e6f708090 eliminada exitosamente" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestCategoryHandler_Remove_NotFound(t *testing.T) {
	h := NewCategoryHandler(&stubCategoryService{err: domain.ErrCategoryNotFound})

	c, rec := newTestContext(t, http.MethodDelete, "/api/categories/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Remove(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["mensaje"] != "Categoría no encontrada" {
		t.Fatalf("unexpected body: %v", body)
	}
}
