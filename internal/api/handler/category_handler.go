package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/almacen/stock-api/internal/core/domain"
	"github.com/almacen/stock-api/internal/core/ports"
)

// CategoryHandler handles HTTP requests for category CRUD.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// actor returns the authenticated username attached by the Auth middleware,
// empty on public routes.
func actor(c echo.Context) string {
	username, _ := c.Get("username").(string)
	return username
}

// GetAll handles GET /api/categories.
//
// @Summary      List all categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}   categoryResponse
// @Failure      500  {object}  mensajeResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) GetAll(c echo.Context) error {
	categories, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, mensajeResponse{Mensaje: "Error al obtener las categorías"})
	}
	return c.JSON(http.StatusOK, toCategoryListResponse(categories))
}

// GetByID handles GET /api/categories/:id.
//
// @Summary      Get a category by id
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  categoryResponse
// @Failure      404  {object}  mensajeResponse
// @Failure      500  {object}  mensajeResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c echo.Context) error {
	id := c.Param("id")
	category, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, mensajeResponse{Mensaje: "Categoría no encontrada"})
		}
		return c.JSON(http.StatusInternalServerError, mensajeResponse{Mensaje: fmt.Sprintf("Error al obtener la categoría %s", id)})
	}
	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// Create handles POST /api/categories (admin only).
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCategoryRequest  true  "Category details"
// @Success      201   {object}  categoryResponse
// @Failure      400   {object}  validationErrorResponse
// @Failure      409   {object}  mensajeResponse
// @Failure      500   {object}  mensajeResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse{Errors: strings.Split(err.Error(), "; ")})
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	}, actor(c))
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return c.JSON(http.StatusConflict, mensajeResponse{Mensaje: "El nombre de la categoría ya existe"})
		}
		return c.JSON(http.StatusInternalServerError, mensajeResponse{Mensaje: "Error al crear la categoría"})
	}

	return c.JSON(http.StatusCreated, toCategoryResponse(created))
}

// Update handles PUT /api/categories/:id (admin only). The update is partial:
// absent fields keep their stored values.
//
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Category id"
// @Param        body  body      updateCategoryRequest  true  "Fields to update"
// @Success      200   {object}  categoryResponse
// @Failure      400   {object}  mensajeResponse
// @Failure      404   {object}  mensajeResponse
// @Failure      500   {object}  mensajeResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse{Errors: strings.Split(err.Error(), "; ")})
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	}, actor(c))
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, mensajeResponse{Mensaje: "Categoría no encontrada"})
		}
		if errors.Is(err, domain.ErrDuplicateName) {
			return c.JSON(http.StatusBadRequest, mensajeResponse{Mensaje: "El nombre de la categoría ya existe"})
		}
		return c.JSON(http.StatusInternalServerError, mensajeResponse{Mensaje: "Error al actualizar la categoría"})
	}

	return c.JSON(http.StatusOK, toCategoryResponse(updated))
}

// Remove handles DELETE /api/categories/:id (admin only).
//
// @Summary      Delete a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  mensajeResponse
// @Failure      404  {object}  mensajeResponse
// @Failure      500  {object}  mensajeResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Remove(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.service.Remove(c.Request().Context(), id, actor(c)); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, mensajeResponse{Mensaje: "Categoría no encontrada"})
		}
		return c.JSON(http.StatusInternalServerError, mensajeResponse{Mensaje: "Error al eliminar la categoría"})
	}

	return c.JSON(http.StatusOK, mensajeResponse{Mensaje: fmt.Sprintf("Categoría con ID %s eliminada exitosamente", id)})
}
