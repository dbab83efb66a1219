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

// ProductHandler handles HTTP requests for product CRUD.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// GetAll handles GET /api/products.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}   productResponse
// @Failure      500  {object}  mensajeResponse
// @Router       /api/products [get]
func (h *ProductHandler) GetAll(c echo.Context) error {
	products, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, mensajeResponse{Mensaje: "Error al obtener los productos"})
	}
	return c.JSON(http.StatusOK, toProductListResponse(products))
}

// GetByID handles GET /api/products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  mensajeResponse
// @Failure      500  {object}  mensajeResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c echo.Context) error {
	id := c.Param("id")
	product, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, mensajeResponse{Mensaje: "Producto no encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, mensajeResponse{Mensaje: fmt.Sprintf("Error al obtener el producto %s", id)})
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Create handles POST /api/products (admin only). The category reference is
// not pre-validated; a dangling reference is the store's concern.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  validationErrorResponse
// @Failure      409   {object}  mensajeResponse
// @Failure      500   {object}  mensajeResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse{Errors: strings.Split(err.Error(), "; ")})
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
		CategoryID:  req.CategoryID,
	}, actor(c))
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return c.JSON(http.StatusConflict, mensajeResponse{Mensaje: "El nombre del producto ya existe"})
		}
		return c.JSON(http.StatusInternalServerError, mensajeResponse{Mensaje: "Error al crear el producto"})
	}

	return c.JSON(http.StatusCreated, toProductResponse(created))
}

// Update handles PUT /api/products/:id (admin only). Partial update.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  mensajeResponse
// @Failure      404   {object}  mensajeResponse
// @Failure      500   {object}  mensajeResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse{Errors: strings.Split(err.Error(), "; ")})
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	}, actor(c))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, mensajeResponse{Mensaje: "Producto no encontrado"})
		}
		if errors.Is(err, domain.ErrDuplicateName) {
			return c.JSON(http.StatusBadRequest, mensajeResponse{Mensaje: "El nombre del producto ya existe"})
		}
		return c.JSON(http.StatusInternalServerError, mensajeResponse{Mensaje: "Error al actualizar el producto"})
	}

	return c.JSON(http.StatusOK, toProductResponse(updated))
}

// Remove handles DELETE /api/products/:id (admin only).
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  mensajeResponse
// @Failure      404  {object}  mensajeResponse
// @Failure      500  {object}  mensajeResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Remove(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.service.Remove(c.Request().Context(), id, actor(c)); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, mensajeResponse{Mensaje: "Producto no encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, mensajeResponse{Mensaje: "Error al eliminar el producto"})
	}

	return c.JSON(http.StatusOK, mensajeResponse{Mensaje: fmt.Sprintf("Producto con ID %s eliminado exitosamente", id)})
}
