package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/almacen/stock-api/internal/core/domain"
)

func invokeErrorHandler(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestHTTPErrorHandler_EchoErrorPassthrough(t *testing.T) {
	rec := invokeErrorHandler(t, echo.NewHTTPError(http.StatusUnauthorized, "No token provided"))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No token provided") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Credenciales inválidas"},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests, "Demasiados intentos, intente más tarde"},
		{domain.ErrUserExists, http.StatusConflict, "El usuario o email ya existe"},
		{domain.ErrCategoryNotFound, http.StatusNotFound, "Categoría no encontrada"},
		{domain.ErrProductNotFound, http.StatusNotFound, "Producto no encontrado"},
		{domain.ErrDuplicateName, http.StatusConflict, "El nombre ya existe"},
	}

	for _, tc := range tests {
		rec := invokeErrorHandler(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), tc.msg) {
			t.Fatalf("%v: expected %q, got %s", tc.err, tc.msg, rec.Body.String())
		}
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("store lookup"), domain.ErrCategoryNotFound)

	rec := invokeErrorHandler(t, wrapped)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped error, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_UnexpectedErrorHidesDetails(t *testing.T) {
	rec := invokeErrorHandler(t, errors.New("mongo: socket closed unexpectedly"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "socket") {
		t.Fatalf("internal detail leaked: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "internal server error") {
		t.Fatalf("expected generic message, got %s", rec.Body.String())
	}
}
