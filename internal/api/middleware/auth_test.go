package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, header string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := Auth(testSecret)(next)(c)
	return c, err
}

func TestAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"id":       "u1",
		"username": "alice",
		"role":     "admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	c, err := runAuth(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected pass-through, got %v", err)
	}
	if c.Get("username") != "alice" {
		t.Fatalf("expected username in context, got %v", c.Get("username"))
	}
	if c.Get("role") != "admin" {
		t.Fatalf("expected role in context, got %v", c.Get("role"))
	}
	if c.Get("user_id") != "u1" {
		t.Fatalf("expected user_id in context, got %v", c.Get("user_id"))
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := runAuth(t, "")
	assertHTTPError(t, err, http.StatusUnauthorized, "No token provided")
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Basic abc123", "just-a-token"} {
		_, err := runAuth(t, header)
		assertHTTPError(t, err, http.StatusUnauthorized, "No token provided")
	}
}

func TestAuth_InvalidSignature(t *testing.T) {
	token := signToken(t, "wrong-secret", jwt.MapClaims{
		"username": "mallory",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	_, err := runAuth(t, "Bearer "+token)
	assertHTTPError(t, err, http.StatusForbidden, "Invalid token or expired")
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"username": "alice",
		"exp":      time.Now().Add(-time.Minute).Unix(),
	})

	_, err := runAuth(t, "Bearer "+token)
	assertHTTPError(t, err, http.StatusForbidden, "Invalid token or expired")
}

func TestAuth_RejectsUnexpectedAlgorithm(t *testing.T) {
	// alg=none tokens must not be accepted
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"username": "mallory",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	_, authErr := runAuth(t, "Bearer "+token)
	assertHTTPError(t, authErr, http.StatusForbidden, "Invalid token or expired")
}

func assertHTTPError(t *testing.T, err error, code int, message string) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	if he.Code != code {
		t.Fatalf("expected status %d, got %d", code, he.Code)
	}
	if he.Message != message {
		t.Fatalf("expected message %q, got %v", message, he.Message)
	}
}
