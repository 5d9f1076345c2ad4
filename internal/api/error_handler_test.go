package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/freshmart/inventory-api/internal/core/domain"
)

func TestResolveError_DomainMappings(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
	}{
		{domain.ErrProductNotFound, http.StatusNotFound},
		{fmt.Errorf("record sale: %w", domain.ErrProductNotFound), http.StatusNotFound},
		{domain.ErrValidation, http.StatusBadRequest},
		{domain.ErrInvalidQuantity, http.StatusBadRequest},
		{domain.ErrInsufficientStock, http.StatusConflict},
		{fmt.Errorf("record sale: %w", domain.ErrInsufficientStock), http.StatusConflict},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
		{errors.New("mongo blew up"), http.StatusInternalServerError},
		{echo.NewHTTPError(http.StatusTeapot, "short and stout"), http.StatusTeapot},
	}

	e := echo.New()
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		code, _ := resolveError(tc.err, zerolog.Nop(), c)
		if code != tc.wantCode {
			t.Errorf("resolveError(%v) = %d, want %d", tc.err, code, tc.wantCode)
		}
	}
}

func TestResolveError_InternalFailureHidesDetail(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_, msg := resolveError(errors.New("connection string with credentials"), zerolog.Nop(), c)
	if msg != "internal server error" {
		t.Errorf("internal failures must not leak detail, got %q", msg)
	}
}

func TestHTTPErrorHandler_RendersEnvelope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrInsufficientStock, c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "{\"error\":\"insufficient stock\"}\n" {
		t.Errorf("unexpected body: %s", body)
	}
}
