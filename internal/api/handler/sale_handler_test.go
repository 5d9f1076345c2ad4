package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/freshmart/inventory-api/internal/core/domain"
	"github.com/freshmart/inventory-api/internal/core/ports"
)

type stubSaleService struct {
	recordFn func(ctx context.Context, in ports.RecordSaleInput) (*domain.Sale, error)
	listFn   func(ctx context.Context, userID string) ([]*domain.Sale, error)
}

func (s *stubSaleService) Record(ctx context.Context, in ports.RecordSaleInput) (*domain.Sale, error) {
	return s.recordFn(ctx, in)
}

func (s *stubSaleService) ListByRecorder(ctx context.Context, userID string) ([]*domain.Sale, error) {
	return s.listFn(ctx, userID)
}

func newSaleContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(http.MethodGet, "/v1/sales", nil)
	} else {
		req = httptest.NewRequest(http.MethodPost, "/v1/sales", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "cashier_1")
	c.Set("role", domain.RoleCashier)
	return c, rec
}

func TestSaleHandler_Record_Success(t *testing.T) {
	stub := &stubSaleService{
		recordFn: func(_ context.Context, in ports.RecordSaleInput) (*domain.Sale, error) {
			if in.ProductID != "p-1" || in.Quantity != 3 || in.RecorderID != "cashier_1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Sale{ID: "s-1", ProductID: in.ProductID, Quantity: in.Quantity, TotalAmount: 30, UserID: in.RecorderID}, nil
		},
	}
	handler := NewSaleHandler(stub)

	c, rec := newSaleContext(t, `{"product_id":"p-1","quantity":3}`)
	if err := handler.Record(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total_amount"] != float64(30) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestSaleHandler_Record_RejectsNonPositiveQuantity(t *testing.T) {
	stub := &stubSaleService{
		recordFn: func(_ context.Context, _ ports.RecordSaleInput) (*domain.Sale, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	handler := NewSaleHandler(stub)

	for _, body := range []string{
		`{"product_id":"p-1","quantity":0}`,
		`{"product_id":"p-1","quantity":-2}`,
		`{"quantity":1}`,
	} {
		c, _ := newSaleContext(t, body)
		err := handler.Record(c)

		var he *echo.HTTPError
		if err == nil {
			t.Fatalf("expected error for body %s", body)
		}
		if ok := asEchoError(err, &he); !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for body %s, got %v", body, err)
		}
	}
}

func TestSaleHandler_Record_PropagatesDomainErrors(t *testing.T) {
	stub := &stubSaleService{
		recordFn: func(_ context.Context, _ ports.RecordSaleInput) (*domain.Sale, error) {
			return nil, domain.ErrInsufficientStock
		},
	}
	handler := NewSaleHandler(stub)

	c, _ := newSaleContext(t, `{"product_id":"p-1","quantity":5}`)
	err := handler.Record(c)
	if err != domain.ErrInsufficientStock {
		// The central error handler maps this to 409; the handler itself
		// must pass it through untouched.
		t.Fatalf("expected ErrInsufficientStock passthrough, got %v", err)
	}
}

func TestSaleHandler_List_UsesAuthenticatedRecorder(t *testing.T) {
	stub := &stubSaleService{
		listFn: func(_ context.Context, userID string) ([]*domain.Sale, error) {
			if userID != "cashier_1" {
				t.Fatalf("expected recorder cashier_1, got %q", userID)
			}
			return []*domain.Sale{{ID: "s-1", UserID: userID}}, nil
		},
	}
	handler := NewSaleHandler(stub)

	c, rec := newSaleContext(t, "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSaleHandler_MissingClaims(t *testing.T) {
	stub := &stubSaleService{
		listFn: func(_ context.Context, _ string) ([]*domain.Sale, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	handler := NewSaleHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/sales", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	// No claims set: the auth middleware never ran.

	err := handler.List(c)
	var he *echo.HTTPError
	if ok := asEchoError(err, &he); !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func asEchoError(err error, target **echo.HTTPError) bool {
	he, ok := err.(*echo.HTTPError)
	if !ok {
		return false
	}
	*target = he
	return true
}
