package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/freshmart/inventory-api/internal/core/domain"
)

func invokeWithRole(t *testing.T, mw echo.MiddlewareFunc, role string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRBAC_EmptyRolesAllowsAnyAuthenticated(t *testing.T) {
	mw := RBAC()
	for _, role := range []string{domain.RoleManager, domain.RoleStaff, domain.RoleCashier} {
		if rec := invokeWithRole(t, mw, role); rec.Code != http.StatusOK {
			t.Errorf("role %q: expected 200, got %d", role, rec.Code)
		}
	}
}

func TestRBAC_AllowedRole(t *testing.T) {
	mw := RBAC(domain.RoleManager, domain.RoleStaff)

	if rec := invokeWithRole(t, mw, domain.RoleManager); rec.Code != http.StatusOK {
		t.Errorf("manager: expected 200, got %d", rec.Code)
	}
	if rec := invokeWithRole(t, mw, domain.RoleStaff); rec.Code != http.StatusOK {
		t.Errorf("staff: expected 200, got %d", rec.Code)
	}
}

func TestRBAC_DeniedRole(t *testing.T) {
	mw := RBAC(domain.RoleManager)

	if rec := invokeWithRole(t, mw, domain.RoleStaff); rec.Code != http.StatusForbidden {
		t.Errorf("staff: expected 403, got %d", rec.Code)
	}
	if rec := invokeWithRole(t, mw, ""); rec.Code != http.StatusForbidden {
		t.Errorf("missing role: expected 403, got %d", rec.Code)
	}
}

func TestCanDelete_OnlyManager(t *testing.T) {
	mw := CanDelete()

	if rec := invokeWithRole(t, mw, domain.RoleManager); rec.Code != http.StatusOK {
		t.Errorf("manager: expected 200, got %d", rec.Code)
	}
	for _, role := range []string{domain.RoleStaff, domain.RoleCashier} {
		if rec := invokeWithRole(t, mw, role); rec.Code != http.StatusForbidden {
			t.Errorf("role %q: expected 403, got %d", role, rec.Code)
		}
	}
}

func TestCanModify_ManagerAndStaff(t *testing.T) {
	mw := CanModify()

	for _, role := range []string{domain.RoleManager, domain.RoleStaff} {
		if rec := invokeWithRole(t, mw, role); rec.Code != http.StatusOK {
			t.Errorf("role %q: expected 200, got %d", role, rec.Code)
		}
	}
	if rec := invokeWithRole(t, mw, domain.RoleCashier); rec.Code != http.StatusForbidden {
		t.Errorf("cashier: expected 403, got %d", rec.Code)
	}
}
