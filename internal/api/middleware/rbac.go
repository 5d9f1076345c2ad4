package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freshmart/inventory-api/internal/core/domain"
)

// RBAC enforces role-based access control. With no roles given, any
// authenticated identity is allowed. The policy is role-only: ownership of
// the resource is never consulted, so any staff member may modify products
// they did not create.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(allowed) == 0 {
				return next(c)
			}
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden: insufficient permissions"})
			}
			return next(c)
		}
	}
}

// CanModify allows managers and staff to create or update resources.
func CanModify() echo.MiddlewareFunc {
	return RBAC(domain.RoleManager, domain.RoleStaff)
}

// CanDelete allows only managers to delete resources.
func CanDelete() echo.MiddlewareFunc {
	return RBAC(domain.RoleManager)
}
