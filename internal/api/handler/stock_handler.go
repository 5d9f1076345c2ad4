package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freshmart/inventory-api/internal/core/ports"
)

// StockHandler handles the stock summary endpoint.
type StockHandler struct {
	service ports.StockService
}

func NewStockHandler(service ports.StockService) *StockHandler {
	return &StockHandler{service: service}
}

// Summary handles GET /v1/stock/summary, scoped to the requesting identity.
//
// @Summary      Stock summary for the authenticated user's products
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.StockSummary
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /v1/stock/summary [get]
func (h *StockHandler) Summary(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	summary, err := h.service.Summarize(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
