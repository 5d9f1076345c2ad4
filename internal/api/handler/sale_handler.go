package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freshmart/inventory-api/internal/core/ports"
)

// SaleHandler handles HTTP requests for the sale ledger.
type SaleHandler struct {
	service ports.SaleService
}

func NewSaleHandler(service ports.SaleService) *SaleHandler {
	return &SaleHandler{service: service}
}

// List handles GET /v1/sales — the authenticated user's sales, newest first.
//
// @Summary      List sales recorded by the authenticated user
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Sale
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /v1/sales [get]
func (h *SaleHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	sales, err := h.service.ListByRecorder(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sales)
}

// Record handles POST /v1/sales. Available to any authenticated identity:
// cashiers sell inventory they did not create.
//
// @Summary      Record a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordSaleRequest  true  "Sale details"
// @Success      201   {object}  domain.Sale
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/sales [post]
func (h *SaleHandler) Record(c echo.Context) error {
	var req recordSaleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	sale, err := h.service.Record(c.Request().Context(), ports.RecordSaleInput{
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		RecorderID: userID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sale)
}
