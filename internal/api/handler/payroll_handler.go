package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nominasoft/hr-system/internal/core/ports"
)

// PayrollHandler handles HTTP requests for payroll.
type PayrollHandler struct {
	service ports.PayrollService
}

func NewPayrollHandler(service ports.PayrollService) *PayrollHandler {
	return &PayrollHandler{service: service}
}

// List handles GET /v1/payroll. `?all=true` lists the whole company's
// payslips and requires an HR role.
//
// @Summary      List payslips
// @Tags         payroll
// @Produce      json
// @Security     BearerAuth
// @Param        all  query     bool  false  "List all company payslips (HR roles only)"
// @Success      200  {array}   domain.Payslip
// @Failure      401  {object}  map[string]string
// @Router       /v1/payroll [get]
func (h *PayrollHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	payslips, err := h.service.List(c.Request().Context(), p, c.QueryParam("all") == "true")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payslips)
}

type payrollRunResponse struct {
	Period   string `json:"period"`
	Enqueued int    `json:"enqueued"`
}

// Run handles POST /v1/payroll/run. Jobs are processed asynchronously; the
// response reports how many were enqueued.
//
// @Summary      Run payroll for a period
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      payrollRunRequest  true  "Payroll period (YYYY-MM)"
// @Success      202   {object}  payrollRunResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/payroll/run [post]
func (h *PayrollHandler) Run(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req payrollRunRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	enqueued, err := h.service.Run(c.Request().Context(), p, req.Period)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, payrollRunResponse{Period: req.Period, Enqueued: enqueued})
}
