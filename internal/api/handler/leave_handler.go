package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nominasoft/hr-system/internal/core/domain"
	"github.com/nominasoft/hr-system/internal/core/ports"
)

// LeaveHandler handles HTTP requests for leave requests.
type LeaveHandler struct {
	service ports.LeaveService
}

func NewLeaveHandler(service ports.LeaveService) *LeaveHandler {
	return &LeaveHandler{service: service}
}

// Request handles POST /v1/leave.
//
// @Summary      File a leave request
// @Tags         leave
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      leaveRequestBody  true  "Leave request"
// @Success      201   {object}  domain.LeaveRequest
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/leave [post]
func (h *LeaveHandler) Request(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req leaveRequestBody
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	request, err := h.service.Request(c.Request().Context(), p, ports.RequestLeaveInput{
		Type:      req.Type,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, request)
}

// List handles GET /v1/leave. `?all=true` lists the whole company's requests
// and requires an HR role.
//
// @Summary      List leave requests
// @Tags         leave
// @Produce      json
// @Security     BearerAuth
// @Param        all  query     bool  false  "List all company requests (HR roles only)"
// @Success      200  {array}   domain.LeaveRequest
// @Failure      401  {object}  map[string]string
// @Router       /v1/leave [get]
func (h *LeaveHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	requests, err := h.service.List(c.Request().Context(), p, c.QueryParam("all") == "true")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// Decide handles PUT /v1/leave/:id/decision.
//
// @Summary      Approve or reject a leave request
// @Tags         leave
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Leave request id"
// @Param        body  body      leaveDecisionRequest  true  "Decision"
// @Success      200   {object}  domain.LeaveRequest
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/leave/{id}/decision [put]
func (h *LeaveHandler) Decide(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req leaveDecisionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	request, err := h.service.Decide(c.Request().Context(), p, c.Param("id"), domain.LeaveStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, request)
}
