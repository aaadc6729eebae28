package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nominasoft/hr-system/internal/core/ports"
)

// AttendanceHandler handles HTTP requests for attendance.
type AttendanceHandler struct {
	service ports.AttendanceService
}

func NewAttendanceHandler(service ports.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

// ClockIn handles POST /v1/attendance/clock-in.
//
// @Summary      Clock in for today
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  domain.Attendance
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/attendance/clock-in [post]
func (h *AttendanceHandler) ClockIn(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	record, err := h.service.ClockIn(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, record)
}

// ClockOut handles POST /v1/attendance/clock-out.
//
// @Summary      Clock out for today
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Attendance
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/attendance/clock-out [post]
func (h *AttendanceHandler) ClockOut(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	record, err := h.service.ClockOut(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// List handles GET /v1/attendance. Without employee_id it returns the
// caller's own records; with it, an HR role is required.
//
// @Summary      List attendance records
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        employee_id  query     string  false  "Employee id (HR roles only)"
// @Success      200          {array}   domain.Attendance
// @Failure      401          {object}  map[string]string
// @Router       /v1/attendance [get]
func (h *AttendanceHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	records, err := h.service.List(c.Request().Context(), p, c.QueryParam("employee_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}
