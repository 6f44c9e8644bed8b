package api

import (
	"net/http"

	reqdto "slot-booking/internal/handler/dto/request"
	resdto "slot-booking/internal/handler/dto/response"
	"slot-booking/internal/handler/httperr"
	"slot-booking/internal/usecase/commands"
	"slot-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	booking      commands.BookingCommands
	appointments queries.AppointmentQueries
	reports      queries.ReportQueries
	users        queries.UserQueries
}

func NewAdminHandler(booking commands.BookingCommands, appointments queries.AppointmentQueries, reports queries.ReportQueries, users queries.UserQueries) *AdminHandler {
	return &AdminHandler{
		booking:      booking,
		appointments: appointments,
		reports:      reports,
		users:        users,
	}
}

// @Summary Dashboard
// @Description Appointment and client totals plus this month's completed revenue
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	view, err := h.reports.Dashboard(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboard(view))
}

// @Summary Monthly calendar
// @Description Appointments of a month grouped by slot date
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year, defaults to the current year"
// @Param month query int false "Month (1-12), defaults to the current month"
// @Success 200 {array} resdto.CalendarDayResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/calendar [get]
func (h *AdminHandler) Calendar(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var q reqdto.CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query parameters")
		return
	}

	days, err := h.reports.Calendar(c.Request.Context(), actor, q.Year, q.Month)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendar(days))
}

// @Summary Clients
// @Description List client accounts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ClientResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/clients [get]
func (h *AdminHandler) Clients(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	clients, err := h.users.ListClients(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClients(clients))
}

// @Summary List appointments
// @Description List all appointments, optionally filtered by status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, confirmed, cancelled or completed"
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.AppointmentListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/appointments [get]
func (h *AdminHandler) ListAppointments(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var q reqdto.ListAppointmentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query parameters")
		return
	}
	status, err := q.NormalizedStatus()
	if err != nil {
		httperr.BadRequest(c, err, "Invalid status")
		return
	}

	page, err := h.appointments.ListAll(c.Request.Context(), actor, status, &queries.Cursor{After: q.After}, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentPage(page))
}

// @Summary Update appointment status
// @Description Move an appointment through its lifecycle
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateStatusRequest true "Status request"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/appointments/{id}/status [patch]
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	view, err := h.booking.UpdateStatus(c.Request.Context(), actor, id, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Reschedule appointment
// @Description Move an active appointment to another free slot
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.RescheduleRequest true "Reschedule request"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/appointments/{id}/reschedule [patch]
func (h *AdminHandler) Reschedule(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	view, err := h.booking.RescheduleAppointment(c.Request.Context(), actor, id, req.SlotID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}
