package api

import (
	"net/http"

	"slot-booking/internal/domain/slot"
	reqdto "slot-booking/internal/handler/dto/request"
	resdto "slot-booking/internal/handler/dto/response"
	"slot-booking/internal/handler/httperr"
	"slot-booking/internal/usecase/commands"
	"slot-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	IdempotencyKeyHeader     = "Idempotency-Key"
	IdempotentReplayedHeader = "Idempotent-Replayed"
)

type AppointmentHandler struct {
	booking      commands.BookingCommands
	appointments queries.AppointmentQueries
	slots        queries.SlotQueries
}

func NewAppointmentHandler(booking commands.BookingCommands, appointments queries.AppointmentQueries, slots queries.SlotQueries) *AppointmentHandler {
	return &AppointmentHandler{
		booking:      booking,
		appointments: appointments,
		slots:        slots,
	}
}

// @Summary Available slots
// @Description List free slots of a day, optionally only those long enough for a service
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param date query string true "Day (YYYY-MM-DD)"
// @Param service_id query string false "Service ID"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments/available-slots [get]
func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	var q reqdto.AvailableSlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query parameters")
		return
	}

	date, err := slot.ParseDate(q.Date)
	if err != nil {
		httperr.BadRequest(c, err, "Invalid date format")
		return
	}

	var serviceID *uuid.UUID
	if q.ServiceID != nil && *q.ServiceID != "" {
		id, parseErr := uuid.Parse(*q.ServiceID)
		if parseErr != nil {
			httperr.BadRequest(c, parseErr, "Invalid service_id format")
			return
		}
		serviceID = &id
	}

	views, err := h.slots.ListAvailable(c.Request.Context(), date, serviceID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

// @Summary My appointments
// @Description List the caller's appointments, newest first
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.AppointmentListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /appointments/mine [get]
func (h *AppointmentHandler) Mine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var q reqdto.ListAppointmentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query parameters")
		return
	}

	page, err := h.appointments.ListMine(c.Request.Context(), actor, &queries.Cursor{After: q.After}, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentPage(page))
}

// @Summary Create appointment
// @Description Book a free slot for a service. A repeated Idempotency-Key replays the first result.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key (uuid)"
// @Param request body reqdto.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} resdto.AppointmentResponse
// @Success 200 {object} resdto.AppointmentResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	idempotencyKey, err := idempotencyKeyFrom(c)
	if err != nil {
		httperr.BadRequest(c, err, "Invalid idempotency key format")
		return
	}

	var req reqdto.CreateAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.BadRequest(c, bindErr, "Invalid request format")
		return
	}

	result, err := h.booking.CreateAppointment(c.Request.Context(), actor, req, idempotencyKey)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		c.Header(IdempotentReplayedHeader, "true")
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromAppointmentView(result.Appointment))
}

// @Summary Get appointment
// @Description Get an appointment owned by the caller (admins can read any)
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.appointments.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Cancel appointment
// @Description Cancel an appointment and free its slot
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments/{id}/cancel [patch]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.booking.CancelAppointment(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Delete appointment
// @Description Delete an appointment, freeing its slot when it was still active
// @Tags appointments
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.booking.DeleteAppointment(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func idempotencyKeyFrom(c *gin.Context) (*uuid.UUID, error) {
	raw := c.GetHeader(IdempotencyKeyHeader)
	if raw == "" {
		return nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &key, nil
}
