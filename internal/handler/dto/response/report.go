package response

import (
	"time"

	"slot-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type DashboardResponse struct {
	TotalAppointments   int64 `json:"total_appointments"`
	PendingAppointments int64 `json:"pending_appointments"`
	TotalClients        int64 `json:"total_clients"`
	MonthlyRevenueCents int64 `json:"monthly_revenue_cents"`
}

type CalendarDayResponse struct {
	Date         string                 `json:"date"`
	Appointments []*AppointmentResponse `json:"appointments"`
}

type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromDashboard(v *queries.DashboardView) *DashboardResponse {
	return mustCopy[DashboardResponse](v)
}

func FromCalendar(days []*queries.CalendarDay) []*CalendarDayResponse {
	return copyList[CalendarDayResponse](days)
}

func FromClients(vs []*queries.ClientView) []*ClientResponse {
	return copyList[ClientResponse](vs)
}
