package response

import (
	"time"

	"slot-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClientSummaryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type ServiceSummaryResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	PriceCents      int64     `json:"price_cents"`
	DurationMinutes int32     `json:"duration_minutes"`
}

type SlotSummaryResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

type AppointmentResponse struct {
	ID         uuid.UUID              `json:"id"`
	Status     string                 `json:"status"`
	Notes      *string                `json:"notes,omitempty"`
	AdminNotes *string                `json:"admin_notes,omitempty"`
	Client     ClientSummaryResponse  `json:"client"`
	Service    ServiceSummaryResponse `json:"service"`
	Slot       *SlotSummaryResponse   `json:"slot,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

type AppointmentListResponse struct {
	Items      []*AppointmentResponse `json:"items"`
	NextCursor *string                `json:"next_cursor,omitempty"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	return mustCopy[AppointmentResponse](v)
}

func FromAppointmentPage(p *queries.AppointmentPage) *AppointmentListResponse {
	return &AppointmentListResponse{
		Items:      copyList[AppointmentResponse](p.Items),
		NextCursor: p.NextCursor,
	}
}
