package queries

import (
	"time"

	"github.com/google/uuid"
)

// SlotView represents read-optimized time slot data
type SlotView struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ClientSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type ServiceSummary struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	PriceCents      int64     `json:"price_cents"`
	DurationMinutes int32     `json:"duration_minutes"`
}

type SlotSummary struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

// AppointmentView is an appointment with its references resolved for display.
// Slot is nil when the slot of a finished appointment has been deleted.
type AppointmentView struct {
	ID         uuid.UUID      `json:"id"`
	Status     string         `json:"status"`
	Notes      *string        `json:"notes,omitempty"`
	AdminNotes *string        `json:"admin_notes,omitempty"`
	Client     ClientSummary  `json:"client"`
	Service    ServiceSummary `json:"service"`
	Slot       *SlotSummary   `json:"slot,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// ServiceView represents read-optimized catalog data
type ServiceView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	PriceCents      int64     `json:"price_cents"`
	DurationMinutes int32     `json:"duration_minutes"`
	Category        string    `json:"category"`
	ImageURL        *string   `json:"image_url,omitempty"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       *string    `json:"phone,omitempty"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

type ClientView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// IdempotencyKeyView represents read-optimized idempotency key data
type IdempotencyKeyView struct {
	Key                 uuid.UUID  `json:"key"`
	UserID              uuid.UUID  `json:"user_id"`
	Endpoint            string     `json:"endpoint"`
	RequestHash         string     `json:"request_hash"`
	Status              string     `json:"status"`
	ResultAppointmentID *uuid.UUID `json:"result_appointment_id,omitempty"`
	ExpiresAt           time.Time  `json:"expires_at"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type DashboardView struct {
	TotalAppointments   int64 `json:"total_appointments"`
	PendingAppointments int64 `json:"pending_appointments"`
	TotalClients        int64 `json:"total_clients"`
	MonthlyRevenueCents int64 `json:"monthly_revenue_cents"`
}

type CalendarDay struct {
	Date         string             `json:"date"`
	Appointments []*AppointmentView `json:"appointments"`
}
