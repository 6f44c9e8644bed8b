package response

import (
	"time"

	"slot-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceResponse struct {
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

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	return mustCopy[ServiceResponse](v)
}

func FromServiceViews(vs []*queries.ServiceView) []*ServiceResponse {
	return copyList[ServiceResponse](vs)
}
