package request

import (
	"slot-booking/internal/domain/service"
	"slot-booking/internal/pkg/patch"
)

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     *string `json:"description,omitempty"`
	PriceCents      int64   `json:"price_cents" binding:"min=0"`
	DurationMinutes int32   `json:"duration_minutes" binding:"required"`
	Category        string  `json:"category" binding:"required"`
	ImageURL        *string `json:"image_url,omitempty" binding:"omitempty,url"`
	Active          *bool   `json:"active,omitempty"`
}

func (r CreateServiceRequest) ToDomain() (*service.Service, error) {
	return service.NewService(service.Attributes{
		Name:            r.Name,
		Description:     r.Description,
		PriceCents:      r.PriceCents,
		DurationMinutes: r.DurationMinutes,
		Category:        r.Category,
		ImageURL:        r.ImageURL,
		Active:          patch.Coalesce(r.Active, true),
	})
}

// UpdateServiceRequest is a partial update: omitted fields keep their current value
// and a blank description clears it.
type UpdateServiceRequest struct {
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	PriceCents      *int64  `json:"price_cents,omitempty"`
	DurationMinutes *int32  `json:"duration_minutes,omitempty"`
	Category        *string `json:"category,omitempty"`
	ImageURL        *string `json:"image_url,omitempty" binding:"omitempty,url"`
	Active          *bool   `json:"active,omitempty"`
}

func (r UpdateServiceRequest) Apply(existing *service.Service) error {
	current := existing.Attributes()
	return existing.Update(service.Attributes{
		Name:            patch.Coalesce(r.Name, current.Name),
		Description:     patch.ClearableString(r.Description, current.Description),
		PriceCents:      patch.Coalesce(r.PriceCents, current.PriceCents),
		DurationMinutes: patch.Coalesce(r.DurationMinutes, current.DurationMinutes),
		Category:        patch.Coalesce(r.Category, current.Category),
		ImageURL:        patch.CoalescePtr(r.ImageURL, current.ImageURL),
		Active:          patch.Coalesce(r.Active, current.Active),
	})
}
