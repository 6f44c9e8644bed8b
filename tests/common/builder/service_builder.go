//go:build unit || e2e

package builder

import (
	"time"

	"slot-booking/internal/domain/service"
	reqdto "slot-booking/internal/handler/dto/request"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
	"slot-booking/internal/usecase/queries"
	"slot-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ID              uuid.UUID
	Name            string
	Description     *string
	PriceCents      int64
	DurationMinutes int32
	Category        string
	Active          bool
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:              uuid.New(),
		Name:            "Gel Manicure",
		PriceCents:      4500,
		DurationMinutes: 60,
		Category:        "manicure",
		Active:          true,
	}
}

func (s *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(s)
	return s
}

func (s *ServiceBuilder) attributes() service.Attributes {
	return service.Attributes{
		Name:            s.Name,
		Description:     s.Description,
		PriceCents:      s.PriceCents,
		DurationMinutes: s.DurationMinutes,
		Category:        s.Category,
		Active:          s.Active,
	}
}

// Build methods
func (s *ServiceBuilder) BuildDomain() (*service.Service, error) {
	return service.NewService(s.attributes())
}

func (s *ServiceBuilder) BuildStored() *service.Service {
	now := time.Now()
	return service.ReconstructService(s.ID, s.attributes(), now, now)
}

func (s *ServiceBuilder) BuildCreateRequest() reqdto.CreateServiceRequest {
	active := s.Active
	return reqdto.CreateServiceRequest{
		Name:            s.Name,
		Description:     s.Description,
		PriceCents:      s.PriceCents,
		DurationMinutes: s.DurationMinutes,
		Category:        s.Category,
		Active:          &active,
	}
}

func (s *ServiceBuilder) BuildSnapshot() *shared.ServiceSnapshot {
	return &shared.ServiceSnapshot{
		ID:              s.ID,
		Name:            s.Name,
		PriceCents:      s.PriceCents,
		DurationMinutes: s.DurationMinutes,
		Active:          s.Active,
	}
}

func (s *ServiceBuilder) BuildView() *queries.ServiceView {
	now := time.Now()
	return &queries.ServiceView{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		PriceCents:      s.PriceCents,
		DurationMinutes: s.DurationMinutes,
		Category:        s.Category,
		Active:          s.Active,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (s *ServiceBuilder) BuildInfra() sqlc.Services {
	now := time.Now()
	return sqlc.Services{
		ID:              s.ID,
		Name:            s.Name,
		Description:     pgconv.StringPtrToPgtype(s.Description),
		PriceCents:      s.PriceCents,
		DurationMinutes: s.DurationMinutes,
		Category:        s.Category,
		Active:          s.Active,
		CreatedAt:       pgconv.TimeToPgtype(now),
		UpdatedAt:       pgconv.TimeToPgtype(now),
	}
}

// Fluent builder methods
func (s *ServiceBuilder) WithName(name string) *ServiceBuilder {
	s.Name = name
	return s
}

func (s *ServiceBuilder) WithPrice(cents int64) *ServiceBuilder {
	s.PriceCents = cents
	return s
}

func (s *ServiceBuilder) WithDuration(minutes int32) *ServiceBuilder {
	s.DurationMinutes = minutes
	return s
}

func (s *ServiceBuilder) WithCategory(category string) *ServiceBuilder {
	s.Category = category
	return s
}

func (s *ServiceBuilder) AsInactive() *ServiceBuilder {
	s.Active = false
	return s
}
