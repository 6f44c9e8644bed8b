package converter

import (
	"slot-booking/internal/domain/service"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
)

func ServiceToCreateParams(s *service.Service) sqlc.CreateServiceParams {
	return sqlc.CreateServiceParams(ServiceToUpdateParams(s))
}

func ServiceToUpdateParams(s *service.Service) sqlc.UpdateServiceParams {
	return sqlc.UpdateServiceParams{
		ID:              s.ID(),
		Name:            s.Name(),
		Description:     pgconv.StringPtrToPgtype(s.Description()),
		PriceCents:      s.PriceCents(),
		DurationMinutes: s.DurationMinutes(),
		Category:        s.Category(),
		ImageUrl:        pgconv.StringPtrToPgtype(s.ImageURL()),
		Active:          s.IsActive(),
	}
}

func ServiceFromRow(row sqlc.Services) *service.Service {
	return service.ReconstructService(
		row.ID,
		service.Attributes{
			Name:            row.Name,
			Description:     pgconv.StringPtrFromPgtype(row.Description),
			PriceCents:      row.PriceCents,
			DurationMinutes: row.DurationMinutes,
			Category:        row.Category,
			ImageURL:        pgconv.StringPtrFromPgtype(row.ImageUrl),
			Active:          row.Active,
		},
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
