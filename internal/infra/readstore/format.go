package readstore

import (
	"fmt"

	"slot-booking/internal/domain/slot"
	"slot-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func formatDate(d pgtype.Date) string {
	return pgconv.DateFromPgtype(d).Format(slot.DateLayout)
}

func formatClock(t pgtype.Time) string {
	m := pgconv.MinutesFromPgtime(t)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
