package converter

import (
	"slot-booking/internal/domain/appointment"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
)

func AppointmentToCreateParams(a *appointment.Appointment) sqlc.CreateAppointmentParams {
	return sqlc.CreateAppointmentParams{
		ID:        a.ID(),
		UserID:    a.UserID(),
		ServiceID: a.ServiceID(),
		SlotID:    pgconv.UUIDOrNullToPgtype(a.SlotID()),
		Status:    a.Status().String(),
		Notes:     pgconv.StringPtrToPgtype(a.Notes().Ptr()),
	}
}

func AppointmentFromRow(row sqlc.Appointments) (*appointment.Appointment, error) {
	status, err := appointment.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	var notes appointment.Notes
	if row.Notes.Valid {
		if notes, err = appointment.NewNotes(row.Notes.String); err != nil {
			return nil, err
		}
	}
	return appointment.ReconstructAppointment(
		row.ID,
		row.UserID,
		row.ServiceID,
		pgconv.UUIDFromPgtype(row.SlotID),
		status,
		notes,
		pgconv.StringPtrFromPgtype(row.AdminNotes),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
