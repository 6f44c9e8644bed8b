package repository

import (
	"context"

	"slot-booking/internal/domain/appointment"
	"slot-booking/internal/infra"
	"slot-booking/internal/infra/repository/converter"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AppointmentWriteQueries interface {
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) (uuid.UUID, error)
	GetAppointmentForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointments, error)
	UpdateAppointmentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentStatusParams) (int64, error)
	UpdateAppointmentSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentSlotParams) (int64, error)
	DeleteAppointment(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
	db      sqlc.DBTX
}

func NewAppointmentRepository(queries AppointmentWriteQueries, db sqlc.DBTX) *AppointmentRepository {
	return &AppointmentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (uuid.UUID, error) {
	id, err := r.queries.CreateAppointment(ctx, tx, converter.AppointmentToCreateParams(a))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}
	return id, nil
}

func (r *AppointmentRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*appointment.Appointment, error) {
	row, err := r.queries.GetAppointmentForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock appointment", err)
	}
	a, err := converter.AppointmentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid appointment row", err, infra.KindDBFailure)
	}
	return a, nil
}

// UpdateStatus persists a.Status() only if the stored status is still from.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment, from appointment.Status) error {
	params := sqlc.UpdateAppointmentStatusParams{
		NewStatus:  a.Status().String(),
		AdminNotes: pgconv.StringPtrToPgtype(a.AdminNotes()),
		ID:         a.ID(),
		OldStatus:  from.String(),
	}
	n, err := r.queries.UpdateAppointmentStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("appointment status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *AppointmentRepository) UpdateSlot(ctx context.Context, tx sqlc.DBTX, id, fromSlotID, toSlotID uuid.UUID) error {
	params := sqlc.UpdateAppointmentSlotParams{
		NewSlotID: pgconv.UUIDToPgtype(toSlotID),
		ID:        id,
		OldSlotID: pgconv.UUIDToPgtype(fromSlotID),
	}
	n, err := r.queries.UpdateAppointmentSlot(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to repoint appointment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("appointment slot changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteAppointment(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete appointment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}
