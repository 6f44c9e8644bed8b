//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"slot-booking/internal/domain/appointment"
	"slot-booking/internal/domain/user"
	reqdto "slot-booking/internal/handler/dto/request"
	"slot-booking/internal/infra"
	"slot-booking/internal/pkg/clock"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/commands"
	"slot-booking/internal/usecase/shared"
	"slot-booking/tests/common/builder"
	queriesmock "slot-booking/tests/mock/queries"
	sharedmock "slot-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	errNoRows      = infra.WrapRepoErr("not found", pgx.ErrNoRows)
	errActiveSlot  = infra.WrapRepoErr("insert appointment", &pgconn.PgError{Code: "23505", ConstraintName: "appointments_active_slot_key"})
	errRowConflict = infra.WrapRepoErr("guarded update", nil, infra.KindConflict)
)

type txMocks struct {
	uow    *sharedmock.MockUnitOfWork
	tx     *sharedmock.MockTx
	slots  *sharedmock.MockSlotRepository
	appts  *sharedmock.MockAppointmentRepository
	svcs   *sharedmock.MockServiceRepository
	users  *sharedmock.MockUserRepository
	idem   *sharedmock.MockIdempotencyRepository
	outbox *sharedmock.MockOutboxRepository
	reads  *sharedmock.MockCommandReads
}

// newTxMocks wires a unit of work whose Within runs the callback against mocked repositories.
func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:    sharedmock.NewMockUnitOfWork(ctrl),
		tx:     sharedmock.NewMockTx(ctrl),
		slots:  sharedmock.NewMockSlotRepository(ctrl),
		appts:  sharedmock.NewMockAppointmentRepository(ctrl),
		svcs:   sharedmock.NewMockServiceRepository(ctrl),
		users:  sharedmock.NewMockUserRepository(ctrl),
		idem:   sharedmock.NewMockIdempotencyRepository(ctrl),
		outbox: sharedmock.NewMockOutboxRepository(ctrl),
		reads:  sharedmock.NewMockCommandReads(ctrl),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Slots().Return(m.slots).AnyTimes()
	m.tx.EXPECT().Appointments().Return(m.appts).AnyTimes()
	m.tx.EXPECT().Services().Return(m.svcs).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().Idempotency().Return(m.idem).AnyTimes()
	m.tx.EXPECT().Outbox().Return(m.outbox).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	return m
}

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	m     *txMocks
	views *queriesmock.MockAppointmentQueries
	cmds  commands.BookingCommands

	client shared.Actor
	admin  shared.Actor
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)
	s.views = queriesmock.NewMockAppointmentQueries(s.ctrl)
	clk := clock.NewMockClock(time.Date(2030, 1, 10, 9, 0, 0, 0, time.UTC))
	s.cmds = commands.NewBookingCommands(s.m.uow, s.views, clk, 24*time.Hour)

	s.client = shared.Actor{ID: uuid.New(), Role: user.RoleClient}
	s.admin = shared.Actor{ID: uuid.New(), Role: user.RoleAdmin}
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) expectBookableRefs(b *builder.AppointmentBuilder) {
	svc := builder.NewServiceBuilder().With(func(sb *builder.ServiceBuilder) { sb.ID = b.ServiceID }).BuildSnapshot()
	sl := builder.NewSlotBuilder().WithID(b.SlotID).BuildSnapshot()
	s.m.reads.EXPECT().ServiceByID(gomock.Any(), b.ServiceID).Return(svc, nil)
	s.m.reads.EXPECT().SlotByID(gomock.Any(), b.SlotID).Return(sl, nil)
}

func (s *BookingCommandsTestSuite) TestCreateAppointment() {
	ctx := context.Background()

	s.Run("success: claims the slot and inserts a pending appointment", func() {
		b := builder.NewAppointmentBuilder().WithUserID(s.client.ID)
		apptID := uuid.New()
		s.expectBookableRefs(b)
		s.m.slots.EXPECT().Claim(gomock.Any(), gomock.Any(), b.SlotID).Return(true, nil)
		s.m.appts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, a *appointment.Appointment) (uuid.UUID, error) {
				s.Equal(appointment.StatusPending, a.Status())
				s.Equal(s.client.ID, a.UserID())
				return apptID, nil
			})
		s.m.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, msg shared.OutboxMessage) error {
				s.Equal(commands.EventAppointmentCreated, msg.EventType)
				return nil
			})
		s.views.EXPECT().GetByIDSystem(gomock.Any(), apptID).Return(b.WithID(apptID).BuildView(), nil)

		res, err := s.cmds.CreateAppointment(ctx, s.client, b.BuildRequest(), nil)

		s.Require().NoError(err)
		s.False(res.IsReplayed)
		s.Equal(apptID, res.Appointment.ID)
		s.Equal("pending", res.Appointment.Status)
	})

	s.Run("error: loser of a concurrent claim gets SlotUnavailable", func() {
		b := builder.NewAppointmentBuilder().WithUserID(s.client.ID)
		s.expectBookableRefs(b)
		s.m.slots.EXPECT().Claim(gomock.Any(), gomock.Any(), b.SlotID).Return(false, nil)

		_, err := s.cmds.CreateAppointment(ctx, s.client, b.BuildRequest(), nil)

		s.Require().ErrorIs(err, commands.ErrSlotUnavailable)
		s.True(errs.Is(err, errs.ErrSlotUnavailable))
	})

	s.Run("error: slot already taken", func() {
		b := builder.NewAppointmentBuilder().WithUserID(s.client.ID)
		s.m.reads.EXPECT().ServiceByID(gomock.Any(), b.ServiceID).
			Return(builder.NewServiceBuilder().BuildSnapshot(), nil)
		s.m.reads.EXPECT().SlotByID(gomock.Any(), b.SlotID).
			Return(builder.NewSlotBuilder().WithID(b.SlotID).AsTaken().BuildSnapshot(), nil)

		_, err := s.cmds.CreateAppointment(ctx, s.client, b.BuildRequest(), nil)

		s.Require().ErrorIs(err, commands.ErrSlotUnavailable)
	})

	s.Run("error: unknown slot is reported as unavailable", func() {
		b := builder.NewAppointmentBuilder().WithUserID(s.client.ID)
		s.m.reads.EXPECT().ServiceByID(gomock.Any(), b.ServiceID).
			Return(builder.NewServiceBuilder().BuildSnapshot(), nil)
		s.m.reads.EXPECT().SlotByID(gomock.Any(), b.SlotID).Return(nil, errNoRows)

		_, err := s.cmds.CreateAppointment(ctx, s.client, b.BuildRequest(), nil)

		s.Require().ErrorIs(err, commands.ErrSlotUnavailable)
	})

	s.Run("error: inactive service", func() {
		b := builder.NewAppointmentBuilder().WithUserID(s.client.ID)
		s.m.reads.EXPECT().ServiceByID(gomock.Any(), b.ServiceID).
			Return(builder.NewServiceBuilder().AsInactive().BuildSnapshot(), nil)

		_, err := s.cmds.CreateAppointment(ctx, s.client, b.BuildRequest(), nil)

		s.Require().ErrorIs(err, commands.ErrServiceUnavailable)
	})

	s.Run("error: active-slot index violation maps to SlotUnavailable", func() {
		b := builder.NewAppointmentBuilder().WithUserID(s.client.ID)
		s.expectBookableRefs(b)
		s.m.slots.EXPECT().Claim(gomock.Any(), gomock.Any(), b.SlotID).Return(true, nil)
		s.m.appts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, errActiveSlot)

		_, err := s.cmds.CreateAppointment(ctx, s.client, b.BuildRequest(), nil)

		s.Require().ErrorIs(err, commands.ErrSlotUnavailable)
	})

	s.Run("error: notes over 500 characters", func() {
		long := make([]byte, 501)
		for i := range long {
			long[i] = 'a'
		}
		req := builder.NewAppointmentBuilder().WithNotes(string(long)).BuildRequest()

		_, err := s.cmds.CreateAppointment(ctx, s.client, req, nil)

		s.Require().ErrorIs(err, appointment.ErrNotesTooLong)
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("error: anonymous actor", func() {
		req := builder.NewAppointmentBuilder().BuildRequest()

		_, err := s.cmds.CreateAppointment(ctx, shared.Actor{}, req, nil)

		s.Require().ErrorIs(err, commands.ErrUnauthenticated)
		s.True(errs.Is(err, errs.ErrUnauthenticated))
		s.False(errs.Is(err, errs.ErrForbidden))
	})
}

func (s *BookingCommandsTestSuite) TestCreateAppointment_Idempotency() {
	ctx := context.Background()

	s.Run("success: new key is reserved and completed", func() {
		key := uuid.New()
		b := builder.NewAppointmentBuilder().WithUserID(s.client.ID)
		apptID := uuid.New()
		s.m.idem.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.client.ID, gomock.Any(), gomock.Any(),
			time.Date(2030, 1, 11, 9, 0, 0, 0, time.UTC)).Return(true, nil)
		s.expectBookableRefs(b)
		s.m.slots.EXPECT().Claim(gomock.Any(), gomock.Any(), b.SlotID).Return(true, nil)
		s.m.appts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(apptID, nil)
		s.m.idem.EXPECT().UpdateStatusCompleted(gomock.Any(), gomock.Any(), key, s.client.ID, apptID).Return(nil)
		s.m.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.views.EXPECT().GetByIDSystem(gomock.Any(), apptID).Return(b.WithID(apptID).BuildView(), nil)

		res, err := s.cmds.CreateAppointment(ctx, s.client, b.BuildRequest(), &key)

		s.Require().NoError(err)
		s.False(res.IsReplayed)
	})

	s.Run("success: identical retry replays the first appointment", func() {
		key := uuid.New()
		b := builder.NewAppointmentBuilder().WithUserID(s.client.ID)
		apptID := uuid.New()
		var hash string
		s.m.idem.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.client.ID, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _, _ uuid.UUID, _ string, requestHash string, _ time.Time) (bool, error) {
				hash = requestHash
				return false, nil
			})
		s.m.idem.EXPECT().Find(gomock.Any(), gomock.Any(), key, s.client.ID).
			DoAndReturn(func(context.Context, any, uuid.UUID, uuid.UUID) (*shared.IdempotencyRecord, error) {
				return &shared.IdempotencyRecord{
					Key:                 key,
					UserID:              s.client.ID,
					Endpoint:            commands.EndpointCreateAppointment,
					Status:              shared.IdempotencyStatusCompleted,
					RequestHash:         hash,
					ResultAppointmentID: &apptID,
				}, nil
			})
		s.views.EXPECT().GetByIDSystem(gomock.Any(), apptID).Return(b.WithID(apptID).BuildView(), nil)

		res, err := s.cmds.CreateAppointment(ctx, s.client, b.BuildRequest(), &key)

		s.Require().NoError(err)
		s.True(res.IsReplayed)
		s.Equal(apptID, res.Appointment.ID)
	})

	s.Run("error: key reused with a different body", func() {
		key := uuid.New()
		b := builder.NewAppointmentBuilder().WithUserID(s.client.ID)
		s.m.idem.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.client.ID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		s.m.idem.EXPECT().Find(gomock.Any(), gomock.Any(), key, s.client.ID).
			Return(&shared.IdempotencyRecord{Endpoint: commands.EndpointCreateAppointment, Status: shared.IdempotencyStatusCompleted, RequestHash: "other"}, nil)

		_, err := s.cmds.CreateAppointment(ctx, s.client, b.BuildRequest(), &key)

		s.Require().ErrorIs(err, commands.ErrIdempotencyMismatch)
		s.True(errs.Is(err, errs.ErrConflict))
	})

	s.Run("error: first request still in progress", func() {
		key := uuid.New()
		b := builder.NewAppointmentBuilder().WithUserID(s.client.ID)
		var hash string
		s.m.idem.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.client.ID, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _, _ uuid.UUID, _ string, requestHash string, _ time.Time) (bool, error) {
				hash = requestHash
				return false, nil
			})
		s.m.idem.EXPECT().Find(gomock.Any(), gomock.Any(), key, s.client.ID).
			DoAndReturn(func(context.Context, any, uuid.UUID, uuid.UUID) (*shared.IdempotencyRecord, error) {
				return &shared.IdempotencyRecord{Endpoint: commands.EndpointCreateAppointment, Status: shared.IdempotencyStatusProcessing, RequestHash: hash}, nil
			})

		_, err := s.cmds.CreateAppointment(ctx, s.client, b.BuildRequest(), &key)

		s.Require().ErrorIs(err, commands.ErrIdempotencyInProgress)
	})
}

func (s *BookingCommandsTestSuite) TestCancelAppointment() {
	ctx := context.Background()

	s.Run("success: owner cancels and the slot is released", func() {
		b := builder.NewAppointmentBuilder().WithUserID(s.client.ID)
		s.m.appts.EXPECT().LockByID(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildStored(), nil)
		s.m.appts.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), appointment.StatusPending).
			DoAndReturn(func(_ context.Context, _ any, a *appointment.Appointment, _ appointment.Status) error {
				s.Equal(appointment.StatusCancelled, a.Status())
				return nil
			})
		s.m.slots.EXPECT().Release(gomock.Any(), gomock.Any(), b.SlotID).Return(true, nil)
		s.m.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.views.EXPECT().GetByIDSystem(gomock.Any(), b.ID).
			Return(b.WithStatus(appointment.StatusCancelled).BuildView(), nil)

		view, err := s.cmds.CancelAppointment(ctx, s.client, b.ID)

		s.Require().NoError(err)
		s.Equal("cancelled", view.Status)
	})

	s.Run("success: admin cancels any appointment", func() {
		b := builder.NewAppointmentBuilder().WithStatus(appointment.StatusConfirmed)
		s.m.appts.EXPECT().LockByID(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildStored(), nil)
		s.m.appts.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), appointment.StatusConfirmed).Return(nil)
		s.m.slots.EXPECT().Release(gomock.Any(), gomock.Any(), b.SlotID).Return(true, nil)
		s.m.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.views.EXPECT().GetByIDSystem(gomock.Any(), b.ID).Return(b.BuildView(), nil)

		_, err := s.cmds.CancelAppointment(ctx, s.admin, b.ID)

		s.Require().NoError(err)
	})

	s.Run("error: NotFound is checked first", func() {
		id := uuid.New()
		s.m.appts.EXPECT().LockByID(gomock.Any(), gomock.Any(), id).Return(nil, errNoRows)

		_, err := s.cmds.CancelAppointment(ctx, s.client, id)

		s.Require().ErrorIs(err, commands.ErrAppointmentNotFound)
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("error: Forbidden wins over AlreadyFinal", func() {
		b := builder.NewAppointmentBuilder().WithStatus(appointment.StatusCancelled)
		s.m.appts.EXPECT().LockByID(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildStored(), nil)

		_, err := s.cmds.CancelAppointment(ctx, s.client, b.ID)

		s.Require().ErrorIs(err, commands.ErrNotAppointmentOwner)
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("error: owner cancelling a finished appointment gets AlreadyFinal", func() {
		b := builder.NewAppointmentBuilder().WithUserID(s.client.ID).WithStatus(appointment.StatusCompleted)
		s.m.appts.EXPECT().LockByID(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildStored(), nil)

		_, err := s.cmds.CancelAppointment(ctx, s.client, b.ID)

		s.Require().ErrorIs(err, appointment.ErrAlreadyFinal)
		s.True(errs.Is(err, errs.ErrInvalidTransition))
	})
}

func (s *BookingCommandsTestSuite) TestRescheduleAppointment() {
	ctx := context.Background()

	s.Run("success: moves to the new slot and frees the old one", func() {
		b := builder.NewAppointmentBuilder().WithStatus(appointment.StatusConfirmed)
		oldSlot := b.SlotID
		target := builder.NewSlotBuilder()
		s.m.appts.EXPECT().LockByID(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildStored(), nil)
		s.m.slots.EXPECT().LockByID(gomock.Any(), gomock.Any(), target.ID).Return(target.BuildStored(), nil)
		s.m.slots.EXPECT().Claim(gomock.Any(), gomock.Any(), target.ID).Return(true, nil)
		s.m.appts.EXPECT().UpdateSlot(gomock.Any(), gomock.Any(), b.ID, oldSlot, target.ID).Return(nil)
		s.m.slots.EXPECT().Release(gomock.Any(), gomock.Any(), oldSlot).Return(true, nil)
		s.m.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, msg shared.OutboxMessage) error {
				s.Equal(commands.EventAppointmentRescheduled, msg.EventType)
				return nil
			})
		s.views.EXPECT().GetByIDSystem(gomock.Any(), b.ID).Return(b.WithSlotID(target.ID).BuildView(), nil)

		view, err := s.cmds.RescheduleAppointment(ctx, s.admin, b.ID, target.ID)

		s.Require().NoError(err)
		s.Equal(target.ID, view.Slot.ID)
		s.Equal("confirmed", view.Status)
	})

	s.Run("error: target slot taken leaves everything unchanged", func() {
		b := builder.NewAppointmentBuilder()
		target := builder.NewSlotBuilder().AsTaken()
		s.m.appts.EXPECT().LockByID(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildStored(), nil)
		s.m.slots.EXPECT().LockByID(gomock.Any(), gomock.Any(), target.ID).Return(target.BuildStored(), nil)

		_, err := s.cmds.RescheduleAppointment(ctx, s.admin, b.ID, target.ID)

		s.Require().ErrorIs(err, commands.ErrSlotUnavailable)
	})

	s.Run("error: target claimed concurrently", func() {
		b := builder.NewAppointmentBuilder()
		target := builder.NewSlotBuilder()
		s.m.appts.EXPECT().LockByID(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildStored(), nil)
		s.m.slots.EXPECT().LockByID(gomock.Any(), gomock.Any(), target.ID).Return(target.BuildStored(), nil)
		s.m.slots.EXPECT().Claim(gomock.Any(), gomock.Any(), target.ID).Return(false, nil)

		_, err := s.cmds.RescheduleAppointment(ctx, s.admin, b.ID, target.ID)

		s.Require().ErrorIs(err, commands.ErrSlotUnavailable)
	})

	s.Run("error: target slot does not exist", func() {
		b := builder.NewAppointmentBuilder()
		missing := uuid.New()
		s.m.appts.EXPECT().LockByID(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildStored(), nil)
		s.m.slots.EXPECT().LockByID(gomock.Any(), gomock.Any(), missing).Return(nil, errNoRows)

		_, err := s.cmds.RescheduleAppointment(ctx, s.admin, b.ID, missing)

		s.Require().ErrorIs(err, commands.ErrSlotNotFound)
	})

	s.Run("error: finished appointment", func() {
		b := builder.NewAppointmentBuilder().WithStatus(appointment.StatusCompleted)
		s.m.appts.EXPECT().LockByID(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildStored(), nil)

		_, err := s.cmds.RescheduleAppointment(ctx, s.admin, b.ID, uuid.New())

		s.Require().ErrorIs(err, appointment.ErrAlreadyFinal)
	})

	s.Run("error: clients may not reschedule", func() {
		_, err := s.cmds.RescheduleAppointment(ctx, s.client, uuid.New(), uuid.New())

		s.Require().ErrorIs(err, commands.ErrAdminOnly)
	})
}

func (s *BookingCommandsTestSuite) TestDeleteAppointment() {
	ctx := context.Background()

	s.Run("success: active appointment releases its slot", func() {
		b := builder.NewAppointmentBuilder().WithUserID(s.client.ID)
		s.m.appts.EXPECT().LockByID(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildStored(), nil)
		s.m.appts.EXPECT().Delete(gomock.Any(), gomock.Any(), b.ID).Return(nil)
		s.m.slots.EXPECT().Release(gomock.Any(), gomock.Any(), b.SlotID).Return(true, nil)
		s.m.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		s.Require().NoError(s.cmds.DeleteAppointment(ctx, s.client, b.ID))
	})

	s.Run("success: finished appointment leaves the slot alone", func() {
		b := builder.NewAppointmentBuilder().WithStatus(appointment.StatusCancelled)
		s.m.appts.EXPECT().LockByID(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildStored(), nil)
		s.m.appts.EXPECT().Delete(gomock.Any(), gomock.Any(), b.ID).Return(nil)
		s.m.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		s.Require().NoError(s.cmds.DeleteAppointment(ctx, s.admin, b.ID))
	})

	s.Run("error: other client's appointment", func() {
		b := builder.NewAppointmentBuilder()
		s.m.appts.EXPECT().LockByID(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildStored(), nil)

		err := s.cmds.DeleteAppointment(ctx, s.client, b.ID)

		s.Require().ErrorIs(err, commands.ErrNotAppointmentOwner)
	})
}

func (s *BookingCommandsTestSuite) TestUpdateStatus() {
	ctx := context.Background()

	s.Run("success: confirm keeps the slot held", func() {
		b := builder.NewAppointmentBuilder()
		note := "deposit received"
		s.m.appts.EXPECT().LockByID(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildStored(), nil)
		s.m.appts.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), appointment.StatusPending).
			DoAndReturn(func(_ context.Context, _ any, a *appointment.Appointment, _ appointment.Status) error {
				s.Equal(appointment.StatusConfirmed, a.Status())
				s.Require().NotNil(a.AdminNotes())
				s.Equal(note, *a.AdminNotes())
				return nil
			})
		s.m.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.views.EXPECT().GetByIDSystem(gomock.Any(), b.ID).
			Return(b.WithStatus(appointment.StatusConfirmed).BuildView(), nil)

		view, err := s.cmds.UpdateStatus(ctx, s.admin, b.ID, reqdto.UpdateStatusRequest{Status: "confirmed", AdminNotes: &note})

		s.Require().NoError(err)
		s.Equal("confirmed", view.Status)
	})

	s.Run("success: cancel through status update releases the slot", func() {
		b := builder.NewAppointmentBuilder().WithStatus(appointment.StatusConfirmed)
		s.m.appts.EXPECT().LockByID(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildStored(), nil)
		s.m.appts.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), appointment.StatusConfirmed).Return(nil)
		s.m.slots.EXPECT().Release(gomock.Any(), gomock.Any(), b.SlotID).Return(true, nil)
		s.m.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.views.EXPECT().GetByIDSystem(gomock.Any(), b.ID).Return(b.BuildView(), nil)

		_, err := s.cmds.UpdateStatus(ctx, s.admin, b.ID, reqdto.UpdateStatusRequest{Status: "cancelled"})

		s.Require().NoError(err)
	})

	s.Run("error: transition out of a final state", func() {
		b := builder.NewAppointmentBuilder().WithStatus(appointment.StatusCompleted)
		s.m.appts.EXPECT().LockByID(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildStored(), nil)

		_, err := s.cmds.UpdateStatus(ctx, s.admin, b.ID, reqdto.UpdateStatusRequest{Status: "confirmed"})

		s.Require().ErrorIs(err, appointment.ErrInvalidTransition)
	})

	s.Run("error: row changed underneath", func() {
		b := builder.NewAppointmentBuilder()
		s.m.appts.EXPECT().LockByID(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildStored(), nil)
		s.m.appts.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errRowConflict)

		_, err := s.cmds.UpdateStatus(ctx, s.admin, b.ID, reqdto.UpdateStatusRequest{Status: "confirmed"})

		s.Require().ErrorIs(err, commands.ErrConcurrentUpdate)
	})

	s.Run("error: unknown status value", func() {
		_, err := s.cmds.UpdateStatus(ctx, s.admin, uuid.New(), reqdto.UpdateStatusRequest{Status: "archived"})

		s.Require().ErrorIs(err, appointment.ErrInvalidStatus)
	})

	s.Run("error: clients may not change status", func() {
		_, err := s.cmds.UpdateStatus(ctx, s.client, uuid.New(), reqdto.UpdateStatusRequest{Status: "confirmed"})

		s.Require().ErrorIs(err, commands.ErrAdminOnly)
	})
}
