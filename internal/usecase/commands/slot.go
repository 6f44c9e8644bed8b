package commands

import (
	"context"

	"slot-booking/internal/domain/slot"
	reqdto "slot-booking/internal/handler/dto/request"
	"slot-booking/internal/infra"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/queries"
	"slot-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const timeSlotUniqueConstraint = "time_slots_date_start_key"

type SlotBatchError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// SlotBatchOutcome is the result of one batch entry: exactly one of Slot and Error is set.
type SlotBatchOutcome struct {
	Index int               `json:"index"`
	Slot  *queries.SlotView `json:"slot,omitempty"`
	Error *SlotBatchError   `json:"error,omitempty"`
}

type SlotBatchResult struct {
	Created  int                `json:"created"`
	Failed   int                `json:"failed"`
	Outcomes []SlotBatchOutcome `json:"outcomes"`
}

type SlotCommands interface {
	CreateSlot(ctx context.Context, actor shared.Actor, req reqdto.CreateSlotRequest) (*queries.SlotView, error)
	CreateSlotsBatch(ctx context.Context, actor shared.Actor, req reqdto.CreateSlotsBatchRequest) (*SlotBatchResult, error)
	DeleteSlot(ctx context.Context, actor shared.Actor, slotID uuid.UUID) error
}

type slotCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewSlotCommands(uow shared.UnitOfWork) SlotCommands {
	return &slotCommandsImpl{uow: uow}
}

func (c *slotCommandsImpl) CreateSlot(ctx context.Context, actor shared.Actor, req reqdto.CreateSlotRequest) (*queries.SlotView, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	s, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var created *slot.TimeSlot
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		created, derr = tx.Slots().Create(ctx, tx.DB(), s)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) && infra.ConstraintOf(derr) == timeSlotUniqueConstraint {
				return ErrDuplicateSlot
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSlotView(created), nil
}

// CreateSlotsBatch evaluates every entry on its own; malformed entries and
// duplicates fail individually while the rest are created.
func (c *slotCommandsImpl) CreateSlotsBatch(ctx context.Context, actor shared.Actor, req reqdto.CreateSlotsBatchRequest) (*SlotBatchResult, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}
	if len(req.Slots) == 0 || len(req.Slots) > reqdto.MaxBatchSlots {
		return nil, errs.Mark(errs.New("batch must contain between 1 and 200 slots"), errs.ErrValidation)
	}

	var result *SlotBatchResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = &SlotBatchResult{Outcomes: make([]SlotBatchOutcome, 0, len(req.Slots))}

		for i, entry := range req.Slots {
			outcome := SlotBatchOutcome{Index: i}

			s, derr := entry.ToDomain()
			if derr != nil {
				outcome.Error = &SlotBatchError{Kind: errs.Kind(errs.ErrValidation), Message: derr.Error()}
				result.add(outcome)
				continue
			}

			created, ok, derr := tx.Slots().CreateIfAbsent(ctx, tx.DB(), s)
			if derr != nil {
				return derr
			}
			if !ok {
				outcome.Error = &SlotBatchError{Kind: errs.Kind(ErrDuplicateSlot), Message: ErrDuplicateSlot.Error()}
			} else {
				outcome.Slot = toSlotView(created)
			}
			result.add(outcome)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SlotBatchResult) add(o SlotBatchOutcome) {
	if o.Error != nil {
		r.Failed++
	} else {
		r.Created++
	}
	r.Outcomes = append(r.Outcomes, o)
}

// DeleteSlot refuses to remove a slot that a pending or confirmed appointment holds.
func (c *slotCommandsImpl) DeleteSlot(ctx context.Context, actor shared.Actor, slotID uuid.UUID) error {
	if !actor.IsAdmin() {
		return ErrAdminOnly
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Slots().LockByID(ctx, tx.DB(), slotID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return err
		}

		holders, err := tx.Slots().CountActiveHolders(ctx, tx.DB(), slotID)
		if err != nil {
			return err
		}
		if holders > 0 {
			return ErrSlotHeld
		}

		if err := tx.Slots().Delete(ctx, tx.DB(), slotID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return err
		}
		return nil
	})
}

func toSlotView(s *slot.TimeSlot) *queries.SlotView {
	return &queries.SlotView{
		ID:        s.ID(),
		Date:      s.Date().Format(slot.DateLayout),
		StartTime: s.Start().String(),
		EndTime:   s.End().String(),
		Available: s.IsAvailable(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}
