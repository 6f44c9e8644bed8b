package response

import (
	"time"

	"slot-booking/internal/usecase/commands"
	"slot-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SlotBatchErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type SlotBatchOutcomeResponse struct {
	Index int                     `json:"index"`
	Slot  *SlotResponse           `json:"slot,omitempty"`
	Error *SlotBatchErrorResponse `json:"error,omitempty"`
}

type SlotBatchResponse struct {
	Created  int                         `json:"created"`
	Failed   int                         `json:"failed"`
	Outcomes []*SlotBatchOutcomeResponse `json:"outcomes"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	return mustCopy[SlotResponse](v)
}

func FromSlotViews(vs []*queries.SlotView) []*SlotResponse {
	return copyList[SlotResponse](vs)
}

func FromSlotBatch(r *commands.SlotBatchResult) *SlotBatchResponse {
	res := &SlotBatchResponse{
		Created:  r.Created,
		Failed:   r.Failed,
		Outcomes: make([]*SlotBatchOutcomeResponse, len(r.Outcomes)),
	}
	for i, o := range r.Outcomes {
		out := &SlotBatchOutcomeResponse{Index: o.Index}
		if o.Slot != nil {
			out.Slot = FromSlotView(o.Slot)
		}
		if o.Error != nil {
			out.Error = &SlotBatchErrorResponse{Kind: o.Error.Kind, Message: o.Error.Message}
		}
		res.Outcomes[i] = out
	}
	return res
}
