package repository

import (
	"context"

	"slot-booking/internal/infra"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
	"slot-booking/internal/pkg/telemetry"
	"slot-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type OutboxWriteQueries interface {
	InsertOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOutboxEventParams) error
	FetchUnpublishedOutboxEvents(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.OutboxEvents, error)
	MarkOutboxEventsPublished(ctx context.Context, db sqlc.DBTX, ids []int64) error
	MarkOutboxEventFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventFailedParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Append(ctx context.Context, tx sqlc.DBTX, msg shared.OutboxMessage) error {
	traceparent, tracestate := telemetry.TraceContextStrings(ctx)
	params := sqlc.InsertOutboxEventParams{
		AggregateID: msg.AggregateID,
		EventType:   msg.EventType,
		Payload:     msg.Payload,
		Traceparent: optionalText(traceparent),
		Tracestate:  optionalText(tracestate),
	}

	if err := r.queries.InsertOutboxEvent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to append outbox event", err)
	}

	return nil
}

// FetchUnpublished locks the returned rows until tx ends; concurrent publishers skip them.
func (r *OutboxRepository) FetchUnpublished(ctx context.Context, tx sqlc.DBTX, limit int32) ([]shared.OutboxRecord, error) {
	rows, err := r.queries.FetchUnpublishedOutboxEvents(ctx, tx, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch outbox events", err)
	}

	records := make([]shared.OutboxRecord, len(rows))
	for i, row := range rows {
		records[i] = shared.OutboxRecord{
			ID:          row.ID,
			EventID:     row.EventID,
			AggregateID: row.AggregateID,
			EventType:   row.EventType,
			Payload:     row.Payload,
			Traceparent: row.Traceparent.String,
			Tracestate:  row.Tracestate.String,
			Attempts:    row.Attempts,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return records, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, tx sqlc.DBTX, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.queries.MarkOutboxEventsPublished(ctx, tx, ids); err != nil {
		return infra.WrapRepoErr("failed to mark outbox events published", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id int64, reason string) error {
	params := sqlc.MarkOutboxEventFailedParams{ID: id, LastError: optionalText(reason)}
	if err := r.queries.MarkOutboxEventFailed(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event failed", err)
	}
	return nil
}

func optionalText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgconv.StringToPgtype(s)
}
