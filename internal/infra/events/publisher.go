package events

import (
	"context"
	"log/slog"
	"time"

	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/pkg/telemetry"
	"slot-booking/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher relays outbox rows to Kafka, one topic per event type.
type Publisher struct {
	uow       shared.UnitOfWork
	writer    MessageWriter
	pollEvery time.Duration
	batchSize int32
}

func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		Transport:              &kafka.Transport{ClientID: cfg.ClientID},
	}
}

func NewPublisher(uow shared.UnitOfWork, writer MessageWriter, cfg config.OutboxConfig) *Publisher {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	return &Publisher{
		uow:       uow,
		writer:    writer,
		pollEvery: cfg.PollInterval,
		batchSize: cfg.BatchSize,
	}
}

func (p *Publisher) Run(ctx context.Context) {
	ticker := time.NewTicker(p.pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := p.PublishBatch(ctx)
			if err != nil {
				slog.ErrorContext(ctx, "outbox publish failed", "error", err.Error())
				continue
			}
			if n > 0 {
				slog.DebugContext(ctx, "outbox events published", "count", n)
			}
		}
	}
}

// PublishBatch sends one batch of pending rows. Rows stay locked while the batch is in flight.
// A failed write bumps the attempt counter of every row in the batch; they are retried next tick.
func (p *Publisher) PublishBatch(ctx context.Context) (int, error) {
	var published int
	var writeErr error

	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0
		writeErr = nil

		records, err := tx.Outbox().FetchUnpublished(ctx, tx.DB(), p.batchSize)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}

		msgs := make([]kafka.Message, len(records))
		ids := make([]int64, len(records))
		for i, r := range records {
			msgs[i] = toMessage(ctx, r)
			ids[i] = r.ID
		}

		if writeErr = p.writer.WriteMessages(ctx, msgs...); writeErr != nil {
			for _, id := range ids {
				if err := tx.Outbox().MarkFailed(ctx, tx.DB(), id, writeErr.Error()); err != nil {
					return err
				}
			}
			return nil
		}

		if err := tx.Outbox().MarkPublished(ctx, tx.DB(), ids); err != nil {
			return err
		}
		published = len(ids)
		return nil
	})
	if err != nil {
		return 0, err
	}
	if writeErr != nil {
		return 0, errs.Wrap(writeErr, "write outbox messages")
	}
	return published, nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func toMessage(ctx context.Context, r shared.OutboxRecord) kafka.Message {
	msgCtx := telemetry.ContextWithTraceContext(ctx, r.Traceparent, r.Tracestate)
	msg := kafka.Message{
		Topic: r.EventType,
		Key:   []byte(r.AggregateID.String()),
		Value: r.Payload,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(r.EventID.String())},
			{Key: HeaderEventType, Value: []byte(r.EventType)},
		},
	}
	msg.Headers = injectTraceHeaders(msgCtx, msg.Headers)
	return msg
}
