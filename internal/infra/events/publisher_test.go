//go:build unit

package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"slot-booking/internal/infra/events"
	"slot-booking/internal/pkg/config"
	"slot-booking/internal/usecase/shared"
	eventsmock "slot-booking/tests/mock/events"
	sharedmock "slot-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/mock/gomock"
)

const sampleTraceparent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"

type PublisherTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	outbox    *sharedmock.MockOutboxRepository
	writer    *eventsmock.MockMessageWriter
	publisher *events.Publisher
}

func TestPublisherSuite(t *testing.T) {
	suite.Run(t, new(PublisherTestSuite))
}

func (s *PublisherTestSuite) SetupSuite() {
	otel.SetTextMapPropagator(propagation.TraceContext{})
}

func (s *PublisherTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.outbox = sharedmock.NewMockOutboxRepository(s.ctrl)
	s.writer = eventsmock.NewMockMessageWriter(s.ctrl)

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Outbox().Return(s.outbox).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	s.publisher = events.NewPublisher(s.uow, s.writer, config.OutboxConfig{PollInterval: 10 * time.Millisecond, BatchSize: 10})
}

func (s *PublisherTestSuite) record(id int64, eventType string) shared.OutboxRecord {
	return shared.OutboxRecord{
		ID:          id,
		EventID:     uuid.New(),
		AggregateID: uuid.New(),
		EventType:   eventType,
		Payload:     []byte(`{"status":"pending"}`),
		Traceparent: sampleTraceparent,
	}
}

func (s *PublisherTestSuite) TestPublishBatch_Success() {
	ctx := context.Background()
	created := s.record(1, "appointment.created")
	cancelled := s.record(2, "appointment.cancelled")

	s.outbox.EXPECT().FetchUnpublished(gomock.Any(), gomock.Any(), int32(10)).
		Return([]shared.OutboxRecord{created, cancelled}, nil)

	var sent []kafka.Message
	s.writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			sent = msgs
			return nil
		})
	s.outbox.EXPECT().MarkPublished(gomock.Any(), gomock.Any(), []int64{1, 2}).Return(nil)

	n, err := s.publisher.PublishBatch(ctx)
	s.Require().NoError(err)
	s.Equal(2, n)

	s.Require().Len(sent, 2)
	s.Equal("appointment.created", sent[0].Topic)
	s.Equal(created.AggregateID.String(), string(sent[0].Key))
	s.Equal(created.EventID.String(), events.HeaderValue(sent[0].Headers, events.HeaderEventID))
	s.Equal("appointment.cancelled", events.HeaderValue(sent[1].Headers, events.HeaderEventType))
	s.Equal(sampleTraceparent, events.HeaderValue(sent[0].Headers, "traceparent"))
}

func (s *PublisherTestSuite) TestPublishBatch_Empty() {
	s.outbox.EXPECT().FetchUnpublished(gomock.Any(), gomock.Any(), int32(10)).Return(nil, nil)

	n, err := s.publisher.PublishBatch(context.Background())
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *PublisherTestSuite) TestPublishBatch_WriteFailureBumpsAttempts() {
	s.outbox.EXPECT().FetchUnpublished(gomock.Any(), gomock.Any(), int32(10)).
		Return([]shared.OutboxRecord{s.record(7, "appointment.created"), s.record(8, "appointment.created")}, nil)
	s.writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unreachable"))
	s.outbox.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), int64(7), "broker unreachable").Return(nil)
	s.outbox.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), int64(8), "broker unreachable").Return(nil)

	n, err := s.publisher.PublishBatch(context.Background())
	s.Require().Error(err)
	s.ErrorContains(err, "broker unreachable")
	s.Zero(n)
}

func (s *PublisherTestSuite) TestRun_StopsOnCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	s.outbox.EXPECT().FetchUnpublished(gomock.Any(), gomock.Any(), int32(10)).Return(nil, nil).AnyTimes()

	done := make(chan struct{})
	go func() {
		s.publisher.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("publisher did not stop after cancel")
	}
}
