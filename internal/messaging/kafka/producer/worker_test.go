package producer

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrm/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeOutbox struct {
	pending []kafka.OutboxEvent
	sent    []string
	failed  []string
}

func (f *fakeOutbox) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.pending = append(f.pending, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return f.pending, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error {
	f.sent = append(f.sent, id)
	return nil
}
func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error {
	f.failed = append(f.failed, id)
	return nil
}

type fakeWriter struct {
	failTopic string
	written   []kafkago.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if m.Topic == w.failTopic {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	repo := &fakeOutbox{pending: []kafka.OutboxEvent{
		{ID: "a", Topic: "hrm.leave.decided.v1", AggregateID: "leave-1", EventType: "leave_decided", Payload: []byte(`{}`)},
		{ID: "b", Topic: "broken", AggregateID: "x", Payload: []byte(`{}`)},
	}}
	writer := &fakeWriter{failTopic: "broken"}

	res, err := processPendingEvents(context.Background(), repo, writer, zap.NewNop())
	assert.NoError(t, err)
	assert.Equal(t, batchResult{Sent: 1, Failed: 1}, res)

	assert.Equal(t, []string{"a"}, repo.sent)
	assert.Equal(t, []string{"b"}, repo.failed)
	assert.Len(t, writer.written, 1)
	assert.Equal(t, []byte("leave-1"), writer.written[0].Key)
	assert.Equal(t, "event_type", writer.written[0].Headers[0].Key)
}

func TestPublishEvent_OmitsEmptyRequestID(t *testing.T) {
	writer := &fakeWriter{}
	err := publishEvent(context.Background(), writer, kafka.OutboxEvent{ID: "c", Topic: "t", AggregateID: "p-1", EventType: "payslip_generated", Payload: []byte(`{}`)})
	assert.NoError(t, err)

	keys := []string{}
	for _, h := range writer.written[0].Headers {
		keys = append(keys, h.Key)
	}
	assert.Equal(t, []string{"event_type", "aggregate_type", "outbox_id"}, keys)
}

func TestProcessOutboxEvents_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	repo := &fakeOutbox{}
	done := make(chan struct{})
	go func() {
		ProcessOutboxEvents(ctx, repo, &fakeWriter{}, zap.NewNop(), 10*time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
