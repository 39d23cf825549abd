package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"go-hrm/internal/events"
	"go-hrm/internal/mailer"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeReader hands out msgs in order, then cancels the consumer.
type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func newReader(t *testing.T, values ...any) (context.Context, *fakeReader) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	r := &fakeReader{cancel: cancel}
	for i, v := range values {
		var raw []byte
		switch val := v.(type) {
		case string:
			raw = []byte(val)
		default:
			b, err := json.Marshal(val)
			require.NoError(t, err)
			raw = b
		}
		r.msgs = append(r.msgs, kafkago.Message{Offset: int64(i), Value: raw})
	}
	return ctx, r
}

type fakeSeeder struct {
	calls []uuid.UUID
	err   error
}

func (f *fakeSeeder) SeedDefaultBalances(ctx context.Context, profileID uuid.UUID, entitlements map[string]int) (int64, error) {
	f.calls = append(f.calls, profileID)
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(entitlements)), nil
}

type failingMailer struct {
	fail map[string]bool
	sent []mailer.Message
}

func (f *failingMailer) Send(ctx context.Context, msg mailer.Message) error {
	if f.fail[msg.To] {
		return errors.New("smtp 550")
	}
	f.sent = append(f.sent, msg)
	return nil
}

func TestConsumeEmployeeLifecycle(t *testing.T) {
	profileID := uuid.New()
	ctx, reader := newReader(t,
		events.EmployeeCreatedEvent{EventType: events.TypeEmployeeCreated, UserID: uuid.NewString(), ProfileID: profileID.String(), Role: "employee"},
		events.EmployeeCreatedEvent{EventType: events.TypeEmployeeCreated, UserID: uuid.NewString(), Role: "hr"},
		"{not json",
		events.EmployeeCreatedEvent{EventType: events.TypeEmployeeCreated, ProfileID: "nope"},
	)
	seeder := &fakeSeeder{}

	ConsumeEmployeeLifecycle(ctx, reader, seeder, map[string]int{"CASUAL": 12, "SICK": 6}, zap.NewNop())

	assert.Equal(t, []uuid.UUID{profileID}, seeder.calls)
	assert.Equal(t, []int64{0, 1, 2, 3}, reader.committed)
}

func TestConsumeEmployeeLifecycle_FailureLeavesOffsetUncommitted(t *testing.T) {
	ctx, reader := newReader(t,
		events.EmployeeCreatedEvent{EventType: events.TypeEmployeeCreated, ProfileID: uuid.NewString()},
	)
	seeder := &fakeSeeder{err: errors.New("db down")}

	ConsumeEmployeeLifecycle(ctx, reader, seeder, map[string]int{"CASUAL": 12}, zap.NewNop())

	assert.Len(t, seeder.calls, 1)
	assert.Empty(t, reader.committed)
}

func TestConsumeLeaveDecided(t *testing.T) {
	ctx, reader := newReader(t,
		events.LeaveDecidedEvent{
			EventType: events.TypeLeaveDecided,
			LeaveID:   uuid.NewString(),
			Email:     "emp1@wealthzonegroupai.com",
			LeaveType: "CASUAL",
			StartDate: "2026-10-20",
			EndDate:   "2026-10-21",
			Status:    "APPROVED",
			Remarks:   "Enjoy",
		},
		events.LeaveDecidedEvent{EventType: events.TypeLeaveDecided, LeaveID: uuid.NewString()},
	)
	m := mailer.NewNoop(zap.NewNop())

	ConsumeLeaveDecided(ctx, reader, m, zap.NewNop())

	sent := m.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "emp1@wealthzonegroupai.com", sent[0].To)
	assert.Equal(t, "Leave request approved", sent[0].Subject)
	assert.Contains(t, sent[0].Body, "casual leave from 2026-10-20 to 2026-10-21 has been approved")
	assert.Contains(t, sent[0].Body, "Remarks: Enjoy")
	assert.Equal(t, []int64{0, 1}, reader.committed)
}

func TestConsumeAnnouncementPublished(t *testing.T) {
	event := events.AnnouncementPublishedEvent{
		EventType:       events.TypeAnnouncementPublished,
		AnnouncementID:  uuid.NewString(),
		Title:           "Office closed",
		Description:     "Power maintenance on Friday.",
		Priority:        "HIGH",
		RecipientEmails: []string{"a@wzg.test", "b@wzg.test", "c@wzg.test"},
	}

	t.Run("partial failure still commits", func(t *testing.T) {
		ctx, reader := newReader(t, event)
		m := &failingMailer{fail: map[string]bool{"b@wzg.test": true}}

		ConsumeAnnouncementPublished(ctx, reader, m, zap.NewNop())

		require.Len(t, m.sent, 2)
		assert.Equal(t, "[Important] Office closed", m.sent[0].Subject)
		assert.Equal(t, "c@wzg.test", m.sent[1].To)
		assert.Equal(t, []int64{0}, reader.committed)
	})

	t.Run("total failure is retried", func(t *testing.T) {
		ctx, reader := newReader(t, event)
		m := &failingMailer{fail: map[string]bool{"a@wzg.test": true, "b@wzg.test": true, "c@wzg.test": true}}

		ConsumeAnnouncementPublished(ctx, reader, m, zap.NewNop())

		assert.Empty(t, reader.committed)
	})
}

func TestConsumePayslipGenerated(t *testing.T) {
	ctx, reader := newReader(t, events.PayslipGeneratedEvent{
		EventType: events.TypePayslipGenerated,
		PayslipID: uuid.NewString(),
		Email:     "emp1@wealthzonegroupai.com",
		Year:      2026,
		Month:     9,
		NetAmount: "48250.00",
	})
	m := mailer.NewNoop(zap.NewNop())

	ConsumePayslipGenerated(ctx, reader, m, zap.NewNop())

	sent := m.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "Payslip for September 2026", sent[0].Subject)
	assert.Contains(t, sent[0].Body, "Net pay: 48250.00")
	assert.Equal(t, []int64{0}, reader.committed)
}
