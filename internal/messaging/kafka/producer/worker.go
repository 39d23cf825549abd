package producer

import (
	"context"
	"time"

	"go-hrm/internal/messaging/kafka"

	"go.uber.org/zap"
)

const batchSize = 50

type batchResult struct {
	Sent   int
	Failed int
}

// ProcessOutboxEvents relays outbox rows until ctx is cancelled. A full batch
// is followed immediately by the next one; otherwise the worker waits for the
// next tick.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-timer.C:
		}

		res, err := processPendingEvents(ctx, repo, writer, log)
		if err != nil {
			log.Error("process outbox events failed", zap.Error(err))
		}

		next := pollInterval
		if err == nil && res.Sent+res.Failed == batchSize {
			next = 0
		}
		timer.Reset(next)
	}
}

func processPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) (batchResult, error) {
	var res batchResult

	events, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return res, err
	}
	if len(events) == 0 {
		return res, nil
	}

	for _, event := range events {
		if ctx.Err() != nil {
			break
		}

		if err := publishEvent(ctx, writer, event); err != nil {
			res.Failed++
			logger.Error("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
				zap.Int("retry_count", event.RetryCount),
				zap.Error(err),
			)
			// MarkFailed menjadwalkan retry dengan backoff
			if err := repo.MarkFailed(ctx, event.ID, err.Error()); err != nil {
				logger.Error("mark outbox failed failed", zap.String("outbox_id", event.ID), zap.Error(err))
			}
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			// the row will be published again; consumers tolerate duplicates
			res.Failed++
			logger.Error("mark outbox sent failed", zap.String("outbox_id", event.ID), zap.Error(err))
			continue
		}
		res.Sent++
		logger.Debug("outbox event sent",
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
	}

	logger.Info("outbox batch processed", zap.Int("sent", res.Sent), zap.Int("failed", res.Failed))
	return res, nil
}
