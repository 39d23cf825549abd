package consumer

import (
	"context"
	"encoding/json"
	"errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Reader is the part of *kafkago.Reader the consumers use.
type Reader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// errSkip marks a message that can never succeed; it is committed and dropped.
var errSkip = errors.New("skip message")

type handleFunc func(ctx context.Context, msg kafkago.Message) error

// run fetches until ctx is cancelled. A failed message stays uncommitted and
// is redelivered after the next rebalance or restart.
func run(ctx context.Context, reader Reader, log *zap.Logger, handle handleFunc) {
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		if err := handle(ctx, msg); err != nil {
			if !errors.Is(err, errSkip) {
				log.Error("handle message failed",
					zap.String("topic", msg.Topic),
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
				continue
			}
			log.Warn("message skipped", zap.String("topic", msg.Topic), zap.Int64("offset", msg.Offset), zap.Error(err))
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Error(err))
		}
	}
}

func decode(msg kafkago.Message, out any) error {
	if err := json.Unmarshal(msg.Value, out); err != nil {
		return errors.Join(errSkip, err)
	}
	return nil
}
