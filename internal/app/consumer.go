package app

import (
	"context"
	"errors"
	"sync"

	"go-hrm/internal/bootstrap"
	"go-hrm/internal/config"
	"go-hrm/internal/employee"
	"go-hrm/internal/events"
	"go-hrm/internal/leave"
	"go-hrm/internal/mailer"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/messaging/kafka/consumer"
	"go-hrm/internal/notification"
	"go-hrm/internal/shared/connection"
	"go-hrm/internal/user"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const consumerGroupPrefix = "go-hrm-"

func newReader(broker, topic, group string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          topic,
		GroupID:        consumerGroupPrefix + group,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
}

// RunConsumer runs one reader per topic until a shutdown signal.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}
	entitlements, err := config.ParseEntitlements(cfg.DefaultLeaveEntitlements)
	if err != nil {
		return err
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg, 5)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	leaveService := leave.NewService(
		gormDB,
		leave.NewRepository(gormDB),
		employee.NewRepository(gormDB),
		user.NewRepository(gormDB),
		notification.NewRepository(gormDB),
		kafka.NewOutboxRepository(gormDB),
		entitlements,
	)
	mail := mailer.New(cfg, logger)

	lifecycle := newReader(cfg.KafkaBroker, events.EmployeeLifecycleTopic, "leave-balances")
	decided := newReader(cfg.KafkaBroker, events.LeaveDecidedTopic, "leave-mail")
	published := newReader(cfg.KafkaBroker, events.AnnouncementPublishedTopic, "announcement-mail")
	payslips := newReader(cfg.KafkaBroker, events.PayrollPayslipGeneratedTopic, "payslip-mail")
	readers := []*kafkago.Reader{lifecycle, decided, published, payslips}
	defer func() {
		for _, r := range readers {
			_ = r.Close()
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	start := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}
	start(func() { consumer.ConsumeEmployeeLifecycle(ctx, lifecycle, leaveService, entitlements, logger) })
	start(func() { consumer.ConsumeLeaveDecided(ctx, decided, mail, logger) })
	start(func() { consumer.ConsumeAnnouncementPublished(ctx, published, mail, logger) })
	start(func() { consumer.ConsumePayslipGenerated(ctx, payslips, mail, logger) })

	sig := bootstrap.WaitForSignal()
	logger.Info("consumer shutting down", zap.String("signal", sig.String()))
	cancel()
	wg.Wait()

	return nil
}
