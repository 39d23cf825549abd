package consumer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-hrm/internal/events"
	"go-hrm/internal/mailer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLeaveDecided mails the applicant once TL or HR decides a request.
func ConsumeLeaveDecided(ctx context.Context, reader Reader, m mailer.Mailer, logger *zap.Logger) {
	log := logger.Named("kafka.consumer.leave_decided")
	run(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) error {
		var event events.LeaveDecidedEvent
		if err := decode(msg, &event); err != nil {
			return err
		}
		if event.Email == "" {
			return fmt.Errorf("%w: leave %s has no recipient", errSkip, event.LeaveID)
		}
		return m.Send(ctx, leaveDecidedMail(event))
	})
}

// ConsumeAnnouncementPublished mails every recipient of a HIGH priority
// announcement. A failed address is logged and does not hold back the rest.
func ConsumeAnnouncementPublished(ctx context.Context, reader Reader, m mailer.Mailer, logger *zap.Logger) {
	log := logger.Named("kafka.consumer.announcement_published")
	run(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) error {
		var event events.AnnouncementPublishedEvent
		if err := decode(msg, &event); err != nil {
			return err
		}

		var failed int
		for _, to := range event.RecipientEmails {
			mail := announcementMail(event)
			mail.To = to
			if err := m.Send(ctx, mail); err != nil {
				failed++
				log.Warn("announcement mail failed", zap.String("to", to), zap.Error(err))
			}
		}
		if failed > 0 && failed == len(event.RecipientEmails) {
			return errors.New("announcement mail failed for every recipient")
		}
		log.Info("announcement mailed",
			zap.String("announcement_id", event.AnnouncementID),
			zap.Int("sent", len(event.RecipientEmails)-failed),
		)
		return nil
	})
}

// ConsumePayslipGenerated tells the employee their payslip is ready.
func ConsumePayslipGenerated(ctx context.Context, reader Reader, m mailer.Mailer, logger *zap.Logger) {
	log := logger.Named("kafka.consumer.payslip_generated")
	run(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) error {
		var event events.PayslipGeneratedEvent
		if err := decode(msg, &event); err != nil {
			return err
		}
		if event.Email == "" {
			return fmt.Errorf("%w: payslip %s has no recipient", errSkip, event.PayslipID)
		}
		return m.Send(ctx, payslipMail(event))
	})
}

func leaveDecidedMail(e events.LeaveDecidedEvent) mailer.Message {
	status := strings.ToLower(e.Status)
	var b strings.Builder
	fmt.Fprintf(&b, "Your %s leave from %s to %s has been %s.\n", strings.ToLower(e.LeaveType), e.StartDate, e.EndDate, status)
	if e.Remarks != "" {
		fmt.Fprintf(&b, "\nRemarks: %s\n", e.Remarks)
	}
	return mailer.Message{
		To:      e.Email,
		Subject: fmt.Sprintf("Leave request %s", status),
		Body:    b.String(),
	}
}

func announcementMail(e events.AnnouncementPublishedEvent) mailer.Message {
	return mailer.Message{
		Subject: "[Important] " + e.Title,
		Body:    e.Description + "\n",
	}
}

func payslipMail(e events.PayslipGeneratedEvent) mailer.Message {
	period := time.Date(e.Year, time.Month(e.Month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
	return mailer.Message{
		To:      e.Email,
		Subject: "Payslip for " + period,
		Body:    fmt.Sprintf("Your payslip for %s is ready. Net pay: %s.\nDownload it from the HRM portal.\n", period, e.NetAmount),
	}
}
