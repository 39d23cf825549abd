package consumer

import (
	"context"
	"fmt"

	"go-hrm/internal/events"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type BalanceSeeder interface {
	SeedDefaultBalances(ctx context.Context, profileID uuid.UUID, entitlements map[string]int) (int64, error)
}

// ConsumeEmployeeLifecycle opens the default leave books for every new
// profile. Seeding keeps existing rows, so redelivery is harmless.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader Reader,
	seeder BalanceSeeder,
	entitlements map[string]int,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	run(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) error {
		var event events.EmployeeCreatedEvent
		if err := decode(msg, &event); err != nil {
			return err
		}
		if event.EventType != events.TypeEmployeeCreated {
			return nil
		}
		// hr dan management tidak punya profil
		if event.ProfileID == "" {
			return nil
		}
		profileID, err := uuid.Parse(event.ProfileID)
		if err != nil {
			return fmt.Errorf("%w: profile_id %q", errSkip, event.ProfileID)
		}

		n, err := seeder.SeedDefaultBalances(ctx, profileID, entitlements)
		if err != nil {
			return err
		}
		log.Info("leave balances seeded",
			zap.String("profile_id", event.ProfileID),
			zap.String("emp_id", event.EmpID),
			zap.Int64("created", n),
		)
		return nil
	})
}
