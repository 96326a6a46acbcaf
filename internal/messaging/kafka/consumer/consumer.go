package consumer

import (
	"context"
	"encoding/json"

	"go-attendance/internal/events"
	"go-attendance/internal/leave"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle membaca event employee_created dan seed saldo
// leave credit default untuk employee baru. Seeding idempotent, jadi
// redelivery aman.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	leaveService leave.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			// Payload rusak tidak akan pernah bisa diproses, commit dan lanjut
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if event.EventType != "employee_created" || event.EmployeeID == "" {
			log.Warn("skip unexpected employee lifecycle event",
				zap.String("event_type", event.EventType),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := leaveService.SeedDefaultCredits(ctx, event.EmployeeID); err != nil {
			log.Error("seed default leave credits failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("request_id", event.RequestID),
				zap.Error(err),
			)
			// Jangan commit, biar di-retry pada fetch berikutnya
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("default leave credits seeded",
			zap.String("employee_id", event.EmployeeID),
			zap.String("request_id", event.RequestID),
		)
	}
}
