package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"ems-console/internal/bootstrap"
	"ems-console/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// NewAdminActivityReader tails the admin-activity topic as one consumer
// group, so multiple console replicas don't double-record.
func NewAdminActivityReader(brokers, groupID string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     strings.Split(brokers, ","),
		Topic:       events.AdminActivityTopic,
		GroupID:     groupID,
		StartOffset: kafkago.FirstOffset,
	})
}

// ConsumeAdminActivity feeds every admin action into the audit log until the
// context is cancelled. Malformed payloads are logged and skipped; the
// stream must keep moving.
func ConsumeAdminActivity(
	ctx context.Context,
	reader *kafkago.Reader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			logger.Error("read admin activity failed", zap.Error(err))
			continue
		}

		var event events.AdminActionEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Warn("skip malformed admin activity payload",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			continue
		}

		audit.Log(ctx, bootstrap.AuditLog{
			Action:  strings.ToUpper(event.EventType),
			Message: "Admin action recorded",
			Meta: map[string]any{
				"employee_id": event.EmployeeID,
				"request_id":  event.RequestID,
				"session_id":  event.SessionID,
				"occurred_at": event.OccurredAt,
			},
		})
	}
}
