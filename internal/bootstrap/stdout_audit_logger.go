package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(_ context.Context, entry AuditLog) {
	zap.L().Named("audit").Info(entry.Message,
		zap.String("occurred_at", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.Any("meta", entry.Meta),
	)
}
