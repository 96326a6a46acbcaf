package bootstrap

import "context"

// AuditLog adalah satu kejadian operasional yang layak dicatat terpisah
// dari application log (startup, shutdown, seeding).
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
