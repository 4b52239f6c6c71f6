package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records operator-relevant events: server lifecycle and the
// admin-activity stream consumed from kafka.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
