package bootstrap

import "context"

// AuditLog is one auditable event: server lifecycle changes and access to the
// restricted security-notes surface.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
