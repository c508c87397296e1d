package ports

import (
	"context"

	"github.com/userhub/user-management/internal/core/domain"
)

// AuditSink accepts audit entries for asynchronous recording. Implementations
// must not block the caller beyond a bounded enqueue.
type AuditSink interface {
	Record(entry domain.AuditEntry)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry domain.AuditEntry) error
}
