package ports

import (
	"context"

	"retailedge/internal/assemble"
)

// ProjectRepository persists analysis outcomes keyed by the opaque project
// identifier supplied by the caller. The analysis pipeline itself never
// touches the datastore; the service writes through this port once the
// result (or failure) is known.
type ProjectRepository interface {
	// MarkCompleted stores the result payload and flips the project's
	// analysis status to completed.
	MarkCompleted(ctx context.Context, projectID string, result *assemble.ResultPayload) error

	// MarkFailed records the failure message and flips the project's
	// analysis status to failed.
	MarkFailed(ctx context.Context, projectID string, message string) error
}
