package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"retailedge/domain/core"
	"retailedge/internal/assemble"
	"retailedge/ports"
)

// projectRepository implements the ProjectRepository interface against the
// projects table the dashboard reads from.
type projectRepository struct {
	db *sqlx.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sqlx.DB) ports.ProjectRepository {
	return &projectRepository{db: db}
}

// MarkCompleted stores the analysis payload and flips the status to completed.
func (r *projectRepository) MarkCompleted(ctx context.Context, projectID string, result *assemble.ResultPayload) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	query := `UPDATE projects
		SET analysis_status = 'completed', analysis_json = $2, analysis_error = NULL, updated_at = $3
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, projectID, resultJSON, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to store analysis result: %w", err)
	}
	return r.checkAffected(res, projectID)
}

// MarkFailed records the failure message and flips the status to failed.
func (r *projectRepository) MarkFailed(ctx context.Context, projectID string, message string) error {
	query := `UPDATE projects
		SET analysis_status = 'failed', analysis_error = $2, updated_at = $3
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, projectID, message, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record analysis failure: %w", err)
	}
	return r.checkAffected(res, projectID)
}

func (r *projectRepository) checkAffected(res interface{ RowsAffected() (int64, error) }, projectID string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", core.ErrProjectNotFound, projectID)
	}
	return nil
}
