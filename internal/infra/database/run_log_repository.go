package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/xavierca1/outreach-engine/internal/entity"
)

// RunLogRepository persiste o resumo de cada execução de ciclo.
//
// Esquema esperado:
//
//	CREATE TABLE run_logs (
//	    id          UUID PRIMARY KEY,
//	    run_type    TEXT NOT NULL,
//	    checked     INT NOT NULL,
//	    advanced    INT NOT NULL,
//	    errors      INT NOT NULL,
//	    started_at  TIMESTAMPTZ NOT NULL,
//	    finished_at TIMESTAMPTZ NOT NULL
//	);
type RunLogRepository struct {
	DB *sql.DB
}

func NewRunLogRepository(db *sql.DB) *RunLogRepository {
	return &RunLogRepository{DB: db}
}

func (r *RunLogRepository) Save(ctx context.Context, run *entity.RunLog) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}

	query := `
		INSERT INTO run_logs (id, run_type, checked, advanced, errors, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		run.ID,
		run.RunType,
		run.Checked,
		run.Advanced,
		run.Errors,
		run.StartedAt,
		run.FinishedAt,
	)

	return err
}
