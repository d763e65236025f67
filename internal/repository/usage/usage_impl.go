package usage

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vidnotes/vidnotes/internal/model"
	"github.com/vidnotes/vidnotes/internal/repository/common"
)

// Pool abstracts the pgx connection pool for testing
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type usageRepository struct {
	pool Pool
}

// NewRepository creates a new usage statistics repository
func NewRepository(pool Pool) Repository {
	return &usageRepository{pool: pool}
}

// Record inserts a usage event with its metadata serialized as jsonb
func (r *usageRepository) Record(ctx context.Context, stat *model.UsageStatistic) error {
	metadata, err := json.Marshal(stat.Metadata)
	if err != nil {
		return common.HandlePostgreSQLError(err, "failed to encode usage metadata")
	}

	sql := `INSERT INTO usage_statistics (user_id, action, metadata, created_at) VALUES ($1, $2, $3, $4)`
	_, err = r.pool.Exec(ctx, sql, stat.UserID, stat.Action, metadata, stat.CreatedAt)
	if err != nil {
		return common.HandlePostgreSQLError(err, "failed to record usage statistic")
	}

	return nil
}
