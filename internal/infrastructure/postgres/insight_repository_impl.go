package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/internal/domain/repository"
)

type InsightRepository struct {
	pool *pgxpool.Pool
}

func NewInsightRepository(pool *pgxpool.Pool) *InsightRepository {
	return &InsightRepository{pool: pool}
}

const insertInsightSQL = `
	INSERT INTO insights (title, description, type, date, related_player)
	VALUES ($1, $2, $3, $4, $5::uuid)
	RETURNING id::text
`

func relatedPlayerArg(in *entity.Insight) (*string, error) {
	if in.RelatedPlayer == "" {
		return nil, nil
	}
	if !validUUID(in.RelatedPlayer) {
		return nil, repository.ErrInvalidID
	}
	return &in.RelatedPlayer, nil
}

func (r *InsightRepository) Create(ctx context.Context, in *entity.Insight) error {
	player, err := relatedPlayerArg(in)
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx, insertInsightSQL, in.Title, in.Description, string(in.Type), in.Date, player).Scan(&in.ID)
}

// CreateMany inserts all insights in one transaction.
func (r *InsightRepository) CreateMany(ctx context.Context, ins []*entity.Insight) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for _, in := range ins {
			player, err := relatedPlayerArg(in)
			if err != nil {
				return err
			}
			if err := tx.QueryRow(ctx, insertInsightSQL, in.Title, in.Description, string(in.Type), in.Date, player).Scan(&in.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *InsightRepository) ListByPlayer(ctx context.Context, playerID string) ([]entity.Insight, error) {
	out := []entity.Insight{}
	if !validUUID(playerID) {
		return out, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, title, description, type, date, related_player::text
		FROM insights
		WHERE related_player = $1::uuid
		ORDER BY date DESC
	`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			in     entity.Insight
			typ    string
			player *string
		)
		if err := rows.Scan(&in.ID, &in.Title, &in.Description, &typ, &in.Date, &player); err != nil {
			return nil, err
		}
		in.Type = entity.InsightType(typ)
		if player != nil {
			in.RelatedPlayer = *player
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

func (r *InsightRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM insights`)
	return err
}

var _ repository.InsightRepository = (*InsightRepository)(nil)
