package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/internal/domain/repository"
)

type MatchRepository struct {
	pool *pgxpool.Pool
}

func NewMatchRepository(pool *pgxpool.Pool) *MatchRepository {
	return &MatchRepository{pool: pool}
}

const insertMatchSQL = `
	INSERT INTO matches (date, opponent, result, score, player, points, assists, minutes_played)
	VALUES ($1, $2, $3, $4, $5::uuid, $6, $7, $8)
	RETURNING id::text
`

func (r *MatchRepository) Create(ctx context.Context, m *entity.Match) error {
	if !validUUID(m.Player) {
		return repository.ErrInvalidID
	}
	return r.pool.QueryRow(ctx, insertMatchSQL,
		m.Date, m.Opponent, string(m.Result), m.Score, m.Player,
		m.Stats.Points, m.Stats.Assists, m.Stats.MinutesPlayed,
	).Scan(&m.ID)
}

// CreateMany inserts all matches in one transaction.
func (r *MatchRepository) CreateMany(ctx context.Context, ms []*entity.Match) error {
	for _, m := range ms {
		if !validUUID(m.Player) {
			return repository.ErrInvalidID
		}
	}
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for _, m := range ms {
			err := tx.QueryRow(ctx, insertMatchSQL,
				m.Date, m.Opponent, string(m.Result), m.Score, m.Player,
				m.Stats.Points, m.Stats.Assists, m.Stats.MinutesPlayed,
			).Scan(&m.ID)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *MatchRepository) ListByPlayer(ctx context.Context, playerID string) ([]entity.Match, error) {
	out := []entity.Match{}
	if !validUUID(playerID) {
		return out, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, date, opponent, result, score, player::text, points, assists, minutes_played
		FROM matches
		WHERE player = $1::uuid
		ORDER BY date DESC
	`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			m      entity.Match
			result string
		)
		if err := rows.Scan(&m.ID, &m.Date, &m.Opponent, &result, &m.Score, &m.Player,
			&m.Stats.Points, &m.Stats.Assists, &m.Stats.MinutesPlayed); err != nil {
			return nil, err
		}
		m.Result = entity.MatchResult(result)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MatchRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM matches`)
	return err
}

var _ repository.MatchRepository = (*MatchRepository)(nil)
