package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/internal/domain/repository"
)

type ScheduleRepository struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

func (r *ScheduleRepository) Create(ctx context.Context, s *entity.Schedule) error {
	if !validUUID(s.Player) {
		return repository.ErrInvalidID
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO schedules (player, date, opponent, type, status, created_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6)
		RETURNING id::text
	`, s.Player, s.Date, s.Opponent, string(s.Type), string(s.Status), s.CreatedAt).Scan(&s.ID)
}

const selectScheduleSQL = `
	SELECT id::text, player::text, date, opponent, type, status, created_at
	FROM schedules
`

func scanSchedule(row pgx.Row) (entity.Schedule, error) {
	var (
		s           entity.Schedule
		typ, status string
	)
	if err := row.Scan(&s.ID, &s.Player, &s.Date, &s.Opponent, &typ, &status, &s.CreatedAt); err != nil {
		return entity.Schedule{}, err
	}
	s.Type = entity.FixtureType(typ)
	s.Status = entity.FixtureStatus(status)
	return s, nil
}

func (r *ScheduleRepository) ListByPlayer(ctx context.Context, playerID string) ([]entity.Schedule, error) {
	out := []entity.Schedule{}
	if !validUUID(playerID) {
		return out, nil
	}
	rows, err := r.pool.Query(ctx, selectScheduleSQL+` WHERE player = $1::uuid ORDER BY date ASC`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ScheduleRepository) GetByID(ctx context.Context, id string) (*entity.Schedule, error) {
	if !validUUID(id) {
		return nil, repository.ErrNotFound
	}
	s, err := scanSchedule(r.pool.QueryRow(ctx, selectScheduleSQL+` WHERE id = $1::uuid`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	if !validUUID(id) {
		return repository.ErrNotFound
	}
	res, err := r.pool.Exec(ctx, `DELETE FROM schedules WHERE id = $1::uuid`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ScheduleRepository = (*ScheduleRepository)(nil)
