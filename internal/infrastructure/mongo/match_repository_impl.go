package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/internal/domain/repository"
)

type MatchRepository struct {
	conn *Conn
}

func NewMatchRepository(conn *Conn) *MatchRepository {
	return &MatchRepository{conn: conn}
}

func (r *MatchRepository) Create(ctx context.Context, m *entity.Match) error {
	return r.CreateMany(ctx, []*entity.Match{m})
}

func (r *MatchRepository) CreateMany(ctx context.Context, ms []*entity.Match) error {
	if len(ms) == 0 {
		return nil
	}
	docs := make([]any, 0, len(ms))
	built := make([]matchDoc, 0, len(ms))
	for _, m := range ms {
		d, err := newMatchDoc(m)
		if err != nil {
			return err
		}
		docs = append(docs, d)
		built = append(built, d)
	}
	coll, err := r.conn.collection(ctx, matchesCollection)
	if err != nil {
		return err
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return err
	}
	for i, m := range ms {
		m.ID = built[i].ID.Hex()
	}
	return nil
}

func (r *MatchRepository) ListByPlayer(ctx context.Context, playerID string) ([]entity.Match, error) {
	player, err := objectID(playerID)
	if err != nil {
		return []entity.Match{}, nil
	}
	coll, err := r.conn.collection(ctx, matchesCollection)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.M{"player": player}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var docs []matchDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]entity.Match, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

func (r *MatchRepository) DeleteAll(ctx context.Context) error {
	coll, err := r.conn.collection(ctx, matchesCollection)
	if err != nil {
		return err
	}
	_, err = coll.DeleteMany(ctx, bson.M{})
	return err
}

var _ repository.MatchRepository = (*MatchRepository)(nil)
