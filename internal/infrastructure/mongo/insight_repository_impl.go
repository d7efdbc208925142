package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/internal/domain/repository"
)

type InsightRepository struct {
	conn *Conn
}

func NewInsightRepository(conn *Conn) *InsightRepository {
	return &InsightRepository{conn: conn}
}

func (r *InsightRepository) Create(ctx context.Context, in *entity.Insight) error {
	return r.CreateMany(ctx, []*entity.Insight{in})
}

func (r *InsightRepository) CreateMany(ctx context.Context, ins []*entity.Insight) error {
	if len(ins) == 0 {
		return nil
	}
	docs := make([]any, 0, len(ins))
	built := make([]insightDoc, 0, len(ins))
	for _, in := range ins {
		d, err := newInsightDoc(in)
		if err != nil {
			return err
		}
		docs = append(docs, d)
		built = append(built, d)
	}
	coll, err := r.conn.collection(ctx, insightsCollection)
	if err != nil {
		return err
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return err
	}
	for i, in := range ins {
		in.ID = built[i].ID.Hex()
	}
	return nil
}

func (r *InsightRepository) ListByPlayer(ctx context.Context, playerID string) ([]entity.Insight, error) {
	player, err := objectID(playerID)
	if err != nil {
		return []entity.Insight{}, nil
	}
	coll, err := r.conn.collection(ctx, insightsCollection)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.M{"relatedPlayer": player}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var docs []insightDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]entity.Insight, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

func (r *InsightRepository) DeleteAll(ctx context.Context) error {
	coll, err := r.conn.collection(ctx, insightsCollection)
	if err != nil {
		return err
	}
	_, err = coll.DeleteMany(ctx, bson.M{})
	return err
}

var _ repository.InsightRepository = (*InsightRepository)(nil)
