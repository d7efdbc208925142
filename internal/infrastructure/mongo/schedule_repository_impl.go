package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/internal/domain/repository"
)

type ScheduleRepository struct {
	conn *Conn
}

func NewScheduleRepository(conn *Conn) *ScheduleRepository {
	return &ScheduleRepository{conn: conn}
}

func (r *ScheduleRepository) Create(ctx context.Context, s *entity.Schedule) error {
	player, err := objectID(s.Player)
	if err != nil {
		return err
	}
	coll, err := r.conn.collection(ctx, schedulesCollection)
	if err != nil {
		return err
	}
	doc := scheduleDoc{
		ID:        primitive.NewObjectID(),
		Player:    player,
		Date:      s.Date,
		Opponent:  s.Opponent,
		Type:      string(s.Type),
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
	}
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	s.ID = doc.ID.Hex()
	return nil
}

func (r *ScheduleRepository) ListByPlayer(ctx context.Context, playerID string) ([]entity.Schedule, error) {
	player, err := objectID(playerID)
	if err != nil {
		return []entity.Schedule{}, nil
	}
	coll, err := r.conn.collection(ctx, schedulesCollection)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.M{"player": player}, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []scheduleDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]entity.Schedule, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

func (r *ScheduleRepository) GetByID(ctx context.Context, id string) (*entity.Schedule, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	coll, err := r.conn.collection(ctx, schedulesCollection)
	if err != nil {
		return nil, err
	}
	var doc scheduleDoc
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	s := doc.toEntity()
	return &s, nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return repository.ErrNotFound
	}
	coll, err := r.conn.collection(ctx, schedulesCollection)
	if err != nil {
		return err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ScheduleRepository = (*ScheduleRepository)(nil)
