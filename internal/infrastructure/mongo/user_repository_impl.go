package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/internal/domain/repository"
)

type UserRepository struct {
	conn *Conn
}

func NewUserRepository(conn *Conn) *UserRepository {
	return &UserRepository{conn: conn}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	coll, err := r.conn.collection(ctx, usersCollection)
	if err != nil {
		return err
	}
	doc := userDoc{
		ID:        primitive.NewObjectID(),
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		Academy:   u.Academy,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEmail
		}
		return err
	}
	u.ID = doc.ID.Hex()
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	coll, err := r.conn.collection(ctx, usersCollection)
	if err != nil {
		return nil, err
	}
	var doc userDoc
	if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *UserRepository) DeleteAll(ctx context.Context) error {
	coll, err := r.conn.collection(ctx, usersCollection)
	if err != nil {
		return err
	}
	_, err = coll.DeleteMany(ctx, bson.M{})
	return err
}

var _ repository.UserRepository = (*UserRepository)(nil)
