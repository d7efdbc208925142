package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/internal/domain/repository"
)

type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Academy   string             `bson:"academy"`
	Role      string             `bson:"role"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type statsDoc struct {
	Points        int `bson:"points"`
	Assists       int `bson:"assists"`
	MinutesPlayed int `bson:"minutesPlayed"`
}

type matchDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Date     time.Time          `bson:"date"`
	Opponent string             `bson:"opponent"`
	Result   string             `bson:"result"`
	Score    string             `bson:"score"`
	Player   primitive.ObjectID `bson:"player"`
	Stats    statsDoc           `bson:"stats"`
}

type scheduleDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Player    primitive.ObjectID `bson:"player"`
	Date      time.Time          `bson:"date"`
	Opponent  string             `bson:"opponent"`
	Type      string             `bson:"type"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type insightDoc struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty"`
	Title         string              `bson:"title"`
	Description   string              `bson:"description"`
	Type          string              `bson:"type"`
	Date          time.Time           `bson:"date"`
	RelatedPlayer *primitive.ObjectID `bson:"relatedPlayer,omitempty"`
}

func objectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, repository.ErrInvalidID
	}
	return id, nil
}

func (d userDoc) toEntity() *entity.User {
	return &entity.User{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Password:  d.Password,
		Academy:   d.Academy,
		Role:      entity.Role(d.Role),
		CreatedAt: d.CreatedAt,
	}
}

func newMatchDoc(m *entity.Match) (matchDoc, error) {
	player, err := objectID(m.Player)
	if err != nil {
		return matchDoc{}, err
	}
	return matchDoc{
		ID:       primitive.NewObjectID(),
		Date:     m.Date,
		Opponent: m.Opponent,
		Result:   string(m.Result),
		Score:    m.Score,
		Player:   player,
		Stats:    statsDoc(m.Stats),
	}, nil
}

func (d matchDoc) toEntity() entity.Match {
	return entity.Match{
		ID:       d.ID.Hex(),
		Date:     d.Date,
		Opponent: d.Opponent,
		Result:   entity.MatchResult(d.Result),
		Score:    d.Score,
		Player:   d.Player.Hex(),
		Stats:    entity.MatchStats(d.Stats),
	}
}

func (d scheduleDoc) toEntity() entity.Schedule {
	return entity.Schedule{
		ID:        d.ID.Hex(),
		Player:    d.Player.Hex(),
		Date:      d.Date,
		Opponent:  d.Opponent,
		Type:      entity.FixtureType(d.Type),
		Status:    entity.FixtureStatus(d.Status),
		CreatedAt: d.CreatedAt,
	}
}

func newInsightDoc(in *entity.Insight) (insightDoc, error) {
	d := insightDoc{
		ID:          primitive.NewObjectID(),
		Title:       in.Title,
		Description: in.Description,
		Type:        string(in.Type),
		Date:        in.Date,
	}
	if in.RelatedPlayer != "" {
		player, err := objectID(in.RelatedPlayer)
		if err != nil {
			return insightDoc{}, err
		}
		d.RelatedPlayer = &player
	}
	return d, nil
}

func (d insightDoc) toEntity() entity.Insight {
	in := entity.Insight{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Type:        entity.InsightType(d.Type),
		Date:        d.Date,
	}
	if d.RelatedPlayer != nil {
		in.RelatedPlayer = d.RelatedPlayer.Hex()
	}
	return in
}
