package mongo

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection     = "users"
	matchesCollection   = "matches"
	schedulesCollection = "schedules"
	insightsCollection  = "insights"
)

// Conn is a lazily established connection owned by the server process. The
// first repository call dials the server and creates indexes; later calls reuse
// the same client. A failed dial is retried on the next call.
type Conn struct {
	uri    string
	dbName string
	logger *logrus.Logger

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

func NewConn(uri, dbName string, logger *logrus.Logger) *Conn {
	return &Conn{uri: uri, dbName: dbName, logger: logger}
}

// Database returns the connected database, dialing on first use.
func (c *Conn) Database(ctx context.Context) (*mongo.Database, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db != nil {
		return c.db, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.uri))
	if err != nil {
		return nil, err
	}
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	db := client.Database(c.dbName)
	if err := ensureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	if c.logger != nil {
		c.logger.WithField("database", c.dbName).Info("mongodb connected")
	}
	c.client, c.db = client, db
	return db, nil
}

func (c *Conn) collection(ctx context.Context, name string) (*mongo.Collection, error) {
	db, err := c.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// Ping dials if needed and checks the primary is reachable.
func (c *Conn) Ping(ctx context.Context) error {
	if _, err := c.Database(ctx); err != nil {
		return err
	}
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects if a connection was ever established.
func (c *Conn) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client == nil {
		return nil
	}
	err := c.client.Disconnect(ctx)
	c.client, c.db = nil, nil
	return err
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	models := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		matchesCollection: {
			{Keys: bson.D{{Key: "player", Value: 1}, {Key: "date", Value: -1}}},
		},
		schedulesCollection: {
			{Keys: bson.D{{Key: "player", Value: 1}, {Key: "date", Value: 1}}},
		},
		insightsCollection: {
			{Keys: bson.D{{Key: "relatedPlayer", Value: 1}, {Key: "date", Value: -1}}},
		},
	}
	for coll, idx := range models {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, idx); err != nil {
			return err
		}
	}
	return nil
}
