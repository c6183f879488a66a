package repository

import (
	"RepairDesk/internal/config"
	"RepairDesk/internal/lib/sl"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	apiKeysCollection    = "api-keys"
	bookingsCollection   = "bookings"
	saleQuotesCollection = "sale-quotes"
	servicesCollection   = "repair-services"
	timeSlotsCollection  = "time-slots"
)

// MongoDB opens a connection per operation; the service is low traffic
// and this keeps the client free of pool lifecycle management.
type MongoDB struct {
	ctx           context.Context
	clientOptions *options.ClientOptions
	database      string
	log           *slog.Logger
}

func NewMongoClient(conf *config.Config, logger *slog.Logger) (*MongoDB, error) {
	if !conf.Mongo.Enabled {
		return nil, nil
	}
	connectionUri := fmt.Sprintf("mongodb://%s:%s", conf.Mongo.Host, conf.Mongo.Port)
	clientOptions := options.Client().ApplyURI(connectionUri)
	if conf.Mongo.User != "" {
		clientOptions.SetAuth(options.Credential{
			Username:   conf.Mongo.User,
			Password:   conf.Mongo.Password,
			AuthSource: conf.Mongo.Database,
		})
	}
	return &MongoDB{
		ctx:           context.Background(),
		clientOptions: clientOptions,
		database:      conf.Mongo.Database,
		log:           logger.With(sl.Module("mongodb")),
	}, nil
}

func (m *MongoDB) connect() (*mongo.Client, error) {
	connection, err := mongo.Connect(m.ctx, m.clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect error: %w", err)
	}
	return connection, nil
}

func (m *MongoDB) disconnect(connection *mongo.Client) {
	_ = connection.Disconnect(m.ctx)
}

// withCollection runs fn against one collection on a fresh connection.
func (m *MongoDB) withCollection(name string, fn func(collection *mongo.Collection) error) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)
	return fn(connection.Database(m.database).Collection(name))
}

// CheckApiKey returns the staff username owning the key.
func (m *MongoDB) CheckApiKey(key string) (string, error) {
	var result struct {
		Username string `bson:"username"`
	}
	err := m.withCollection(apiKeysCollection, func(collection *mongo.Collection) error {
		return collection.FindOne(m.ctx, bson.D{{"key", key}}).Decode(&result)
	})
	if err != nil {
		return "", fmt.Errorf("api key lookup: %w", err)
	}
	if result.Username == "" {
		return "", fmt.Errorf("api key not found")
	}
	return result.Username, nil
}

// GenerateApiKey returns the staff member's key, creating one on first use.
func (m *MongoDB) GenerateApiKey(username string) (string, error) {
	var existing struct {
		Key string `bson:"key"`
	}
	err := m.withCollection(apiKeysCollection, func(collection *mongo.Collection) error {
		return collection.FindOne(m.ctx, bson.D{{"username", username}}).Decode(&existing)
	})
	if err == nil && existing.Key != "" {
		return existing.Key, nil
	}
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return "", fmt.Errorf("failed to get existing API key: %w", err)
	}

	key := uuid.NewString()
	err = m.withCollection(apiKeysCollection, func(collection *mongo.Collection) error {
		_, err := collection.InsertOne(m.ctx, bson.D{
			{"username", username},
			{"key", key},
		})
		return err
	})
	if err != nil {
		return "", fmt.Errorf("mongodb insert error: %w", err)
	}
	m.log.With(slog.String("username", username)).Info("api key generated")
	return key, nil
}
