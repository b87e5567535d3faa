package repository

import (
	"context"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSnapshotLogRepository implements SnapshotLogRepository
type MongoSnapshotLogRepository struct {
	collection *mongo.Collection
}

// NewMongoSnapshotLogRepository creates a new snapshot archive repository
func NewMongoSnapshotLogRepository(db *mongo.Database) repository.SnapshotLogRepository {
	collection := db.Collection("flight_snapshots")

	// Compound index for latest-snapshot lookups per flight
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "flightNumber", Value: 1},
			{Key: "fetchedAt", Value: -1},
		},
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoSnapshotLogRepository{
		collection: collection,
	}
}

type snapshotDocument struct {
	ID                 string     `bson:"_id,omitempty"`
	FlightNumber       string     `bson:"flightNumber"`
	Status             string     `bson:"status"`
	ScheduledDeparture *time.Time `bson:"scheduledDeparture,omitempty"`
	ActualDeparture    *time.Time `bson:"actualDeparture,omitempty"`
	ScheduledArrival   *time.Time `bson:"scheduledArrival,omitempty"`
	ActualArrival      *time.Time `bson:"actualArrival,omitempty"`
	Gate               string     `bson:"gate,omitempty"`
	Terminal           string     `bson:"terminal,omitempty"`
	FetchedAt          time.Time  `bson:"fetchedAt"`
}

// SaveSnapshot archives a provider snapshot
func (r *MongoSnapshotLogRepository) SaveSnapshot(ctx context.Context, snapshot *entity.FlightSnapshot) error {
	doc := snapshotDocument{
		ID:                 primitive.NewObjectID().Hex(),
		FlightNumber:       snapshot.FlightNumber,
		Status:             snapshot.Status,
		ScheduledDeparture: snapshot.ScheduledDeparture,
		ActualDeparture:    snapshot.ActualDeparture,
		ScheduledArrival:   snapshot.ScheduledArrival,
		ActualArrival:      snapshot.ActualArrival,
		Gate:               snapshot.Gate,
		Terminal:           snapshot.Terminal,
		FetchedAt:          snapshot.FetchedAt,
	}
	if doc.FetchedAt.IsZero() {
		doc.FetchedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// FindLatest returns the most recently archived snapshot for a flight
func (r *MongoSnapshotLogRepository) FindLatest(ctx context.Context, flightNumber string) (*entity.FlightSnapshot, error) {
	var doc snapshotDocument
	opts := options.FindOne().SetSort(bson.D{{Key: "fetchedAt", Value: -1}})
	err := r.collection.FindOne(ctx, bson.M{"flightNumber": flightNumber}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &entity.FlightSnapshot{
		FlightNumber:       doc.FlightNumber,
		Status:             doc.Status,
		ScheduledDeparture: doc.ScheduledDeparture,
		ActualDeparture:    doc.ActualDeparture,
		ScheduledArrival:   doc.ScheduledArrival,
		ActualArrival:      doc.ActualArrival,
		Gate:               doc.Gate,
		Terminal:           doc.Terminal,
		FetchedAt:          doc.FetchedAt,
	}, nil
}
