package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taplog/attendance-system/internal/core/domain"
)

const collectionLogs = "logs"

// EventRepository implements the attendance ledger on MongoDB.
type EventRepository struct {
	col *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{col: db.Collection(collectionLogs)}
}

// Insert appends a new attendance event document.
func (r *EventRepository) Insert(ctx context.Context, event *domain.AttendanceEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, event)
	return err
}

// ListByUIDAndDate returns one identifier's events for a date, newest first.
func (r *EventRepository) ListByUIDAndDate(ctx context.Context, uid, date string) ([]*domain.AttendanceEvent, error) {
	return r.find(ctx, bson.M{"uid": uid, "date": date}, bson.D{{Key: "timestamp", Value: -1}}, 0)
}

// ListByDate returns all events for a date, newest first.
func (r *EventRepository) ListByDate(ctx context.Context, date string) ([]*domain.AttendanceEvent, error) {
	return r.find(ctx, bson.M{"date": date}, bson.D{{Key: "timestamp", Value: -1}}, 0)
}

// ListByDateAscending returns all events for a date in chronological order.
func (r *EventRepository) ListByDateAscending(ctx context.Context, date string) ([]*domain.AttendanceEvent, error) {
	return r.find(ctx, bson.M{"date": date}, bson.D{{Key: "timestamp", Value: 1}}, 0)
}

// ListByUID returns all events for an identifier, newest first.
func (r *EventRepository) ListByUID(ctx context.Context, uid string) ([]*domain.AttendanceEvent, error) {
	return r.find(ctx, bson.M{"uid": uid}, bson.D{{Key: "timestamp", Value: -1}}, 0)
}

// ListRecent returns the newest events across all identifiers.
func (r *EventRepository) ListRecent(ctx context.Context, limit int64) ([]*domain.AttendanceEvent, error) {
	return r.find(ctx, bson.M{}, bson.D{{Key: "timestamp", Value: -1}}, limit)
}

// ListAll returns every event, newest first.
func (r *EventRepository) ListAll(ctx context.Context) ([]*domain.AttendanceEvent, error) {
	return r.find(ctx, bson.M{}, bson.D{{Key: "timestamp", Value: -1}}, 0)
}

// Delete removes a single event by ID and returns the deleted document.
func (r *EventRepository) Delete(ctx context.Context, id string) (*domain.AttendanceEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var event domain.AttendanceEvent
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// Count returns the total number of events in the ledger.
func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *EventRepository) find(ctx context.Context, filter bson.M, sort bson.D, limit int64) ([]*domain.AttendanceEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(sort)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := make([]*domain.AttendanceEvent, 0)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// EnsureIndexes creates the ledger's query indexes.
func (r *EventRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "uid", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
