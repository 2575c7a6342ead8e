package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/acadtrack/acadtrack/internal/core/domain"
	"github.com/acadtrack/acadtrack/internal/core/ports"
)

const collectionActivities = "activities"

type ActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivities)}
}

type mongoActivity struct {
	ID          primitive.ObjectID    `bson:"_id,omitempty"`
	UserID      string                `bson:"user"`
	Title       string                `bson:"title"`
	Description string                `bson:"description,omitempty"`
	Course      string                `bson:"course"`
	Date        time.Time             `bson:"date"`
	Status      domain.ActivityStatus `bson:"status"`
	Grades      string                `bson:"grades,omitempty"`
	CreatedAt   time.Time             `bson:"created_at"`
	UpdatedAt   time.Time             `bson:"updated_at"`
}

func (ma mongoActivity) toDomain() *domain.Activity {
	return &domain.Activity{
		ID:          ma.ID.Hex(),
		UserID:      ma.UserID,
		Title:       ma.Title,
		Description: ma.Description,
		Course:      ma.Course,
		Date:        ma.Date,
		Status:      ma.Status,
		Grades:      ma.Grades,
		CreatedAt:   ma.CreatedAt,
		UpdatedAt:   ma.UpdatedAt,
	}
}

// Create inserts a new activity document, stamping created_at/updated_at.
func (r *ActivityRepository) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := mongoActivity{
		UserID:      a.UserID,
		Title:       a.Title,
		Description: a.Description,
		Course:      a.Course,
		Date:        a.Date,
		Status:      a.Status,
		Grades:      a.Grades,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}

	created := *a
	created.CreatedAt = now
	created.UpdatedAt = now
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// FindByID retrieves an activity by hex object id. Malformed ids fail with
// domain.ErrActivityNotFound.
func (r *ActivityRepository) FindByID(ctx context.Context, id string) (*domain.Activity, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrActivityNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoActivity
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("find activity: %w", err)
	}
	return ma.toDomain(), nil
}

// List returns all activities ordered by date descending.
func (r *ActivityRepository) List(ctx context.Context) ([]*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer cur.Close(ctx)

	activities := make([]*domain.Activity, 0)
	for cur.Next(ctx) {
		var ma mongoActivity
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		activities = append(activities, ma.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	return activities, nil
}

// Update applies the non-nil fields of upd with $set and returns the updated
// document. Concurrent updates follow last-write-wins: there is no version
// check on the document.
func (r *ActivityRepository) Update(ctx context.Context, id string, upd ports.ActivityUpdate) (*domain.Activity, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrActivityNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.UserID != nil {
		set["user"] = *upd.UserID
	}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Course != nil {
		set["course"] = *upd.Course
	}
	if upd.Date != nil {
		set["date"] = *upd.Date
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.Grades != nil {
		set["grades"] = *upd.Grades
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var ma mongoActivity
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&ma)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("update activity: %w", err)
	}
	return ma.toDomain(), nil
}

// Delete removes an activity. Unknown ids fail with domain.ErrActivityNotFound,
// so deleting the same id twice reports the second call as a miss.
func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrActivityNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes used by list and owner joins.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
