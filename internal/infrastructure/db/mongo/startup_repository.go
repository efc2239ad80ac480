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

	"github.com/vcplatform/marketplace/internal/core/domain"
	"github.com/vcplatform/marketplace/internal/core/ports"
)

const collectionStartups = "startups"

type StartupRepository struct {
	col *mongo.Collection
}

func NewStartupRepository(db *mongo.Database) *StartupRepository {
	return &StartupRepository{col: db.Collection(collectionStartups)}
}

type startupDoc struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty"`
	UserID                primitive.ObjectID `bson:"userId"`
	domain.StartupDetails `bson:",inline"`
	CreatedAt             time.Time `bson:"createdAt"`
	UpdatedAt             time.Time `bson:"updatedAt"`
}

func (d *startupDoc) toDomain() *domain.Startup {
	return &domain.Startup{
		ID:             d.ID.Hex(),
		UserID:         d.UserID.Hex(),
		StartupDetails: d.StartupDetails,
		CreatedAt:      d.CreatedAt.UTC(),
		UpdatedAt:      d.UpdatedAt.UTC(),
	}
}

// Create inserts a startup profile. The unique userId index turns a concurrent
// second insert for the same owner into domain.ErrStartupExists.
func (r *StartupRepository) Create(ctx context.Context, s *domain.Startup) (*domain.Startup, error) {
	owner, err := primitive.ObjectIDFromHex(s.UserID)
	if err != nil {
		return nil, fmt.Errorf("startup owner id %q: %w", s.UserID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := startupDoc{
		UserID:         owner,
		StartupDetails: s.StartupDetails,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, writeError(err, domain.ErrStartupExists, "insert startup")
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

// FindByID treats an ID that is not a valid ObjectID as not found.
func (r *StartupRepository) FindByID(ctx context.Context, id string) (*domain.Startup, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrStartupNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *StartupRepository) FindByOwner(ctx context.Context, userID string) (*domain.Startup, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrStartupNotFound
	}
	return r.findOne(ctx, bson.M{"userId": owner})
}

// UpdateByOwner merges patch into the owner's profile and returns the result.
func (r *StartupRepository) UpdateByOwner(ctx context.Context, userID string, patch ports.StartupPatch) (*domain.Startup, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrStartupNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc startupDoc
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"userId": owner},
		bson.M{"$set": startupPatchSet(patch, time.Now().UTC())},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStartupNotFound
		}
		return nil, fmt.Errorf("update startup: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns one page of matching startups and the total match count.
func (r *StartupRepository) List(ctx context.Context, f ports.StartupFilter) ([]*domain.Startup, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := startupListFilter(f)
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count startups: %w", err)
	}

	cur, err := r.col.Find(ctx, filter, listOptions(f.PageRequest))
	if err != nil {
		return nil, 0, fmt.Errorf("find startups: %w", err)
	}
	var docs []startupDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode startups: %w", err)
	}

	items := make([]*domain.Startup, 0, len(docs))
	for i := range docs {
		items = append(items, docs[i].toDomain())
	}
	return items, total, nil
}

// EnsureIndexes creates the one-profile-per-owner index and the listing indexes.
func (r *StartupRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "industry", Value: 1}}},
		{Keys: bson.D{{Key: "fundingStage", Value: 1}}},
	}

	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("startups indexes: %w", err)
	}
	return nil
}

func (r *StartupRepository) findOne(ctx context.Context, filter bson.M) (*domain.Startup, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc startupDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStartupNotFound
		}
		return nil, fmt.Errorf("find startup: %w", err)
	}
	return doc.toDomain(), nil
}
