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

const collectionInvestors = "investors"

type InvestorRepository struct {
	col *mongo.Collection
}

func NewInvestorRepository(db *mongo.Database) *InvestorRepository {
	return &InvestorRepository{col: db.Collection(collectionInvestors)}
}

type investorDoc struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty"`
	UserID                 primitive.ObjectID `bson:"userId"`
	domain.InvestorDetails `bson:",inline"`
	CreatedAt              time.Time `bson:"createdAt"`
	UpdatedAt              time.Time `bson:"updatedAt"`
}

func (d *investorDoc) toDomain() *domain.Investor {
	return &domain.Investor{
		ID:              d.ID.Hex(),
		UserID:          d.UserID.Hex(),
		InvestorDetails: d.InvestorDetails,
		CreatedAt:       d.CreatedAt.UTC(),
		UpdatedAt:       d.UpdatedAt.UTC(),
	}
}

// Create inserts an investor profile. The unique userId index turns a concurrent
// second insert for the same owner into domain.ErrInvestorExists.
func (r *InvestorRepository) Create(ctx context.Context, inv *domain.Investor) (*domain.Investor, error) {
	owner, err := primitive.ObjectIDFromHex(inv.UserID)
	if err != nil {
		return nil, fmt.Errorf("investor owner id %q: %w", inv.UserID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := investorDoc{
		UserID:          owner,
		InvestorDetails: inv.InvestorDetails,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, writeError(err, domain.ErrInvestorExists, "insert investor")
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

// FindByID treats an ID that is not a valid ObjectID as not found.
func (r *InvestorRepository) FindByID(ctx context.Context, id string) (*domain.Investor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvestorNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *InvestorRepository) FindByOwner(ctx context.Context, userID string) (*domain.Investor, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrInvestorNotFound
	}
	return r.findOne(ctx, bson.M{"userId": owner})
}

// UpdateByOwner merges patch into the owner's profile and returns the result.
func (r *InvestorRepository) UpdateByOwner(ctx context.Context, userID string, patch ports.InvestorPatch) (*domain.Investor, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrInvestorNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc investorDoc
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"userId": owner},
		bson.M{"$set": investorPatchSet(patch, time.Now().UTC())},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvestorNotFound
		}
		return nil, fmt.Errorf("update investor: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns one page of matching investors, newest first, with the total count.
func (r *InvestorRepository) List(ctx context.Context, f ports.InvestorFilter) ([]*domain.Investor, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := investorListFilter(f)
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count investors: %w", err)
	}

	cur, err := r.col.Find(ctx, filter, listOptions(f.PageRequest))
	if err != nil {
		return nil, 0, fmt.Errorf("find investors: %w", err)
	}
	var docs []investorDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode investors: %w", err)
	}

	items := make([]*domain.Investor, 0, len(docs))
	for i := range docs {
		items = append(items, docs[i].toDomain())
	}
	return items, total, nil
}

// EnsureIndexes creates the one-profile-per-owner index and the listing indexes.
func (r *InvestorRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "investorType", Value: 1}}},
		{Keys: bson.D{{Key: "preferredIndustries", Value: 1}}},
		{Keys: bson.D{{Key: "preferredStages", Value: 1}}},
	}

	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("investors indexes: %w", err)
	}
	return nil
}

func (r *InvestorRepository) findOne(ctx context.Context, filter bson.M) (*domain.Investor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc investorDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvestorNotFound
		}
		return nil, fmt.Errorf("find investor: %w", err)
	}
	return doc.toDomain(), nil
}
