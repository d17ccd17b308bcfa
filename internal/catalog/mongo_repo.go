package catalog

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stitchfield-backend/internal/domain"
	"stitchfield-backend/internal/store"
)

// MongoRepo persists products. It also implements the inventory
// adjuster's ProductStore: stock moves through single-document
// conditional updates, never a read-modify-write.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{col: db.Collection(store.ColProducts)}
}

func (r *MongoRepo) Insert(ctx context.Context, p *domain.Product) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	var p domain.Product
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrProductNotFound(id.Hex())
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MongoRepo) Update(ctx context.Context, p *domain.Product) error {
	p.UpdatedAt = time.Now()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound(p.ID.Hex())
	}
	return nil
}

func (r *MongoRepo) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"isActive": active, "updatedAt": time.Now()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound(id.Hex())
	}
	return nil
}

func (r *MongoRepo) List(ctx context.Context, f Filter, page, limit int) ([]domain.Product, int64, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.IsActive != nil {
		filter["isActive"] = *f.IsActive
	}
	if f.Featured != nil {
		filter["isFeatured"] = *f.Featured
	}
	if f.Search != "" {
		regex := primitive.Regex{Pattern: f.Search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"description": regex},
			bson.M{"brand": regex},
		}
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		filter["price"] = price
	}

	var sort bson.D
	switch f.Sort {
	case "price":
		sort = bson.D{{Key: "price", Value: 1}}
	case "-price":
		sort = bson.D{{Key: "price", Value: -1}}
	default:
		sort = bson.D{{Key: "createdAt", Value: -1}}
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(int64(page-1) * int64(limit)).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	products := []domain.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// DecrementSizeStock reserves qty units of a size. The filter matches
// only when the size entry exists with at least qty in stock, so the
// decrement and the availability check are one atomic document update.
// Returns false when nothing matched (unknown product, unknown size, or
// not enough stock).
func (r *MongoRepo) DecrementSizeStock(ctx context.Context, id primitive.ObjectID, size string, qty int) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{
			"_id":   id,
			"sizes": bson.M{"$elemMatch": bson.M{"size": size, "stock": bson.M{"$gte": qty}}},
		},
		bson.M{
			"$inc": bson.M{"sizes.$.stock": -qty},
			"$set": bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// IncrementSizeStock restores qty units of a size. A product or size
// that no longer exists matches nothing and the release is a no-op.
func (r *MongoRepo) IncrementSizeStock(ctx context.Context, id primitive.ObjectID, size string, qty int) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "sizes.size": size},
		bson.M{
			"$inc": bson.M{"sizes.$.stock": qty},
			"$set": bson.M{"updatedAt": time.Now()},
		},
	)
	return err
}
