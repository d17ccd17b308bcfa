package order

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stitchfield-backend/internal/domain"
	"stitchfield-backend/internal/store"
)

type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{col: db.Collection(store.ColOrders)}
}

func (r *MongoRepo) Insert(ctx context.Context, o *domain.Order) error {
	res, err := r.col.InsertOne(ctx, o)
	if err != nil {
		return err
	}
	o.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	var o domain.Order
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound("Order")
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Update replaces the whole document; concurrent updates to the same
// order are last-write-wins, no version token is kept.
func (r *MongoRepo) Update(ctx context.Context, o *domain.Order) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": o.ID}, o)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound("Order")
	}
	return nil
}

func (r *MongoRepo) ListByUser(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]domain.Order, int64, error) {
	return r.list(ctx, bson.M{"user": userID}, page, limit)
}

func (r *MongoRepo) List(ctx context.Context, status domain.OrderStatus, page, limit int) ([]domain.Order, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["orderStatus"] = status
	}
	return r.list(ctx, filter, page, limit)
}

func (r *MongoRepo) list(ctx context.Context, filter bson.M, page, limit int) ([]domain.Order, int64, error) {
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(page-1) * int64(limit)).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	orders := []domain.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
