package admin

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stitchfield-backend/internal/domain"
	"stitchfield-backend/internal/store"
)

type MongoRepo struct {
	users    *mongo.Collection
	products *mongo.Collection
	orders   *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		users:    db.Collection(store.ColUsers),
		products: db.Collection(store.ColProducts),
		orders:   db.Collection(store.ColOrders),
	}
}

func (r *MongoRepo) CountUsers(ctx context.Context) (int64, error) {
	return r.users.CountDocuments(ctx, bson.M{})
}

func (r *MongoRepo) CountProducts(ctx context.Context) (int64, error) {
	return r.products.CountDocuments(ctx, bson.M{})
}

func (r *MongoRepo) CountOrders(ctx context.Context) (int64, error) {
	return r.orders.CountDocuments(ctx, bson.M{})
}

// Revenue sums totalAmount over every order that was not cancelled.
func (r *MongoRepo) Revenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"orderStatus": bson.M{"$ne": domain.OrderCancelled}}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$totalAmount"}}}},
	}
	cur, err := r.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (r *MongoRepo) RecentOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.orders.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	orders := []domain.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *MongoRepo) NewestActiveProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.products.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, err
	}
	products := []domain.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
