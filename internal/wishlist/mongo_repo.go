package wishlist

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
	return &MongoRepo{col: db.Collection(store.ColWishlists)}
}

func (r *MongoRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) (*domain.Wishlist, error) {
	var w domain.Wishlist
	err := r.col.FindOne(ctx, bson.M{"user": userID}).Decode(&w)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound("Wishlist")
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Save upserts the per-user document so the first add creates it.
func (r *MongoRepo) Save(ctx context.Context, w *domain.Wishlist) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"user": w.UserID},
		bson.M{"$set": bson.M{"products": w.Products}},
		options.Update().SetUpsert(true),
	)
	return err
}
