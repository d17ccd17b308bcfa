// Seeds the catalog with sample products and creates the default admin
// account. Intended for development databases; it wipes the products
// collection first.
package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"stitchfield-backend/internal/config"
	"stitchfield-backend/internal/domain"
	"stitchfield-backend/internal/store"
)

var sampleProducts = []domain.Product{
	{
		Name:          "Studiofit Red Text Printed Cotton-Blend Tub Top",
		Description:   "Comfortable cotton-blend tub top with stylish text print.",
		Price:         499,
		OriginalPrice: 699,
		Category:      domain.CategoryWomen,
		Subcategory:   "tops",
		Brand:         "Studiofit",
		Sizes: []domain.SizeStock{
			{Size: "S", Stock: 10}, {Size: "M", Stock: 15},
			{Size: "L", Stock: 8}, {Size: "XL", Stock: 5},
		},
		Colors:     []string{"Red", "Black", "White"},
		Tags:       []string{"casual", "summer", "cotton"},
		IsFeatured: true,
	},
	{
		Name:          "Studiofit Red Star Printed High-Rise Cotton Skirt",
		Description:   "High-rise cotton skirt with star print design.",
		Price:         799,
		OriginalPrice: 999,
		Category:      domain.CategoryWomen,
		Subcategory:   "bottoms",
		Brand:         "Studiofit",
		Sizes: []domain.SizeStock{
			{Size: "S", Stock: 12}, {Size: "M", Stock: 18},
			{Size: "L", Stock: 10}, {Size: "XL", Stock: 6},
		},
		Colors:     []string{"Red", "Blue", "Green"},
		Tags:       []string{"casual", "cotton", "high-rise"},
		IsFeatured: true,
	},
	{
		Name:          "Classic Denim Jacket",
		Description:   "Classic denim jacket, perfect for layering and casual outings.",
		Price:         1299,
		OriginalPrice: 1599,
		Category:      domain.CategoryMen,
		Subcategory:   "jackets",
		Brand:         "WestStyle",
		Sizes: []domain.SizeStock{
			{Size: "M", Stock: 20}, {Size: "L", Stock: 25},
			{Size: "XL", Stock: 15}, {Size: "XXL", Stock: 8},
		},
		Colors: []string{"Blue", "Black", "Light Blue"},
		Tags:   []string{"denim", "casual", "jacket"},
	},
	{
		Name:        "Linen Cushion Cover Set",
		Description: "Set of two textured linen cushion covers.",
		Price:       349,
		Category:    domain.CategoryHome,
		Subcategory: "decor",
		Brand:       "Hearthline",
		Sizes: []domain.SizeStock{
			{Size: "40x40", Stock: 30},
		},
		Colors: []string{"Beige", "Olive"},
		Tags:   []string{"linen", "home"},
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, db, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background()) //nolint:errcheck
	if err := store.EnsureIndexes(ctx, db); err != nil {
		log.Fatal(err)
	}

	products := db.Collection(store.ColProducts)
	if _, err := products.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatal(err)
	}
	now := time.Now()
	docs := make([]interface{}, 0, len(sampleProducts))
	for _, p := range sampleProducts {
		p.IsActive = true
		p.CreatedAt = now
		p.UpdatedAt = now
		docs = append(docs, p)
	}
	if _, err := products.InsertMany(ctx, docs); err != nil {
		log.Fatal(err)
	}
	log.Printf("seeded %d products", len(docs))

	users := db.Collection(store.ColUsers)
	count, err := users.CountDocuments(ctx, bson.M{"email": "admin@stitchfield.dev"})
	if err != nil {
		log.Fatal(err)
	}
	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		_, err = users.InsertOne(ctx, domain.User{
			Name:      "Admin",
			Email:     "admin@stitchfield.dev",
			Password:  string(hash),
			Role:      domain.RoleAdmin,
			IsActive:  true,
			CreatedAt: now,
		})
		if err != nil {
			log.Fatal(err)
		}
		log.Println("created admin user admin@stitchfield.dev")
	}
}
