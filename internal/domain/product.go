package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category string

const (
	CategoryMen    Category = "men"
	CategoryWomen  Category = "women"
	CategoryKids   Category = "kids"
	CategoryHome   Category = "home"
	CategoryBeauty Category = "beauty"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMen, CategoryWomen, CategoryKids, CategoryHome, CategoryBeauty:
		return true
	}
	return false
}

type ProductImage struct {
	URL string `bson:"url" json:"url"`
	Alt string `bson:"alt,omitempty" json:"alt,omitempty"`
}

// SizeStock is one entry of a product's per-size inventory. Stock is
// never negative; reservations go through the inventory adjuster.
type SizeStock struct {
	Size  string `bson:"size" json:"size"`
	Stock int    `bson:"stock" json:"stock"`
}

type Rating struct {
	Average float64 `bson:"average" json:"average"`
	Count   int     `bson:"count" json:"count"`
}

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice float64            `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Category      Category           `bson:"category" json:"category"`
	Subcategory   string             `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	Brand         string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Images        []ProductImage     `bson:"images,omitempty" json:"images,omitempty"`
	Sizes         []SizeStock        `bson:"sizes" json:"sizes"`
	Colors        []string           `bson:"colors,omitempty" json:"colors,omitempty"`
	Tags          []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Rating        Rating             `bson:"rating" json:"rating"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	IsFeatured    bool               `bson:"isFeatured" json:"isFeatured"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SizeEntry returns a pointer to the size entry with the given label,
// or nil when the product does not carry that size. Labels match exactly.
func (p *Product) SizeEntry(label string) *SizeStock {
	for i := range p.Sizes {
		if p.Sizes[i].Size == label {
			return &p.Sizes[i]
		}
	}
	return nil
}
