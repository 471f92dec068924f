package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Unit is a single property listing. Project and Amenities are copies taken
// when the unit was created; later catalog edits do not reach them.
type Unit struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	RefNumber     string             `bson:"refNumber" json:"refNumber"`
	Name          string             `bson:"name" json:"name"`
	UnitNumber    int                `bson:"unitNumber" json:"unitNumber"`
	Bedrooms      int                `bson:"bedrooms" json:"bedrooms"`
	Bathrooms     int                `bson:"bathrooms" json:"bathrooms"`
	ImageURLs     []string           `bson:"imageUrls" json:"imageUrls"`
	Compound      string             `bson:"compound" json:"compound"`
	PropertyType  PropertyType       `bson:"propertyType" json:"propertyType"`
	SaleType      SaleType           `bson:"saleType" json:"saleType"`
	Description   string             `bson:"description" json:"description"`
	Currency      string             `bson:"currency" json:"currency"`
	Price         string             `bson:"price" json:"price"`
	Size          string             `bson:"size" json:"size"`
	FinishingType FinishingType      `bson:"finishingType" json:"finishingType"`
	Project       ProjectSnapshot    `bson:"project" json:"project"`
	Amenities     []AmenitySnapshot  `bson:"amenities" json:"amenities"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// UnitSummary is the projection returned by paginated listing.
type UnitSummary struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Bedrooms  int                `bson:"bedrooms" json:"bedrooms"`
	Bathrooms int                `bson:"bathrooms" json:"bathrooms"`
	Price     string             `bson:"price" json:"price"`
	ImageURLs []string           `bson:"imageUrls" json:"imageUrls"`
	Currency  string             `bson:"currency" json:"currency"`
	Size      string             `bson:"size" json:"size"`
	Compound  string             `bson:"compound" json:"compound"`
}

// UnitSummaryFields lists the stored fields that make up a UnitSummary.
var UnitSummaryFields = []string{
	"name", "bedrooms", "bathrooms", "price", "imageUrls", "currency", "size", "compound",
}

func (u *Unit) Summary() UnitSummary {
	return UnitSummary{
		ID:        u.ID,
		Name:      u.Name,
		Bedrooms:  u.Bedrooms,
		Bathrooms: u.Bathrooms,
		Price:     u.Price,
		ImageURLs: u.ImageURLs,
		Currency:  u.Currency,
		Size:      u.Size,
		Compound:  u.Compound,
	}
}
