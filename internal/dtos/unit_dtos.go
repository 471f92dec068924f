package dtos

import "github.com/homescout/listing-service/internal/models"

// CreateUnitRequest is the POST /api/units payload. Scalars are pointers so
// that "missing" and "zero" stay distinguishable during validation.
type CreateUnitRequest struct {
	RefNumber     *string  `json:"refNumber,omitempty" validate:"omitempty,min=1,max=64"`
	Name          *string  `json:"name" validate:"required,min=3"`
	UnitNumber    *int     `json:"unitNumber" validate:"required"`
	Bedrooms      *int     `json:"bedrooms" validate:"required"`
	Bathrooms     *int     `json:"bathrooms" validate:"required"`
	ImageURLs     []string `json:"imageUrls" validate:"omitempty,dive,min=1"`
	Compound      *string  `json:"compound" validate:"required,min=1"`
	PropertyType  *string  `json:"propertyType" validate:"required,property_type"`
	SaleType      *string  `json:"saleType" validate:"required,sale_type"`
	Description   *string  `json:"description"`
	Currency      *string  `json:"currency" validate:"required,min=1"`
	Price         *string  `json:"price" validate:"required,min=1"`
	Size          *string  `json:"size" validate:"required,min=1"`
	FinishingType *string  `json:"finishingType" validate:"required,finishing_type"`
	ProjectID     *string  `json:"projectId" validate:"required,object_id"`
	AmenitiesIDs  []string `json:"amenitiesIds" validate:"omitempty,dive,object_id"`
}

type Pagination struct {
	Total  int64 `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

type ListUnitsResponse struct {
	Message    string               `json:"message"`
	Listings   []models.UnitSummary `json:"listings"`
	Pagination Pagination           `json:"pagination"`
}
