package routes

const (
	// Health
	Health = "/health"

	// Units API
	UnitsBase = "/api/units"
	UnitByID  = "/api/units/{id}"

	// Catalog API
	ProjectsBase  = "/api/projects"
	ProjectByID   = "/api/projects/{id}"
	AmenitiesBase = "/api/amenities"
	AmenityByID   = "/api/amenities/{id}"

	// Web pages
	Root          = "/"
	Listings      = "/listings"
	ListingDetail = "/listings/{id}"
)
