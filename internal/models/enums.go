package models

// PropertyType enumerates the kinds of unit that can be listed.
type PropertyType string

const (
	PropertyTypeApartment PropertyType = "Apartment"
	PropertyTypeVilla     PropertyType = "Villa"
	PropertyTypeTownhouse PropertyType = "Townhouse"
	PropertyTypeTwinhouse PropertyType = "Twinhouse"
	PropertyTypeDuplex    PropertyType = "Duplex"
	PropertyTypePenthouse PropertyType = "Penthouse"
	PropertyTypeChalet    PropertyType = "Chalet"
	PropertyTypeStudio    PropertyType = "Studio"
)

var propertyTypes = []PropertyType{
	PropertyTypeApartment,
	PropertyTypeVilla,
	PropertyTypeTownhouse,
	PropertyTypeTwinhouse,
	PropertyTypeDuplex,
	PropertyTypePenthouse,
	PropertyTypeChalet,
	PropertyTypeStudio,
}

func PropertyTypes() []PropertyType { return append([]PropertyType(nil), propertyTypes...) }

func (p PropertyType) IsValid() bool { return contains(propertyTypes, p) }

// SaleType is primary (developer) sale vs resale.
type SaleType string

const (
	SaleTypeDeveloper SaleType = "Developer Sale"
	SaleTypeResale    SaleType = "Resale"
)

var saleTypes = []SaleType{SaleTypeDeveloper, SaleTypeResale}

func SaleTypes() []SaleType { return append([]SaleType(nil), saleTypes...) }

func (s SaleType) IsValid() bool { return contains(saleTypes, s) }

// FinishingType describes the delivery state of the unit.
type FinishingType string

const (
	FinishingTypeFinished     FinishingType = "Finished"
	FinishingTypeSemiFinished FinishingType = "Semi-Finished"
	FinishingTypeCoreAndShell FinishingType = "Core & Shell"
	FinishingTypeFurnished    FinishingType = "Furnished"
)

var finishingTypes = []FinishingType{
	FinishingTypeFinished,
	FinishingTypeSemiFinished,
	FinishingTypeCoreAndShell,
	FinishingTypeFurnished,
}

func FinishingTypes() []FinishingType { return append([]FinishingType(nil), finishingTypes...) }

func (f FinishingType) IsValid() bool { return contains(finishingTypes, f) }

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
