package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a development/compound that units belong to.
type Project struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Amenity is a named feature a unit can offer.
type Amenity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// ProjectSnapshot is the copy of a Project embedded in a Unit.
type ProjectSnapshot struct {
	ID   primitive.ObjectID `bson:"_id" json:"_id"`
	Name string             `bson:"name" json:"name"`
}

// AmenitySnapshot is the copy of an Amenity embedded in a Unit.
type AmenitySnapshot struct {
	ID   primitive.ObjectID `bson:"_id" json:"_id"`
	Name string             `bson:"name" json:"name"`
}

func (p *Project) Snapshot() ProjectSnapshot {
	return ProjectSnapshot{ID: p.ID, Name: p.Name}
}

func (a *Amenity) Snapshot() AmenitySnapshot {
	return AmenitySnapshot{ID: a.ID, Name: a.Name}
}
