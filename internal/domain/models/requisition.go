package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Requisition is a dated request for one or more items made by a user.
type Requisition struct {
	ID                primitive.ObjectID `bson:"_id" json:"id"`
	RequisitionCode   string             `bson:"requisition_code" json:"requisition_code"`
	DateOfRequirement time.Time          `bson:"date_of_requirement" json:"date_of_requirement"`
	Items             []RequisitionLine  `bson:"items" json:"items"`
	RequestedBy       primitive.ObjectID `bson:"requested_by" json:"requested_by"`
	Status            string             `bson:"status,omitempty" json:"status,omitempty"`
}

// RequisitionLine is one requested item within a requisition. QuantityRequired
// is a pointer because historical documents may omit it; lines without it are
// excluded from demand aggregation.
type RequisitionLine struct {
	Class            InventoryClass     `bson:"class" json:"class"`
	Item             primitive.ObjectID `bson:"item" json:"item"`
	UnitOfMeasure    string             `bson:"unit_of_measure" json:"unit_of_measure"`
	QuantityRequired *float64           `bson:"quantity_required,omitempty" json:"quantity_required,omitempty"`
}

// User owns requisitions by reference. Lookup is by email.
type User struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Roles []string           `bson:"roles,omitempty" json:"roles,omitempty"`
}
