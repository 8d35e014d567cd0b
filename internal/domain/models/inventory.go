package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InventoryClass identifies one of the fixed inventory categories that
// partition items into separate collections.
type InventoryClass string

const (
	ClassChemicals   InventoryClass = "Chemicals"
	ClassConsumables InventoryClass = "Consumables"
	ClassEquipments  InventoryClass = "Equipments"
	ClassBooks       InventoryClass = "Books"
	ClassGlasswares  InventoryClass = "Glasswares"
	ClassOthers      InventoryClass = "Others"
)

// ItemCollections maps every inventory class to its backing items collection.
var ItemCollections = map[InventoryClass]string{
	ClassChemicals:   "chemistrychemicals",
	ClassConsumables: "chemistryconsumables",
	ClassEquipments:  "chemistryequipments",
	ClassBooks:       "chemistrybooks",
	ClassGlasswares:  "chemistryglasswares",
	ClassOthers:      "chemistryothers",
}

// RestockCollections maps inventory classes to their restock collections.
// Glasswares has no restock collection.
var RestockCollections = map[InventoryClass]string{
	ClassChemicals:   "chemistrychemicalsrestocks",
	ClassConsumables: "chemistryconsumablesrestocks",
	ClassEquipments:  "chemistryequipmentsrestocks",
	ClassBooks:       "chemistrybooksrestocks",
	ClassOthers:      "chemistryothersrestocks",
}

// ResolutionOrder fixes the collection order for item-code lookups. Item codes
// are only unique within a class, so the first match in this order wins.
var ResolutionOrder = []InventoryClass{
	ClassChemicals,
	ClassGlasswares,
	ClassEquipments,
	ClassConsumables,
	ClassBooks,
	ClassOthers,
}

// ScanOrder fixes the class order for full-scan operations.
var ScanOrder = []InventoryClass{
	ClassChemicals,
	ClassConsumables,
	ClassEquipments,
	ClassBooks,
	ClassGlasswares,
	ClassOthers,
}

// RequisitionsCollection and UsersCollection are the class-independent
// collections consumed by the analytics engine.
const (
	RequisitionsCollection = "requisitions"
	UsersCollection        = "users"
)

// Item is a stock record from one of the per-class item collections. Numeric
// fields missing from the document decode to 0.
type Item struct {
	ID              primitive.ObjectID `bson:"_id" json:"id"`
	ItemCode        string             `bson:"item_code" json:"item_code"`
	ItemName        string             `bson:"item_name" json:"item_name"`
	Company         string             `bson:"company,omitempty" json:"company,omitempty"`
	CurrentQuantity float64            `bson:"current_quantity" json:"current_quantity"`
	MinStockLevel   float64            `bson:"min_stock_level" json:"min_stock_level"`
	UnitOfMeasure   string             `bson:"unit_of_measure" json:"unit_of_measure"`
	Status          string             `bson:"status,omitempty" json:"status,omitempty"`
}

// RestockBatch is a delivery event from a per-class restock collection. The
// expiration date is optional; batches without one are never expiry-flagged.
type RestockBatch struct {
	ID                primitive.ObjectID `bson:"_id" json:"id"`
	QuantityPurchased float64            `bson:"quantity_purchased" json:"quantity_purchased"`
	ExpirationDate    *time.Time         `bson:"expiration_date,omitempty" json:"expiration_date,omitempty"`
	Location          string             `bson:"location,omitempty" json:"location,omitempty"`
}
