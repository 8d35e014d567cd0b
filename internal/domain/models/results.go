package models

// Forecast is the predicted demand for a single item over the month following
// its last observed requisition. The unit of measure is taken from the first
// contributing requisition line; histories mixing units are not reconciled.
type Forecast struct {
	ItemCode          string  `json:"item_code"`
	ForecastMonth     string  `json:"forecast_month"`
	PredictedQuantity float64 `json:"predicted_quantity"`
	UnitOfMeasure     string  `json:"unit_of_measure"`
}

// Suggestion is one item a user requests often.
type Suggestion struct {
	ItemName       string         `json:"item_name"`
	Class          InventoryClass `json:"class"`
	TimesRequested int            `json:"times_requested"`
}

// SuggestionList wraps ranked suggestions for one user.
type SuggestionList struct {
	User           string       `json:"user"`
	SuggestedItems []Suggestion `json:"suggested_items"`
}

// ExpiryRisk is a restock batch expiring within the alert horizon.
// DaysToExpiry is negative for already-expired stock.
type ExpiryRisk struct {
	ID                string         `json:"id"`
	Class             InventoryClass `json:"class"`
	DaysToExpiry      int            `json:"days_to_expiry"`
	QuantityPurchased float64        `json:"quantity_purchased"`
	ExpirationDate    string         `json:"expiration_date"`
	Location          string         `json:"location,omitempty"`
}

// ClassedItem is an item annotated with the class it was scanned from, with
// the ObjectID rendered as a printable token.
type ClassedItem struct {
	ID              string         `json:"id"`
	Class           InventoryClass `json:"class"`
	ItemCode        string         `json:"item_code"`
	ItemName        string         `json:"item_name"`
	CurrentQuantity float64        `json:"current_quantity"`
	MinStockLevel   float64        `json:"min_stock_level"`
	UnitOfMeasure   string         `json:"unit_of_measure"`
}

// ScoredItem is a ClassedItem with its stock deficit and anomaly score.
type ScoredItem struct {
	ClassedItem
	StockDiff    float64 `json:"stock_diff"`
	AnomalyScore float64 `json:"anomaly_score"`
}

// LowStockItem is a ClassedItem with its stock deficit; the anomaly score is
// omitted from this subset.
type LowStockItem struct {
	ClassedItem
	StockDiff float64 `json:"stock_diff"`
}

// RiskReport holds the low-stock and anomaly subsets of a full inventory
// scan. An item can appear in both lists. Empty lists mean a clean scan, not
// a failure.
type RiskReport struct {
	LowStock  []LowStockItem `json:"low_stock"`
	Anomalies []ScoredItem   `json:"anomalies"`
}
