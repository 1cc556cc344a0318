package models

// PropertyStatus values used by listings. Status is stored as free text;
// these are the values the original dataset uses.
const (
	PropertyStatusAvailable = "available"
	PropertyStatusSold      = "sold"
	PropertyStatusRented    = "rented"
	PropertyStatusPending   = "pending"
)

// Property is a real-estate listing.
type Property struct {
	Base         `bson:",inline"`
	Title        string   `json:"title"         bson:"title"`
	Description  string   `json:"description"   bson:"description"`
	Price        float64  `json:"price"         bson:"price"`
	Location     string   `json:"location"      bson:"location"`
	Bedrooms     int      `json:"bedrooms"      bson:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"     bson:"bathrooms"`
	Area         float64  `json:"area"          bson:"area"` // square feet
	PropertyType string   `json:"property_type" bson:"property_type"`
	Images       []string `json:"images"        bson:"images"`   // URLs or data URIs
	Features     []string `json:"features"      bson:"features"` // amenities
	Status       string   `json:"status"        bson:"status"`
}
