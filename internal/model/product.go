package model

// Category groups products. A category may itself belong to a parent
// category via ParentID.
type Category struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	ImageURL string `json:"image_url" db:"image_url"`
	ParentID *int64 `json:"category_id,omitempty" db:"category_id"`
}

// Feature is a descriptive attribute attachable to products.
type Feature struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Packing is a fixed sales unit definition (e.g. a 500g bag).
type Packing struct {
	ID               int64   `json:"id" db:"id"`
	Name             string  `json:"name" db:"name"`
	Size             float64 `json:"size" db:"size"`
	Unit             string  `json:"unit" db:"unit"`
	UnitAbbreviation string  `json:"unit_abbreviation" db:"unit_abbreviation"`
	Cost             float64 `json:"cost" db:"cost"`
}

// ProductPacking associates a product with a packing and carries the price
// and available quantity specific to that pair. Price and quantity are never
// negative; malformed values are clamped to zero at scan time.
type ProductPacking struct {
	ID        int64   `json:"id" db:"id"`
	ProductID int64   `json:"product_id" db:"product_id"`
	PackingID int64   `json:"packing_id" db:"packing_id"`
	Price     float64 `json:"price" db:"price"`
	Quantity  float64 `json:"quantity" db:"quantity"`
}

// Product is a catalogue entry. When IsPacked is true the product is sold
// only in packing units and UnitPrice is not authoritative; when false,
// UnitPrice governs and packings are irrelevant for pricing.
type Product struct {
	ID          int64    `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	Description string   `json:"description" db:"description"`
	IsPacked    bool     `json:"is_packed" db:"is_packed"`
	UnitCost    float64  `json:"unit_cost" db:"unit_cost"`
	UnitPrice   *float64 `json:"unit_price,omitempty" db:"unit_price"`
	CategoryID  int64    `json:"category_id" db:"category_id"`
	IsActivated bool     `json:"is_activated" db:"is_activated"`
}

// FullPacking is a packing definition together with its product association.
type FullPacking struct {
	Packing
	ProductPacking ProductPacking `json:"productPacking"`
}

// FullProduct is the read shape of a product: the row plus its category,
// features and packing options.
type FullProduct struct {
	Product
	Category Category      `json:"category"`
	Features []Feature     `json:"features"`
	Packings []FullPacking `json:"packings"`
}

// ProductPayload is the client-supplied product body. Only the fields
// declared here survive decoding; anything else the client sends is dropped.
type ProductPayload struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	IsPacked    *bool    `json:"is_packed"`
	UnitCost    *float64 `json:"unit_cost"`
	UnitPrice   *float64 `json:"unit_price"`
	CategoryID  *int64   `json:"category_id"`
	IsActivated *bool    `json:"is_activated"`
}

// CategoryPayload is the client-supplied category body.
type CategoryPayload struct {
	Name     *string `json:"name"`
	ImageURL *string `json:"image_url"`
	ParentID *int64  `json:"category_id"`
}

// FeaturePayload is the client-supplied feature body.
type FeaturePayload struct {
	Name *string `json:"name"`
}

// PackingPayload is the client-supplied packing body.
type PackingPayload struct {
	Name             *string  `json:"name"`
	Size             *float64 `json:"size"`
	Unit             *string  `json:"unit"`
	UnitAbbreviation *string  `json:"unit_abbreviation"`
	Cost             *float64 `json:"cost"`
}
