// internal/domain/product/entity.go
package product

// Rating aggregates customer reviews of a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is the catalog entity used throughout the module. Pointer fields
// distinguish "absent" from "present with a zero value": a nil Rating means
// the product has no rating at all, which is different from a rating whose
// fields were default-filled.
type Product struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Price       *float64 `json:"price,omitempty"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Rating      *Rating  `json:"rating,omitempty"`
}

// Record is a raw catalog entry as returned by the store API. Every optional
// field is a pointer so that an explicit zero survives decoding.
type Record struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Price       *float64      `json:"price"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	Rating      *RatingRecord `json:"rating"`
}

// RatingRecord is the raw rating block of a Record.
type RatingRecord struct {
	Rate  *float64 `json:"rate"`
	Count *int     `json:"count"`
}
