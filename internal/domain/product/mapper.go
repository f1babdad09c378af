// internal/domain/product/mapper.go
package product

// Defaults applied while mapping raw records.
const (
	DefaultTitle       = "Untitled Product"
	DefaultRatingRate  = 0.0
	DefaultRatingCount = 0
)

// FromRecord maps a raw API record to a Product.
//
// The title falls back to DefaultTitle when absent or empty. A missing rating
// stays nil (absence is meaningful, no defaults are synthesized); when the
// rating block is present, rate and count are defaulted independently, with
// explicit zeros preserved. The category is passed through untouched: display
// capitalization is a presentation concern.
func FromRecord(rec Record) Product {
	p := Product{
		ID:          rec.ID,
		Title:       rec.Title,
		Price:       rec.Price,
		Category:    rec.Category,
		Description: rec.Description,
		Image:       rec.Image,
	}

	if p.Title == "" {
		p.Title = DefaultTitle
	}

	if rec.Rating != nil {
		rating := Rating{
			Rate:  DefaultRatingRate,
			Count: DefaultRatingCount,
		}
		if rec.Rating.Rate != nil {
			rating.Rate = *rec.Rating.Rate
		}
		if rec.Rating.Count != nil {
			rating.Count = *rec.Rating.Count
		}
		p.Rating = &rating
	}

	return p
}
