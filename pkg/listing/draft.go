package listing

import (
	"github.com/dmitrymomot/listingkit/pkg/sanitizer"
	"github.com/dmitrymomot/listingkit/pkg/validator"
)

// Draft is a listing as entered by the seller.
type Draft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       Price  `json:"price"`
	SellerName  string `json:"seller_name"`
	SellerPhone string `json:"seller_phone"`
}

// Sanitized returns a copy with every text field prepared for storage.
// Price is passed through unchanged.
func (d Draft) Sanitized() Draft {
	d.Title = sanitizer.ForStorage(d.Title)
	d.Description = sanitizer.ForStorage(d.Description)
	d.SellerName = sanitizer.ForStorage(d.SellerName)
	d.SellerPhone = sanitizer.ForStorage(d.SellerPhone)
	return d
}

// ForDisplay returns a copy with every text field HTML-escaped.
func (d Draft) ForDisplay() Draft {
	d.Title = sanitizer.ForDisplay(d.Title)
	d.Description = sanitizer.ForDisplay(d.Description)
	d.SellerName = sanitizer.ForDisplay(d.SellerName)
	d.SellerPhone = sanitizer.ForDisplay(d.SellerPhone)
	return d
}

// Outcome is the aggregated result of validating a Draft.
// Errors are ordered: fields, then prohibited content, then cooldown.
// Problems carries the same failures keyed by field name, ProblemContent
// or ProblemCooldown.
type Outcome struct {
	Valid     bool                       `json:"valid"`
	Errors    []string                   `json:"errors"`
	Problems  validator.ValidationErrors `json:"problems,omitempty"`
	Sanitized Draft                      `json:"sanitized"`
}

// Err returns the failures as validator.ValidationErrors, or nil when valid.
func (o Outcome) Err() error {
	if o.Valid {
		return nil
	}
	return o.Problems
}
