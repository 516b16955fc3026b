package listing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrymomot/listingkit/pkg/sanitizer"
	"github.com/dmitrymomot/listingkit/pkg/validator"
)

// Price is the listing price as the seller entered it. The text is kept
// verbatim so that a value which does not parse is reported by the price
// rule rather than rejected while decoding.
type Price string

// PriceOf returns the shortest decimal form of v (250.0 -> "250").
func PriceOf(v float64) Price {
	return Price(sanitizer.ToText(v))
}

// Float64 parses the price.
func (p Price) Float64() (float64, bool) {
	return validator.ParseNumber(string(p))
}

// UnmarshalJSON accepts a JSON string, number, boolean or null.
// Numbers are normalised with PriceOf; strings are kept as sent.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*p = ""
		return nil
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		*p = Price(data)
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPrice, err)
		}
		*p = Price(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}
	if f, err := n.Float64(); err == nil {
		*p = PriceOf(f)
	} else {
		*p = Price(n.String())
	}
	return nil
}

// MarshalJSON writes a plain decimal price as a JSON number and anything
// else as a string.
func (p Price) MarshalJSON() ([]byte, error) {
	if _, ok := p.Float64(); ok && isJSONNumber(string(p)) {
		return []byte(p), nil
	}
	return json.Marshal(string(p))
}

func isJSONNumber(s string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}
	var n json.Number
	return json.Unmarshal([]byte(s), &n) == nil
}
