package validator

import (
	"maps"
	"regexp"

	"github.com/dmitrymomot/listingkit/pkg/sanitizer"
)

// Listing field names as used by the rule set.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldSellerName  = "sellerName"
	FieldSellerPhone = "sellerPhone"
)

// FieldRule configures validation for one field. Every failing check reports
// the same Message.
type FieldRule struct {
	MinLength int
	MaxLength int
	// Pattern must be anchored; nil means no pattern constraint.
	Pattern *regexp.Regexp
	// Numeric enables the Min/Max range check on the parsed value.
	Numeric bool
	Min     float64
	Max     float64
	Message string
}

// rules builds the ordered checks for value.
func (fr FieldRule) rules(field, value string) []Rule {
	rules := []Rule{
		MinLen(field, value, fr.MinLength, fr.Message),
		MaxLen(field, value, fr.MaxLength, fr.Message),
	}
	if fr.Pattern != nil {
		rules = append(rules, Matches(field, value, fr.Pattern, fr.Message))
	}
	if fr.Numeric {
		rules = append(rules, NumberInRange(field, value, fr.Min, fr.Max, fr.Message))
	}
	return rules
}

// Result is the outcome of validating a single field.
// Value is set only when Valid; Message only when not.
type Result struct {
	Valid   bool   `json:"valid"`
	Value   string `json:"value,omitempty"`
	Message string `json:"error,omitempty"`
}

func valid(value string) Result {
	return Result{Valid: true, Value: value}
}

func invalid(message string) Result {
	return Result{Message: message}
}

// Ruleset is an immutable set of field rules keyed by field name.
type Ruleset struct {
	rules map[string]FieldRule
}

// NewRuleset copies rules into a new Ruleset.
func NewRuleset(rules map[string]FieldRule) Ruleset {
	rs := Ruleset{rules: make(map[string]FieldRule, len(rules))}
	maps.Copy(rs.rules, rules)
	return rs
}

// Rule returns the rule configured for field.
func (rs Ruleset) Rule(field string) (FieldRule, bool) {
	r, ok := rs.rules[field]
	return r, ok
}

// ValidateField sanitises raw for storage and checks it against the rule for
// field. Fields without a rule are valid with an empty value.
func (rs Ruleset) ValidateField(field string, raw any) Result {
	rule, ok := rs.rules[field]
	if !ok {
		return valid("")
	}

	value := sanitizer.ForStorage(raw)
	if verr, failed := First(rule.rules(field, value)...); failed {
		return invalid(verr.Message)
	}

	return valid(value)
}

// Input is a raw value for one field.
type Input struct {
	Field string
	Value any
}

// ValidateAll validates inputs in order and returns the sanitised values
// keyed by field. When any field fails, err is a ValidationErrors holding
// one entry per failing field.
func (rs Ruleset) ValidateAll(inputs ...Input) (map[string]string, error) {
	values := make(map[string]string, len(inputs))
	var errs ValidationErrors

	for _, in := range inputs {
		res := rs.ValidateField(in.Field, in.Value)
		if !res.Valid {
			errs.Add(ValidationError{Field: in.Field, Message: res.Message})
			continue
		}
		values[in.Field] = res.Value
	}

	if errs.IsEmpty() {
		return values, nil
	}
	return values, errs
}

// ListingRules is the default rule set for marketplace listings.
var ListingRules = NewRuleset(map[string]FieldRule{
	FieldTitle: {
		MinLength: 5,
		MaxLength: 100,
		Pattern:   regexp.MustCompile(`^[a-zA-Z0-9\s\-.,!?'()&]+$`),
		Message:   "Title must be 5-100 characters and may only contain letters, numbers and basic punctuation",
	},
	FieldDescription: {
		MinLength: 20,
		MaxLength: 2000,
		Message:   "Description must be between 20 and 2000 characters",
	},
	FieldPrice: {
		MinLength: 1,
		MaxLength: 10,
		Pattern:   regexp.MustCompile(`^\d+(\.\d{1,2})?$`),
		Numeric:   true,
		Min:       10,
		Max:       1_000_000,
		Message:   "Price must be a number between 10 and 1,000,000",
	},
	FieldSellerName: {
		MinLength: 2,
		MaxLength: 50,
		Pattern:   regexp.MustCompile(`^[a-zA-Z\s'\-.]+$`),
		Message:   "Name must be 2-50 characters and may only contain letters",
	},
	FieldSellerPhone: {
		MinLength: 10,
		MaxLength: 10,
		Pattern:   regexp.MustCompile(`^0\d{9}$`),
		Message:   "Phone number must be 10 digits and start with 0",
	},
})

// ValidateField validates raw against ListingRules.
func ValidateField(field string, raw any) Result {
	return ListingRules.ValidateField(field, raw)
}
