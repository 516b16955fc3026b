package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/listingkit/pkg/validator"
)

func TestValidationErrors(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
		assert.True(t, errs.IsEmpty())
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "title", Message: "bad title"})
		errs.Add(validator.ValidationError{Field: "price", Message: "bad price"})
		errs.Add(validator.ValidationError{Field: "title", Message: "again"})

		assert.Equal(t, []string{"bad title", "bad price", "again"}, errs.Messages())
		assert.Equal(t, []string{"title", "price"}, errs.Fields())
		assert.Equal(t, []string{"bad title", "again"}, errs.Get("title"))
		assert.Nil(t, errs.Get("sellerName"))
		assert.Equal(t, "validation failed: title: bad title; price: bad price; title: again", errs.Error())
	})
}

func TestFirst(t *testing.T) {
	pass := validator.Rule{Check: func() bool { return true }, Error: validator.ValidationError{Field: "a", Message: "a"}}
	fail1 := validator.Rule{Check: func() bool { return false }, Error: validator.ValidationError{Field: "b", Message: "first"}}
	fail2 := validator.Rule{Check: func() bool { return false }, Error: validator.ValidationError{Field: "c", Message: "second"}}

	verr, failed := validator.First(pass, fail1, fail2)
	assert.True(t, failed)
	assert.Equal(t, "first", verr.Message)

	_, failed = validator.First(pass)
	assert.False(t, failed)
}

func TestExtractValidationErrors(t *testing.T) {
	errs := validator.ValidationErrors{{Field: "price", Message: "bad price"}}

	wrapped := fmt.Errorf("create listing: %w", errs)
	got := validator.ExtractValidationErrors(wrapped)
	require.Len(t, got, 1)
	assert.Equal(t, "price", got[0].Field)

	assert.Nil(t, validator.ExtractValidationErrors(errors.New("other")))
	assert.Nil(t, validator.ExtractValidationErrors(nil))
}

func TestRuleset_ValidateAll(t *testing.T) {
	t.Run("collects every failing field in order", func(t *testing.T) {
		values, err := validator.ListingRules.ValidateAll(
			validator.Input{Field: validator.FieldTitle, Value: "Hi"},
			validator.Input{Field: validator.FieldPrice, Value: "abc"},
			validator.Input{Field: validator.FieldSellerPhone, Value: " 0821234567 "},
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.NotNil(t, errs)
		assert.Equal(t, []string{validator.FieldTitle, validator.FieldPrice}, errs.Fields())
		assert.Equal(t, "0821234567", values[validator.FieldSellerPhone])
		assert.NotContains(t, values, validator.FieldTitle)
	})

	t.Run("returns sanitised values when all pass", func(t *testing.T) {
		values, err := validator.ListingRules.ValidateAll(
			validator.Input{Field: validator.FieldPrice, Value: 250.0},
			validator.Input{Field: validator.FieldSellerName, Value: " Thandi "},
		)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			validator.FieldPrice:      "250",
			validator.FieldSellerName: "Thandi",
		}, values)
	})
}
