//go:build unit

package validation_test

import (
	"encoding/json"
	"strings"
	"testing"

	"rental-marketplace/internal/handler/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	PropertyID string   `json:"propertyId" binding:"required,uuid"`
	Email      string   `json:"email" binding:"omitempty,email"`
	Role       string   `json:"role" binding:"omitempty,oneof=TENANT LANDLORD"`
	ReviewText string   `json:"reviewText" binding:"omitempty,max=10"`
	Rating     int      `json:"rating" binding:"omitempty,min=1,max=5"`
	Rent       float64  `json:"rent" binding:"omitempty,gt=0"`
	Images     []string `json:"images" binding:"omitempty,max=2"`
	MinRent    *float64 `form:"minRent" binding:"omitempty,gte=0"`
}

func valid() sample {
	return sample{PropertyID: "0b3f7c2e-8a55-4c43-9a7e-0f5d3c2b1a90"}
}

func messageFor(t *testing.T, s sample) string {
	t.Helper()
	err := binding.Validator.ValidateStruct(&s)
	require.Error(t, err)
	return validation.Message(err)
}

func TestMessage_FieldErrors(t *testing.T) {
	validation.RegisterJSONFieldNames()
	negative := -1.0

	cases := []struct {
		name   string
		mutate func(*sample)
		want   string
	}{
		{name: "required", mutate: func(s *sample) { s.PropertyID = "" }, want: "Property id is required"},
		{name: "uuid", mutate: func(s *sample) { s.PropertyID = "nope" }, want: "Property id must be a valid id"},
		{name: "email", mutate: func(s *sample) { s.Email = "not-an-email" }, want: "Invalid email address"},
		{name: "oneof", mutate: func(s *sample) { s.Role = "ADMIN" }, want: "Role must be one of: TENANT, LANDLORD"},
		{name: "text max", mutate: func(s *sample) { s.ReviewText = strings.Repeat("x", 11) }, want: "Review text must be at most 10 characters"},
		{name: "number min", mutate: func(s *sample) { s.Rating = -2 }, want: "Rating must be at least 1"},
		{name: "number max", mutate: func(s *sample) { s.Rating = 9 }, want: "Rating must be at most 5"},
		{name: "gt", mutate: func(s *sample) { s.Rent = -3 }, want: "Rent must be greater than 0"},
		{name: "slice max", mutate: func(s *sample) { s.Images = []string{"a", "b", "c"} }, want: "Images must contain at most 2 items"},
		{name: "form tag name", mutate: func(s *sample) { s.MinRent = &negative }, want: "Min rent must be at least 0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid()
			tc.mutate(&s)
			assert.Equal(t, tc.want, messageFor(t, s))
		})
	}
}

func TestMessage_DecodeErrors(t *testing.T) {
	t.Run("type mismatch names the field", func(t *testing.T) {
		var s sample
		err := json.Unmarshal([]byte(`{"rating":"five"}`), &s)
		require.Error(t, err)
		assert.Equal(t, "Rating has an invalid type", validation.Message(err))
	})

	t.Run("syntax error falls back to a generic message", func(t *testing.T) {
		var s sample
		err := json.Unmarshal([]byte(`{"rating":`), &s)
		require.Error(t, err)
		assert.Equal(t, "Invalid request body", validation.Message(err))
	})
}
