package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKWithData(t *testing.T) {
	data := map[string]string{"key": "value"}
	resp := OKWithData(data)

	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.Equal(t, data, resp.Data)
}

func TestError_Capitalizes(t *testing.T) {
	resp := Error("car is not available")

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "Car is not available", resp.Error)
	assert.Nil(t, resp.Data)
}

func TestValidationError(t *testing.T) {
	type form struct {
		Plate    string   `validate:"required,alphanum,len=7"`
		Distance *float64 `validate:"required,gt=0"`
		Rating   int      `validate:"gte=0,lte=5"`
		Method   string   `validate:"omitempty,oneof=CARD CRYPTO"`
		Email    string   `validate:"omitempty,email"`
	}
	zero := 0.0

	err := validator.New().Struct(form{
		Plate:    "AB-12",
		Distance: &zero,
		Rating:   9,
		Method:   "CASH",
		Email:    "nope",
	})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "Field Plate can contain only numbers and letters")
	assert.Contains(t, resp.Error, "field Distance must be greater than 0")
	assert.Contains(t, resp.Error, "field Rating must be at most 5")
	assert.Contains(t, resp.Error, "field Method must be one of CARD CRYPTO")
	assert.Contains(t, resp.Error, "field Email must be a valid email")
}

func TestValidationErrorRequired(t *testing.T) {
	type form struct {
		Name string `validate:"required"`
	}

	err := validator.New().Struct(form{})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, "Field Name is a required field", resp.Error)
}
