package models_test

import (
	"testing"

	"hotelsys/errors"
	"hotelsys/models"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerValidate(t *testing.T) {
	valid := models.Customer{
		CustomerID: "CUS-1",
		FullName:   "Ana Pérez",
		Email:      "ana@example.com",
		Phone:      "8111111111",
	}

	t.Run("accepts a valid customer", func(t *testing.T) {
		customer := valid
		assert.NoError(t, customer.Validate())
	})

	t.Run("rejects blank name", func(t *testing.T) {
		customer := valid
		customer.FullName = "   "
		err := customer.Validate()
		assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))
	})

	t.Run("rejects email without at sign", func(t *testing.T) {
		customer := valid
		customer.Email = "correo_invalido"
		err := customer.Validate()
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidEmail))
	})
}

func TestCustomerFromJSON(t *testing.T) {
	t.Run("round-trips a valid customer", func(t *testing.T) {
		original := &models.Customer{
			CustomerID: "CUS-2",
			FullName:   "Carlos Ruiz",
			Email:      "carlos@example.com",
			Phone:      "8333333333",
		}
		data, err := json.Marshal(original)
		require.NoError(t, err)

		decoded, err := models.CustomerFromJSON(data)
		require.NoError(t, err)
		assert.Equal(t, original, decoded)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := models.CustomerFromJSON([]byte(`{"customer_id":"CUS-3"}`))
		assert.Error(t, err)
	})
}
