package models_test

import (
	"testing"

	"hotelsys/errors"
	"hotelsys/models"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotelValidate(t *testing.T) {
	valid := models.Hotel{
		HotelID:        "HOT-1",
		Name:           "Hotel Centro",
		Location:       "Monterrey",
		TotalRooms:     20,
		AvailableRooms: 20,
		Amenities:      []string{"wifi", "gym"},
	}

	t.Run("accepts a valid hotel", func(t *testing.T) {
		hotel := valid
		assert.NoError(t, hotel.Validate())
	})

	t.Run("rejects missing id", func(t *testing.T) {
		hotel := valid
		hotel.HotelID = ""
		assert.Error(t, hotel.Validate())
	})

	t.Run("rejects negative room counts", func(t *testing.T) {
		hotel := valid
		hotel.TotalRooms = -1
		hotel.AvailableRooms = -1
		err := hotel.Validate()
		assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
	})

	t.Run("rejects available over total", func(t *testing.T) {
		hotel := valid
		hotel.TotalRooms = 1
		hotel.AvailableRooms = 4
		assert.Error(t, hotel.Validate())
	})
}

func TestHotelFromJSON(t *testing.T) {
	t.Run("round-trips a valid hotel", func(t *testing.T) {
		original := &models.Hotel{
			HotelID:        "HOT-2",
			Name:           "Hotel Plaza",
			Location:       "CDMX",
			TotalRooms:     10,
			AvailableRooms: 7,
			Amenities:      []string{"pool"},
		}
		data, err := json.Marshal(original)
		require.NoError(t, err)

		decoded, err := models.HotelFromJSON(data)
		require.NoError(t, err)
		assert.Equal(t, original, decoded)
	})

	t.Run("defaults absent amenities to an empty list", func(t *testing.T) {
		decoded, err := models.HotelFromJSON([]byte(
			`{"hotel_id":"HOT-3","name":"Uno","location":"X","total_rooms":2,"available_rooms":2}`,
		))
		require.NoError(t, err)
		assert.Equal(t, []string{}, decoded.Amenities)
	})

	t.Run("rejects wrong-typed fields", func(t *testing.T) {
		_, err := models.HotelFromJSON([]byte(
			`{"hotel_id":"HOT-4","name":"Dos","location":"X","total_rooms":"many","available_rooms":1}`,
		))
		assert.True(t, errors.HasCode(err, errors.ErrCodeMalformedRecord))
	})
}
