package models_test

import (
	"testing"

	"hotelsys/constants"
	"hotelsys/errors"
	"hotelsys/models"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationValidate(t *testing.T) {
	valid := models.Reservation{
		ReservationID: "RES-1",
		CustomerID:    "CUS-1",
		HotelID:       "HOT-1",
		RoomCount:     2,
		Status:        constants.ReservationStatusActive,
	}

	t.Run("accepts a valid reservation", func(t *testing.T) {
		reservation := valid
		assert.NoError(t, reservation.Validate())
	})

	t.Run("rejects non-positive room count", func(t *testing.T) {
		reservation := valid
		reservation.RoomCount = 0
		err := reservation.Validate()
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRoomCount))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		reservation := valid
		reservation.Status = "pending"
		err := reservation.Validate()
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidStatus))
	})
}

func TestReservationFromJSON(t *testing.T) {
	t.Run("round-trips a valid reservation", func(t *testing.T) {
		original := &models.Reservation{
			ReservationID: "RES-2",
			CustomerID:    "CUS-2",
			HotelID:       "HOT-2",
			RoomCount:     1,
			Status:        constants.ReservationStatusCancelled,
		}
		data, err := json.Marshal(original)
		require.NoError(t, err)

		decoded, err := models.ReservationFromJSON(data)
		require.NoError(t, err)
		assert.Equal(t, original, decoded)
	})

	t.Run("defaults absent status to active", func(t *testing.T) {
		decoded, err := models.ReservationFromJSON([]byte(
			`{"reservation_id":"RES-3","customer_id":"CUS-3","hotel_id":"HOT-3","room_count":1}`,
		))
		require.NoError(t, err)
		assert.Equal(t, constants.ReservationStatusActive, decoded.Status)
		assert.True(t, decoded.IsActive())
	})
}
