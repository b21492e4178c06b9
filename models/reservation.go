package models

import (
	"hotelsys/constants"
	"hotelsys/errors"
	"hotelsys/validator"

	json "github.com/goccy/go-json"
)

// Reservation đại diện một reservation giữa khách hàng và khách sạn
type Reservation struct {
	ReservationID string `json:"reservation_id" validate:"required"`
	CustomerID    string `json:"customer_id" validate:"required"`
	HotelID       string `json:"hotel_id" validate:"required"`
	RoomCount     int    `json:"room_count"`
	Status        string `json:"status"`
}

// IsActive báo reservation còn hiệu lực
func (r *Reservation) IsActive() bool {
	return r.Status == constants.ReservationStatusActive
}

// Validate kiểm tra dữ liệu reservation
func (r *Reservation) Validate() error {
	if appErr := validator.Struct(r); appErr != nil {
		return appErr
	}

	if r.RoomCount <= 0 {
		return errors.NewAppError(
			errors.ErrCodeInvalidRoomCount,
			"invalid room count in reservation "+r.ReservationID,
			nil,
		)
	}
	if r.Status != constants.ReservationStatusActive &&
		r.Status != constants.ReservationStatusCancelled {
		return errors.NewAppError(
			errors.ErrCodeInvalidStatus,
			"invalid status in reservation "+r.ReservationID,
			nil,
		)
	}
	return nil
}

// ReservationFromJSON giải mã và validate một record reservation.
// Status vắng mặt mặc định là active.
func ReservationFromJSON(data []byte) (*Reservation, error) {
	var reservation Reservation
	if err := json.Unmarshal(data, &reservation); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeMalformedRecord, "invalid reservation record", err)
	}
	if reservation.Status == "" {
		reservation.Status = constants.ReservationStatusActive
	}
	if err := reservation.Validate(); err != nil {
		return nil, err
	}
	return &reservation, nil
}
