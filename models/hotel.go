package models

import (
	"hotelsys/errors"
	"hotelsys/validator"

	json "github.com/goccy/go-json"
)

// Hotel đại diện một khách sạn với số phòng còn trống
type Hotel struct {
	HotelID        string   `json:"hotel_id" validate:"required"`
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	TotalRooms     int      `json:"total_rooms"`
	AvailableRooms int      `json:"available_rooms"`
	Amenities      []string `json:"amenities"`
}

// Validate kiểm tra bất biến của hotel
func (h *Hotel) Validate() error {
	if appErr := validator.Struct(h); appErr != nil {
		return appErr
	}

	if h.TotalRooms < 0 || h.AvailableRooms < 0 {
		return errors.NewAppError(
			errors.ErrCodeValidation,
			"hotel cannot have negative room counts",
			nil,
		)
	}
	if h.AvailableRooms > h.TotalRooms {
		return errors.NewAppError(
			errors.ErrCodeValidation,
			"available rooms cannot exceed total rooms for hotel "+h.HotelID,
			nil,
		)
	}
	return nil
}

// HotelFromJSON giải mã và validate một record hotel
func HotelFromJSON(data []byte) (*Hotel, error) {
	var hotel Hotel
	if err := json.Unmarshal(data, &hotel); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeMalformedRecord, "invalid hotel record", err)
	}
	if hotel.Amenities == nil {
		hotel.Amenities = []string{}
	}
	if err := hotel.Validate(); err != nil {
		return nil, err
	}
	return &hotel, nil
}
