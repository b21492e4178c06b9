package dto

import "hotelsys/models"

// ReservationDetail là reservation kèm tên khách hàng đã resolve
type ReservationDetail struct {
	models.Reservation
	CustomerName string `json:"customer_name"`
}
