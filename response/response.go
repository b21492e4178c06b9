package response

import (
	"fmt"
	"io"
	"strings"

	"hotelsys/dto"
	"hotelsys/errors"
	"hotelsys/models"
)

// Success in thông báo thành công ra writer
func Success(w io.Writer, format string, v ...interface{}) {
	fmt.Fprintf(w, format+"\n", v...)
}

// Error in thông báo lỗi ra writer
func Error(w io.Writer, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		fmt.Fprintf(w, "ERROR: %s\n", appErr.Message)
		return
	}
	fmt.Fprintf(w, "ERROR: %v\n", err)
}

// Hotel in thông tin hotel
func Hotel(w io.Writer, hotel *models.Hotel) {
	fmt.Fprintf(w, "Hotel %s\n", hotel.HotelID)
	fmt.Fprintf(w, "  Name:            %s\n", hotel.Name)
	fmt.Fprintf(w, "  Location:        %s\n", hotel.Location)
	fmt.Fprintf(w, "  Total rooms:     %d\n", hotel.TotalRooms)
	fmt.Fprintf(w, "  Available rooms: %d\n", hotel.AvailableRooms)
	fmt.Fprintf(w, "  Amenities:       %s\n", strings.Join(hotel.Amenities, ", "))
}

// Customer in thông tin khách hàng
func Customer(w io.Writer, customer *models.Customer) {
	fmt.Fprintf(w, "Customer %s\n", customer.CustomerID)
	fmt.Fprintf(w, "  Name:  %s\n", customer.FullName)
	fmt.Fprintf(w, "  Email: %s\n", customer.Email)
	fmt.Fprintf(w, "  Phone: %s\n", customer.Phone)
}

// Reservation in thông tin reservation kèm tên khách hàng
func Reservation(w io.Writer, detail *dto.ReservationDetail) {
	fmt.Fprintf(w, "Reservation %s\n", detail.ReservationID)
	fmt.Fprintf(w, "  Customer: %s (%s)\n", detail.CustomerName, detail.CustomerID)
	fmt.Fprintf(w, "  Hotel:    %s\n", detail.HotelID)
	fmt.Fprintf(w, "  Rooms:    %d\n", detail.RoomCount)
	fmt.Fprintf(w, "  Status:   %s\n", detail.Status)
}

// Reservations in danh sách reservation
func Reservations(w io.Writer, details []dto.ReservationDetail) {
	for i := range details {
		Reservation(w, &details[i])
	}
}
