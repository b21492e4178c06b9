package dto

// HotelUpdate chứa các field tùy chọn khi chỉnh sửa hotel.
// Field nil giữ nguyên giá trị hiện tại.
type HotelUpdate struct {
	Name           *string
	Location       *string
	TotalRooms     *int
	AvailableRooms *int
	Amenities      []string
}

// IsEmpty báo update không thay đổi field nào
func (u HotelUpdate) IsEmpty() bool {
	return u.Name == nil && u.Location == nil && u.TotalRooms == nil &&
		u.AvailableRooms == nil && u.Amenities == nil
}
