package dto

// CustomerUpdate chứa các field tùy chọn khi chỉnh sửa khách hàng
type CustomerUpdate struct {
	FullName *string
	Email    *string
	Phone    *string
}

// IsEmpty báo update không thay đổi field nào
func (u CustomerUpdate) IsEmpty() bool {
	return u.FullName == nil && u.Email == nil && u.Phone == nil
}
