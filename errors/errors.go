package errors

import (
	"errors"
	"fmt"
)

// ErrorCode phân loại lỗi trả về cho tầng console
type ErrorCode string

const (
	// Not-found errors
	ErrCodeHotelNotFound       ErrorCode = "HOTEL_NOT_FOUND"
	ErrCodeCustomerNotFound    ErrorCode = "CUSTOMER_NOT_FOUND"
	ErrCodeReservationNotFound ErrorCode = "RESERVATION_NOT_FOUND"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidEmail  ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"

	// Business errors
	ErrCodeNoAvailability     ErrorCode = "NO_AVAILABILITY"
	ErrCodeInvalidRoomCount   ErrorCode = "INVALID_ROOM_COUNT"
	ErrCodeActiveReservations ErrorCode = "ACTIVE_RESERVATIONS"
	ErrCodeAlreadyCancelled   ErrorCode = "ALREADY_CANCELLED"

	// Search errors
	ErrCodeEmptyQuery ErrorCode = "EMPTY_QUERY"
	ErrCodeNoMatches  ErrorCode = "NO_MATCHES"

	// Storage errors
	ErrCodeStorage         ErrorCode = "STORAGE_ERROR"
	ErrCodeMalformedRecord ErrorCode = "MALFORMED_RECORD"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode báo err là AppError mang mã code
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	// Entity errors
	ErrHotelNotFound       = errors.New("hotel not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrReservationNotFound = errors.New("reservation not found")

	// Reservation errors
	ErrNoAvailability   = errors.New("not enough rooms available")
	ErrAlreadyCancelled = errors.New("reservation already cancelled")
)
