package models

import (
	"strings"

	"hotelsys/errors"
	"hotelsys/validator"

	json "github.com/goccy/go-json"
)

// Customer đại diện một khách hàng của hệ thống
type Customer struct {
	CustomerID string `json:"customer_id" validate:"required"`
	FullName   string `json:"full_name" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Phone      string `json:"phone"`
}

// Validate kiểm tra dữ liệu khách hàng
func (c *Customer) Validate() error {
	if appErr := validator.Struct(c); appErr != nil {
		return appErr
	}

	if validator.IsBlank(c.FullName) {
		return errors.NewAppError(
			errors.ErrCodeRequiredField,
			"customer name cannot be blank",
			nil,
		)
	}
	if !strings.Contains(c.Email, "@") {
		return errors.NewAppError(
			errors.ErrCodeInvalidEmail,
			"invalid email for customer "+c.CustomerID,
			nil,
		)
	}
	return nil
}

// CustomerFromJSON giải mã và validate một record khách hàng
func CustomerFromJSON(data []byte) (*Customer, error) {
	var customer Customer
	if err := json.Unmarshal(data, &customer); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeMalformedRecord, "invalid customer record", err)
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	return &customer, nil
}
