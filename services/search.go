package services

import (
	"strings"

	"hotelsys/dto"
	"hotelsys/errors"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Ngưỡng tương đồng tối thiểu để đưa ra gợi ý tên gần nhất
const suggestionThreshold = 0.5

// normalizeName chuẩn hóa chuỗi để so khớp không phân biệt hoa thường và dấu
func normalizeName(input string) string {
	return strings.ToLower(unidecode.Unidecode(strings.TrimSpace(input)))
}

// calculateSimilarity tính độ tương đồng giữa hai chuỗi theo levenshtein
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// closestName tìm tên khách hàng gần query nhất để gợi ý khi không khớp
func closestName(query string, names []string) string {
	if len(names) == 0 {
		return ""
	}

	normalized := make([]string, 0, len(names))
	byNormalized := make(map[string]string, len(names))
	for _, name := range names {
		key := normalizeName(name)
		normalized = append(normalized, key)
		byNormalized[key] = name
	}

	matcher := closestmatch.New(normalized, []int{2, 3})
	candidate := matcher.Closest(query)
	if candidate == "" {
		return ""
	}
	if calculateSimilarity(query, candidate) < suggestionThreshold {
		return ""
	}
	return byNormalized[candidate]
}

// SearchReservationsByName tìm các reservation của những khách hàng có tên
// chứa chuỗi query (không phân biệt hoa thường và dấu). Query rỗng, không
// khớp khách hàng nào, hoặc không có reservation nào đều là lỗi.
func (s *HotelSystem) SearchReservationsByName(customerName string) ([]dto.ReservationDetail, error) {
	query := normalizeName(customerName)
	if query == "" {
		return nil, errors.NewAppError(errors.ErrCodeEmptyQuery, "customer name cannot be empty", nil)
	}

	customers, err := s.loadCustomers()
	if err != nil {
		return nil, err
	}

	matching := make(map[string]string)
	names := make([]string, 0, len(customers))
	for _, customer := range customers {
		names = append(names, customer.FullName)
		if strings.Contains(normalizeName(customer.FullName), query) {
			matching[customer.CustomerID] = customer.FullName
		}
	}
	if len(matching) == 0 {
		message := "no customer matches name: " + customerName
		if suggestion := closestName(query, names); suggestion != "" {
			message += " (closest match: " + suggestion + ")"
		}
		return nil, errors.NewAppError(errors.ErrCodeNoMatches, message, nil)
	}

	reservations, err := s.loadReservations()
	if err != nil {
		return nil, err
	}
	var results []dto.ReservationDetail
	for _, reservation := range reservations {
		name, ok := matching[reservation.CustomerID]
		if !ok {
			continue
		}
		results = append(results, dto.ReservationDetail{
			Reservation:  *reservation,
			CustomerName: name,
		})
	}
	if len(results) == 0 {
		return nil, errors.NewAppError(
			errors.ErrCodeNoMatches,
			"no reservations for customers matching '"+customerName+"'",
			nil,
		)
	}
	return results, nil
}
