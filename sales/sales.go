package sales

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
)

// CatalogueItem là một sản phẩm trong catalogue giá
type CatalogueItem struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

// Sale là một lần bán gồm nhiều item
type Sale struct {
	Items []json.RawMessage `json:"items"`
}

// saleItem là dạng object của một item; string item có quantity 1
type saleItem struct {
	Title    string   `json:"title"`
	Quantity *float64 `json:"quantity"`
}

// LoadCatalogue đọc catalogue giá từ file JSON
func LoadCatalogue(path string) ([]CatalogueItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []CatalogueItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("invalid price catalogue %s: %w", path, err)
	}
	return items, nil
}

// LoadSales đọc sales record từ file JSON
func LoadSales(path string) ([]Sale, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sales []Sale
	if err := json.Unmarshal(data, &sales); err != nil {
		return nil, fmt.Errorf("invalid sales record %s: %w", path, err)
	}
	return sales, nil
}

// BuildPriceLookup dựng map title -> price
func BuildPriceLookup(items []CatalogueItem) map[string]float64 {
	lookup := make(map[string]float64, len(items))
	for _, item := range items {
		lookup[item.Title] = item.Price
	}
	return lookup
}

// itemTotal tính tiền một item; item hỏng trả về 0 kèm lỗi
func itemTotal(raw json.RawMessage, prices map[string]float64) (float64, error) {
	var title string
	if err := json.Unmarshal(raw, &title); err == nil {
		price, ok := prices[title]
		if !ok {
			return 0, fmt.Errorf("product not in catalogue: %s", title)
		}
		return price, nil
	}

	var item saleItem
	if err := json.Unmarshal(raw, &item); err != nil || item.Title == "" {
		return 0, fmt.Errorf("invalid sale item: %s", string(raw))
	}
	price, ok := prices[item.Title]
	if !ok {
		return 0, fmt.Errorf("product not in catalogue: %s", item.Title)
	}

	quantity := 1.0
	if item.Quantity != nil {
		quantity = *item.Quantity
	}
	if quantity <= 0 {
		return 0, fmt.Errorf("invalid quantity for product %s: %v", item.Title, quantity)
	}
	return price * quantity, nil
}

// ComputeTotals tính tổng từng sale và tổng chung. Item hỏng hoặc không
// có trong catalogue đóng góp 0 và sinh một dòng chẩn đoán.
func ComputeTotals(salesRecords []Sale, prices map[string]float64) ([]float64, float64, []string) {
	saleTotals := make([]float64, 0, len(salesRecords))
	var errs []string
	grandTotal := 0.0

	for index, sale := range salesRecords {
		total := 0.0
		for _, raw := range sale.Items {
			amount, err := itemTotal(raw, prices)
			if err != nil {
				errs = append(errs, fmt.Sprintf("sale %d: %v", index+1, err))
				continue
			}
			total += amount
		}
		saleTotals = append(saleTotals, total)
		grandTotal += total
	}
	return saleTotals, grandTotal, errs
}

// BuildReport dựng report tổng tiền từng sale và tổng chung
func BuildReport(saleTotals []float64, grandTotal float64) []string {
	var lines []string
	for index, total := range saleTotals {
		lines = append(lines, fmt.Sprintf("Sale %d: $%.2f", index+1, total))
	}
	lines = append(lines, fmt.Sprintf("Grand Total: $%.2f", grandTotal))
	return lines
}

// WriteResults ghi report xuống file, tạo thư mục cha nếu cần
func WriteResults(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
}
