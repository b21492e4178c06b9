package stats

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DatasetStats gom các thống kê mô tả của một dataset
type DatasetStats struct {
	Count    int
	Mean     float64
	Median   float64
	Modes    []float64
	Variance float64
	StdDev   float64
}

// ParseNumbersFromFile đọc các số từ file text, token không hợp lệ
// được gom vào danh sách lỗi thay vì dừng xử lý.
func ParseNumbersFromFile(path string) ([]float64, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	var numbers []float64
	var errs []string

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		for _, token := range strings.Fields(scanner.Text()) {
			value, err := strconv.ParseFloat(token, 64)
			if err != nil {
				errs = append(errs, fmt.Sprintf(
					"%s: invalid number at line %d: %s",
					filepath.Base(path), lineNumber, token,
				))
				continue
			}
			numbers = append(numbers, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return numbers, errs, nil
}

// Mean tính trung bình cộng
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("cannot compute mean of an empty sequence")
	}
	total := 0.0
	for _, value := range values {
		total += value
	}
	return total / float64(len(values)), nil
}

// Median tính trung vị
func Median(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("cannot compute median of an empty sequence")
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	}
	return sorted[mid], nil
}

// Modes trả về các giá trị xuất hiện nhiều nhất; rỗng khi mọi tần suất là 1
func Modes(values []float64) []float64 {
	frequency := make(map[float64]int, len(values))
	for _, value := range values {
		frequency[value]++
	}

	maxFrequency := 0
	for _, count := range frequency {
		if count > maxFrequency {
			maxFrequency = count
		}
	}
	if maxFrequency <= 1 {
		return nil
	}

	var modes []float64
	for value, count := range frequency {
		if count == maxFrequency {
			modes = append(modes, value)
		}
	}
	sort.Float64s(modes)
	return modes
}

// Variance tính phương sai tổng thể với mean cho trước
func Variance(values []float64, mean float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("cannot compute variance of an empty sequence")
	}
	total := 0.0
	for _, value := range values {
		diff := value - mean
		total += diff * diff
	}
	return total / float64(len(values)), nil
}

// Compute tính toàn bộ thống kê cho một dataset
func Compute(values []float64) (*DatasetStats, error) {
	mean, err := Mean(values)
	if err != nil {
		return nil, err
	}
	median, err := Median(values)
	if err != nil {
		return nil, err
	}
	variance, err := Variance(values, mean)
	if err != nil {
		return nil, err
	}
	return &DatasetStats{
		Count:    len(values),
		Mean:     mean,
		Median:   median,
		Modes:    Modes(values),
		Variance: variance,
		StdDev:   math.Sqrt(variance),
	}, nil
}
