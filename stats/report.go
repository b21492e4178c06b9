package stats

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RowLabels là thứ tự các dòng trong report TSV
var RowLabels = []string{
	"COUNT",
	"MEAN",
	"MEDIAN",
	"MODE",
	"SD",
	"VARIANCE",
	"ELAPSED (s)",
}

// FormatNumber format float với 5 chữ số thập phân
func FormatNumber(value float64) string {
	return fmt.Sprintf("%.5f", value)
}

// formatModes: một giá trị đại diện (max khi hòa) hoặc #N/A
func formatModes(modes []float64) string {
	if len(modes) == 0 {
		return "#N/A"
	}
	max := modes[0]
	for _, mode := range modes[1:] {
		if mode > max {
			max = mode
		}
	}
	return FormatNumber(max)
}

// BuildSummary dựng report TSV cho nhiều dataset (nil = #N/A)
func BuildSummary(datasets []*DatasetStats, elapsedSeconds float64) []string {
	headers := []string{"TC"}
	for idx := 1; idx <= len(datasets); idx++ {
		headers = append(headers, fmt.Sprintf("TC%d", idx))
	}
	lines := []string{strings.Join(headers, "\t")}

	formatRow := func(label string, extract func(*DatasetStats) string) string {
		row := []string{label}
		for _, stats := range datasets {
			if stats == nil {
				row = append(row, "#N/A")
				continue
			}
			row = append(row, extract(stats))
		}
		return strings.Join(row, "\t")
	}

	lines = append(lines, formatRow("COUNT", func(s *DatasetStats) string { return fmt.Sprintf("%d", s.Count) }))
	lines = append(lines, formatRow("MEAN", func(s *DatasetStats) string { return FormatNumber(s.Mean) }))
	lines = append(lines, formatRow("MEDIAN", func(s *DatasetStats) string { return FormatNumber(s.Median) }))
	lines = append(lines, formatRow("MODE", func(s *DatasetStats) string { return formatModes(s.Modes) }))
	lines = append(lines, formatRow("SD", func(s *DatasetStats) string { return FormatNumber(s.StdDev) }))
	lines = append(lines, formatRow("VARIANCE", func(s *DatasetStats) string { return FormatNumber(s.Variance) }))

	// Thời gian chạy là của cả lần chạy, lặp lại cho từng cột
	elapsedRow := []string{"ELAPSED (s)"}
	for range datasets {
		elapsedRow = append(elapsedRow, FormatNumber(elapsedSeconds))
	}
	lines = append(lines, strings.Join(elapsedRow, "\t"))

	return lines
}

// padOrTrim đảm bảo danh sách đúng độ dài, thiếu thì chèn #N/A
func padOrTrim(values []string, expected int) []string {
	if len(values) < expected {
		padded := append([]string(nil), values...)
		for len(padded) < expected {
			padded = append(padded, "#N/A")
		}
		return padded
	}
	if len(values) > expected {
		return values[:expected]
	}
	return values
}

// parseTable chuyển các dòng TSV thành map label -> values
func parseTable(lines []string) map[string][]string {
	mapping := make(map[string][]string)
	for _, line := range lines[1:] {
		parts := strings.Split(line, "\t")
		if len(parts) >= 2 {
			mapping[parts[0]] = parts[1:]
		}
	}
	return mapping
}

// Merge gộp các cột kết quả mới vào report TSV đã có
func Merge(existingLines, newLines []string) []string {
	if len(existingLines) == 0 {
		return newLines
	}

	existingCols := len(strings.Split(existingLines[0], "\t")) - 1
	newCols := len(strings.Split(newLines[0], "\t")) - 1
	totalCols := existingCols + newCols

	headers := []string{"TC"}
	for idx := 1; idx <= totalCols; idx++ {
		headers = append(headers, fmt.Sprintf("TC%d", idx))
	}

	existingMap := parseTable(existingLines)
	newMap := parseTable(newLines)

	merged := []string{strings.Join(headers, "\t")}
	for _, label := range RowLabels {
		existingVals, ok := existingMap[label]
		if !ok {
			existingVals = nil
		}
		newVals, ok := newMap[label]
		if !ok {
			newVals = nil
		}
		row := append([]string{label}, padOrTrim(existingVals, existingCols)...)
		row = append(row, padOrTrim(newVals, newCols)...)
		merged = append(merged, strings.Join(row, "\t"))
	}
	return merged
}

// WriteResults ghi report xuống file, tạo thư mục cha nếu cần
func WriteResults(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
}
