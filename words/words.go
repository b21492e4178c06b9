package words

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsValidWord nhận token chỉ gồm chữ cái, gạch nối hoặc dấu nháy đơn,
// và có ít nhất một chữ cái.
func IsValidWord(token string) bool {
	if token == "" {
		return false
	}

	hasLetter := false
	for _, char := range token {
		isUpper := char >= 'A' && char <= 'Z'
		isLower := char >= 'a' && char <= 'z'
		if isUpper || isLower {
			hasLetter = true
			continue
		}
		if char != '-' && char != '\'' {
			return false
		}
	}
	return hasLetter
}

// ReadTokensFromFile đọc token hợp lệ (lowercase) từ file, token hỏng
// được gom vào danh sách lỗi.
func ReadTokensFromFile(path string) ([]string, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	var valid []string
	var errs []string

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		for _, token := range strings.Fields(scanner.Text()) {
			if IsValidWord(token) {
				valid = append(valid, strings.ToLower(token))
				continue
			}
			errs = append(errs, fmt.Sprintf(
				"%s: invalid token at line %d: %s",
				filepath.Base(path), lineNumber, token,
			))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return valid, errs, nil
}

// CountWords đếm số lần xuất hiện, giữ thứ tự xuất hiện đầu tiên
func CountWords(tokens []string) (map[string]int, []string) {
	counts := make(map[string]int, len(tokens))
	var order []string
	for _, word := range tokens {
		if _, seen := counts[word]; !seen {
			order = append(order, word)
		}
		counts[word]++
	}
	return counts, order
}

// BuildReport dựng các dòng report tần suất theo kiểu pivot table
func BuildReport(fileName string, counts map[string]int, total int, order []string) []string {
	stem := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	lines := []string{fmt.Sprintf("Row Labels\tCount of %s", stem)}

	for _, word := range order {
		lines = append(lines, fmt.Sprintf("%s\t%d", word, counts[word]))
	}
	lines = append(lines, "(blank)\t")
	lines = append(lines, fmt.Sprintf("Grand Total\t%d", total))
	return lines
}

// WriteResults ghi report xuống file, tạo thư mục cha nếu cần
func WriteResults(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
}
