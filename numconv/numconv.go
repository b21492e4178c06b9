package numconv

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Độ rộng two's complement theo kiểu DEC2BIN/DEC2HEX của bảng tính
const (
	binaryComplementBits = 10
	hexComplementBits    = 40
	hexDigits            = 10
)

// ReadTokensFromFile đọc token từ file, token không phải số nguyên được
// report nhưng vẫn giữ lại để report đánh dấu #VALUE!.
func ReadTokensFromFile(path string) ([]string, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	var tokens []string
	var errs []string

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		for _, token := range strings.Fields(scanner.Text()) {
			tokens = append(tokens, token)
			if _, err := strconv.ParseInt(token, 10, 64); err != nil {
				errs = append(errs, fmt.Sprintf(
					"%s: invalid value at line %d: %s",
					filepath.Base(path), lineNumber, token,
				))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return tokens, errs, nil
}

// convertBase chuyển số không âm sang base khác bằng chia lấy dư
func convertBase(number int64, base int64, symbols string) string {
	if number == 0 {
		return "0"
	}

	sign := ""
	value := number
	if number < 0 {
		sign = "-"
		value = -number
	}

	var digits []byte
	for value > 0 {
		digits = append(digits, symbols[value%base])
		value /= base
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return sign + string(digits)
}

// ToBinary chuyển sang nhị phân kiểu DEC2BIN (two's complement 10 bit
// cho số âm).
func ToBinary(number int64) string {
	if number < 0 {
		complement := (int64(1) << binaryComplementBits) + number
		return fmt.Sprintf("%0*b", binaryComplementBits, complement)
	}
	return convertBase(number, 2, "01")
}

// ToHex chuyển sang thập lục phân kiểu DEC2HEX (two's complement cho
// số âm, 10 chữ số hex).
func ToHex(number int64) string {
	if number < 0 {
		complement := (int64(1) << hexComplementBits) + number
		return fmt.Sprintf("%0*X", hexDigits, complement)
	}
	return convertBase(number, 16, "0123456789ABCDEF")
}

// BuildReport dựng các dòng report ITEM/value/BIN/HEX cho một file
func BuildReport(fileName string, tokens []string) []string {
	stem := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	lines := []string{fmt.Sprintf("ITEM\t%s\tBIN\tHEX", stem)}

	for index, token := range tokens {
		binary := "#VALUE!"
		hexadecimal := "#VALUE!"
		if number, err := strconv.ParseInt(token, 10, 64); err == nil {
			binary = ToBinary(number)
			hexadecimal = ToHex(number)
		}
		lines = append(lines, fmt.Sprintf("%d\t%s\t%s\t%s", index+1, token, binary, hexadecimal))
	}
	return lines
}

// WriteResults ghi report xuống file, tạo thư mục cha nếu cần
func WriteResults(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
}
