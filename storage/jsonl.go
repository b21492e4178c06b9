package storage

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf16"

	"hotelsys/services/logger"

	json "github.com/goccy/go-json"
)

const maxLineSize = 1024 * 1024

// Load đọc các record JSONL từ path. Dòng hỏng hoặc không phải
// object JSON được bỏ qua kèm một dòng chẩn đoán; load không bao giờ
// fail vì dữ liệu hỏng cục bộ. File không tồn tại trả về rỗng.
func Load(path string, entity string, log logger.Logger) ([]json.RawMessage, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var payload map[string]interface{}
		if err := json.Unmarshal(line, &payload); err != nil {
			log.Error("invalid line in %s (%s, line %d): %v", entity, path, lineNumber, err)
			continue
		}
		if payload == nil {
			// "null" decode thành map nil, không phải object
			log.Error("invalid format in %s (%s, line %d)", entity, path, lineNumber)
			continue
		}

		record := make(json.RawMessage, len(line))
		copy(record, line)
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Save ghi đè toàn bộ collection, mỗi record một dòng JSON ASCII.
// Không atomic: crash giữa chừng có thể cắt cụt file.
func Save(path string, records []interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, record := range records {
		encoded, err := json.Marshal(record)
		if err != nil {
			return err
		}
		buf.Write(escapeNonASCII(encoded))
		buf.WriteByte('\n')
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// escapeNonASCII chuyển rune ngoài ASCII sang \uXXXX như json.dumps
// với ensure_ascii để format file ổn định giữa các công cụ.
func escapeNonASCII(data []byte) []byte {
	ascii := true
	for _, b := range data {
		if b >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return data
	}

	var out bytes.Buffer
	out.Grow(len(data))
	for _, r := range string(data) {
		if r < 0x80 {
			out.WriteRune(r)
			continue
		}
		if r > 0xFFFF {
			high, low := utf16.EncodeRune(r)
			fmt.Fprintf(&out, "\\u%04x\\u%04x", high, low)
			continue
		}
		fmt.Fprintf(&out, "\\u%04x", r)
	}
	return out.Bytes()
}
