package utils

import (
	"fmt"
	"io"
	"os"
	"time"
)

// OpenLogFile mở file log theo ngày trong thư mục dir.
// Console layer dùng writer này với io.MultiWriter để nhân bản
// output ra màn hình và file cùng lúc.
func OpenLogFile(dir string) (io.WriteCloser, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	timestamp := time.Now().Format("2006-01-02")
	path := fmt.Sprintf("%s/app-%s.log", dir, timestamp)
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
}
