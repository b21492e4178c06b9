package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// DefaultDataDir là thư mục dữ liệu mặc định khi không có flag/env
	DefaultDataDir = "input"
	// DataDirEnv là biến môi trường override thư mục dữ liệu
	DataDirEnv = "HOTEL_DATA_DIR"
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ResolveDataDir chọn thư mục dữ liệu: flag > env > default
func ResolveDataDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return GetEnvOrDefault(DataDirEnv, DefaultDataDir)
}

// EnsureDir tạo thư mục nếu chưa tồn tại
func EnsureDir(dir string) error {
	return os.MkdirAll(filepath.Clean(dir), 0755)
}
