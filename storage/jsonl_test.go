package storage_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hotelsys/services/logger"
	"hotelsys/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logger.NewWriterLogger(logger.ErrorLevel, &buf), &buf
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields no records and no error", func(t *testing.T) {
		log, _ := newTestLogger()

		records, err := storage.Load(filepath.Join(t.TempDir(), "absent.jsonl"), "hotels", log)

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("skips malformed lines with one diagnostic per line", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hotels.jsonl")
		content := `{"hotel_id":"ok","name":"Uno","total_rooms":2,"available_rooms":2}
{invalid}
123
null

{"hotel_id":"ok2","name":"Dos","total_rooms":1,"available_rooms":1}
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		log, buf := newTestLogger()

		records, err := storage.Load(path, "hotels", log)

		require.NoError(t, err)
		assert.Len(t, records, 2)
		// một dòng lỗi cho {invalid}, 123 và null; dòng trống bỏ qua im lặng
		assert.Equal(t, 3, strings.Count(buf.String(), "[ERROR]"))
	})
}

func TestSave(t *testing.T) {
	type record struct {
		Name string `json:"name"`
	}

	t.Run("creates parent directories and rewrites the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "records.jsonl")

		err := storage.Save(path, []interface{}{record{Name: "one"}, record{Name: "two"}})

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		assert.Len(t, lines, 2)
		assert.JSONEq(t, `{"name":"one"}`, lines[0])
	})

	t.Run("escapes non-ascii characters", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "records.jsonl")

		err := storage.Save(path, []interface{}{record{Name: "José"}})

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `Jos\u00e9`)
		assert.NotContains(t, string(data), "é")
	})

	t.Run("round-trips through Load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "records.jsonl")
		log, buf := newTestLogger()

		require.NoError(t, storage.Save(path, []interface{}{record{Name: "José"}}))
		records, err := storage.Load(path, "records", log)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.JSONEq(t, `{"name":"José"}`, string(records[0]))
		assert.Empty(t, buf.String())
	})
}
