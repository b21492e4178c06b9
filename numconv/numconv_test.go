package numconv_test

import (
	"os"
	"path/filepath"
	"testing"

	"hotelsys/numconv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBinary(t *testing.T) {
	cases := []struct {
		number int64
		want   string
	}{
		{0, "0"},
		{1, "1"},
		{5, "101"},
		{255, "11111111"},
		{-1, "1111111111"},
		{-2, "1111111110"},
		{-512, "1000000000"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, numconv.ToBinary(tc.number), "input %d", tc.number)
	}
}

func TestToHex(t *testing.T) {
	cases := []struct {
		number int64
		want   string
	}{
		{0, "0"},
		{10, "A"},
		{255, "FF"},
		{4096, "1000"},
		{-1, "FFFFFFFFFF"},
		{-16, "FFFFFFFFF0"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, numconv.ToHex(tc.number), "input %d", tc.number)
	}
}

func TestReadTokensFromFile(t *testing.T) {
	t.Run("missing file is an error", func(t *testing.T) {
		_, _, err := numconv.ReadTokensFromFile(filepath.Join(t.TempDir(), "absent.txt"))
		assert.Error(t, err)
	})

	t.Run("keeps invalid tokens and reports them", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "TC2.txt")
		require.NoError(t, os.WriteFile(path, []byte("7 abc\n-3\n"), 0644))

		tokens, errs, err := numconv.ReadTokensFromFile(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"7", "abc", "-3"}, tokens)
		require.Len(t, errs, 1)
		assert.Equal(t, "TC2.txt: invalid value at line 1: abc", errs[0])
	})
}

func TestBuildReport(t *testing.T) {
	lines := numconv.BuildReport("/data/TC3.txt", []string{"5", "abc", "-1"})

	require.Len(t, lines, 4)
	assert.Equal(t, "ITEM\tTC3\tBIN\tHEX", lines[0])
	assert.Equal(t, "1\t5\t101\t5", lines[1])
	assert.Equal(t, "2\tabc\t#VALUE!\t#VALUE!", lines[2])
	assert.Equal(t, "3\t-1\t1111111111\tFFFFFFFFFF", lines[3])
}

func TestWriteResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "ConvertionResults.txt")

	require.NoError(t, numconv.WriteResults(path, []string{"ITEM\tTC1\tBIN\tHEX"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ITEM\tTC1\tBIN\tHEX\n", string(data))
}
