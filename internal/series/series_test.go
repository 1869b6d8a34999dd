package series

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractors(t *testing.T) {
	candles := []Candle{
		{Open: 1, High: 3, Low: 0.5, Close: 2},
		{Open: 2, High: 4, Low: 1.5, Close: 3},
	}

	assert.Equal(t, []float64{2, 3}, Closes(candles))
	assert.Equal(t, []float64{3, 4}, Highs(candles))
	assert.Equal(t, []float64{0.5, 1.5}, Lows(candles))
	assert.Empty(t, Closes(nil))
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "candles.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	t.Run("with header and rfc3339 times", func(t *testing.T) {
		path := writeTempCSV(t, "time,open,high,low,close,volume\n"+
			"2026-01-02T00:00:00Z,100,105,99,104,1200\n"+
			"2026-01-02T01:00:00Z,104,106,103,105,900\n")

		candles, err := LoadCSV(path, "BTCUSDT", "1h")
		require.NoError(t, err)
		require.Len(t, candles, 2)
		assert.Equal(t, "BTCUSDT", candles[0].Symbol)
		assert.Equal(t, "1h", candles[0].Interval)
		assert.Equal(t, 104.0, candles[0].Close)
		assert.Equal(t, 106.0, candles[1].High)
		assert.Equal(t, 2026, candles[0].OpenTime.Year())
	})

	t.Run("without header and unix times", func(t *testing.T) {
		path := writeTempCSV(t, "1760000000,100,105,99,104,1200\n")

		candles, err := LoadCSV(path, "ETHUSDT", "1m")
		require.NoError(t, err)
		require.Len(t, candles, 1)
		assert.Equal(t, int64(1760000000), candles[0].OpenTime.Unix())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"), "X", "1h")
		assert.Error(t, err)
	})

	t.Run("bad numeric column", func(t *testing.T) {
		path := writeTempCSV(t, "1760000000,100,abc,99,104,1200\n")
		_, err := LoadCSV(path, "X", "1h")
		assert.Error(t, err)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeTempCSV(t, "")
		_, err := LoadCSV(path, "X", "1h")
		assert.Error(t, err)
	})

	t.Run("header only", func(t *testing.T) {
		path := writeTempCSV(t, "time,open,high,low,close,volume\n")
		_, err := LoadCSV(path, "X", "1h")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "contains no candles")
	})

	t.Run("wrong column count", func(t *testing.T) {
		path := writeTempCSV(t, "1760000000,100,105\n")
		_, err := LoadCSV(path, "X", "1h")
		assert.Error(t, err)
	})
}
