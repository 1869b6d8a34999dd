package series

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// csvColumns is the expected column count: time,open,high,low,close,volume.
const csvColumns = 6

// LoadCSV reads a candle series from a CSV file with columns
// time,open,high,low,close,volume. The time column is RFC 3339 or a Unix
// timestamp in seconds. A header row is detected and skipped. Candles are
// returned in file order, which is expected to be oldest first.
func LoadCSV(path, symbol, interval string) ([]Candle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("series: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = csvColumns

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("series: read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("series: %s contains no candles", path)
	}

	start := 0
	if _, err := strconv.ParseFloat(records[0][1], 64); err != nil {
		start = 1 // header row
	}
	if start == len(records) {
		return nil, fmt.Errorf("series: %s contains no candles", path)
	}

	candles := make([]Candle, 0, len(records)-start)
	for i, rec := range records[start:] {
		c, err := parseRecord(rec, symbol, interval)
		if err != nil {
			return nil, fmt.Errorf("series: %s row %d: %w", path, start+i+1, err)
		}
		candles = append(candles, c)
	}
	return candles, nil
}

func parseRecord(rec []string, symbol, interval string) (Candle, error) {
	ts, err := parseTime(rec[0])
	if err != nil {
		return Candle{}, err
	}

	fields := [5]float64{}
	for i := 0; i < 5; i++ {
		v, err := strconv.ParseFloat(rec[i+1], 64)
		if err != nil {
			return Candle{}, fmt.Errorf("column %d: %w", i+2, err)
		}
		fields[i] = v
	}

	return Candle{
		Symbol:   symbol,
		Interval: interval,
		OpenTime: ts,
		Open:     fields[0],
		High:     fields[1],
		Low:      fields[2],
		Close:    fields[3],
		Volume:   fields[4],
	}, nil
}

func parseTime(s string) (time.Time, error) {
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("time column: %w", err)
	}
	return ts, nil
}
