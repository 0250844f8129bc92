package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"time"
)

var ErrEmptyDataset = errors.New("weather dataset is empty")

var requiredColumns = []string{
	"location.name",
	"location.region",
	"location.terrain",
	"location.lat",
	"location.lon",
	"date",
}

// Load reads the weather CSV at path into a Table.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open weather dataset: %w", err)
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader parses weather CSV rows. Rows that cannot be parsed are skipped
// and logged rather than aborting the load; only a dataset with no usable
// rows at all is an error.
func LoadReader(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("weather dataset missing column %q", name)
		}
	}

	var rows []WeatherRecord
	skipped := 0
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Skipping malformed dataset row at line %d: %v", line, err)
			skipped++
			continue
		}

		rec, err := parseRow(record, col)
		if err != nil {
			log.Printf("Skipping dataset row at line %d: %v", line, err)
			skipped++
			continue
		}
		rows = append(rows, rec)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}
	if skipped > 0 {
		log.Printf("Weather dataset loaded with %d rows (%d skipped)", len(rows), skipped)
	}
	return NewTable(rows), nil
}

func parseRow(record []string, col map[string]int) (WeatherRecord, error) {
	field := func(name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	name := field("location.name")
	if name == "" {
		return WeatherRecord{}, errors.New("missing location name")
	}

	date, err := time.Parse("2006-01-02", field("date"))
	if err != nil {
		return WeatherRecord{}, fmt.Errorf("bad date %q", field("date"))
	}

	lat, err := strconv.ParseFloat(field("location.lat"), 64)
	if err != nil {
		return WeatherRecord{}, fmt.Errorf("bad latitude %q", field("location.lat"))
	}
	lon, err := strconv.ParseFloat(field("location.lon"), 64)
	if err != nil {
		return WeatherRecord{}, fmt.Errorf("bad longitude %q", field("location.lon"))
	}

	rec := WeatherRecord{
		Name:    name,
		Region:  field("location.region"),
		Terrain: field("location.terrain"),
		Lat:     lat,
		Lon:     lon,
		Month:   int(date.Month()),
	}

	// Feature columns may be absent or blank; those load as NaN so scoring
	// can exclude the dimension instead of poisoning the distance.
	for i, colName := range FeatureNames {
		raw := field(colName)
		if raw == "" {
			rec.Features[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			rec.Features[i] = math.NaN()
			continue
		}
		rec.Features[i] = v
	}

	return rec, nil
}
