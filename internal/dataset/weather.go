package dataset

import (
	"errors"
	"log"
	"math"
	"sort"
)

// Feature indexes into a Vector. Order matches the dataset CSV columns.
const (
	FeatTemperature = iota
	FeatWind
	FeatPrecipitation
	FeatVisibility
	FeatHumidity
	FeatUV
	NumFeatures
)

// FeatureNames are the CSV column names for each feature index.
var FeatureNames = [NumFeatures]string{
	"day.avgtemp_c",
	"day.maxwind_kph",
	"day.totalprecip_mm",
	"day.avgvis_km",
	"day.avghumidity",
	"day.uv",
}

// Vector holds one value per weather feature. Missing values are NaN.
type Vector [NumFeatures]float64

// Weights is the per-feature importance vector used by clustering and scoring.
type Weights [NumFeatures]float64

var (
	ErrNegativeWeight = errors.New("feature weights must be non-negative")
	ErrZeroWeights    = errors.New("at least one feature weight must be positive")
)

// UniformWeights returns the baseline weight vector (importance 1.0 everywhere).
func UniformWeights() Weights {
	var w Weights
	for i := range w {
		w[i] = 1.0
	}
	return w
}

// Validate rejects negative entries and all-zero vectors; with every weight at
// zero the distance metric degenerates to a constant.
func (w Weights) Validate() error {
	positive := false
	for _, v := range w {
		if v < 0 || math.IsNaN(v) {
			return ErrNegativeWeight
		}
		if v > 0 {
			positive = true
		}
	}
	if !positive {
		return ErrZeroWeights
	}
	return nil
}

// WeatherRecord is one location-month row of the weather dataset.
// Immutable after load.
type WeatherRecord struct {
	Name     string
	Region   string
	Terrain  string
	Lat      float64
	Lon      float64
	Month    int // 1-12; 0 on aggregated rows
	Features Vector
}

// Table is the read-only in-memory weather dataset. Safe for concurrent reads.
// Each location appears at most once per month.
type Table struct {
	rows []WeatherRecord
}

// NewTable builds a Table, merging duplicate rows for the same location and
// month into one row with NaN-aware feature means. Source data may be daily;
// the table is always monthly. Metadata comes from the first row seen.
func NewTable(rows []WeatherRecord) *Table {
	type key struct {
		name  string
		month int
	}
	type acc struct {
		rec   WeatherRecord
		sums  Vector
		count [NumFeatures]int
	}
	byKey := make(map[key]*acc, len(rows))
	var order []key
	merged := 0

	for _, r := range rows {
		k := key{r.Name, r.Month}
		a, ok := byKey[k]
		if !ok {
			a = &acc{rec: r}
			byKey[k] = a
			order = append(order, k)
		} else {
			merged++
		}
		for i, v := range r.Features {
			if !math.IsNaN(v) {
				a.sums[i] += v
				a.count[i]++
			}
		}
	}

	out := make([]WeatherRecord, 0, len(order))
	for _, k := range order {
		a := byKey[k]
		for i := range a.rec.Features {
			if a.count[i] > 0 {
				a.rec.Features[i] = a.sums[i] / float64(a.count[i])
			} else {
				a.rec.Features[i] = math.NaN()
			}
		}
		out = append(out, a.rec)
	}

	if merged > 0 {
		log.Printf("Merged %d duplicate location-month rows into monthly means", merged)
	}
	return &Table{rows: out}
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) Rows() []WeatherRecord {
	return t.rows
}

// ByMonth returns the rows for one calendar month.
func (t *Table) ByMonth(month int) []WeatherRecord {
	var out []WeatherRecord
	for _, r := range t.rows {
		if r.Month == month {
			out = append(out, r)
		}
	}
	return out
}

// Location returns every monthly row for a location, ordered by month.
func (t *Table) Location(name string) []WeatherRecord {
	var out []WeatherRecord
	for _, r := range t.rows {
		if r.Name == name {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// Locations returns the distinct location names, sorted.
func (t *Table) Locations() []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range t.rows {
		if !seen[r.Name] {
			seen[r.Name] = true
			names = append(names, r.Name)
		}
	}
	sort.Strings(names)
	return names
}

// AggregateByLocation collapses monthly rows into one row per location with
// mean feature values. NaN entries are left out of each mean; a feature with
// no observations at all stays NaN. Result ordered by location name.
func AggregateByLocation(rows []WeatherRecord) []WeatherRecord {
	type acc struct {
		rec   WeatherRecord
		sums  Vector
		count [NumFeatures]int
	}
	byName := make(map[string]*acc)
	var order []string

	for _, r := range rows {
		a, ok := byName[r.Name]
		if !ok {
			a = &acc{rec: WeatherRecord{
				Name:    r.Name,
				Region:  r.Region,
				Terrain: r.Terrain,
				Lat:     r.Lat,
				Lon:     r.Lon,
			}}
			byName[r.Name] = a
			order = append(order, r.Name)
		}
		for i, v := range r.Features {
			if !math.IsNaN(v) {
				a.sums[i] += v
				a.count[i]++
			}
		}
	}

	sort.Strings(order)
	out := make([]WeatherRecord, 0, len(order))
	for _, name := range order {
		a := byName[name]
		for i := range a.rec.Features {
			if a.count[i] > 0 {
				a.rec.Features[i] = a.sums[i] / float64(a.count[i])
			} else {
				a.rec.Features[i] = math.NaN()
			}
		}
		out = append(out, a.rec)
	}
	return out
}
