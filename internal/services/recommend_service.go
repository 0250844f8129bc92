package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"vietravel/internal/dataset"
	"vietravel/internal/models/response_models"
	"vietravel/internal/preferences"
	"vietravel/pkg/utils"
)

const (
	DefaultTopN = 5

	// Scoring constants: a numeric target earns up to targetFitMax points
	// falling off linearly with distance, a rain-band match earns rainBonus,
	// a terrain match earns terrainBonus.
	targetFitMax = 10.0
	rainBonus    = 5.0
	terrainBonus = 3.0
)

type RecommendServiceInterface interface {
	Recommend(prefs preferences.PreferenceRecord, topN int) ([]response_models.Recommendation, error)
	LocationDetail(name string) (*response_models.LocationDetail, error)
}

type RecommendService struct {
	table    *dataset.Table
	clusters ClusterServiceInterface
}

func NewRecommendService(table *dataset.Table, clusters ClusterServiceInterface) RecommendServiceInterface {
	return &RecommendService{table: table, clusters: clusters}
}

// Recommend ranks locations by how well their weather matches the preference
// targets. A set target month restricts candidates to that month's rows;
// otherwise rows are aggregated per location first. Higher raw score means a
// better fit; ties are broken by location name so output is reproducible.
func (s *RecommendService) Recommend(prefs preferences.PreferenceRecord, topN int) ([]response_models.Recommendation, error) {
	if err := prefs.Weights.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidWeights, err)
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	var rows []dataset.WeatherRecord
	if prefs.Month != nil {
		rows = s.table.ByMonth(*prefs.Month)
		if len(rows) == 0 {
			return nil, utils.ErrNoMatch
		}
	} else {
		rows = dataset.AggregateByLocation(s.table.Rows())
	}

	// Terrain is a hard preference, but an over-restrictive one falls back to
	// the full candidate set rather than returning nothing.
	if prefs.Terrain != "" {
		var filtered []dataset.WeatherRecord
		for _, r := range rows {
			if strings.Contains(r.Terrain, prefs.Terrain) {
				filtered = append(filtered, r)
			}
		}
		if len(filtered) > 0 {
			rows = filtered
		}
	}

	type scored struct {
		rec dataset.WeatherRecord
		raw float64
	}
	candidates := make([]scored, 0, len(rows))
	minRaw, maxRaw := math.Inf(1), math.Inf(-1)
	for _, r := range rows {
		raw := rawFit(r, prefs)
		if raw < minRaw {
			minRaw = raw
		}
		if raw > maxRaw {
			maxRaw = raw
		}
		candidates = append(candidates, scored{rec: r, raw: raw})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].raw != candidates[j].raw {
			return candidates[i].raw > candidates[j].raw
		}
		return candidates[i].rec.Name < candidates[j].rec.Name
	})

	if len(candidates) > topN {
		candidates = candidates[:topN]
	}

	out := make([]response_models.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		cluster := -1
		if id, ok := s.clusters.ClusterOf(c.rec.Name); ok {
			cluster = id
		}
		out = append(out, response_models.Recommendation{
			Name:      c.rec.Name,
			Region:    c.rec.Region,
			Terrain:   c.rec.Terrain,
			Latitude:  c.rec.Lat,
			Longitude: c.rec.Lon,
			Cluster:   cluster,
			Score:     fitScore(c.raw, minRaw, maxRaw),
			Weather:   weatherSummary(c.rec.Features),
		})
	}
	return out, nil
}

// rawFit accumulates weighted match points over the dimensions the user
// expressed a preference on. Numeric targets earn points falling off linearly
// with distance; the rain band and terrain match earn fixed bonuses. Missing
// (NaN) row values skip their dimension instead of poisoning the score.
func rawFit(r dataset.WeatherRecord, prefs preferences.PreferenceRecord) float64 {
	var sum float64
	for i := 0; i < dataset.NumFeatures; i++ {
		if !prefs.HasTarget(i) || math.IsNaN(r.Features[i]) {
			continue
		}
		sum += prefs.Weights[i] * math.Max(0, targetFitMax-math.Abs(r.Features[i]-prefs.Targets[i]))
	}
	if prefs.RainBand != nil && !math.IsNaN(r.Features[dataset.FeatPrecipitation]) &&
		prefs.RainBand.Contains(r.Features[dataset.FeatPrecipitation]) {
		sum += prefs.Weights[dataset.FeatPrecipitation] * rainBonus
	}
	if prefs.Terrain != "" && strings.Contains(r.Terrain, prefs.Terrain) {
		sum += terrainBonus
	}
	return sum
}

// fitScore maps a raw score onto the 0-10 scale with min-max normalization
// over the candidate set. The best candidate scores 10.
func fitScore(raw, minRaw, maxRaw float64) float64 {
	if maxRaw == minRaw {
		return 10
	}
	return round2(10 * (raw - minRaw) / (maxRaw - minRaw))
}

// LocationDetail returns monthly stats and overall averages for one location.
func (s *RecommendService) LocationDetail(name string) (*response_models.LocationDetail, error) {
	rows := s.table.Location(name)
	if len(rows) == 0 {
		return nil, utils.ErrLocationNotFound
	}

	monthly := make(map[int]response_models.WeatherSummary, len(rows))
	for _, r := range rows {
		monthly[r.Month] = weatherSummary(r.Features)
	}

	overall := dataset.AggregateByLocation(rows)[0]

	return &response_models.LocationDetail{
		LocationInfo: response_models.LocationInfo{
			Name:      rows[0].Name,
			Region:    rows[0].Region,
			Terrain:   rows[0].Terrain,
			Latitude:  rows[0].Lat,
			Longitude: rows[0].Lon,
		},
		MonthlyAverages: monthly,
		OverallAverages: weatherSummary(overall.Features),
	}, nil
}

func weatherSummary(v dataset.Vector) response_models.WeatherSummary {
	return response_models.WeatherSummary{
		AvgTempC:      fptr(v[dataset.FeatTemperature]),
		MaxWindKph:    fptr(v[dataset.FeatWind]),
		TotalPrecipMm: fptr(v[dataset.FeatPrecipitation]),
		AvgVisKm:      fptr(v[dataset.FeatVisibility]),
		AvgHumidity:   fptr(v[dataset.FeatHumidity]),
		UV:            fptr(v[dataset.FeatUV]),
	}
}

func fptr(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	r := round2(v)
	return &r
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
