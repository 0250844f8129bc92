package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync/atomic"

	"vietravel/internal/clustering"
	"vietravel/internal/dataset"
	"vietravel/internal/models/response_models"
	"vietravel/pkg/utils"
)

type ClusterServiceInterface interface {
	Refresh(weights dataset.Weights) error
	Analysis() ([]response_models.ClusterInfo, error)
	ClusterOf(location string) (int, bool)
	Ready() bool
}

// ClusterService owns the published clustering result. Refresh computes a
// fresh result and swaps it in atomically, so concurrent readers never see a
// partially updated cluster set.
type ClusterService struct {
	table   *dataset.Table
	cfg     clustering.Config
	current atomic.Pointer[clustering.Result]
}

// NewClusterService trains the initial model with uniform weights.
func NewClusterService(table *dataset.Table, cfg clustering.Config) (*ClusterService, error) {
	s := &ClusterService{table: table, cfg: cfg}
	if err := s.Refresh(dataset.UniformWeights()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ClusterService) Refresh(weights dataset.Weights) error {
	if err := weights.Validate(); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrInvalidWeights, err)
	}

	points := locationPoints(s.table)
	res, err := clustering.Run(points, weights, s.cfg)
	if err != nil {
		if errors.Is(err, clustering.ErrNoPoints) {
			return utils.ErrEmptyDataset
		}
		return err
	}

	s.current.Store(res)
	return nil
}

func (s *ClusterService) Ready() bool {
	return s.current.Load() != nil
}

func (s *ClusterService) ClusterOf(location string) (int, bool) {
	res := s.current.Load()
	if res == nil {
		return 0, false
	}
	id, ok := res.Assignments[location]
	return id, ok
}

// Analysis summarizes each cluster: member locations, count, mean raw
// features, and a Vietnamese climate description.
func (s *ClusterService) Analysis() ([]response_models.ClusterInfo, error) {
	res := s.current.Load()
	if res == nil {
		return nil, utils.ErrClusterNotReady
	}

	type agg struct {
		names []string
		sums  dataset.Vector
		count [dataset.NumFeatures]int
	}
	byCluster := make(map[int]*agg)
	for i, p := range res.Points {
		c := res.Labels[i]
		a, ok := byCluster[c]
		if !ok {
			a = &agg{}
			byCluster[c] = a
		}
		a.names = append(a.names, p.Name)
		for f, v := range p.Features {
			if !math.IsNaN(v) {
				a.sums[f] += v
				a.count[f]++
			}
		}
	}

	out := make([]response_models.ClusterInfo, 0, len(byCluster))
	for c := 0; c < res.K; c++ {
		a, ok := byCluster[c]
		if !ok {
			continue
		}
		sort.Strings(a.names)

		avg := make(map[string]float64, dataset.NumFeatures)
		var means dataset.Vector
		for f := range means {
			means[f] = math.NaN()
			if a.count[f] > 0 {
				means[f] = a.sums[f] / float64(a.count[f])
				avg[dataset.FeatureNames[f]] = means[f]
			}
		}

		out = append(out, response_models.ClusterInfo{
			ClusterID:   c,
			Locations:   a.names,
			Count:       len(a.names),
			AvgFeatures: avg,
			Description: describeClimate(means[dataset.FeatTemperature], means[dataset.FeatPrecipitation]),
		})
	}
	return out, nil
}

func describeClimate(avgTemp, avgPrecip float64) string {
	tempLabel := "nóng"
	switch {
	case avgTemp < 20:
		tempLabel = "mát mẻ"
	case avgTemp < 28:
		tempLabel = "ôn hòa"
	}

	rainLabel := "nhiều mưa"
	switch {
	case avgPrecip < 2:
		rainLabel = "ít mưa"
	case avgPrecip < 10:
		rainLabel = "mưa vừa"
	}

	return fmt.Sprintf("Khí hậu %s, %s", tempLabel, rainLabel)
}

func locationPoints(t *dataset.Table) []clustering.Point {
	agg := dataset.AggregateByLocation(t.Rows())
	points := make([]clustering.Point, 0, len(agg))
	for _, r := range agg {
		points = append(points, clustering.Point{Name: r.Name, Features: r.Features})
	}
	return points
}
