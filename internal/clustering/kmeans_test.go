package clustering

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vietravel/internal/dataset"
)

// twoBlobPoints builds two well-separated groups in temperature and
// precipitation, which any reasonable run of k=2 must recover.
func twoBlobPoints() []Point {
	var points []Point
	for i := 0; i < 5; i++ {
		points = append(points, Point{
			Name:     fmt.Sprintf("cool-%d", i),
			Features: dataset.Vector{10 + float64(i), 10, 1, 9, 85, 4},
		})
	}
	for i := 0; i < 5; i++ {
		points = append(points, Point{
			Name:     fmt.Sprintf("hot-%d", i),
			Features: dataset.Vector{32 + float64(i), 18, 14, 10, 70, 10},
		})
	}
	return points
}

func TestRunSeparatesBlobs(t *testing.T) {
	cfg := Config{K: 2, MaxIterations: 100, Seed: 42}
	res, err := Run(twoBlobPoints(), dataset.UniformWeights(), cfg)
	require.NoError(t, err)
	require.Equal(t, 2, res.K)
	require.Len(t, res.Labels, 10)

	coolLabel := res.Assignments["cool-0"]
	hotLabel := res.Assignments["hot-0"]
	assert.NotEqual(t, coolLabel, hotLabel)
	for i := 0; i < 5; i++ {
		assert.Equal(t, coolLabel, res.Assignments[fmt.Sprintf("cool-%d", i)])
		assert.Equal(t, hotLabel, res.Assignments[fmt.Sprintf("hot-%d", i)])
	}
}

func TestRunDeterministic(t *testing.T) {
	cfg := Config{K: 3, MaxIterations: 100, Seed: 42}
	points := twoBlobPoints()

	first, err := Run(points, dataset.UniformWeights(), cfg)
	require.NoError(t, err)
	second, err := Run(points, dataset.UniformWeights(), cfg)
	require.NoError(t, err)

	assert.Equal(t, first.Labels, second.Labels)
	assert.Equal(t, first.Centroids, second.Centroids)
}

func TestRunAssignsEveryPoint(t *testing.T) {
	res, err := Run(twoBlobPoints(), dataset.UniformWeights(), DefaultConfig())
	require.NoError(t, err)

	assert.Len(t, res.Assignments, 10)
	for _, l := range res.Labels {
		assert.GreaterOrEqual(t, l, 0)
		assert.Less(t, l, res.K)
	}
}

func TestRunNoEmptyClusters(t *testing.T) {
	res, err := Run(twoBlobPoints(), dataset.UniformWeights(), Config{K: 4, MaxIterations: 100, Seed: 42})
	require.NoError(t, err)

	counts := make(map[int]int)
	for _, l := range res.Labels {
		counts[l]++
	}
	assert.Len(t, counts, res.K)
}

func TestRunClampsKToPointCount(t *testing.T) {
	points := twoBlobPoints()[:3]
	res, err := Run(points, dataset.UniformWeights(), Config{K: 8, MaxIterations: 100, Seed: 42})
	require.NoError(t, err)
	assert.Equal(t, 3, res.K)
}

func TestRunErrors(t *testing.T) {
	t.Run("no points", func(t *testing.T) {
		_, err := Run(nil, dataset.UniformWeights(), DefaultConfig())
		assert.ErrorIs(t, err, ErrNoPoints)
	})

	t.Run("zero weights", func(t *testing.T) {
		var w dataset.Weights
		_, err := Run(twoBlobPoints(), w, DefaultConfig())
		assert.ErrorIs(t, err, dataset.ErrZeroWeights)
	})
}

// With weight concentrated on precipitation, points that differ only in rain
// must split; the same points with rain-weight zero must merge.
func TestWeightsSteerAssignment(t *testing.T) {
	points := []Point{
		{Name: "dry-a", Features: dataset.Vector{25, 10, 1, 9, 80, 7}},
		{Name: "dry-b", Features: dataset.Vector{25, 10, 1.5, 9, 80, 7}},
		{Name: "wet-a", Features: dataset.Vector{25, 10, 20, 9, 80, 7}},
		{Name: "wet-b", Features: dataset.Vector{25, 10, 21, 9, 80, 7}},
	}

	rainOnly := dataset.Weights{0, 0, 1, 0, 0, 0}
	res, err := Run(points, rainOnly, Config{K: 2, MaxIterations: 100, Seed: 42})
	require.NoError(t, err)
	assert.Equal(t, res.Assignments["dry-a"], res.Assignments["dry-b"])
	assert.Equal(t, res.Assignments["wet-a"], res.Assignments["wet-b"])
	assert.NotEqual(t, res.Assignments["dry-a"], res.Assignments["wet-a"])
}
