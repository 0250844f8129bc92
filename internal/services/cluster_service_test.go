package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vietravel/internal/clustering"
	"vietravel/internal/dataset"
	"vietravel/pkg/utils"
)

func newTestClusterService(t *testing.T, k int) *ClusterService {
	t.Helper()
	cfg := clustering.Config{K: k, MaxIterations: 100, Seed: 42}
	svc, err := NewClusterService(testTable(), cfg)
	require.NoError(t, err)
	return svc
}

func TestClusterService(t *testing.T) {
	t.Run("ready after construction", func(t *testing.T) {
		svc := newTestClusterService(t, 2)
		assert.True(t, svc.Ready())
	})

	t.Run("every location assigned", func(t *testing.T) {
		svc := newTestClusterService(t, 2)
		for _, name := range []string{"Sa Pa", "Đà Lạt", "Nha Trang"} {
			id, ok := svc.ClusterOf(name)
			require.True(t, ok, name)
			assert.GreaterOrEqual(t, id, 0)
			assert.Less(t, id, 2)
		}
	})

	t.Run("unknown location not assigned", func(t *testing.T) {
		svc := newTestClusterService(t, 2)
		_, ok := svc.ClusterOf("Atlantis")
		assert.False(t, ok)
	})

	t.Run("refresh rejects invalid weights and keeps old result", func(t *testing.T) {
		svc := newTestClusterService(t, 2)
		before, ok := svc.ClusterOf("Sa Pa")
		require.True(t, ok)

		err := svc.Refresh(dataset.Weights{})
		assert.ErrorIs(t, err, utils.ErrInvalidWeights)

		after, ok := svc.ClusterOf("Sa Pa")
		require.True(t, ok)
		assert.Equal(t, before, after)
	})

	t.Run("refresh with new weights swaps the result", func(t *testing.T) {
		svc := newTestClusterService(t, 2)

		w := dataset.UniformWeights()
		w[dataset.FeatPrecipitation] = 5
		require.NoError(t, svc.Refresh(w))
		assert.True(t, svc.Ready())

		for _, name := range []string{"Sa Pa", "Đà Lạt", "Nha Trang"} {
			_, ok := svc.ClusterOf(name)
			assert.True(t, ok, name)
		}
	})
}

func TestClusterAnalysis(t *testing.T) {
	svc := newTestClusterService(t, 2)

	infos, err := svc.Analysis()
	require.NoError(t, err)
	require.Len(t, infos, 2)

	seen := make(map[string]bool)
	total := 0
	for _, info := range infos {
		assert.Equal(t, len(info.Locations), info.Count)
		assert.NotEmpty(t, info.AvgFeatures)
		assert.Contains(t, info.Description, "Khí hậu")
		total += info.Count
		for _, name := range info.Locations {
			seen[name] = true
		}
	}
	assert.Equal(t, 3, total)
	assert.True(t, seen["Sa Pa"] && seen["Đà Lạt"] && seen["Nha Trang"])
}

func TestDescribeClimate(t *testing.T) {
	tests := []struct {
		temp, precip float64
		want         string
	}{
		{15, 1, "Khí hậu mát mẻ, ít mưa"},
		{25, 5, "Khí hậu ôn hòa, mưa vừa"},
		{30, 12, "Khí hậu nóng, nhiều mưa"},
		{19.9, 9.9, "Khí hậu mát mẻ, mưa vừa"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, describeClimate(tc.temp, tc.precip))
	}
}
